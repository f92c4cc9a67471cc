package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"healthnet-api/internal/converter"
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/delivery/http/middleware"
	"healthnet-api/internal/domain/entity"
	"healthnet-api/internal/domain/repository"
	"healthnet-api/internal/infrastructure/ws"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrMessageNotOwned  = errors.New("message belongs to another sender")
)

type MessageUsecase interface {
	Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetConversation(ctx context.Context, otherUserID uuid.UUID) (*dto.ConversationResponse, error)
	Delete(ctx context.Context, messageID uuid.UUID) error
}

type messageUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	redisClient *redis.Client
}

func NewMessageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	redisClient *redis.Client,
) MessageUsecase {
	return &messageUsecase{
		db:          db,
		log:         log,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

// Send persists a chat message and publishes it on the chat channel. The
// database row is the source of truth; the websocket push is best-effort
// delivery on top.
func (u *messageUsecase) Send(ctx context.Context, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	db := u.db.WithContext(ctx)

	receiver, err := u.userRepo.FindByID(db, req.ReceiverID)
	if err != nil {
		u.log.Warnf("Failed to find receiver %s: %+v", req.ReceiverID, err)
		return nil, err
	}
	if receiver == nil {
		return nil, ErrReceiverNotFound
	}

	message := &entity.Message{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Body:       req.Body,
	}
	if err := u.messageRepo.Create(db, message); err != nil {
		u.log.Warnf("Failed to create message: %+v", err)
		return nil, err
	}

	stored, err := u.messageRepo.FindByID(db, message.ID)
	if err != nil || stored == nil {
		stored = message
	}

	response := converter.MessageToResponse(stored)

	payload, err := json.Marshal(map[string]interface{}{
		"event":   "message.sent",
		"message": response,
	})
	if err == nil {
		if err := u.redisClient.Publish(ctx, ws.ChatChannel, payload).Err(); err != nil {
			u.log.Warnf("Failed to publish chat message: %+v", err)
		}
	}

	return response, nil
}

func (u *messageUsecase) GetConversation(ctx context.Context, otherUserID uuid.UUID) (*dto.ConversationResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	messages, err := u.messageRepo.FindConversation(u.db.WithContext(ctx), userID, otherUserID)
	if err != nil {
		u.log.Warnf("Failed to load conversation %s/%s: %+v", userID, otherUserID, err)
		return nil, err
	}

	return &dto.ConversationResponse{
		Messages: converter.MessagesToResponses(messages),
		Total:    len(messages),
	}, nil
}

// Delete removes a message. Only the sender may delete it; admins can
// moderate anyone's messages.
func (u *messageUsecase) Delete(ctx context.Context, messageID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	db := u.db.WithContext(ctx)

	message, err := u.messageRepo.FindByID(db, messageID)
	if err != nil {
		u.log.Warnf("Failed to find message %s: %+v", messageID, err)
		return err
	}
	if message == nil {
		return ErrMessageNotFound
	}
	if message.SenderID != userID && roleID != entity.RoleIDAdmin {
		return ErrMessageNotOwned
	}

	rows, err := u.messageRepo.Delete(db, messageID)
	if err != nil {
		u.log.Warnf("Failed to delete message %s: %+v", messageID, err)
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}

	return nil
}
