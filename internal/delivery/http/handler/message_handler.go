package handler

import (
	"encoding/json"
	"net/http"

	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/usecase"
	"healthnet-api/pkg/response"
	"healthnet-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	validator      *validator.CustomValidator
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, validator *validator.CustomValidator) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		validator:      validator,
	}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.messageUsecase.Send(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrReceiverNotFound:
			response.NotFound(w, "Receiver not found")
		default:
			response.InternalServerError(w, "Failed to send message")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Message sent successfully", message)
}

func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	otherUserID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	conversation, err := h.messageUsecase.GetConversation(r.Context(), otherUserID)
	if err != nil {
		response.InternalServerError(w, "Failed to load conversation")
		return
	}

	response.Success(w, http.StatusOK, "Conversation retrieved successfully", conversation)
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid message ID", nil)
		return
	}

	if err := h.messageUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrMessageNotFound:
			response.NotFound(w, "Message not found")
		case usecase.ErrMessageNotOwned:
			response.Forbidden(w, "You can only delete your own messages")
		default:
			response.InternalServerError(w, "Failed to delete message")
		}
		return
	}

	response.Success(w, http.StatusOK, "Message deleted successfully", nil)
}
