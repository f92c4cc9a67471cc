package converter

import (
	"healthnet-api/internal/delivery/dto"
	"healthnet-api/internal/domain/entity"
)

// MessageToResponse converts a Message entity to MessageResponse DTO
func MessageToResponse(message *entity.Message) *dto.MessageResponse {
	if message == nil {
		return nil
	}

	return &dto.MessageResponse{
		ID:           message.ID,
		SenderID:     message.SenderID,
		SenderName:   message.Sender.FullName,
		ReceiverID:   message.ReceiverID,
		ReceiverName: message.Receiver.FullName,
		Body:         message.Body,
		CreatedAt:    message.CreatedAt,
	}
}

// MessagesToResponses converts a slice of Message entities to slice of MessageResponse DTOs
func MessagesToResponses(messages []entity.Message) []dto.MessageResponse {
	responses := make([]dto.MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *MessageToResponse(&message)
	}
	return responses
}
