package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id" validate:"required"`
	Body       string    `json:"body" validate:"required,max=4000"`
}

// Response DTOs

type MessageResponse struct {
	ID           uuid.UUID `json:"id"`
	SenderID     uuid.UUID `json:"sender_id"`
	SenderName   string    `json:"sender_name,omitempty"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	ReceiverName string    `json:"receiver_name,omitempty"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}

type ConversationResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}
