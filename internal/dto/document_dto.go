package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	TopicId string `json:"topic_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Kind    string `json:"kind" validate:"omitempty,oneof=note aiNote"`
}

type CreateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type DocumentResponse struct {
	Id        uuid.UUID  `json:"id"`
	TopicId   string     `json:"topic_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Kind      string     `json:"kind"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateDocumentRequest struct {
	Id      uuid.UUID
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content"`
}

type UpdateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}
