package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNodeRequest struct {
	Title         string      `json:"title" validate:"required"`
	Type          string      `json:"type" validate:"required,oneof=syllabus folder file"`
	ParentId      *uuid.UUID  `json:"parent_id"`
	Content       string      `json:"content"`
	ResourceType  string      `json:"resource_type" validate:"omitempty,oneof=fileAnalysis"`
	Tags          []string    `json:"tags"`
	Pinned        bool        `json:"pinned"`
	Prerequisites []uuid.UUID `json:"prerequisites"`
}

type CreateNodeResponse struct {
	Id uuid.UUID `json:"id"`
}

type NodeResponse struct {
	Id            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Type          string      `json:"type"`
	ParentId      *uuid.UUID  `json:"parent_id"`
	Content       string      `json:"content,omitempty"`
	ResourceType  string      `json:"resource_type,omitempty"`
	Tags          []string    `json:"tags"`
	Pinned        bool        `json:"pinned"`
	Progress      int         `json:"progress"`
	Prerequisites []uuid.UUID `json:"prerequisites"`
	LastStudied   *time.Time  `json:"last_studied"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at"`
}

// NodeTreeResponse is a NodeResponse with the derived children attached.
// Progress on container nodes is the derived mean, never a stored value.
type NodeTreeResponse struct {
	NodeResponse
	Children []*NodeTreeResponse `json:"children"`
}

// UpdateNodeRequest carries a partial merge: nil pointers leave the existing
// field untouched.
type UpdateNodeRequest struct {
	Id            uuid.UUID
	Title         *string      `json:"title" validate:"omitempty,min=1"`
	Content       *string      `json:"content"`
	ResourceType  *string      `json:"resource_type" validate:"omitempty,oneof=fileAnalysis"`
	Tags          *[]string    `json:"tags"`
	Pinned        *bool        `json:"pinned"`
	Progress      *int         `json:"progress" validate:"omitempty,min=0,max=100"`
	Prerequisites *[]uuid.UUID `json:"prerequisites"`
}

type UpdateNodeResponse struct {
	Id uuid.UUID `json:"id"`
}

type MoveNodeRequest struct {
	Id       uuid.UUID
	ParentId *uuid.UUID `json:"parent_id"`
}

type MoveNodeResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateNodeProgressRequest struct {
	Id       uuid.UUID
	Progress int `json:"progress" validate:"min=0,max=100"`
}

type UpdateNodeProgressResponse struct {
	Id       uuid.UUID `json:"id"`
	Progress int       `json:"progress"`
}
