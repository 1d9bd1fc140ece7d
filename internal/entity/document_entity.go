package entity

import (
	"time"

	"github.com/google/uuid"
)

type DocumentKind string

const (
	DocumentKindNote   DocumentKind = "note"
	DocumentKindAiNote DocumentKind = "aiNote"
)

// Document is a free-standing note attached to a legacy topic key.
// It does not participate in the node hierarchy.
type Document struct {
	Id        uuid.UUID
	TopicId   string
	Title     string
	Content   string
	Kind      DocumentKind
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
