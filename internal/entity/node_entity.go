package entity

import (
	"time"

	"github.com/google/uuid"
)

type NodeType string

const (
	NodeTypeSyllabus NodeType = "syllabus"
	NodeTypeFolder   NodeType = "folder"
	NodeTypeFile     NodeType = "file"
)

// IsContainer reports whether the type may hold children.
func (t NodeType) IsContainer() bool {
	return t == NodeTypeSyllabus || t == NodeTypeFolder
}

func (t NodeType) Valid() bool {
	return t == NodeTypeSyllabus || t == NodeTypeFolder || t == NodeTypeFile
}

type Node struct {
	Id            uuid.UUID
	Title         string
	Type          NodeType
	ParentId      *uuid.UUID
	Content       string
	ResourceType  string
	Tags          []string
	Pinned        bool
	Progress      int
	Prerequisites []uuid.UUID
	LastStudied   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
