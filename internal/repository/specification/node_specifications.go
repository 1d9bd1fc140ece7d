package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByParentID selects one level of the hierarchy: direct children of the
// given parent, or roots when ParentID is nil.
type ByParentID struct {
	ParentID *uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("parent_id IS NULL")
	}
	return db.Where("parent_id = ?", s.ParentID)
}

// ByNodeType filters by node type (syllabus, folder, file)
type ByNodeType struct {
	Type string
}

func (s ByNodeType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// PinnedFirst orders pinned nodes ahead of the rest, then by creation time.
type PinnedFirst struct{}

func (s PinnedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("pinned DESC").Order("created_at ASC")
}
