package scope

import "gorm.io/gorm"

// Reusable orderings for queries that don't go through the specification
// pipeline.

func OrderByRecordedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("recorded_at ASC")
}

func OrderByRecordedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("recorded_at DESC")
}
