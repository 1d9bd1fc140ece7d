package specification

import "gorm.io/gorm"

// ByTopicKey selects documents attached to a legacy topic id.
type ByTopicKey struct {
	TopicId string
}

func (s ByTopicKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicId)
}
