package mapper

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studyhub-be/internal/entity"
	"studyhub-be/internal/model"
)

type NodeMapper struct{}

func NewNodeMapper() *NodeMapper {
	return &NodeMapper{}
}

func (m *NodeMapper) ToEntity(n *model.Node) *entity.Node {
	if n == nil {
		return nil
	}

	var deletedAt *time.Time
	if n.DeletedAt.Valid {
		t := n.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() {
		t := n.UpdatedAt
		updatedAt = &t
	}

	return &entity.Node{
		Id:            n.Id,
		Title:         n.Title,
		Type:          entity.NodeType(n.Type),
		ParentId:      n.ParentId,
		Content:       n.Content,
		ResourceType:  n.ResourceType,
		Tags:          decodeStrings(n.Tags),
		Pinned:        n.Pinned,
		Progress:      n.Progress,
		Prerequisites: decodeUUIDs(n.Prerequisites),
		LastStudied:   n.LastStudied,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     n.DeletedAt.Valid,
	}
}

func (m *NodeMapper) ToModel(n *entity.Node) *model.Node {
	if n == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if n.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *n.DeletedAt, Valid: true}
	} else if n.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	return &model.Node{
		Id:            n.Id,
		Title:         n.Title,
		Type:          string(n.Type),
		ParentId:      n.ParentId,
		Content:       n.Content,
		ResourceType:  n.ResourceType,
		Tags:          encodeStrings(n.Tags),
		Pinned:        n.Pinned,
		Progress:      n.Progress,
		Prerequisites: encodeUUIDs(n.Prerequisites),
		LastStudied:   n.LastStudied,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *NodeMapper) ToEntities(nodes []*model.Node) []*entity.Node {
	entities := make([]*entity.Node, len(nodes))
	for i, n := range nodes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func encodeStrings(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func decodeStrings(raw datatypes.JSON) []string {
	values := []string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	return values
}

func encodeUUIDs(ids []uuid.UUID) datatypes.JSON {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	raw, _ := json.Marshal(ids)
	return datatypes.JSON(raw)
}

func decodeUUIDs(raw datatypes.JSON) []uuid.UUID {
	ids := []uuid.UUID{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &ids)
	}
	return ids
}
