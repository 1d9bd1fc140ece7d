package unitofwork

import (
	"context"

	"studyhub-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one logical operation. Begin
// switches the accessors onto a shared transaction so multi-step mutations
// (the cascade delete in particular) commit or roll back as one.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	NodeRepository() contract.NodeRepository
	QuestionRepository() contract.QuestionRepository
	DocumentRepository() contract.DocumentRepository
	ActivityRepository() contract.ActivityRepository
}
