//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package auth

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
)

// Repository is the interface for account persistence
type Repository interface {
	CreateAccount(ctx context.Context, account core.Account) (core.Account, error)
	GetAccount(ctx context.Context, actorURI string) (core.Account, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new auth repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// CreateAccount stores the credentials of a local actor
func (r *repository) CreateAccount(ctx context.Context, account core.Account) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Auth.Repository.CreateAccount")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Account{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Account{}, err
	}

	return account, nil
}

// GetAccount returns the credentials stored for an actor
func (r *repository) GetAccount(ctx context.Context, actorURI string) (core.Account, error) {
	ctx, span := tracer.Start(ctx, "Auth.Repository.GetAccount")
	defer span.End()

	var account core.Account
	err := r.db.WithContext(ctx).First(&account, "actor_uri = ?", actorURI).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Account{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Account{}, err
	}

	return account, nil
}
