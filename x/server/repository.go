//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package server

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
)

// Repository is the interface for server repository
type Repository interface {
	GetByHost(ctx context.Context, host string) (core.Server, error)
	Create(ctx context.Context, server core.Server) (core.Server, error)
	GetList(ctx context.Context) ([]core.Server, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new server repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByHost returns a server by hostname
func (r *repository) GetByHost(ctx context.Context, host string) (core.Server, error) {
	ctx, span := tracer.Start(ctx, "Server.Repository.GetByHost")
	defer span.End()

	var server core.Server
	err := r.db.WithContext(ctx).First(&server, "host = ?", host).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Server{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Server{}, err
	}
	return server, nil
}

// Create persists a new server row
func (r *repository) Create(ctx context.Context, server core.Server) (core.Server, error) {
	ctx, span := tracer.Start(ctx, "Server.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&server).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Server{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Server{}, err
	}
	return server, nil
}

// GetList returns all known servers
func (r *repository) GetList(ctx context.Context) ([]core.Server, error) {
	ctx, span := tracer.Start(ctx, "Server.Repository.GetList")
	defer span.End()

	var servers []core.Server
	err := r.db.WithContext(ctx).Order("c_date").Find(&servers).Error
	return servers, err
}

// Count returns the number of known servers
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Server.Repository.Count")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Server{}).Count(&count).Error
	return count, err
}
