//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package actor

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
)

// Repository is the interface for actor repository
type Repository interface {
	Get(ctx context.Context, uri string) (core.Actor, error)
	GetByNameAndHost(ctx context.Context, name, host string) (core.Actor, error)
	Create(ctx context.Context, actor core.Actor) (core.Actor, error)
	Count(ctx context.Context) (int64, error)

	CreateFollow(ctx context.Context, follow core.Follow) (core.Follow, error)
	GetFollows(ctx context.Context, targetURI string) ([]core.Follow, error)
	GetFollowing(ctx context.Context, followerURI string) ([]core.Follow, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new actor repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Actor{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count actors",
			slog.String("error", err.Error()),
		)
	}

	r.mc.Set(&memcache.Item{Key: "actor_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Get returns an actor by its URI
func (r *repository) Get(ctx context.Context, uri string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.Get")
	defer span.End()

	var actor core.Actor
	err := r.db.WithContext(ctx).First(&actor, "uri = ?", uri).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Actor{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Actor{}, err
	}
	return actor, nil
}

// GetByNameAndHost returns an actor by its name on a given server
func (r *repository) GetByNameAndHost(ctx context.Context, name, host string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.GetByNameAndHost")
	defer span.End()

	var actor core.Actor
	err := r.db.WithContext(ctx).First(&actor, "name = ? AND server_host = ?", name, host).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Actor{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Actor{}, err
	}
	return actor, nil
}

// Create persists a new actor. The URI must already be frozen.
func (r *repository) Create(ctx context.Context, actor core.Actor) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.Create")
	defer span.End()

	if actor.URI == "" {
		return core.Actor{}, core.NewErrorBadRequest("actor uri is empty")
	}

	err := r.db.WithContext(ctx).Create(&actor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Actor{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Actor{}, errors.Wrap(err, "failed to create actor")
	}

	r.mc.Increment("actor_count", 1)

	return actor, nil
}

// Count returns the number of known actors
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("actor_count")
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, memcache.ErrCacheMiss) {
			r.setCurrentCount()
			return 0, errors.Wrap(err, "trying to fix...")
		}

		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

// CreateFollow persists a follower relation. The pair is unique so a
// duplicate follow reports ErrorAlreadyExists.
func (r *repository) CreateFollow(ctx context.Context, follow core.Follow) (core.Follow, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.CreateFollow")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Follow{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Follow{}, errors.Wrap(err, "failed to create follow")
	}

	return follow, nil
}

// GetFollows returns the relations following the target, oldest first
func (r *repository) GetFollows(ctx context.Context, targetURI string) ([]core.Follow, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.GetFollows")
	defer span.End()

	var follows []core.Follow
	err := r.db.WithContext(ctx).
		Where("target_uri = ?", targetURI).
		Order("c_date").
		Find(&follows).Error
	return follows, err
}

// GetFollowing returns the relations originated by the follower, oldest first
func (r *repository) GetFollowing(ctx context.Context, followerURI string) ([]core.Follow, error) {
	ctx, span := tracer.Start(ctx, "Actor.Repository.GetFollowing")
	defer span.End()

	var follows []core.Follow
	err := r.db.WithContext(ctx).
		Where("follower_uri = ?", followerURI).
		Order("c_date").
		Find(&follows).Error
	return follows, err
}
