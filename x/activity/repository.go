//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package activity

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
)

// Repository is the interface for activity persistence
type Repository interface {
	GetByURI(ctx context.Context, uri string) (core.Activity, error)
	Create(ctx context.Context, activity core.Activity) (core.Activity, error)
	UpdateDocument(ctx context.Context, id, document string) error
	AddDestination(ctx context.Context, activityID, actorURI string) (bool, error)
	ListByActor(ctx context.Context, actorURI string) ([]core.Activity, error)
	ListByDestination(ctx context.Context, actorURI string) ([]core.Activity, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new activity repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	return &repository{db, mc}
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Activity{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count activities",
			slog.String("error", err.Error()),
		)
	}

	r.mc.Set(&memcache.Item{Key: "activity_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// GetByURI returns an activity by its federation-wide URI, with its
// accumulated destinations
func (r *repository) GetByURI(ctx context.Context, uri string) (core.Activity, error) {
	ctx, span := tracer.Start(ctx, "Activity.Repository.GetByURI")
	defer span.End()

	var activity core.Activity
	err := r.db.WithContext(ctx).Preload("Destinations").First(&activity, "uri = ?", uri).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Activity{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Activity{}, err
	}
	return activity, nil
}

// Create persists a new activity. The URI is unique so concurrent delivery
// of the same activity leaves exactly one row; the loser of the race gets
// ErrorAlreadyExists and should re-read.
func (r *repository) Create(ctx context.Context, activity core.Activity) (core.Activity, error) {
	ctx, span := tracer.Start(ctx, "Activity.Repository.Create")
	defer span.End()

	if activity.URI == "" {
		return core.Activity{}, core.NewErrorBadRequest("activity uri is empty")
	}

	err := r.db.WithContext(ctx).Create(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Activity{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Activity{}, errors.Wrap(err, "failed to create activity")
	}

	r.mc.Increment("activity_count", 1)

	return activity, nil
}

// UpdateDocument rewrites the stored payload. Only the audience annotation
// legitimately changes after delivery; everything else is immutable.
func (r *repository) UpdateDocument(ctx context.Context, id, document string) error {
	ctx, span := tracer.Start(ctx, "Activity.Repository.UpdateDocument")
	defer span.End()

	err := r.db.WithContext(ctx).
		Model(&core.Activity{}).
		Where("id = ?", id).
		Update("document", document).Error
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// AddDestination appends an actor to the activity's destination set.
// Returns false when the actor was already in the set.
func (r *repository) AddDestination(ctx context.Context, activityID, actorURI string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Activity.Repository.AddDestination")
	defer span.End()

	destination := core.ActivityDestination{
		ActivityID: activityID,
		ActorURI:   actorURI,
	}

	err := r.db.WithContext(ctx).Create(&destination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		span.RecordError(err)
		return false, errors.Wrap(err, "failed to add destination")
	}

	return true, nil
}

// ListByActor returns the activities an actor issued, oldest first
func (r *repository) ListByActor(ctx context.Context, actorURI string) ([]core.Activity, error) {
	ctx, span := tracer.Start(ctx, "Activity.Repository.ListByActor")
	defer span.End()

	var activities []core.Activity
	err := r.db.WithContext(ctx).
		Where("actor_uri = ?", actorURI).
		Order("c_date").
		Find(&activities).Error
	return activities, err
}

// ListByDestination returns the activities addressed to an actor, oldest first
func (r *repository) ListByDestination(ctx context.Context, actorURI string) ([]core.Activity, error) {
	ctx, span := tracer.Start(ctx, "Activity.Repository.ListByDestination")
	defer span.End()

	var activities []core.Activity
	err := r.db.WithContext(ctx).
		Joins("JOIN activity_destinations ON activity_destinations.activity_id = activities.id").
		Where("activity_destinations.actor_uri = ?", actorURI).
		Order("activities.c_date").
		Find(&activities).Error
	return activities, err
}

// Count returns the number of stored activities
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Activity.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("activity_count")
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
