//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package post

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
)

// Repository is the interface for post persistence
type Repository interface {
	Create(ctx context.Context, post core.Post) (core.Post, error)
	Get(ctx context.Context, id string) (core.Post, error)
	GetByURI(ctx context.Context, uri string) (core.Post, error)
	Delete(ctx context.Context, id string) (core.Post, error)
	AppendAudience(ctx context.Context, id, groupURI string) error
	GetChildren(ctx context.Context, parentURIs []string) ([]core.Post, error)
	GetByAuthor(ctx context.Context, authorURI string) ([]core.Post, error)
	Count(ctx context.Context) (int64, error)

	CreateLike(ctx context.Context, like core.Like) (core.Like, error)
	GetLikesByPost(ctx context.Context, postURI string) ([]core.Like, error)
	GetLikesByActor(ctx context.Context, actorURI string) ([]core.Like, error)

	PublishEvent(ctx context.Context, event core.Event) error
}

type repository struct {
	db  *gorm.DB
	rdb *redis.Client
	mc  *memcache.Client
}

// NewRepository creates a new post repository
func NewRepository(db *gorm.DB, rdb *redis.Client, mc *memcache.Client) Repository {
	return &repository{db, rdb, mc}
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Post{}).Where("deleted = ?", false).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count posts",
			slog.String("error", err.Error()),
		)
	}

	r.mc.Set(&memcache.Item{Key: "post_count", Value: []byte(strconv.FormatInt(count, 10))})
}

// Create persists a new post. The URI must already be frozen.
func (r *repository) Create(ctx context.Context, post core.Post) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Create")
	defer span.End()

	if post.URI == "" {
		return core.Post{}, core.NewErrorBadRequest("post uri is empty")
	}

	err := r.db.WithContext(ctx).Create(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Post{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Post{}, errors.Wrap(err, "failed to create post")
	}

	r.mc.Increment("post_count", 1)

	return post, nil
}

// Get returns a post by ID. Tombstones are returned as-is.
func (r *repository) Get(ctx context.Context, id string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Get")
	defer span.End()

	var post core.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Post{}, err
	}
	return post, nil
}

// GetByURI returns a post by its URI. Tombstones are returned as-is.
func (r *repository) GetByURI(ctx context.Context, uri string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.GetByURI")
	defer span.End()

	var post core.Post
	err := r.db.WithContext(ctx).First(&post, "uri = ?", uri).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Post{}, err
	}
	return post, nil
}

// Delete turns a post into a tombstone. The row is kept so the URI
// stays claimed and replies keep their parent.
func (r *repository) Delete(ctx context.Context, id string) (core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Delete")
	defer span.End()

	var deleted core.Post
	err := r.db.WithContext(ctx).First(&deleted, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Post{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Post{}, err
	}

	err = r.db.WithContext(ctx).Model(&deleted).
		Updates(map[string]interface{}{"deleted": true, "content": "", "source": ""}).Error
	if err != nil {
		span.RecordError(err)
		return core.Post{}, err
	}

	r.mc.Decrement("post_count", 1)

	deleted.Deleted = true
	deleted.Content = ""
	deleted.Source = ""
	return deleted, nil
}

// AppendAudience adds a group to a post's audience. Append only, and a
// group already present is left alone.
func (r *repository) AppendAudience(ctx context.Context, id, groupURI string) error {
	ctx, span := tracer.Start(ctx, "Post.Repository.AppendAudience")
	defer span.End()

	err := r.db.WithContext(ctx).Exec(
		"UPDATE posts SET audience = array_append(COALESCE(audience, '{}'), ?) WHERE id = ? AND NOT (COALESCE(audience, '{}') @> ARRAY[?]::text[])",
		groupURI, id, groupURI,
	).Error
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// GetChildren returns the direct replies of the given posts, oldest first
func (r *repository) GetChildren(ctx context.Context, parentURIs []string) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.GetChildren")
	defer span.End()

	var posts []core.Post
	err := r.db.WithContext(ctx).
		Where("parent_uri IN ?", parentURIs).
		Order("c_date").
		Find(&posts).Error
	return posts, err
}

// GetByAuthor returns all live posts by an author, oldest first
func (r *repository) GetByAuthor(ctx context.Context, authorURI string) ([]core.Post, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.GetByAuthor")
	defer span.End()

	var posts []core.Post
	err := r.db.WithContext(ctx).
		Where("author_uri = ? AND deleted = ?", authorURI, false).
		Order("c_date").
		Find(&posts).Error
	return posts, err
}

// Count returns the number of live posts
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.Count")
	defer span.End()

	item, err := r.mc.Get("post_count")
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

// CreateLike persists a like. The actor/post pair is unique so liking
// twice reports ErrorAlreadyExists.
func (r *repository) CreateLike(ctx context.Context, like core.Like) (core.Like, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.CreateLike")
	defer span.End()

	err := r.db.WithContext(ctx).Create(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Like{}, core.NewErrorAlreadyExists()
		}
		span.RecordError(err)
		return core.Like{}, errors.Wrap(err, "failed to create like")
	}

	return like, nil
}

// GetLikesByPost returns the likes on a post, oldest first
func (r *repository) GetLikesByPost(ctx context.Context, postURI string) ([]core.Like, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.GetLikesByPost")
	defer span.End()

	var likes []core.Like
	err := r.db.WithContext(ctx).
		Where("post_uri = ?", postURI).
		Order("c_date").
		Find(&likes).Error
	return likes, err
}

// GetLikesByActor returns the likes an actor has given, oldest first
func (r *repository) GetLikesByActor(ctx context.Context, actorURI string) ([]core.Like, error) {
	ctx, span := tracer.Start(ctx, "Post.Repository.GetLikesByActor")
	defer span.End()

	var likes []core.Like
	err := r.db.WithContext(ctx).
		Where("actor_uri = ?", actorURI).
		Order("c_date").
		Find(&likes).Error
	return likes, err
}

// PublishEvent notifies local subscribers over Redis
func (r *repository) PublishEvent(ctx context.Context, event core.Event) error {
	ctx, span := tracer.Start(ctx, "Post.Repository.PublishEvent")
	defer span.End()

	jsonstr, _ := json.Marshal(event)

	err := r.rdb.Publish(context.Background(), event.Timeline, jsonstr).Err()
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(
			ctx, "fail to publish message to Redis",
			slog.String("error", err.Error()),
			slog.String("module", "post"),
		)
	}

	return nil
}
