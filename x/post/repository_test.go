package post

import (
	"context"
	"log"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
	"github.com/mootfed/moot/internal/testutil"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB
var rdb *redis.Client
var mc *memcache.Client

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	var cleanup_rdb func()
	rdb, cleanup_rdb = testutil.CreateRDB()
	defer cleanup_rdb()

	var cleanup_mc func()
	mc, cleanup_mc = testutil.CreateMC()
	defer cleanup_mc()

	repo = NewRepository(db, rdb, mc)

	m.Run()

	log.Println("Test End")
}

func TestRepository(t *testing.T) {

	// test create
	root, err := repo.Create(ctx, core.Post{
		ID:        "28cbbe38-95c6-4bb5-b2f0-7b15c8649d41",
		URI:       "https://local.example.com/post/28cbbe38-95c6-4bb5-b2f0-7b15c8649d41",
		AuthorURI: "https://local.example.com/user/alice",
		Audience:  []string{"https://local.example.com/group/golang"},
		Content:   "<p>generics are fine actually</p>",
		Source:    "generics are fine actually",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "https://local.example.com/user/alice", root.AuthorURI)
		assert.NotZero(t, root.CDate)
	}

	// test create without uri fails
	_, err = repo.Create(ctx, core.Post{
		ID:        "718d5752-1a4b-4eee-a3b3-e64c3a0e5ad4",
		AuthorURI: "https://local.example.com/user/alice",
		Content:   "<p>never stored</p>",
	})
	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)

	// test create with duplicate uri fails
	_, err = repo.Create(ctx, core.Post{
		ID:        "718d5752-1a4b-4eee-a3b3-e64c3a0e5ad4",
		URI:       "https://local.example.com/post/28cbbe38-95c6-4bb5-b2f0-7b15c8649d41",
		AuthorURI: "https://local.example.com/user/alice",
		Content:   "<p>never stored</p>",
	})
	var alreadyExists core.ErrorAlreadyExists
	assert.ErrorAs(t, err, &alreadyExists)

	// test get
	fetched, err := repo.Get(ctx, root.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, root.URI, fetched.URI)
		assert.Equal(t, "<p>generics are fine actually</p>", fetched.Content)
	}

	_, err = repo.Get(ctx, "b6288b3b-2cd8-42bf-8377-0ee4e4661a39")
	var notFound core.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)

	fetched, err = repo.GetByURI(ctx, root.URI)
	if assert.NoError(t, err) {
		assert.Equal(t, root.ID, fetched.ID)
	}

	_, err = repo.GetByURI(ctx, "https://local.example.com/post/missing")
	assert.ErrorAs(t, err, &notFound)

	// test a reply created without an audience can still accumulate one
	reply, err := repo.Create(ctx, core.Post{
		ID:        "4a1ff287-6f13-44f4-bc23-81524f94ff9d",
		URI:       "https://remote.example.org/post/4a1ff287",
		AuthorURI: "https://remote.example.org/user/bob",
		ParentURI: root.URI,
		Content:   "<p>hard disagree</p>",
	})
	assert.NoError(t, err)

	err = repo.AppendAudience(ctx, reply.ID, "https://local.example.com/group/golang")
	assert.NoError(t, err)

	fetched, err = repo.Get(ctx, reply.ID)
	if assert.NoError(t, err) {
		assert.Len(t, fetched.Audience, 1)
	}

	// test audience append is idempotent
	err = repo.AppendAudience(ctx, root.ID, "https://local.example.com/group/rustlang")
	assert.NoError(t, err)

	err = repo.AppendAudience(ctx, root.ID, "https://local.example.com/group/rustlang")
	assert.NoError(t, err)

	fetched, err = repo.Get(ctx, root.ID)
	if assert.NoError(t, err) {
		if assert.Len(t, fetched.Audience, 2) {
			assert.Contains(t, fetched.Audience, "https://local.example.com/group/rustlang")
		}
	}

	// test children listing is ordered oldest first
	second, err := repo.Create(ctx, core.Post{
		ID:        "e9dbc9a1-60b8-4c0b-9270-9e7cbbd9a465",
		URI:       "https://local.example.com/post/e9dbc9a1-60b8-4c0b-9270-9e7cbbd9a465",
		AuthorURI: "https://local.example.com/user/alice",
		ParentURI: root.URI,
		Content:   "<p>replying to myself</p>",
	})
	assert.NoError(t, err)

	children, err := repo.GetChildren(ctx, []string{root.URI})
	if assert.NoError(t, err) {
		if assert.Len(t, children, 2) {
			assert.Equal(t, reply.ID, children[0].ID)
			assert.Equal(t, second.ID, children[1].ID)
		}
	}

	// test author listing skips nothing yet
	authored, err := repo.GetByAuthor(ctx, "https://local.example.com/user/alice")
	if assert.NoError(t, err) {
		assert.Len(t, authored, 2)
	}

	// test delete leaves a tombstone
	tombstone, err := repo.Delete(ctx, reply.ID)
	if assert.NoError(t, err) {
		assert.True(t, tombstone.Deleted)
		assert.Empty(t, tombstone.Content)
		assert.Empty(t, tombstone.Source)
	}

	_, err = repo.Delete(ctx, "b6288b3b-2cd8-42bf-8377-0ee4e4661a39")
	assert.ErrorAs(t, err, &notFound)

	// the row survives so the uri stays claimed and replies keep their parent
	fetched, err = repo.Get(ctx, reply.ID)
	if assert.NoError(t, err) {
		assert.True(t, fetched.Deleted)
		assert.Empty(t, fetched.Content)
		assert.Equal(t, root.URI, fetched.ParentURI)
	}

	children, err = repo.GetChildren(ctx, []string{root.URI})
	if assert.NoError(t, err) {
		assert.Len(t, children, 2)
	}

	// test author listing excludes tombstones
	authored, err = repo.GetByAuthor(ctx, "https://remote.example.org/user/bob")
	if assert.NoError(t, err) {
		assert.Len(t, authored, 0)
	}

	// test create like
	like, err := repo.CreateLike(ctx, core.Like{
		ID:       "cmf0c2q2nrk2v0t1qt20",
		URI:      "https://remote.example.org/activity/like-1",
		ActorURI: "https://remote.example.org/user/bob",
		PostURI:  root.URI,
	})
	if assert.NoError(t, err) {
		assert.Equal(t, root.URI, like.PostURI)
	}

	// test the actor/post pair is unique
	_, err = repo.CreateLike(ctx, core.Like{
		ID:       "cmf0c2q2nrk2v0t1qt2g",
		URI:      "https://remote.example.org/activity/like-2",
		ActorURI: "https://remote.example.org/user/bob",
		PostURI:  root.URI,
	})
	assert.ErrorAs(t, err, &alreadyExists)

	_, err = repo.CreateLike(ctx, core.Like{
		ID:       "cmf0c2q2nrk2v0t1qt30",
		URI:      "https://local.example.com/activity/cmf0c2q2nrk2v0t1qt30",
		ActorURI: "https://local.example.com/user/carol",
		PostURI:  root.URI,
	})
	assert.NoError(t, err)

	// test like listings are ordered oldest first
	likes, err := repo.GetLikesByPost(ctx, root.URI)
	if assert.NoError(t, err) {
		if assert.Len(t, likes, 2) {
			assert.Equal(t, "https://remote.example.org/user/bob", likes[0].ActorURI)
			assert.Equal(t, "https://local.example.com/user/carol", likes[1].ActorURI)
		}
	}

	likes, err = repo.GetLikesByActor(ctx, "https://local.example.com/user/carol")
	if assert.NoError(t, err) {
		assert.Len(t, likes, 1)
	}

	// test publish event reaches redis
	err = repo.PublishEvent(ctx, core.Event{
		Timeline: "https://local.example.com/group/golang",
		Type:     "post.create",
		Resource: root,
	})
	assert.NoError(t, err)

	// test count warms the cache on first miss and skips tombstones
	_, err = repo.Count(ctx)
	assert.Error(t, err)

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}
}
