package activity

import (
	"context"
	"log"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mootfed/moot/core"
	"github.com/mootfed/moot/internal/testutil"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB
var mc *memcache.Client

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	var cleanup_mc func()
	mc, cleanup_mc = testutil.CreateMC()
	defer cleanup_mc()

	repo = NewRepository(db, mc)

	m.Run()

	log.Println("Test End")
}

func TestRepository(t *testing.T) {

	// test create
	created, err := repo.Create(ctx, core.Activity{
		ID:        "cmf0a5m2nrk2v0t1qsh0",
		URI:       "https://local.example.com/activity/cmf0a5m2nrk2v0t1qsh0",
		Type:      "Create",
		ActorURI:  "https://local.example.com/user/alice",
		ObjectURI: "https://local.example.com/post/28cbbe38-95c6-4bb5-b2f0-7b15c8649d41",
		Document:  `{"type":"Create"}`,
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "Create", created.Type)
		assert.NotZero(t, created.CDate)
	}

	// test create without uri fails
	_, err = repo.Create(ctx, core.Activity{
		ID:       "cmf0a5m2nrk2v0t1qshg",
		Type:     "Create",
		ActorURI: "https://local.example.com/user/alice",
	})
	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)

	// test create with duplicate uri fails
	_, err = repo.Create(ctx, core.Activity{
		ID:       "cmf0a5m2nrk2v0t1qshg",
		URI:      "https://local.example.com/activity/cmf0a5m2nrk2v0t1qsh0",
		Type:     "Create",
		ActorURI: "https://local.example.com/user/alice",
		Document: `{"type":"Create"}`,
	})
	var alreadyExists core.ErrorAlreadyExists
	assert.ErrorAs(t, err, &alreadyExists)

	// test get by uri
	fetched, err := repo.GetByURI(ctx, "https://local.example.com/activity/cmf0a5m2nrk2v0t1qsh0")
	if assert.NoError(t, err) {
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, `{"type":"Create"}`, fetched.Document)
		assert.Len(t, fetched.Destinations, 0)
	}

	// test get by unknown uri
	_, err = repo.GetByURI(ctx, "https://local.example.com/activity/missing")
	var notFound core.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)

	// test update document
	err = repo.UpdateDocument(ctx, created.ID, `{"type":"Create","audience":["https://local.example.com/group/golang"]}`)
	assert.NoError(t, err)

	fetched, err = repo.GetByURI(ctx, "https://local.example.com/activity/cmf0a5m2nrk2v0t1qsh0")
	if assert.NoError(t, err) {
		assert.Equal(t, `{"type":"Create","audience":["https://local.example.com/group/golang"]}`, fetched.Document)
	}

	// test destination set accumulates without duplicates
	appended, err := repo.AddDestination(ctx, created.ID, "https://local.example.com/user/carol")
	if assert.NoError(t, err) {
		assert.True(t, appended)
	}

	appended, err = repo.AddDestination(ctx, created.ID, "https://local.example.com/user/carol")
	if assert.NoError(t, err) {
		assert.False(t, appended)
	}

	appended, err = repo.AddDestination(ctx, created.ID, "https://remote.example.org/user/bob")
	if assert.NoError(t, err) {
		assert.True(t, appended)
	}

	fetched, err = repo.GetByURI(ctx, "https://local.example.com/activity/cmf0a5m2nrk2v0t1qsh0")
	if assert.NoError(t, err) {
		assert.Len(t, fetched.Destinations, 2)
	}

	// test list by actor is ordered oldest first
	second, err := repo.Create(ctx, core.Activity{
		ID:        "cmf0a5m2nrk2v0t1qsi0",
		URI:       "https://local.example.com/activity/cmf0a5m2nrk2v0t1qsi0",
		Type:      "Like",
		ActorURI:  "https://local.example.com/user/alice",
		ObjectURI: "https://remote.example.org/post/1",
		Document:  `{"type":"Like"}`,
	})
	assert.NoError(t, err)

	issued, err := repo.ListByActor(ctx, "https://local.example.com/user/alice")
	if assert.NoError(t, err) {
		if assert.Len(t, issued, 2) {
			assert.Equal(t, created.ID, issued[0].ID)
			assert.Equal(t, second.ID, issued[1].ID)
		}
	}

	// test list by destination follows the destination set
	received, err := repo.ListByDestination(ctx, "https://local.example.com/user/carol")
	if assert.NoError(t, err) {
		if assert.Len(t, received, 1) {
			assert.Equal(t, created.ID, received[0].ID)
		}
	}

	appended, err = repo.AddDestination(ctx, second.ID, "https://local.example.com/user/carol")
	if assert.NoError(t, err) {
		assert.True(t, appended)
	}

	received, err = repo.ListByDestination(ctx, "https://local.example.com/user/carol")
	if assert.NoError(t, err) {
		if assert.Len(t, received, 2) {
			assert.Equal(t, created.ID, received[0].ID)
			assert.Equal(t, second.ID, received[1].ID)
		}
	}

	// test count warms the cache on first miss
	_, err = repo.Count(ctx)
	assert.Error(t, err)

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(2), count)
	}
}
