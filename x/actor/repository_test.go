package actor

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
	alice, err := repo.Create(ctx, core.Actor{
		URI:         "https://local.example.com/user/alice",
		Kind:        core.ActorKindPerson,
		Name:        "alice",
		ServerHost:  "local.example.com",
		DisplayName: "Alice",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, "alice", alice.Name)
		assert.NotZero(t, alice.CDate)
	}

	// test create without uri fails
	_, err = repo.Create(ctx, core.Actor{
		Kind:       core.ActorKindPerson,
		Name:       "nobody",
		ServerHost: "local.example.com",
	})
	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)

	// test the name is taken for the whole host, even across kinds
	_, err = repo.Create(ctx, core.Actor{
		URI:        "https://local.example.com/group/alice",
		Kind:       core.ActorKindGroup,
		Name:       "alice",
		ServerHost: "local.example.com",
	})
	var alreadyExists core.ErrorAlreadyExists
	assert.ErrorAs(t, err, &alreadyExists)

	// test the same name is free on another host
	bob, err := repo.Create(ctx, core.Actor{
		URI:        "https://remote.example.org/user/alice",
		Kind:       core.ActorKindPerson,
		Name:       "alice",
		ServerHost: "remote.example.org",
	})
	assert.NoError(t, err)

	// test get
	fetched, err := repo.Get(ctx, "https://local.example.com/user/alice")
	if assert.NoError(t, err) {
		assert.Equal(t, alice.URI, fetched.URI)
		assert.Equal(t, "Alice", fetched.DisplayName)
	}

	_, err = repo.Get(ctx, "https://local.example.com/user/missing")
	var notFound core.ErrorNotFound
	assert.ErrorAs(t, err, &notFound)

	// test get by name and host
	fetched, err = repo.GetByNameAndHost(ctx, "alice", "remote.example.org")
	if assert.NoError(t, err) {
		assert.Equal(t, bob.URI, fetched.URI)
	}

	_, err = repo.GetByNameAndHost(ctx, "alice", "elsewhere.example.net")
	assert.ErrorAs(t, err, &notFound)

	// test create follow
	follow, err := repo.CreateFollow(ctx, core.Follow{
		ID:          "cmf0b1a2nrk2v0t1qt00",
		URI:         "https://remote.example.org/activity/follow-1",
		FollowerURI: bob.URI,
		TargetURI:   alice.URI,
	})
	if assert.NoError(t, err) {
		assert.Equal(t, bob.URI, follow.FollowerURI)
	}

	// test the follower pair is unique
	_, err = repo.CreateFollow(ctx, core.Follow{
		ID:          "cmf0b1a2nrk2v0t1qt0g",
		URI:         "https://remote.example.org/activity/follow-2",
		FollowerURI: bob.URI,
		TargetURI:   alice.URI,
	})
	assert.ErrorAs(t, err, &alreadyExists)

	carol, err := repo.Create(ctx, core.Actor{
		URI:        "https://local.example.com/user/carol",
		Kind:       core.ActorKindPerson,
		Name:       "carol",
		ServerHost: "local.example.com",
	})
	assert.NoError(t, err)

	_, err = repo.CreateFollow(ctx, core.Follow{
		ID:          "cmf0b1a2nrk2v0t1qt10",
		URI:         "https://local.example.com/activity/cmf0b1a2nrk2v0t1qt10",
		FollowerURI: carol.URI,
		TargetURI:   alice.URI,
	})
	assert.NoError(t, err)

	// test follower listing is ordered oldest first
	follows, err := repo.GetFollows(ctx, alice.URI)
	if assert.NoError(t, err) {
		if assert.Len(t, follows, 2) {
			assert.Equal(t, bob.URI, follows[0].FollowerURI)
			assert.Equal(t, carol.URI, follows[1].FollowerURI)
		}
	}

	following, err := repo.GetFollowing(ctx, carol.URI)
	if assert.NoError(t, err) {
		if assert.Len(t, following, 1) {
			assert.Equal(t, alice.URI, following[0].TargetURI)
		}
	}

	// test count warms the cache on first miss
	_, err = repo.Count(ctx)
	assert.Error(t, err)

	count, err := repo.Count(ctx)
	if assert.NoError(t, err) {
		assert.Equal(t, int64(3), count)
	}
}
