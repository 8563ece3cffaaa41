package actor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mootfed/moot/core"
	"github.com/mootfed/moot/core/mock"
	"github.com/mootfed/moot/x/actor/mock"
)

func newTestConfig() core.Config {
	return core.SetupConfig(core.ConfigInput{
		Scheme: "https",
		FQDN:   "local.example.com",
	})
}

func TestCreateLocalUserDerivesURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	localServer := core.Server{Host: "local.example.com", Scheme: "https"}

	mockServer := mock_core.NewMockServerService(ctrl)
	mockServer.EXPECT().
		FindOrCreate(gomock.Any(), "https", "local.example.com", 0).
		Return(localServer, nil)

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor core.Actor) (core.Actor, error) {
			return actor, nil
		})

	service := NewService(mockRepo, mockServer, newTestConfig())

	created, err := service.CreateLocalUser(context.Background(), "alice", "Alice", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "https://local.example.com/user/alice", created.URI)
	assert.Equal(t, core.ActorKindPerson, created.Kind)
}

func TestCreateLocalGroupElidesDefaultPort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	config := core.SetupConfig(core.ConfigInput{Scheme: "http", FQDN: "local.example.com", Port: 8000})

	mockServer := mock_core.NewMockServerService(ctrl)
	mockServer.EXPECT().
		FindOrCreate(gomock.Any(), "http", "local.example.com", 8000).
		Return(core.Server{Host: "local.example.com", Scheme: "http", Port: 8000}, nil)

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor core.Actor) (core.Actor, error) {
			return actor, nil
		})

	service := NewService(mockRepo, mockServer, config)

	created, err := service.CreateLocalGroup(context.Background(), "golang", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "http://local.example.com:8000/group/golang", created.URI)
	assert.Equal(t, "golang", created.DisplayName)
}

func TestResolveLocalIdentityIsStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := core.Actor{
		URI:        "https://local.example.com/user/alice",
		Kind:       core.ActorKindPerson,
		Name:       "alice",
		ServerHost: "local.example.com",
	}

	mockServer := mock_core.NewMockServerService(ctrl)
	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNameAndHost(gomock.Any(), "alice", "local.example.com").
		Return(stored, nil).
		Times(2)

	service := NewService(mockRepo, mockServer, newTestConfig())

	first, err := service.ResolveLocal(context.Background(), core.ActorKindPerson, "alice")
	assert.NoError(t, err)
	second, err := service.ResolveLocal(context.Background(), core.ActorKindPerson, "alice")
	assert.NoError(t, err)
	assert.Equal(t, first.URI, second.URI)
}

func TestResolveLocalKindMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServer := mock_core.NewMockServerService(ctrl)
	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNameAndHost(gomock.Any(), "alice", "local.example.com").
		Return(core.Actor{Kind: core.ActorKindPerson, Name: "alice"}, nil)

	service := NewService(mockRepo, mockServer, newTestConfig())

	_, err := service.ResolveLocal(context.Background(), core.ActorKindGroup, "alice")
	assert.ErrorIs(t, err, core.ErrorNotFound{})
}

func TestFindOrCreateRemoteCreatesShadow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remoteServer := core.Server{Host: "remote.example.com", Scheme: "https"}

	mockServer := mock_core.NewMockServerService(ctrl)
	mockServer.EXPECT().
		FindOrCreate(gomock.Any(), "https", "remote.example.com", 0).
		Return(remoteServer, nil).
		Times(2)

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNameAndHost(gomock.Any(), "bob", "remote.example.com").
		Return(core.Actor{}, core.NewErrorNotFound())
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor core.Actor) (core.Actor, error) {
			return actor, nil
		})

	service := NewService(mockRepo, mockServer, newTestConfig())

	shadow, err := service.FindOrCreateRemote(context.Background(), core.Actor{
		Kind:       core.ActorKindPerson,
		Name:       "bob",
		ServerHost: "remote.example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://remote.example.com/user/bob", shadow.URI)
	assert.Equal(t, "bob", shadow.DisplayName)
	assert.Empty(t, shadow.Summary)
	assert.Empty(t, shadow.IconURL)
}

func TestFindOrCreateRemoteKeepsSuppliedURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServer := mock_core.NewMockServerService(ctrl)
	mockServer.EXPECT().
		FindOrCreate(gomock.Any(), "https", "remote.example.com", 0).
		Return(core.Server{Host: "remote.example.com", Scheme: "https"}, nil).
		Times(2)

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNameAndHost(gomock.Any(), "bob", "remote.example.com").
		Return(core.Actor{}, core.NewErrorNotFound())
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, actor core.Actor) (core.Actor, error) {
			return actor, nil
		})

	service := NewService(mockRepo, mockServer, newTestConfig())

	shadow, err := service.FindOrCreateRemote(context.Background(), core.Actor{
		URI:        "https://remote.example.com/user/bob",
		Kind:       core.ActorKindPerson,
		Name:       "bob",
		ServerHost: "remote.example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://remote.example.com/user/bob", shadow.URI)
}

func TestFindOrCreateRemoteReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := core.Actor{
		URI:        "https://remote.example.com/user/bob",
		Kind:       core.ActorKindPerson,
		Name:       "bob",
		ServerHost: "remote.example.com",
	}

	mockServer := mock_core.NewMockServerService(ctrl)
	mockServer.EXPECT().
		FindOrCreate(gomock.Any(), "https", "remote.example.com", 0).
		Return(core.Server{Host: "remote.example.com", Scheme: "https"}, nil)

	mockRepo := mock_actor.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNameAndHost(gomock.Any(), "bob", "remote.example.com").
		Return(existing, nil)

	service := NewService(mockRepo, mockServer, newTestConfig())

	resolved, err := service.FindOrCreateRemote(context.Background(), core.Actor{
		Kind:       core.ActorKindPerson,
		Name:       "bob",
		ServerHost: "remote.example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, existing, resolved)
}

func TestAddFollowerIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groupURI := "https://local.example.com/group/golang"
	followerURI := "https://remote.example.com/user/bob"

	mockServer := mock_core.NewMockServerService(ctrl)
	mockRepo := mock_actor.NewMockRepository(ctrl)
	first := mockRepo.EXPECT().
		CreateFollow(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, follow core.Follow) (core.Follow, error) {
			assert.Equal(t, followerURI, follow.FollowerURI)
			assert.Equal(t, groupURI, follow.TargetURI)
			return follow, nil
		})
	mockRepo.EXPECT().
		CreateFollow(gomock.Any(), gomock.Any()).
		Return(core.Follow{}, core.NewErrorAlreadyExists()).
		After(first)

	service := NewService(mockRepo, mockServer, newTestConfig())

	added, err := service.AddFollower(context.Background(), groupURI, followerURI, "https://remote.example.com/activity/1")
	assert.NoError(t, err)
	assert.True(t, added)

	added, err = service.AddFollower(context.Background(), groupURI, followerURI, "https://remote.example.com/activity/1")
	assert.NoError(t, err)
	assert.False(t, added)
}

func TestResolveActorURIRejectsMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServer := mock_core.NewMockServerService(ctrl)
	mockRepo := mock_actor.NewMockRepository(ctrl)

	service := NewService(mockRepo, mockServer, newTestConfig())

	_, err := service.ResolveActorURI(context.Background(), "https://remote.example.com/note/77")
	assert.Error(t, err)

	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
}

func TestDocumentShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockServer := mock_core.NewMockServerService(ctrl)
	mockRepo := mock_actor.NewMockRepository(ctrl)

	service := NewService(mockRepo, mockServer, newTestConfig())

	document := service.Document(core.Actor{
		URI:         "https://local.example.com/group/golang",
		Kind:        core.ActorKindGroup,
		Name:        "golang",
		DisplayName: "Go Forum",
		Summary:     "all things go",
	})

	assert.Equal(t, "https://local.example.com/group/golang", document.ID)
	assert.Equal(t, "Group", document.Type)
	assert.Equal(t, "golang", document.PreferredUsername)
	assert.Equal(t, "https://local.example.com/group/golang/inbox/", document.Inbox)
	assert.Equal(t, "https://local.example.com/group/golang/outbox/", document.Outbox)
	assert.Equal(t, "https://local.example.com/group/golang/followers/", document.Followers)
	assert.Nil(t, document.Icon)
}
