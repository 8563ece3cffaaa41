package activity

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mootfed/moot/core"
	mock_core "github.com/mootfed/moot/core/mock"
	"github.com/mootfed/moot/x/activity/mock"
)

func newTestConfig() core.Config {
	return core.SetupConfig(core.ConfigInput{
		Scheme: "https",
		FQDN:   "local.example.com",
	})
}

var groupGolang = core.Actor{
	URI:        "https://local.example.com/group/golang",
	Kind:       core.ActorKindGroup,
	Name:       "golang",
	ServerHost: "local.example.com",
}

var userAlice = core.Actor{
	URI:        "https://local.example.com/user/alice",
	Kind:       core.ActorKindPerson,
	Name:       "alice",
	ServerHost: "local.example.com",
}

var userCarol = core.Actor{
	URI:        "https://local.example.com/user/carol",
	Kind:       core.ActorKindPerson,
	Name:       "carol",
	ServerHost: "local.example.com",
}

var remoteBob = core.Actor{
	URI:        "https://remote.example.org/user/bob",
	Kind:       core.ActorKindPerson,
	Name:       "bob",
	ServerHost: "remote.example.org",
}

type testMocks struct {
	repo      *mock_activity.MockRepository
	actor     *mock_core.MockActorService
	post      *mock_core.MockPostService
	deliverer *mock_core.MockDeliverer
}

func newTestService(ctrl *gomock.Controller) (core.ActivityService, testMocks) {
	m := testMocks{
		repo:      mock_activity.NewMockRepository(ctrl),
		actor:     mock_core.NewMockActorService(ctrl),
		post:      mock_core.NewMockPostService(ctrl),
		deliverer: mock_core.NewMockDeliverer(ctrl),
	}
	return NewService(m.repo, m.actor, m.post, m.deliverer, newTestConfig()), m
}

func TestDispatchRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	var badRequest core.ErrorBadRequest

	_, err := service.Dispatch(context.Background(), groupGolang, []byte(`{"type":"Foo"}`))
	assert.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "Invalid activity type Foo", badRequest.Message)

	_, err = service.Dispatch(context.Background(), userAlice, []byte(`{"type":"Foo"}`))
	assert.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "Invalid activity type Foo", badRequest.Message)
}

func TestDispatchUnhandledRecognizedType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	var notImplemented core.ErrorNotImplemented

	_, err := service.Dispatch(context.Background(), groupGolang, []byte(`{"type":"Update"}`))
	assert.ErrorAs(t, err, &notImplemented)
	assert.Equal(t, "Update", notImplemented.Type)

	_, err = service.Dispatch(context.Background(), userAlice, []byte(`{"type":"Follow"}`))
	assert.ErrorAs(t, err, &notImplemented)
	assert.Equal(t, "Follow", notImplemented.Type)
}

func TestGroupOutboxRejectsBareNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	var badRequest core.ErrorBadRequest

	_, err := service.Dispatch(context.Background(), groupGolang, []byte(`{"type":"Note","content":"hi"}`))
	assert.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "Invalid activity type Note", badRequest.Message)

	_, err = service.Dispatch(context.Background(), groupGolang, []byte(`{"content":"hi"}`))
	assert.ErrorAs(t, err, &badRequest)
	assert.Equal(t, "activity type is missing", badRequest.Message)
}

func TestUserOutboxWrapsBareNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	var draft core.PostDraft
	m.post.EXPECT().
		Create(gomock.Any(), userAlice, gomock.Any()).
		DoAndReturn(func(ctx context.Context, author core.Actor, d core.PostDraft) (core.Post, error) {
			draft = d
			return core.Post{
				ID:        "p1",
				URI:       "https://local.example.com/post/p1",
				AuthorURI: author.URI,
				Content:   d.Content,
			}, nil
		})
	m.post.EXPECT().
		Document(gomock.Any()).
		Return(core.NoteDocument{
			ID:      "https://local.example.com/post/p1",
			Type:    core.ObjectTypeNote,
			Content: "hello forum",
		})

	var stored core.Activity
	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, activity core.Activity) (core.Activity, error) {
			stored = activity
			return activity, nil
		})

	result, err := service.Dispatch(context.Background(), userAlice, []byte(`{"type":"Note","content":"hello forum"}`))
	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, core.ActivityTypeCreate, result.Document.Type)
	assert.Equal(t, userAlice.URI, result.Document.Actor)
	assert.Equal(t, "hello forum", draft.Content)
	assert.True(t, strings.HasPrefix(result.Document.ID, "https://local.example.com/activity/"))
	assert.Equal(t, result.Document.ID, stored.URI)
	assert.Equal(t, "https://local.example.com/post/p1", stored.ObjectURI)
}

func TestUserOutboxRejectsSpoofedActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	raw := fmt.Sprintf(
		`{"type":"Create","actor":"%s","object":{"type":"Note","content":"x"}}`,
		remoteBob.URI,
	)
	_, err := service.Dispatch(context.Background(), userAlice, []byte(raw))
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}

func TestGroupFollowAcceptRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	followURI := "https://remote.example.org/activity/follow-1"

	m.actor.EXPECT().
		ResolveActorURI(gomock.Any(), remoteBob.URI).
		Return(remoteBob, nil)

	var stored []core.Activity
	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, activity core.Activity) (core.Activity, error) {
			stored = append(stored, activity)
			return activity, nil
		}).
		Times(2)

	m.actor.EXPECT().
		AddFollower(gomock.Any(), groupGolang.URI, remoteBob.URI, followURI).
		Return(true, nil)

	m.repo.EXPECT().
		GetByURI(gomock.Any(), followURI).
		Return(core.Activity{
			ID:       "f1",
			URI:      followURI,
			Type:     core.ActivityTypeFollow,
			ActorURI: remoteBob.URI,
		}, nil)

	m.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), core.InboxURI(remoteBob.URI)).
		Return(nil)

	raw := fmt.Sprintf(
		`{"id":"%s","type":"Follow","actor":"%s","object":"%s"}`,
		followURI, remoteBob.URI, groupGolang.URI,
	)
	result, err := service.Dispatch(context.Background(), groupGolang, []byte(raw))
	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, core.ActivityTypeAccept, result.Document.Type)
	assert.Equal(t, groupGolang.URI, result.Document.Actor)
	assert.Equal(t, followURI, result.Document.ObjectURI())

	assert.Len(t, stored, 2)
	assert.Equal(t, core.ActivityTypeFollow, stored[0].Type)
	assert.Equal(t, followURI, stored[0].URI)
	assert.Equal(t, groupGolang.URI, stored[0].ObjectURI)
	assert.Equal(t, core.ActivityTypeAccept, stored[1].Type)
	assert.Equal(t, followURI, stored[1].ObjectURI)
	assert.True(t, strings.HasPrefix(stored[1].URI, "https://local.example.com/activity/"))
}

func TestGroupFollowIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	followURI := "https://remote.example.org/activity/follow-1"

	m.actor.EXPECT().
		ResolveActorURI(gomock.Any(), remoteBob.URI).
		Return(remoteBob, nil)
	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(core.Activity{}, core.NewErrorAlreadyExists())
	m.repo.EXPECT().
		GetByURI(gomock.Any(), followURI).
		Return(core.Activity{ID: "f1", URI: followURI, Type: core.ActivityTypeFollow, ActorURI: remoteBob.URI}, nil)
	m.repo.EXPECT().
		UpdateDocument(gomock.Any(), "f1", gomock.Any()).
		Return(nil)
	m.actor.EXPECT().
		AddFollower(gomock.Any(), groupGolang.URI, remoteBob.URI, followURI).
		Return(false, nil)

	raw := fmt.Sprintf(
		`{"id":"%s","type":"Follow","actor":"%s","object":"%s"}`,
		followURI, remoteBob.URI, groupGolang.URI,
	)
	result, err := service.Dispatch(context.Background(), groupGolang, []byte(raw))
	assert.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Nil(t, result.Document)
}

func TestAcceptReferencingUnknownFollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	followURI := "https://remote.example.org/activity/follow-9"
	m.repo.EXPECT().
		GetByURI(gomock.Any(), followURI).
		Return(core.Activity{}, core.NewErrorNotFound())

	raw := fmt.Sprintf(`{"type":"Accept","actor":"%s","object":"%s"}`, groupGolang.URI, followURI)
	_, err := service.Dispatch(context.Background(), groupGolang, []byte(raw))

	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
	assert.Contains(t, badRequest.Message, "unknown follow")
}

func TestGroupCreateFansOutExcludingSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.actor.EXPECT().
		ResolveActorURI(gomock.Any(), remoteBob.URI).
		Return(remoteBob, nil)

	var draft core.PostDraft
	m.post.EXPECT().
		Create(gomock.Any(), remoteBob, gomock.Any()).
		DoAndReturn(func(ctx context.Context, author core.Actor, d core.PostDraft) (core.Post, error) {
			draft = d
			return core.Post{
				ID:        "p9",
				URI:       "https://remote.example.org/post/p9",
				AuthorURI: author.URI,
				Content:   d.Content,
			}, nil
		})
	m.post.EXPECT().
		Document(gomock.Any()).
		Return(core.NoteDocument{ID: "https://remote.example.org/post/p9", Type: core.ObjectTypeNote})

	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, activity core.Activity) (core.Activity, error) {
			return activity, nil
		})

	m.actor.EXPECT().
		FollowerURIs(gomock.Any(), groupGolang.URI).
		Return([]string{userAlice.URI, remoteBob.URI, userCarol.URI}, nil)
	m.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), core.InboxURI(userAlice.URI)).
		Return(nil)
	m.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), core.InboxURI(userCarol.URI)).
		Return(nil)

	raw := fmt.Sprintf(
		`{"type":"Create","actor":"%s","object":{"type":"Note","content":"new release"}}`,
		remoteBob.URI,
	)
	result, err := service.Dispatch(context.Background(), groupGolang, []byte(raw))
	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Contains(t, draft.Audience, groupGolang.URI)
	assert.Contains(t, result.Document.Audience, core.FollowersURI(groupGolang.URI))
}

func TestGroupCreateDeliveryFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	m.actor.EXPECT().
		ResolveActorURI(gomock.Any(), remoteBob.URI).
		Return(remoteBob, nil)
	m.post.EXPECT().
		Create(gomock.Any(), remoteBob, gomock.Any()).
		Return(core.Post{ID: "p2", URI: "https://remote.example.org/post/p2", AuthorURI: remoteBob.URI}, nil)
	m.post.EXPECT().
		Document(gomock.Any()).
		Return(core.NoteDocument{ID: "https://remote.example.org/post/p2", Type: core.ObjectTypeNote})

	persisted := false
	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, activity core.Activity) (core.Activity, error) {
			persisted = true
			return activity, nil
		})

	m.actor.EXPECT().
		FollowerURIs(gomock.Any(), groupGolang.URI).
		Return([]string{userAlice.URI}, nil)
	m.deliverer.EXPECT().
		Deliver(gomock.Any(), gomock.Any(), core.InboxURI(userAlice.URI)).
		Return(fmt.Errorf("connection refused"))

	raw := fmt.Sprintf(
		`{"type":"Create","actor":"%s","object":{"type":"Note","content":"x"}}`,
		remoteBob.URI,
	)
	result, err := service.Dispatch(context.Background(), groupGolang, []byte(raw))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "delivery failed for 1 of 1 inboxes")
	assert.True(t, result.Applied)
	assert.True(t, persisted)
}

func TestHandleIncomingRequiresID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)

	_, err := service.HandleIncoming(context.Background(), groupGolang, []byte(`{"type":"Create"}`))

	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
	assert.Contains(t, badRequest.Message, "no id")
}

func TestHandleIncomingSkipsRepeatedDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	uri := "https://remote.example.org/activity/create-1"
	m.repo.EXPECT().
		GetByURI(gomock.Any(), uri).
		Return(core.Activity{ID: "a1", URI: uri, Type: core.ActivityTypeCreate}, nil)
	m.repo.EXPECT().
		AddDestination(gomock.Any(), "a1", groupGolang.URI).
		Return(false, nil)

	raw := fmt.Sprintf(
		`{"id":"%s","type":"Create","actor":"%s","object":{"type":"Note","content":"x"}}`,
		uri, remoteBob.URI,
	)
	result, err := service.HandleIncoming(context.Background(), groupGolang, []byte(raw))
	assert.NoError(t, err)
	assert.False(t, result.Applied)
}

func TestHandleIncomingAccumulatesDestinations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	uri := "https://remote.example.org/activity/create-1"
	noteURI := "https://remote.example.org/post/n1"

	m.repo.EXPECT().
		GetByURI(gomock.Any(), uri).
		Return(core.Activity{ID: "a1", URI: uri, Type: core.ActivityTypeCreate, ActorURI: remoteBob.URI}, nil).
		Times(2)
	m.repo.EXPECT().
		AddDestination(gomock.Any(), "a1", groupGolang.URI).
		Return(true, nil)

	m.actor.EXPECT().
		ResolveActorURI(gomock.Any(), remoteBob.URI).
		Return(remoteBob, nil)
	m.post.EXPECT().
		Create(gomock.Any(), remoteBob, gomock.Any()).
		Return(core.Post{ID: "p3", URI: noteURI, AuthorURI: remoteBob.URI}, nil)
	m.post.EXPECT().
		Document(gomock.Any()).
		Return(core.NoteDocument{ID: noteURI, Type: core.ObjectTypeNote})

	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(core.Activity{}, core.NewErrorAlreadyExists())
	m.repo.EXPECT().
		UpdateDocument(gomock.Any(), "a1", gomock.Any()).
		Return(nil)

	m.actor.EXPECT().
		FollowerURIs(gomock.Any(), groupGolang.URI).
		Return([]string{}, nil)

	raw := fmt.Sprintf(
		`{"id":"%s","type":"Create","actor":"%s","object":{"id":"%s","type":"Note","content":"x"}}`,
		uri, remoteBob.URI, noteURI,
	)
	result, err := service.HandleIncoming(context.Background(), groupGolang, []byte(raw))
	assert.NoError(t, err)
	assert.True(t, result.Applied)
}

func TestHandleIncomingAcceptToUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl)

	uri := "https://remote.example.org/activity/accept-1"

	m.repo.EXPECT().
		GetByURI(gomock.Any(), uri).
		Return(core.Activity{}, core.NewErrorNotFound())

	var stored core.Activity
	m.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, activity core.Activity) (core.Activity, error) {
			stored = activity
			return activity, nil
		})
	m.repo.EXPECT().
		AddDestination(gomock.Any(), gomock.Any(), userAlice.URI).
		Return(true, nil)

	raw := fmt.Sprintf(
		`{"id":"%s","type":"Accept","actor":"https://remote.example.org/group/gophers","object":"https://local.example.com/activity/follow-2"}`,
		uri,
	)
	result, err := service.HandleIncoming(context.Background(), userAlice, []byte(raw))
	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, core.ActivityTypeAccept, stored.Type)
	assert.Equal(t, uri, stored.URI)
}
