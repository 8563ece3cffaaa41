package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mootfed/moot/core"
	mock_core "github.com/mootfed/moot/core/mock"
	"github.com/mootfed/moot/x/auth/mock"
)

func newTestConfig() core.Config {
	return core.SetupConfig(core.ConfigInput{
		Scheme:    "https",
		FQDN:      "local.example.com",
		JWTSecret: "test-secret",
	})
}

var userAlice = core.Actor{
	URI:        "https://local.example.com/user/alice",
	Kind:       core.ActorKindPerson,
	Name:       "alice",
	ServerHost: "local.example.com",
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_auth.NewMockRepository(ctrl)
	mockActor := mock_core.NewMockActorService(ctrl)

	mockActor.EXPECT().
		CreateLocalUser(gomock.Any(), "alice", "Alice", "").
		Return(userAlice, nil)

	var stored core.Account
	mockRepo.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, account core.Account) (core.Account, error) {
			stored = account
			return account, nil
		})

	service := NewService(mockRepo, mockActor, newTestConfig())

	created, err := service.Register(context.Background(), "alice", "Alice", "correct horse battery")
	assert.NoError(t, err)
	assert.Equal(t, userAlice.URI, created.URI)
	assert.Equal(t, userAlice.URI, stored.ActorURI)
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse battery")))
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_auth.NewMockRepository(ctrl)
	mockActor := mock_core.NewMockActorService(ctrl)

	service := NewService(mockRepo, mockActor, newTestConfig())

	_, err := service.Register(context.Background(), "alice", "Alice", "short")

	var badRequest core.ErrorBadRequest
	assert.ErrorAs(t, err, &badRequest)
}

func TestRegisterClosedRegistration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_auth.NewMockRepository(ctrl)
	mockActor := mock_core.NewMockActorService(ctrl)

	config := core.SetupConfig(core.ConfigInput{
		Scheme:       "https",
		FQDN:         "local.example.com",
		JWTSecret:    "test-secret",
		Registration: "closed",
	})
	service := NewService(mockRepo, mockActor, config)

	_, err := service.Register(context.Background(), "alice", "Alice", "correct horse battery")
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}

func TestLoginIssuesTokenForActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_auth.NewMockRepository(ctrl)
	mockActor := mock_core.NewMockActorService(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockActor.EXPECT().
		ResolveLocal(gomock.Any(), core.ActorKindPerson, "alice").
		Return(userAlice, nil)
	mockRepo.EXPECT().
		GetAccount(gomock.Any(), userAlice.URI).
		Return(core.Account{ActorURI: userAlice.URI, PasswordHash: string(hash)}, nil)

	svc := NewService(mockRepo, mockActor, newTestConfig())

	token, err := svc.Login(context.Background(), "alice", "correct horse battery")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.(*service).validateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userAlice.URI, claims.Subject)
	assert.Equal(t, "local.example.com", claims.Issuer)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_auth.NewMockRepository(ctrl)
	mockActor := mock_core.NewMockActorService(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockActor.EXPECT().
		ResolveLocal(gomock.Any(), core.ActorKindPerson, "alice").
		Return(userAlice, nil)
	mockRepo.EXPECT().
		GetAccount(gomock.Any(), userAlice.URI).
		Return(core.Account{ActorURI: userAlice.URI, PasswordHash: string(hash)}, nil)

	service := NewService(mockRepo, mockActor, newTestConfig())

	_, err = service.Login(context.Background(), "alice", "wrong password here")
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}

func TestLoginUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_auth.NewMockRepository(ctrl)
	mockActor := mock_core.NewMockActorService(ctrl)

	mockActor.EXPECT().
		ResolveLocal(gomock.Any(), core.ActorKindPerson, "mallory").
		Return(core.Actor{}, core.NewErrorNotFound())

	service := NewService(mockRepo, mockActor, newTestConfig())

	_, err := service.Login(context.Background(), "mallory", "whatever password")
	assert.ErrorIs(t, err, core.ErrorPermissionDenied{})
}
