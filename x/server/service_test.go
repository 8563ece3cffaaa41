package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mootfed/moot/core"
	"github.com/mootfed/moot/x/server/mock"
)

func TestFindOrCreateReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := core.Server{Host: "remote.example.com", Scheme: "https"}

	mockRepo := mock_server.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByHost(gomock.Any(), "remote.example.com").
		Return(existing, nil)

	service := NewService(mockRepo, core.SetupConfig(core.ConfigInput{FQDN: "local.example.com"}))

	server, err := service.FindOrCreate(context.Background(), "https", "remote.example.com", 0)
	assert.NoError(t, err)
	assert.Equal(t, existing, server)
}

func TestFindOrCreateCreatesOnFirstReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_server.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByHost(gomock.Any(), "remote.example.com").
		Return(core.Server{}, core.NewErrorNotFound())
	mockRepo.EXPECT().
		Create(gomock.Any(), core.Server{Host: "remote.example.com", Scheme: "https", Port: 0}).
		Return(core.Server{Host: "remote.example.com", Scheme: "https"}, nil)

	service := NewService(mockRepo, core.SetupConfig(core.ConfigInput{FQDN: "local.example.com"}))

	server, err := service.FindOrCreate(context.Background(), "https", "remote.example.com", 0)
	assert.NoError(t, err)
	assert.Equal(t, "remote.example.com", server.Host)
}

func TestFindOrCreateLosesCreationRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	winner := core.Server{Host: "remote.example.com", Scheme: "https"}

	mockRepo := mock_server.NewMockRepository(ctrl)
	first := mockRepo.EXPECT().
		GetByHost(gomock.Any(), "remote.example.com").
		Return(core.Server{}, core.NewErrorNotFound())
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(core.Server{}, core.NewErrorAlreadyExists())
	mockRepo.EXPECT().
		GetByHost(gomock.Any(), "remote.example.com").
		Return(winner, nil).
		After(first)

	service := NewService(mockRepo, core.SetupConfig(core.ConfigInput{FQDN: "local.example.com"}))

	server, err := service.FindOrCreate(context.Background(), "https", "remote.example.com", 0)
	assert.NoError(t, err)
	assert.Equal(t, winner, server)
}

func TestIsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_server.NewMockRepository(ctrl)
	service := NewService(mockRepo, core.SetupConfig(core.ConfigInput{FQDN: "local.example.com"}))

	assert.True(t, service.IsLocal(core.Server{Host: "local.example.com"}))
	assert.False(t, service.IsLocal(core.Server{Host: "remote.example.com"}))
}
