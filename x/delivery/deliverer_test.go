package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mootfed/moot/core"
)

func TestDeliverPostsActivityJSON(t *testing.T) {
	var received core.ActivityDocument
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	deliverer := NewDeliverer()
	err := deliverer.Deliver(context.Background(), core.ActivityDocument{
		Context: core.ActivityStreamsContext,
		ID:      "https://local.example.com/activity/a1",
		Type:    core.ActivityTypeCreate,
		Actor:   "https://local.example.com/user/alice",
	}, server.URL+"/user/bob/inbox/")
	assert.NoError(t, err)
	assert.Equal(t, "application/activity+json", contentType)
	assert.Equal(t, "https://local.example.com/activity/a1", received.ID)
	assert.Equal(t, core.ActivityTypeCreate, received.Type)
}

func TestDeliverReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	deliverer := NewDeliverer()
	err := deliverer.Deliver(context.Background(), core.ActivityDocument{
		Type: core.ActivityTypeCreate,
	}, server.URL+"/inbox/")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
