package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActorURI(t *testing.T) {
	kind, name, host, err := ParseActorURI("https://example.com/user/alice")
	assert.NoError(t, err)
	assert.Equal(t, ActorKindPerson, kind)
	assert.Equal(t, "alice", name)
	assert.Equal(t, "example.com", host)

	kind, name, host, err = ParseActorURI("http://forum.example.org:8000/group/golang")
	assert.NoError(t, err)
	assert.Equal(t, ActorKindGroup, kind)
	assert.Equal(t, "golang", name)
	assert.Equal(t, "forum.example.org:8000", host)

	_, _, _, err = ParseActorURI("https://example.com/note/123")
	assert.Error(t, err)
	assert.IsType(t, ErrorBadRequest{}, err)

	_, _, _, err = ParseActorURI("not-a-uri")
	assert.Error(t, err)
}

func TestCollectionURIs(t *testing.T) {
	uri := "https://example.com/group/golang"
	assert.Equal(t, "https://example.com/group/golang/inbox/", InboxURI(uri))
	assert.Equal(t, "https://example.com/group/golang/outbox/", OutboxURI(uri))
	assert.Equal(t, "https://example.com/group/golang/followers/", FollowersURI(uri))
	assert.Equal(t, "https://example.com/group/golang/following/", FollowingURI(uri))
	assert.Equal(t, "https://example.com/group/golang/likes/", LikesURI(uri))
	assert.Equal(t, "https://example.com/group/golang/posts/", PostsURI(uri))
}

func TestConfigBaseURL(t *testing.T) {
	conf := SetupConfig(ConfigInput{Scheme: "https", FQDN: "example.com", Port: 443})
	assert.Equal(t, "https://example.com", conf.BaseURL())

	conf = SetupConfig(ConfigInput{Scheme: "http", FQDN: "localhost", Port: 8000})
	assert.Equal(t, "http://localhost:8000", conf.BaseURL())

	conf = SetupConfig(ConfigInput{FQDN: "example.com"})
	assert.Equal(t, "https://example.com", conf.BaseURL())
	assert.Equal(t, 100, conf.PageSize)

	assert.True(t, conf.IsLocalHost("example.com"))
	assert.True(t, conf.IsLocalHost("example.com:443"))
	assert.False(t, conf.IsLocalHost("other.example.com"))
}

func TestActivityDocumentObjectURI(t *testing.T) {
	var doc ActivityDocument
	assert.Equal(t, "", doc.ObjectURI())

	doc.Object = []byte(`"https://example.com/post/42"`)
	assert.Equal(t, "https://example.com/post/42", doc.ObjectURI())

	doc.Object = []byte(`{"id": "https://example.com/post/42", "type": "Note"}`)
	assert.Equal(t, "https://example.com/post/42", doc.ObjectURI())
}
