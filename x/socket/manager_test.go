package socket

import (
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestManagerTracksSubscriptions(t *testing.T) {
	m := NewManager()

	conn0 := &websocket.Conn{}
	conn1 := &websocket.Conn{}

	m.Subscribe(conn0, []string{
		"https://local.example.com/group/golang",
		"https://local.example.com/user/alice",
	})
	m.Subscribe(conn1, []string{
		"https://local.example.com/group/golang",
	})

	assert.Equal(t, int64(2), m.ConnectionCount())
	subs := m.Subscriptions()
	assert.Equal(t, int64(2), subs["https://local.example.com/group/golang"])
	assert.Equal(t, int64(1), subs["https://local.example.com/user/alice"])

	m.Subscribe(conn0, []string{"https://local.example.com/user/alice"})
	subs = m.Subscriptions()
	assert.Equal(t, int64(1), subs["https://local.example.com/group/golang"])

	m.Unsubscribe(conn0)
	m.Unsubscribe(conn1)
	assert.Equal(t, int64(0), m.ConnectionCount())
	assert.Empty(t, m.Subscriptions())
}
