package socket

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/mootfed/moot/core"
)

type manager struct {
	mutex      sync.RWMutex
	clientSubs map[*websocket.Conn][]string
}

// NewManager creates a new socket manager
func NewManager() core.SocketManager {
	return &manager{
		clientSubs: make(map[*websocket.Conn][]string),
	}
}

// Subscribe replaces the timeline set a client is watching
func (m *manager) Subscribe(conn *websocket.Conn, timelines []string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.clientSubs[conn] = timelines
}

// Unsubscribe drops a client and its subscriptions
func (m *manager) Unsubscribe(conn *websocket.Conn) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.clientSubs, conn)
}

// ConnectionCount returns the number of connected clients
func (m *manager) ConnectionCount() int64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return int64(len(m.clientSubs))
}

// Subscriptions returns the number of watchers per timeline
func (m *manager) Subscriptions() map[string]int64 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	counts := make(map[string]int64)
	for _, timelines := range m.clientSubs {
		for _, timeline := range timelines {
			counts[timeline]++
		}
	}
	return counts
}
