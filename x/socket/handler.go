// Package socket streams timeline events to connected clients
package socket

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/mootfed/moot/core"
)

// Handler is the interface for handling websocket connections
type Handler interface {
	Connect(c echo.Context) error
}

type handler struct {
	rdb     *redis.Client
	manager core.SocketManager
}

// NewHandler creates a new socket handler
func NewHandler(rdb *redis.Client, manager core.SocketManager) Handler {
	return &handler{rdb, manager}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect upgrades the request and relays events for the requested
// timelines until the client goes away
func (h handler) Connect(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"failed to upgrade websocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()
	defer h.manager.Unsubscribe(ws)

	ctx := c.Request().Context()

	pubsub := h.rdb.Subscribe(ctx)
	defer pubsub.Close()

	// gorilla allows at most one concurrent writer per connection
	go func(ws *websocket.Conn, pubsub *redis.PubSub) {
		for msg := range pubsub.Channel() {
			err := ws.WriteMessage(websocket.TextMessage, []byte(msg.Payload))
			if err != nil {
				ws.Close()
				return
			}
		}
	}(ws, pubsub)

	for {
		var req ChannelRequest
		err := ws.ReadJSON(&req)
		if err != nil {
			break
		}

		err = pubsub.Unsubscribe(ctx)
		if err != nil {
			slog.ErrorContext(
				ctx, "failed to reset subscriptions",
				slog.String("error", err.Error()),
				slog.String("module", "socket"),
			)
			break
		}

		if len(req.Channels) > 0 {
			err = pubsub.Subscribe(ctx, req.Channels...)
			if err != nil {
				slog.ErrorContext(
					ctx, "failed to subscribe",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				break
			}
		}

		h.manager.Subscribe(ws, req.Channels)
	}

	return nil
}
