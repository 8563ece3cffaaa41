//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type ActivityService interface {
	Dispatch(ctx context.Context, owner Actor, raw []byte) (DispatchResult, error)
	HandleIncoming(ctx context.Context, group Actor, raw []byte) (DispatchResult, error)

	GetByURI(ctx context.Context, uri string) (Activity, error)
	ListURIsByActor(ctx context.Context, actorURI string) ([]string, error)
	ListURIsByDestination(ctx context.Context, actorURI string) ([]string, error)
	DeliverToFollowers(ctx context.Context, document ActivityDocument, group Actor) error
	Count(ctx context.Context) (int64, error)
}

type ActorService interface {
	CreateLocalUser(ctx context.Context, name, displayName, summary string) (Actor, error)
	CreateLocalGroup(ctx context.Context, name, displayName, summary string) (Actor, error)

	Get(ctx context.Context, uri string) (Actor, error)
	ResolveLocal(ctx context.Context, kind, name string) (Actor, error)
	ResolveGlobal(ctx context.Context, kind, name, host string) (Actor, error)
	FindOrCreateRemote(ctx context.Context, stub Actor) (Actor, error)
	ResolveActorURI(ctx context.Context, uri string) (Actor, error)

	AddFollower(ctx context.Context, targetURI, followerURI, followURI string) (bool, error)
	FollowerURIs(ctx context.Context, uri string) ([]string, error)
	FollowingURIs(ctx context.Context, uri string) ([]string, error)

	Document(actor Actor) ActorDocument
	Count(ctx context.Context) (int64, error)
}

type AuthService interface {
	Register(ctx context.Context, name, displayName, password string) (Actor, error)
	Login(ctx context.Context, name, password string) (string, error)
	Identify(next echo.HandlerFunc) echo.HandlerFunc
}

type CollectionService interface {
	Page(collectionURI string, items []string, page int) CollectionPage
}

type Deliverer interface {
	Deliver(ctx context.Context, activity ActivityDocument, inboxURI string) error
}

type PostService interface {
	Create(ctx context.Context, author Actor, draft PostDraft) (Post, error)
	Delete(ctx context.Context, requesterURI, postURI string) (Post, error)

	Get(ctx context.Context, id string) (Post, error)
	GetByURI(ctx context.Context, uri string) (Post, error)
	Like(ctx context.Context, actorURI, postURI, likeURI string) (bool, error)
	Descendants(ctx context.Context, rootID string) ([]Post, error)
	ListURIsByAuthor(ctx context.Context, authorURI string) ([]string, error)
	LikedPostURIs(ctx context.Context, actorURI string) ([]string, error)

	Document(post Post) NoteDocument
	Count(ctx context.Context) (int64, error)
}

type ServerService interface {
	GetByHost(ctx context.Context, host string) (Server, error)
	FindOrCreate(ctx context.Context, scheme, host string, port int) (Server, error)
	IsLocal(server Server) bool
	List(ctx context.Context) ([]Server, error)
	Count(ctx context.Context) (int64, error)
}

type SocketManager interface {
	Subscribe(conn *websocket.Conn, timelines []string)
	Unsubscribe(conn *websocket.Conn)
	ConnectionCount() int64
	Subscriptions() map[string]int64
}
