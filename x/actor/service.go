package actor

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/mootfed/moot/core"
)

var tracer = otel.Tracer("actor")

type service struct {
	repository Repository
	server     core.ServerService
	config     core.Config
}

// NewService creates a new actor service
func NewService(repository Repository, server core.ServerService, config core.Config) core.ActorService {
	return &service{repository, server, config}
}

// uriFor derives the canonical URI for an actor that does not have one
// yet. It runs exactly once, at creation; a persisted actor's URI is
// never recomputed because federated peers key on it.
func (s *service) uriFor(actor core.Actor, server core.Server) string {
	if actor.URI != "" {
		return actor.URI
	}
	return fmt.Sprintf("%s/%s/%s", serverBaseURL(server), core.KindToSegment(actor.Kind), actor.Name)
}

func serverBaseURL(server core.Server) string {
	scheme := server.Scheme
	if scheme == "" {
		scheme = "https"
	}
	conf := core.Config{Scheme: scheme, FQDN: server.Host, Port: server.Port}
	return conf.BaseURL()
}

// CreateLocalUser registers a user on this instance
func (s *service) CreateLocalUser(ctx context.Context, name, displayName, summary string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.CreateLocalUser")
	defer span.End()

	return s.createLocal(ctx, core.ActorKindPerson, name, displayName, summary)
}

// CreateLocalGroup registers a group on this instance
func (s *service) CreateLocalGroup(ctx context.Context, name, displayName, summary string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.CreateLocalGroup")
	defer span.End()

	return s.createLocal(ctx, core.ActorKindGroup, name, displayName, summary)
}

func (s *service) createLocal(ctx context.Context, kind, name, displayName, summary string) (core.Actor, error) {
	if name == "" {
		return core.Actor{}, core.NewErrorBadRequest("name is required")
	}

	server, err := s.server.FindOrCreate(ctx, s.config.Scheme, s.config.FQDN, s.config.Port)
	if err != nil {
		return core.Actor{}, err
	}

	if displayName == "" {
		displayName = name
	}

	actor := core.Actor{
		Kind:        kind,
		Name:        name,
		ServerHost:  server.Host,
		DisplayName: displayName,
		Summary:     summary,
	}
	actor.URI = s.uriFor(actor, server)

	created, err := s.repository.Create(ctx, actor)
	if err != nil {
		return core.Actor{}, err
	}

	slog.InfoContext(
		ctx, fmt.Sprintf("created local %s %s", kind, name),
		slog.String("module", "actor"),
		slog.String("type", "audit"),
	)

	return created, nil
}

// Get returns an actor by its URI
func (s *service) Get(ctx context.Context, uri string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.Get")
	defer span.End()

	return s.repository.Get(ctx, uri)
}

// ResolveLocal looks an actor up on this instance. An empty kind
// matches either kind.
func (s *service) ResolveLocal(ctx context.Context, kind, name string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.ResolveLocal")
	defer span.End()

	actor, err := s.repository.GetByNameAndHost(ctx, name, s.config.FQDN)
	if err != nil {
		return core.Actor{}, err
	}
	if kind != "" && actor.Kind != kind {
		return core.Actor{}, core.NewErrorNotFound()
	}
	return actor, nil
}

// ResolveGlobal looks an actor up by name and home server. The server
// row is created on first reference; the actor record is not.
func (s *service) ResolveGlobal(ctx context.Context, kind, name, host string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.ResolveGlobal")
	defer span.End()

	if s.config.IsLocalHost(host) {
		return s.ResolveLocal(ctx, kind, name)
	}

	server, err := s.server.FindOrCreate(ctx, "https", host, 0)
	if err != nil {
		return core.Actor{}, err
	}

	actor, err := s.repository.GetByNameAndHost(ctx, name, server.Host)
	if err != nil {
		return core.Actor{}, err
	}
	if kind != "" && actor.Kind != kind {
		return core.Actor{}, core.NewErrorNotFound()
	}
	return actor, nil
}

// FindOrCreateRemote resolves a remote actor, persisting a minimal
// shadow record on first mention. Local actors are never fabricated.
func (s *service) FindOrCreateRemote(ctx context.Context, stub core.Actor) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.FindOrCreateRemote")
	defer span.End()

	if s.config.IsLocalHost(stub.ServerHost) {
		return s.ResolveLocal(ctx, stub.Kind, stub.Name)
	}

	existing, err := s.ResolveGlobal(ctx, stub.Kind, stub.Name, stub.ServerHost)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrorNotFound{}) {
		return core.Actor{}, err
	}

	scheme := "https"
	if parsed, parseErr := url.Parse(stub.URI); parseErr == nil && parsed.Scheme != "" {
		scheme = parsed.Scheme
	}

	server, err := s.server.FindOrCreate(ctx, scheme, stub.ServerHost, 0)
	if err != nil {
		return core.Actor{}, err
	}

	shadow := core.Actor{
		URI:         stub.URI,
		Kind:        stub.Kind,
		Name:        stub.Name,
		ServerHost:  server.Host,
		DisplayName: stub.Name,
	}
	shadow.URI = s.uriFor(shadow, server)

	created, err := s.repository.Create(ctx, shadow)
	if err == nil {
		slog.InfoContext(
			ctx, fmt.Sprintf("created shadow actor %s", created.URI),
			slog.String("module", "actor"),
		)
		return created, nil
	}
	if errors.Is(err, core.ErrorAlreadyExists{}) {
		return s.ResolveGlobal(ctx, stub.Kind, stub.Name, stub.ServerHost)
	}

	span.RecordError(err)
	return core.Actor{}, err
}

// ResolveActorURI resolves an actor referenced by URI in a payload.
// Remote actors become shadow records on first mention.
func (s *service) ResolveActorURI(ctx context.Context, uri string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.ResolveActorURI")
	defer span.End()

	kind, name, host, err := core.ParseActorURI(uri)
	if err != nil {
		return core.Actor{}, err
	}

	if s.config.IsLocalHost(host) {
		return s.ResolveLocal(ctx, kind, name)
	}

	return s.FindOrCreateRemote(ctx, core.Actor{
		URI:        uri,
		Kind:       kind,
		Name:       name,
		ServerHost: host,
	})
}

// AddFollower idempotently adds a follower relation. It reports whether
// the relation is new.
func (s *service) AddFollower(ctx context.Context, targetURI, followerURI, followURI string) (bool, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.AddFollower")
	defer span.End()

	_, err := s.repository.CreateFollow(ctx, core.Follow{
		ID:          xid.New().String(),
		URI:         followURI,
		FollowerURI: followerURI,
		TargetURI:   targetURI,
	})
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// FollowerURIs returns the URIs of the actors following uri, oldest first
func (s *service) FollowerURIs(ctx context.Context, uri string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.FollowerURIs")
	defer span.End()

	follows, err := s.repository.GetFollows(ctx, uri)
	if err != nil {
		return nil, err
	}

	uris := make([]string, 0, len(follows))
	for _, follow := range follows {
		uris = append(uris, follow.FollowerURI)
	}
	return uris, nil
}

// FollowingURIs returns the URIs of the actors uri follows, oldest first
func (s *service) FollowingURIs(ctx context.Context, uri string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.FollowingURIs")
	defer span.End()

	follows, err := s.repository.GetFollowing(ctx, uri)
	if err != nil {
		return nil, err
	}

	uris := make([]string, 0, len(follows))
	for _, follow := range follows {
		uris = append(uris, follow.TargetURI)
	}
	return uris, nil
}

// Document renders the actor's wire representation
func (s *service) Document(actor core.Actor) core.ActorDocument {
	document := core.ActorDocument{
		Context:           core.ActivityStreamsContext,
		ID:                actor.URI,
		Type:              actor.Kind,
		Name:              actor.DisplayName,
		PreferredUsername: actor.Name,
		Summary:           actor.Summary,
		Inbox:             core.InboxURI(actor.URI),
		Outbox:            core.OutboxURI(actor.URI),
		Followers:         core.FollowersURI(actor.URI),
		Following:         core.FollowingURI(actor.URI),
	}
	if actor.IconURL != "" {
		document.Icon = &core.IconDocument{
			Type: "Image",
			URL:  actor.IconURL,
		}
	}
	return document
}

// Count returns the number of known actors
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Actor.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
