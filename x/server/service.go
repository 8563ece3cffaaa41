package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/mootfed/moot/core"
)

var tracer = otel.Tracer("server")

type service struct {
	repository Repository
	config     core.Config
}

// NewService creates a new server service
func NewService(repository Repository, config core.Config) core.ServerService {
	return &service{repository, config}
}

// GetByHost returns a server by hostname
func (s *service) GetByHost(ctx context.Context, host string) (core.Server, error) {
	ctx, span := tracer.Start(ctx, "Server.Service.GetByHost")
	defer span.End()

	return s.repository.GetByHost(ctx, host)
}

// FindOrCreate returns the row for host, creating it on first reference.
// A concurrent create of the same host resolves through the primary key
// conflict and a re-read.
func (s *service) FindOrCreate(ctx context.Context, scheme, host string, port int) (core.Server, error) {
	ctx, span := tracer.Start(ctx, "Server.Service.FindOrCreate")
	defer span.End()

	existing, err := s.repository.GetByHost(ctx, host)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, core.ErrorNotFound{}) {
		return core.Server{}, err
	}

	created, err := s.repository.Create(ctx, core.Server{
		Host:   host,
		Scheme: scheme,
		Port:   port,
	})
	if err == nil {
		slog.InfoContext(
			ctx, fmt.Sprintf("registered server %s", host),
			slog.String("module", "server"),
		)
		return created, nil
	}
	if errors.Is(err, core.ErrorAlreadyExists{}) {
		return s.repository.GetByHost(ctx, host)
	}

	span.RecordError(err)
	return core.Server{}, err
}

// IsLocal reports whether the server is this instance
func (s *service) IsLocal(server core.Server) bool {
	return s.config.IsLocalHost(server.Host)
}

// List returns all known servers
func (s *service) List(ctx context.Context) ([]core.Server, error) {
	ctx, span := tracer.Start(ctx, "Server.Service.List")
	defer span.End()

	return s.repository.GetList(ctx)
}

// Count returns the number of known servers
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Server.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
