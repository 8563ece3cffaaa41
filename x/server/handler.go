package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mootfed/moot/core"
)

// Handler is the interface for handling http requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	NodeInfoWellKnown(c echo.Context) error
	NodeInfo(c echo.Context) error
}

type handler struct {
	service core.ServerService
	actor   core.ActorService
	post    core.PostService
	config  core.Config
	profile Profile
}

// NewHandler creates a new server handler
func NewHandler(service core.ServerService, actor core.ActorService, post core.PostService, config core.Config, profile Profile) Handler {
	return &handler{service, actor, post, config, profile}
}

// Get returns a server by hostname
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Server.Handler.Get")
	defer span.End()

	host := c.Param("host")
	server, err := h.service.GetByHost(ctx, host)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "server not found"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": View{
		Server:  server,
		IsLocal: h.service.IsLocal(server),
	}})
}

// List returns all known servers
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Server.Handler.List")
	defer span.End()

	servers, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	views := make([]View, 0, len(servers))
	for _, server := range servers {
		views = append(views, View{
			Server:  server,
			IsLocal: h.service.IsLocal(server),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": views})
}

// NodeInfoWellKnown points discovery clients at the nodeinfo document
func (h handler) NodeInfoWellKnown(c echo.Context) error {
	_, span := tracer.Start(c.Request().Context(), "Server.Handler.NodeInfoWellKnown")
	defer span.End()

	return c.JSON(http.StatusOK, WellKnown{
		Links: []WellKnownLink{
			{
				Rel:  "http://nodeinfo.diaspora.software/ns/schema/2.0",
				Href: h.config.BaseURL() + "/nodeinfo/2.0",
			},
		},
	})
}

// NodeInfo serves the nodeinfo 2.0 document
func (h handler) NodeInfo(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Server.Handler.NodeInfo")
	defer span.End()

	// count caches may still be warming; discovery stays available with zeros
	users, err := h.actor.Count(ctx)
	if err != nil {
		span.RecordError(err)
	}

	posts, err := h.post.Count(ctx)
	if err != nil {
		span.RecordError(err)
	}

	return c.JSON(http.StatusOK, NodeInfo{
		Version: "2.0",
		Software: NodeInfoSoftware{
			Name:    "moot",
			Version: gitRevision(),
		},
		Protocols: []string{
			"activitypub",
		},
		Usage: NodeInfoUsage{
			Users:      NodeInfoUsers{Total: users},
			LocalPosts: posts,
		},
		OpenRegistrations: h.config.Registration != "closed",
		Metadata: NodeInfoMetadata{
			NodeName:        h.profile.NodeName,
			NodeDescription: h.profile.NodeDescription,
			Maintainer: NodeInfoMetadataMaintainer{
				Name:  h.profile.Maintainer.Name,
				Email: h.profile.Maintainer.Email,
			},
			ThemeColor: h.profile.ThemeColor,
		},
	})
}
