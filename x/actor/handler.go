package actor

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mootfed/moot/core"
)

// Handler is the interface for handling http requests
type Handler interface {
	GetActor(c echo.Context) error
	CreateGroup(c echo.Context) error
	Followers(c echo.Context) error
	Following(c echo.Context) error
	Posts(c echo.Context) error
	Likes(c echo.Context) error
	WebFinger(c echo.Context) error
}

type handler struct {
	service    core.ActorService
	post       core.PostService
	collection core.CollectionService
	config     core.Config
}

// NewHandler creates a new actor handler
func NewHandler(service core.ActorService, post core.PostService, collection core.CollectionService, config core.Config) Handler {
	return &handler{service, post, collection, config}
}

func kindFromPath(c echo.Context) string {
	if strings.HasPrefix(c.Path(), "/"+core.GroupSegment) {
		return core.ActorKindGroup
	}
	return core.ActorKindPerson
}

func parsePage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GetActor returns the actor document for a local user or group
func (h handler) GetActor(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.GetActor")
	defer span.End()

	actor, err := h.service.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.service.Document(actor))
}

// CreateGroup registers a new group on this instance
func (h handler) CreateGroup(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.CreateGroup")
	defer span.End()

	var request struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Summary     string `json:"summary"`
	}
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	created, err := h.service.CreateLocalGroup(ctx, request.Name, request.DisplayName, request.Summary)
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusConflict, echo.Map{"status": "error", "error": "name already taken"})
		}
		var badRequest core.ErrorBadRequest
		if errors.As(err, &badRequest) {
			return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": badRequest.Message})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Followers returns a page of the actor's followers collection
func (h handler) Followers(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Followers")
	defer span.End()

	actor, err := h.service.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	uris, err := h.service.FollowerURIs(ctx, actor.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.collection.Page(core.FollowersURI(actor.URI), uris, parsePage(c)))
}

// Following returns a page of the actors this actor follows
func (h handler) Following(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Following")
	defer span.End()

	actor, err := h.service.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	uris, err := h.service.FollowingURIs(ctx, actor.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.collection.Page(core.FollowingURI(actor.URI), uris, parsePage(c)))
}

// Posts returns a page of the posts this user has authored
func (h handler) Posts(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Posts")
	defer span.End()

	actor, err := h.service.ResolveLocal(ctx, core.ActorKindPerson, c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	uris, err := h.post.ListURIsByAuthor(ctx, actor.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.collection.Page(core.PostsURI(actor.URI), uris, parsePage(c)))
}

// Likes returns a page of the posts this user has liked
func (h handler) Likes(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.Likes")
	defer span.End()

	actor, err := h.service.ResolveLocal(ctx, core.ActorKindPerson, c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	uris, err := h.post.LikedPostURIs(ctx, actor.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.collection.Page(core.LikesURI(actor.URI), uris, parsePage(c)))
}

// WebFinger resolves an acct: resource to a local actor
func (h handler) WebFinger(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Actor.Handler.WebFinger")
	defer span.End()

	resource := c.QueryParam("resource")
	subject, found := strings.CutPrefix(resource, "acct:")
	if !found {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "resource must be an acct: uri"})
	}

	name, host, found := strings.Cut(subject, "@")
	if !found || name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "malformed acct resource"})
	}
	if !h.config.IsLocalHost(host) {
		return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "unknown host"})
	}

	actor, err := h.service.ResolveLocal(ctx, "", name)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, WebFinger{
		Subject: "acct:" + name + "@" + h.config.FQDN,
		Links: []WebFingerLink{
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: actor.URI,
			},
		},
	})
}
