package activity

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mootfed/moot/core"
)

// Handler is the interface for handling http requests
type Handler interface {
	Get(c echo.Context) error
	GetInbox(c echo.Context) error
	PostInbox(c echo.Context) error
	GetOutbox(c echo.Context) error
	PostOutbox(c echo.Context) error
}

type handler struct {
	service    core.ActivityService
	actor      core.ActorService
	collection core.CollectionService
	config     core.Config
}

// NewHandler creates a new activity handler
func NewHandler(service core.ActivityService, actor core.ActorService, collection core.CollectionService, config core.Config) Handler {
	return &handler{service, actor, collection, config}
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

func requesterURI(c echo.Context) string {
	uri, _ := c.Get(core.RequesterURICtxKey).(string)
	return uri
}

func dispatchError(c echo.Context, err error) error {
	var badRequest core.ErrorBadRequest
	if errors.As(err, &badRequest) {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": badRequest.Message})
	}
	var notImplemented core.ErrorNotImplemented
	if errors.As(err, &notImplemented) {
		return c.JSON(http.StatusNotImplemented, echo.Map{"status": "error", "error": notImplemented.Error()})
	}
	if errors.Is(err, core.ErrorNotFound{}) {
		return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "not found"})
	}
	if errors.Is(err, core.ErrorGone{}) {
		return c.JSON(http.StatusGone, echo.Map{"status": "error", "error": "gone"})
	}
	if errors.Is(err, core.ErrorAlreadyExists{}) {
		return c.JSON(http.StatusConflict, echo.Map{"status": "error", "error": "already exists"})
	}
	if errors.Is(err, core.ErrorPermissionDenied{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": "permission denied"})
	}
	return err
}

// Get serves a locally minted activity document. Activities received from
// other servers keep their origin URI and are not republished here.
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Activity.Handler.Get")
	defer span.End()

	uri := h.config.BaseURL() + "/activity/" + c.Param("id")
	stored, err := h.service.GetByURI(ctx, uri)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "activity not found"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSONBlob(http.StatusOK, []byte(stored.Document))
}

// GetInbox returns a page of the activities addressed to the actor.
// A user's inbox is visible only to that user; group inboxes are public.
func (h handler) GetInbox(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Activity.Handler.GetInbox")
	defer span.End()

	owner, err := h.actor.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	if owner.Kind == core.ActorKindPerson && requesterURI(c) != owner.URI {
		return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": "inbox is only visible to its owner"})
	}

	uris, err := h.service.ListURIsByDestination(ctx, owner.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.collection.Page(core.InboxURI(owner.URI), uris, parsePage(c)))
}

// PostInbox receives a federated activity addressed to the actor
func (h handler) PostInbox(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Activity.Handler.PostInbox")
	defer span.End()

	owner, err := h.actor.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "unreadable request body"})
	}

	result, err := h.service.HandleIncoming(ctx, owner, body)
	if err != nil {
		span.RecordError(err)
		return dispatchError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": result})
}

// GetOutbox returns a page of the activities the actor issued
func (h handler) GetOutbox(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Activity.Handler.GetOutbox")
	defer span.End()

	owner, err := h.actor.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	uris, err := h.service.ListURIsByActor(ctx, owner.URI)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.collection.Page(core.OutboxURI(owner.URI), uris, parsePage(c)))
}

// PostOutbox submits an activity on behalf of the actor. Users may only
// post to their own outbox; group outboxes take submissions from anyone,
// attributed by the document's actor field.
func (h handler) PostOutbox(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Activity.Handler.PostOutbox")
	defer span.End()

	owner, err := h.actor.ResolveLocal(ctx, kindFromPath(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "actor not found"})
		}
		span.RecordError(err)
		return err
	}

	if owner.Kind == core.ActorKindPerson && requesterURI(c) != owner.URI {
		return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": "outbox submissions are restricted to the owner"})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "unreadable request body"})
	}

	result, err := h.service.Dispatch(ctx, owner, body)
	if err != nil {
		span.RecordError(err)
		return dispatchError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": result})
}
