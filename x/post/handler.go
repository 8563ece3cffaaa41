package post

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mootfed/moot/core"
)

// Handler is the interface for handling http requests
type Handler interface {
	Get(c echo.Context) error
	Replies(c echo.Context) error
}

type handler struct {
	service    core.PostService
	collection core.CollectionService
	config     core.Config
}

// NewHandler creates a new post handler
func NewHandler(service core.PostService, collection core.CollectionService, config core.Config) Handler {
	return &handler{service, collection, config}
}

// Get returns the note document for a post. Tombstones answer 410.
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Get")
	defer span.End()

	id := c.Param("id")
	post, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorGone{}) {
			return c.JSON(http.StatusGone, echo.Map{"status": "error", "error": "gone"})
		}
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "post not found"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, h.service.Document(post))
}

// Replies returns a page of the reply tree below a post, depth first.
// The thread stays listable when the root itself was deleted.
func (h handler) Replies(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Post.Handler.Replies")
	defer span.End()

	id := c.Param("id")
	descendants, err := h.service.Descendants(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "post not found"})
		}
		span.RecordError(err)
		return err
	}

	uris := make([]string, 0, len(descendants))
	for _, post := range descendants {
		uris = append(uris, post.URI)
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	collectionURI := h.config.BaseURL() + "/post/" + id + "/replies"
	return c.JSON(http.StatusOK, h.collection.Page(collectionURI, uris, page))
}
