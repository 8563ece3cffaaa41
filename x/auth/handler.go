package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/mootfed/moot/core"
)

// Handler is the interface for handling http requests
type Handler interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
}

type handler struct {
	service core.AuthService
}

// NewHandler creates a new auth handler
func NewHandler(service core.AuthService) Handler {
	return &handler{service}
}

// Register creates a local user account
func (h handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Register")
	defer span.End()

	var request struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Password    string `json:"password"`
	}
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	created, err := h.service.Register(ctx, request.Name, request.DisplayName, request.Password)
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusConflict, echo.Map{"status": "error", "error": "name already taken"})
		}
		if errors.Is(err, core.ErrorPermissionDenied{}) {
			return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": "registration is closed"})
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

// Login exchanges name and password for a bearer token
func (h handler) Login(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Auth.Handler.Login")
	defer span.End()

	var request struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	token, err := h.service.Login(ctx, request.Name, request.Password)
	if err != nil {
		if errors.Is(err, core.ErrorPermissionDenied{}) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "error": "invalid name or password"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{"token": token}})
}
