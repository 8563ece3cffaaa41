package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mootfed/moot/core"
)

// Identify attaches the requester identity to the request context when a
// valid bearer token is present. Identification is optional here; each
// handler decides whether it requires one.
func (s *service) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Service.Identify")
		defer span.End()

		authHeader := c.Request().Header.Get("authorization")

		if authHeader != "" {
			split := strings.Split(authHeader, " ")
			if len(split) != 2 {
				span.RecordError(fmt.Errorf("invalid authentication header"))
				goto skip
			}

			authType, token := split[0], split[1]
			if authType != "Bearer" {
				span.RecordError(fmt.Errorf("only Bearer is acceptable"))
				goto skip
			}

			claims, err := s.validateToken(token)
			if err != nil {
				span.RecordError(err)
				goto skip
			}

			requester, err := s.actor.Get(ctx, claims.Subject)
			if err != nil {
				span.RecordError(err)
				goto skip
			}
			if requester.Kind != core.ActorKindPerson || !s.config.IsLocalHost(requester.ServerHost) {
				span.RecordError(fmt.Errorf("token subject is not a local user"))
				goto skip
			}

			c.Set(core.RequesterURICtxKey, requester.URI)
			c.Set(core.RequesterKindCtxKey, core.RequesterLocalUser)
			span.SetAttributes(attribute.String("RequesterURI", requester.URI))
			span.SetAttributes(attribute.String("RequesterKind", core.RequesterKindString(core.RequesterLocalUser)))
		}
	skip:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireLocalActor rejects requests that Identify did not attribute to an
// authenticated local user
func RequireLocalActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.RequireLocalActor")
		defer span.End()

		requesterKind, _ := c.Get(core.RequesterKindCtxKey).(int)
		if requesterKind != core.RequesterLocalUser {
			return c.JSON(http.StatusForbidden, echo.Map{
				"error":  "you are not authorized to perform this action",
				"detail": "you are not a local user",
			})
		}

		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
