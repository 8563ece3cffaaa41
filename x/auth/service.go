package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/mootfed/moot/core"
)

var tracer = otel.Tracer("auth")

const tokenLifetime = 24 * time.Hour

type service struct {
	repository Repository
	actor      core.ActorService
	config     core.Config
}

// NewService creates a new auth service
func NewService(repository Repository, actor core.ActorService, config core.Config) core.AuthService {
	return &service{repository, actor, config}
}

// Register creates a local user together with its login credentials
func (s *service) Register(ctx context.Context, name, displayName, password string) (core.Actor, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Register")
	defer span.End()

	if s.config.Registration == "closed" {
		return core.Actor{}, core.NewErrorPermissionDenied()
	}
	if len(password) < 8 {
		return core.Actor{}, core.NewErrorBadRequest("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		span.RecordError(err)
		return core.Actor{}, err
	}

	created, err := s.actor.CreateLocalUser(ctx, name, displayName, "")
	if err != nil {
		span.RecordError(err)
		return core.Actor{}, err
	}

	_, err = s.repository.CreateAccount(ctx, core.Account{
		ActorURI:     created.URI,
		PasswordHash: string(hash),
	})
	if err != nil {
		span.RecordError(err)
		return core.Actor{}, err
	}

	return created, nil
}

// Login checks the credentials and issues a bearer token whose subject is
// the actor URI
func (s *service) Login(ctx context.Context, name, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Login")
	defer span.End()

	actor, err := s.actor.ResolveLocal(ctx, core.ActorKindPerson, name)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return "", core.NewErrorPermissionDenied()
		}
		span.RecordError(err)
		return "", err
	}

	account, err := s.repository.GetAccount(ctx, actor.URI)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return "", core.NewErrorPermissionDenied()
		}
		span.RecordError(err)
		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return "", core.NewErrorPermissionDenied()
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    s.config.FQDN,
		Subject:   actor.URI,
		Audience:  jwt.ClaimStrings{s.config.FQDN},
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        xid.New().String(),
	})

	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	return signed, nil
}

func (s *service) validateToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(s.config.JWTSecret), nil
		},
		jwt.WithIssuer(s.config.FQDN),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
