package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"meddelivery/internal/entities"
	"meddelivery/pkg/logger"
)

type contextKey struct{}

var actorKey contextKey

var (
	ErrNoToken      = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware разбирает Bearer-токен и кладет актора (id + роль) в контекст.
// Никаких специальных токенов: все роли, включая admin, проходят один и
// тот же путь разбора.
func Middleware(log handlerLogger, secret string) func(http.Handler) http.Handler {
	authLog := log.With(logger.NewField("middleware", "auth"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := parseActor(r, secret)
			if err != nil {
				authLog.Warn("unauthorized request",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func parseActor(r *http.Request, secret string) (entities.Actor, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return entities.Actor{}, ErrNoToken
	}

	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return entities.Actor{}, ErrNoToken
	}

	var tokenClaims claims
	token, err := jwt.ParseWithClaims(raw, &tokenClaims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(tokenClaims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return entities.Actor{}, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, tokenClaims.Subject)
	}

	role, ok := entities.ParseRole(tokenClaims.Role)
	if !ok {
		return entities.Actor{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, tokenClaims.Role)
	}

	return entities.Actor{ID: id, Role: role}, nil
}

// WithActor кладет актора в контекст так же, как это делает Middleware.
func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext достает актора, положенного Middleware.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}
