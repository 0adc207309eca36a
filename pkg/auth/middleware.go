package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/affiliate/internal/domain"
	"github.com/GlebRadaev/affiliate/pkg/utils"
)

type ContextKey string

const ActorKey ContextKey = "actor"

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(domain.Actor)
	return actor, ok
}

func (s *JWTService) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		actor, err := s.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), *actor)))
	})
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok || !actor.IsAdmin() {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
