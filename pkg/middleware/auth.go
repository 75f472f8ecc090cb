package middleware

import (
	"context"
	"net/http"
	"time"

	"blog/pkg/logger"
	"blog/pkg/sessions"
	"blog/pkg/user"
)

type (
	IUserRepo interface {
		GetById(context.Context, string) (*user.User, error)
	}
	ISessionManager interface {
		UserFromRequest(*http.Request) (*user.User, error)
	}
	Auth struct {
		UserRepo       IUserRepo
		SessionManager ISessionManager
	}
)

func NewAuthMiddleware(sm ISessionManager, ur IUserRepo) *Auth {
	return &Auth{
		UserRepo:       ur,
		SessionManager: sm,
	}
}

// Middleware resolves the session cookie into a viewer identity and puts
// it on the request context. A missing, invalid or stale session makes the
// request anonymous rather than failing it; every route here is reachable
// anonymously and decides on its own what anonymity means.
func (auth Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userFromToken, err := auth.SessionManager.UserFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		repoCtx, repoCtxCancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer repoCtxCancel()
		u, err := auth.UserRepo.GetById(repoCtx, userFromToken.Id)
		if err != nil {
			logger.Log(r.Context()).Errorf("auth: can't get the user from repo: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessions.SessionKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
