package rest

import (
	"context"
	"errors"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"net/http"
	"strings"
)

// SessionStore читает и пишет сессию в cookie браузера.
type SessionStore interface {
	Load(r *http.Request) (*domain.Session, error)
	Save(w http.ResponseWriter, session *domain.Session) error
	Clear(w http.ResponseWriter)
}

type ctxKey string

const sessionKey ctxKey = "session"

func contextWithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

func sessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.Session)
	return session, ok && session != nil
}

// SessionGuard пускает на страницу только пользователя с нужной ролью.
type SessionGuard struct {
	store    SessionStore
	renderer *Renderer
	cfg      PageConfig
}

func NewSessionGuard(store SessionStore, renderer *Renderer, cfg PageConfig) *SessionGuard {
	return &SessionGuard{store: store, renderer: renderer, cfg: cfg}
}

// LandingPath - домашняя страница для роли.
func (g *SessionGuard) LandingPath(role string) string {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case domain.RoleAdmin:
		return adminListingsPath
	case domain.RoleAgent:
		return agentDashboardPath
	default:
		return g.cfg.UserLandingPath
	}
}

// RequireRole: нет сессии - redirect на логин, другая роль - 403 с блокирующим сообщением и переходом на свою страницу.
func (g *SessionGuard) RequireRole(role, deniedMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
				"component":     "SessionGuard",
				"required_role": role,
			})

			session, err := g.store.Load(r)
			if err != nil {
				if !errors.Is(err, domain.ErrNoSession) {
					logger.Error("Failed to load session", err, nil)
				} else {
					logger.Debug("No session, redirecting to login", port.Fields{"reason": err.Error()})
				}
				http.Redirect(w, r, g.cfg.LoginPath, http.StatusFound)
				return
			}

			if !session.HasRole(role) {
				landing := g.LandingPath(session.User.Role)
				logger.Warn("Access denied", port.Fields{"user_role": session.User.Role, "redirect_to": landing})
				g.renderer.Render(w, r, http.StatusForbidden, pageAccessDenied, accessDeniedView{
					pageChrome: pageChrome{Title: "Access Denied"},
					Message:    deniedMessage,
					RedirectTo: landing,
				})
				return
			}

			ctx := contextkeys.ContextWithLogger(r.Context(), contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
				"user": session.User.Email,
			}))
			next.ServeHTTP(w, r.WithContext(contextWithSession(ctx, session)))
		})
	}
}
