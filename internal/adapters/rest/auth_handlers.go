package rest

import (
	"encoding/json"
	"errors"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"listing-portal/internal/core/port/usecases_port"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// AuthHandler принимает сессию, выданную страницей логина, и завершает ее.
// Сам логин живет вне портала.
type AuthHandler struct {
	store          SessionStore
	guard          *SessionGuard
	verifyUC       usecases_port.VerifySessionUseCasePort
	allowedOrigins []string
	cfg            PageConfig
}

func NewAuthHandler(
	store SessionStore,
	guard *SessionGuard,
	verifyUC usecases_port.VerifySessionUseCasePort,
	allowedOrigins []string,
	cfg PageConfig,
) *AuthHandler {
	return &AuthHandler{store: store, guard: guard, verifyUC: verifyUC, allowedOrigins: allowedOrigins, cfg: cfg}
}

const maxSessionBodyBytes = 16 << 10

type sessionRequest struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type sessionResponse struct {
	Success    bool   `json:"success"`
	RedirectTo string `json:"redirectTo"`
}

// CreateSession обрабатывает POST /auth/session
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateSession"})

	// Чужой origin или не-JSON тело (простая form-отправка с другого сайта) - отказ до разбора.
	if !h.originAllowed(r) {
		logger.Warn("Session hand-off from foreign origin", port.Fields{"origin": r.Header.Get("Origin")})
		WriteJSONError(w, http.StatusForbidden, "Origin not allowed")
		return
	}
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req sessionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSessionBodyBytes)).Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		WriteJSONError(w, http.StatusBadRequest, "token is required")
		return
	}

	session := &domain.Session{Token: req.Token, User: req.User}
	if err := h.verifyUC.Execute(r.Context(), session); err != nil {
		if errors.Is(err, domain.ErrSessionRejected) {
			WriteJSONError(w, http.StatusUnauthorized, "Session rejected")
			return
		}
		WriteJSONError(w, http.StatusBadGateway, "Could not verify session")
		return
	}

	if err := h.store.Save(w, session); err != nil {
		logger.Error("Failed to save session", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	logger.Info("Session stored", port.Fields{"user": req.User.Email, "role": req.User.Role})
	RespondWithJSON(w, http.StatusOK, sessionResponse{Success: true, RedirectTo: h.guard.LandingPath(req.User.Role)})
}

// originAllowed: запрос без Origin (не из браузера) и со своего хоста пропускается,
// иначе origin должен быть в CORS_ALLOWED_ORIGINS.
func (h *AuthHandler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && u.Host == r.Host {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Logout обрабатывает GET|POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(w)
	http.Redirect(w, r, h.cfg.LoginPath, http.StatusSeeOther)
}

// Home отправляет пользователя на страницу его роли или на логин.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Load(r)
	if err != nil {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusFound)
		return
	}
	http.Redirect(w, r, h.guard.LandingPath(session.User.Role), http.StatusFound)
}
