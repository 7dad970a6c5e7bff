package rest

import (
	"errors"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"listing-portal/internal/core/port/usecases_port"
	"net/http"
)

// AdminHandler - страница модерации ожидающих объявлений.
type AdminHandler struct {
	loadUC    usecases_port.LoadPendingListingsUseCasePort
	approveUC usecases_port.ApproveListingUseCasePort
	rejectUC  usecases_port.RejectListingUseCasePort
	renderer  *Renderer
	cfg       PageConfig
}

func NewAdminHandler(
	loadUC usecases_port.LoadPendingListingsUseCasePort,
	approveUC usecases_port.ApproveListingUseCasePort,
	rejectUC usecases_port.RejectListingUseCasePort,
	renderer *Renderer,
	cfg PageConfig,
) *AdminHandler {
	return &AdminHandler{
		loadUC:    loadUC,
		approveUC: approveUC,
		rejectUC:  rejectUC,
		renderer:  renderer,
		cfg:       cfg,
	}
}

// ListPending обрабатывает GET /admin/listings
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusFound)
		return
	}

	view := newAdminPageView(session.User)
	listings, err := h.loadUC.Execute(r.Context(), session)
	if err != nil {
		view.Error = msgPendingLoadError
	} else {
		view.setListings(listings, h.cfg)
	}
	h.renderer.Render(w, r, http.StatusOK, pageAdminListings, view)
}

// Approve обрабатывает POST /admin/listings/{id}/approve
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "Approve", msgListingApproved, msgErrorApproving,
		func(session *domain.Session, id int64) (*domain.ActionResult, error) {
			decision := domain.ApprovalDecision{
				Confirmed: isConfirmed(r.PostFormValue("confirm")),
				Message:   r.PostFormValue("message"),
			}
			return h.approveUC.Execute(r.Context(), session, id, decision)
		})
}

// Reject обрабатывает POST /admin/listings/{id}/reject
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "Reject", msgListingRejected, msgErrorRejecting,
		func(session *domain.Session, id int64) (*domain.ActionResult, error) {
			return h.rejectUC.Execute(r.Context(), session, id, r.PostFormValue("reason"))
		})
}

func (h *AdminHandler) moderate(
	w http.ResponseWriter,
	r *http.Request,
	handlerName, successNotice, transportError string,
	run func(session *domain.Session, id int64) (*domain.ActionResult, error),
) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": handlerName})

	session, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusFound)
		return
	}

	id, ok := listingIDParam(r)
	if !ok {
		h.renderer.RenderAlert(w, r, http.StatusBadRequest, msgInvalidListingID, adminListingsPath)
		return
	}

	result, err := run(session, id)
	if err != nil {
		var backendErr *domain.BackendError
		if errors.As(err, &backendErr) {
			message := backendErr.Message
			if message == "" {
				message = msgUnknownError
			}
			h.renderer.RenderAlert(w, r, failureStatus(err), "Failed: "+message, adminListingsPath)
			return
		}
		logger.Error("Moderation request failed", err, port.Fields{"listing_id": id})
		h.renderer.RenderAlert(w, r, http.StatusBadGateway, transportError, adminListingsPath)
		return
	}

	if result.Aborted {
		// Отмена: ничего не отправлено, страница остается как есть.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	view := newAdminPageView(session.User)
	view.Notice = successNotice
	if result.RefreshErr != nil {
		view.Error = msgPendingLoadError
	} else {
		view.setListings(result.Listings, h.cfg)
	}
	h.renderer.Render(w, r, http.StatusOK, pageAdminListings, view)
}
