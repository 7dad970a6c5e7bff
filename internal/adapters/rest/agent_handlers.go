package rest

import (
	"errors"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/domain"
	"listing-portal/internal/core/port"
	"listing-portal/internal/core/port/usecases_port"
	"net/http"
)

// maxPropertyFormBytes - предел тела формы создания объявления.
const maxPropertyFormBytes = 256 << 10

// AgentHandler - дашборд агента и форма создания объявления.
type AgentHandler struct {
	propertiesUC usecases_port.LoadMyPropertiesUseCasePort
	statsUC      usecases_port.DashboardStatsUseCasePort
	profileUC    usecases_port.GetAgentProfileUseCasePort
	agentsUC     usecases_port.LoadAgentsUseCasePort
	createUC     usecases_port.CreatePropertyUseCasePort
	renderer     *Renderer
	cfg          PageConfig
}

func NewAgentHandler(
	propertiesUC usecases_port.LoadMyPropertiesUseCasePort,
	statsUC usecases_port.DashboardStatsUseCasePort,
	profileUC usecases_port.GetAgentProfileUseCasePort,
	agentsUC usecases_port.LoadAgentsUseCasePort,
	createUC usecases_port.CreatePropertyUseCasePort,
	renderer *Renderer,
	cfg PageConfig,
) *AgentHandler {
	return &AgentHandler{
		propertiesUC: propertiesUC,
		statsUC:      statsUC,
		profileUC:    profileUC,
		agentsUC:     agentsUC,
		createUC:     createUC,
		renderer:     renderer,
		cfg:          cfg,
	}
}

// Dashboard обрабатывает GET /agent/dashboard?view=overview|properties
func (h *AgentHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusFound)
		return
	}

	viewName := r.URL.Query().Get("view")
	if viewName != viewProperties {
		viewName = viewOverview
	}

	view := h.dashboard(r, session, viewName)
	h.renderer.Render(w, r, http.StatusOK, pageAgentDashboard, view)
}

// NewPropertyForm обрабатывает GET /agent/properties/new: открывает модальное окно с пустой формой.
func (h *AgentHandler) NewPropertyForm(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusFound)
		return
	}

	view := h.dashboard(r, session, viewProperties)
	view.Form = h.form(r, session, domain.PropertyForm{})
	view.Form.Busy = h.createUC.InFlight(session)
	h.renderer.Render(w, r, http.StatusOK, pageAgentDashboard, view)
}

// CreateProperty обрабатывает POST /agent/properties
func (h *AgentHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	session, ok := sessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, h.cfg.LoginPath, http.StatusFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPropertyFormBytes)
	if err := r.ParseForm(); err != nil {
		logger.Warn("Failed to parse form", port.Fields{"error": err.Error()})
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.renderer.RenderAlert(w, r, status, msgCreateFailed, "/agent/properties/new")
		return
	}
	form := propertyFormFromRequest(r)

	result, err := h.createUC.Execute(r.Context(), session, form)
	if err != nil {
		status, message := createFailure(err)
		view := h.dashboard(r, session, viewProperties)
		view.Form = h.form(r, session, form)
		view.Form.Error = message
		h.renderer.Render(w, r, status, pageAgentDashboard, view)
		return
	}

	// Успех: модальное окно закрыто, форма сброшена, список и счетчики обновлены.
	view := h.baseDashboard(r, session, viewProperties)
	view.Notice = msgPropertyCreated
	if result.RefreshErr != nil {
		view.Error = msgPropertiesLoadError
	} else {
		view.setProperties(result.Listings, h.cfg)
	}
	if result.StatsErr == nil {
		view.setStats(result.Stats)
	}
	h.renderer.Render(w, r, http.StatusOK, pageAgentDashboard, view)
}

func createFailure(err error) (int, string) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationErr.Message
	}
	return failureStatus(err), domain.FailureMessage(err, msgCreateFailed)
}

// baseDashboard - шапка дашборда: профиль агента. Ошибка профиля только логируется.
func (h *AgentHandler) baseDashboard(r *http.Request, session *domain.Session, viewName string) agentDashboardView {
	view := newAgentDashboardView(session.User, viewName)
	if agent, err := h.profileUC.Execute(r.Context(), session); err == nil {
		view.setAgent(agent)
	}
	return view
}

// dashboard - полная страница: профиль, счетчики и, для вкладки properties, список объявлений.
func (h *AgentHandler) dashboard(r *http.Request, session *domain.Session, viewName string) agentDashboardView {
	view := h.baseDashboard(r, session, viewName)

	if stats, err := h.statsUC.Execute(r.Context(), session); err == nil {
		view.setStats(stats)
	}

	if viewName == viewProperties {
		properties, err := h.propertiesUC.Execute(r.Context(), session)
		if err != nil {
			view.Error = msgPropertiesLoadError
		} else {
			view.setProperties(properties, h.cfg)
		}
	}
	return view
}

func (h *AgentHandler) form(r *http.Request, session *domain.Session, values domain.PropertyForm) *propertyFormView {
	agents, err := h.agentsUC.Execute(r.Context(), session, values.AssignedAgentID)
	form := newPropertyFormView(values, agents)
	if err != nil {
		form.Agents = domain.AgentOptions(nil, "", session.User)
		form.Error = msgAgentsLoadError
	}
	return form
}

func propertyFormFromRequest(r *http.Request) domain.PropertyForm {
	return domain.PropertyForm{
		Title:            r.PostFormValue("title"),
		Address:          r.PostFormValue("address"),
		Price:            r.PostFormValue("price"),
		Type:             r.PostFormValue("type"),
		Status:           r.PostFormValue("status"),
		Description:      r.PostFormValue("description"),
		Bedrooms:         r.PostFormValue("bedrooms"),
		Bathrooms:        r.PostFormValue("bathrooms"),
		AreaSqFt:         r.PostFormValue("areaSqFt"),
		ImageURL:         r.PostFormValue("imageUrl"),
		AdditionalImages: r.PostFormValue("additionalImages"),
		Facilities:       r.PostForm["facilities[]"],
		HouseRules:       r.PostFormValue("houseRules"),
		AssignedAgentID:  r.PostFormValue("assignedAgentId"),
	}
}
