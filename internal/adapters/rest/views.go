package rest

import (
	"encoding/json"
	"listing-portal/internal/core/domain"
	"strconv"
)

// PageConfig - настройки, нужные для отрисовки страниц.
type PageConfig struct {
	BackendBaseURL      string
	PlaceholderImageURL string
	ViewPropertyPath    string
	LoginPath           string
	UserLandingPath     string
}

// Тексты, которые видит пользователь.
const (
	msgListingApproved  = "Listing Approved!"
	msgListingRejected  = "Listing Rejected"
	msgErrorApproving   = "Error approving listing"
	msgErrorRejecting   = "Error rejecting listing"
	msgUnknownError     = "Unknown error"
	msgPendingLoadError = "Failed to load pending listings. Please try again."
	msgNoPending        = "No pending approvals."

	msgPropertiesLoadError = "Failed to load properties. Please try again."
	msgNoProperties        = "No properties found. Add your first listing!"
	msgPropertyCreated     = "Property created successfully."
	msgCreateFailed        = "Failed to create property."
	msgAgentsLoadError     = "Failed to load agents."

	msgInvalidListingID = "Invalid listing id"
)

const (
	viewOverview   = "overview"
	viewProperties = "properties"

	adminListingsPath  = "/admin/listings"
	agentDashboardPath = "/agent/dashboard"
)

type pageChrome struct {
	Title  string
	Notice string
	Error  string
}

type alertView struct {
	pageChrome
	Message string
	BackURL string
}

type accessDeniedView struct {
	pageChrome
	Message    string
	RedirectTo string
}

// --- страница администратора ---

type pendingCardView struct {
	ID        int64
	Title     string
	Address   string
	Price     string
	Owner     string
	DriveLink string
	ImageURL  string
}

type adminPageView struct {
	pageChrome
	AdminName  string
	AdminEmail string
	Listings   []pendingCardView
	Loaded     bool
	EmptyText  string
	// DefaultApprovalMessage - предзаполненное сообщение в форме одобрения.
	DefaultApprovalMessage string
}

func newAdminPageView(user domain.User) adminPageView {
	email := user.Email
	if email == "" {
		email = "admin@example.com"
	}
	return adminPageView{
		pageChrome:             pageChrome{Title: "Pending Listings"},
		AdminName:              user.DisplayName("Admin"),
		AdminEmail:             email,
		EmptyText:              msgNoPending,
		DefaultApprovalMessage: "Your listing has been approved.",
	}
}

func (v *adminPageView) setListings(listings []domain.Property, cfg PageConfig) {
	v.Loaded = true
	v.Listings = make([]pendingCardView, len(listings))
	for i, p := range listings {
		v.Listings[i] = pendingCardView{
			ID:        p.ID,
			Title:     p.Title,
			Address:   p.Address,
			Price:     domain.PriceLabel(p.Price),
			Owner:     domain.OrDefault(p.OwnerEmail, "Agent"),
			DriveLink: p.DriveLink,
			ImageURL:  p.ImageSource(cfg.BackendBaseURL, cfg.PlaceholderImageURL),
		}
	}
}

// --- дашборд агента ---

type propertyRowView struct {
	ID         int64
	Title      string
	Type       string
	Address    string
	Price      string
	Status     string
	BadgeClass string
	ImageURL   string
	ViewURL    string
}

type propertyFormView struct {
	Values     domain.PropertyForm
	Agents     []domain.AgentOption
	Error      string
	Busy       bool
	Types      []string
	Statuses   []string
	Facilities []string
}

type agentDashboardView struct {
	pageChrome
	View string

	UserName  string
	FirstName string
	AvatarURL string

	ListingsCount string
	ChartJSON     string

	Properties       []propertyRowView
	PropertiesLoaded bool
	CountLabel       string
	EmptyText        string

	Form *propertyFormView
}

func newAgentDashboardView(user domain.User, view string) agentDashboardView {
	chart, _ := json.Marshal(domain.WeeklyInquiries())
	name := user.DisplayName("Agent")
	return agentDashboardView{
		pageChrome:    pageChrome{Title: "Agent Dashboard"},
		View:          view,
		UserName:      name,
		FirstName:     domain.Agent{Name: name}.FirstName(),
		ListingsCount: "0",
		ChartJSON:     string(chart),
		CountLabel:    domain.CountLabel(0),
		EmptyText:     msgNoProperties,
	}
}

func (v *agentDashboardView) setAgent(agent *domain.Agent) {
	if agent == nil {
		return
	}
	if agent.Name != "" {
		v.UserName = agent.Name
		v.FirstName = agent.FirstName()
	}
	v.AvatarURL = agent.ProfileImageURL
}

func (v *agentDashboardView) setProperties(properties []domain.Property, cfg PageConfig) {
	v.PropertiesLoaded = true
	v.CountLabel = domain.CountLabel(len(properties))
	v.Properties = make([]propertyRowView, len(properties))
	for i, p := range properties {
		status := p.DisplayStatus()
		v.Properties[i] = propertyRowView{
			ID:         p.ID,
			Title:      domain.OrDefault(p.Title, "Untitled"),
			Type:       domain.OrDefault(p.Type, "N/A"),
			Address:    domain.OrDefault(p.Address, "N/A"),
			Price:      domain.PriceLabel(p.Price),
			Status:     string(status),
			BadgeClass: domain.StatusBadgeClass(status),
			ImageURL:   p.ImageSource(cfg.BackendBaseURL, cfg.PlaceholderImageURL),
			ViewURL:    cfg.ViewPropertyPath + "?id=" + strconv.FormatInt(p.ID, 10),
		}
	}
}

func (v *agentDashboardView) setStats(stats domain.DashboardStats) {
	v.ListingsCount = domain.FormatCount(stats.ListingsCount)
}

func newPropertyFormView(values domain.PropertyForm, agents []domain.AgentOption) *propertyFormView {
	if values.Status == "" {
		values.Status = string(domain.StatusAvailable)
	}
	return &propertyFormView{
		Values:     values,
		Agents:     agents,
		Types:      []string{"House", "Apartment", "Villa", "Land", "Commercial"},
		Statuses:   []string{string(domain.StatusAvailable), string(domain.StatusSold), string(domain.StatusRented)},
		Facilities: []string{"Parking", "Swimming Pool", "Gym", "Security", "Garden", "Air Conditioning", "WiFi", "Elevator"},
	}
}
