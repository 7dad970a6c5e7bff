package rest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/port"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц. Каждая страница парсится вместе с layout.html в отдельный набор шаблонов.
const (
	pageAdminListings  = "admin_listings.html"
	pageAgentDashboard = "agent_dashboard.html"
	pageAlert          = "alert.html"
	pageAccessDenied   = "access_denied.html"
)

// Renderer отрисовывает html-страницы портала. Все значения экранируются html/template.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"selectedIf": func(cond bool) template.HTMLAttr {
			if cond {
				return "selected"
			}
			return ""
		},
		"checkedIf": func(values []string, value string) template.HTMLAttr {
			for _, v := range values {
				if v == value {
					return "checked"
				}
			}
			return ""
		},
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{pageAdminListings, pageAgentDashboard, pageAlert, pageAccessDenied} {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render сначала пишет страницу в буфер, чтобы ошибка шаблона не оставила полуответ.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	logger := contextkeys.LoggerFromContext(r.Context())

	tmpl, ok := rd.pages[page]
	if !ok {
		logger.Error("Unknown page template", nil, port.Fields{"page": page})
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		logger.Error("Failed to render page", err, port.Fields{"page": page})
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// RenderAlert - аналог alert(): отдельная страница с сообщением и ссылкой назад.
func (rd *Renderer) RenderAlert(w http.ResponseWriter, r *http.Request, status int, message, backURL string) {
	rd.Render(w, r, status, pageAlert, alertView{
		pageChrome: pageChrome{Title: "Notice"},
		Message:    message,
		BackURL:    backURL,
	})
}
