// Package handlers serves the query UI and JSON API around the
// availability session.
package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ravico/dinefinder/internal/availability"
	"github.com/ravico/dinefinder/internal/constants"
	"github.com/ravico/dinefinder/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

// BaseHandler contains common handler functionality
type BaseHandler struct {
	tmpl    *template.Template
	Session *availability.Session
	version string
	logger  zerolog.Logger
}

// BasePageData contains fields shared by all page templates
type BasePageData struct {
	AppName string
	Version string
}

// NewBaseHandler creates a common base handler with shared components
func NewBaseHandler(session *availability.Session, version string) (*BaseHandler, error) {
	logger := logging.GetLogger("base-handler")
	logger.Debug().Msg("Parsing templates")

	tmpl, err := template.New("").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse templates")
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &BaseHandler{
		tmpl:    tmpl,
		Session: session,
		version: version,
		logger:  logger,
	}, nil
}

// NewBasePageData builds the shared template data
func (h *BaseHandler) NewBasePageData() BasePageData {
	return BasePageData{
		AppName: constants.AppIdentifier,
		Version: h.version,
	}
}

// RenderTemplate renders a page template inside the layout
func (h *BaseHandler) RenderTemplate(w http.ResponseWriter, name string, data interface{}) {
	h.logger.Debug().Str("template_name", name).Msg("Executing template")

	tmpl, err := h.tmpl.Clone()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to clone template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	tmpl, err = tmpl.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		h.logger.Error().Err(err).Str("template_name", name).Msg("Failed to parse page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		h.logger.Error().Err(err).Str("template_name", name).Msg("Failed to execute template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
