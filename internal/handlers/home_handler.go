package handlers

import (
	"net/http"
)

// HomeHandler serves the query form page
type HomeHandler struct {
	*BaseHandler
}

// NewHomeHandler creates a new home page handler
func NewHomeHandler(baseHandler *BaseHandler) *HomeHandler {
	return &HomeHandler{
		BaseHandler: baseHandler,
	}
}

// RegisterRoutes registers home page related routes
func (h *HomeHandler) RegisterRoutes() {
	http.HandleFunc("/", h.handleHome)
}

// HomePageData contains data for the home page template
type HomePageData struct {
	BasePageData
	Date         string
	Time         string
	DateError    string
	TimeError    string
	ErrorMessage string
	// Searched is set once a valid query actually ran
	Searched bool
	Results  []string
}

// handleHome shows the query form and, when both fields are valid, the
// restaurants open at the requested instant. Invalid fields are marked
// without running the query; anything unexpected becomes one generic
// failure notice.
func (h *HomeHandler) handleHome(w http.ResponseWriter, r *http.Request) {
	handlerLogger := h.logger.With().Str("handler", "handleHome").Logger()

	defer func() {
		if p := recover(); p != nil {
			handlerLogger.Error().Interface("panic", p).Msg("Panic while handling home page request")
			http.Error(w, GetErrorMessage(ErrCodeUnknown), http.StatusInternalServerError)
		}
	}()

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	handlerLogger.Debug().Str("method", r.Method).Msg("Handling home page request")

	query := r.URL.Query()
	data := HomePageData{
		BasePageData: h.NewBasePageData(),
		Date:         query.Get("date"),
		Time:         query.Get("time"),
	}

	if query.Has("date") || query.Has("time") {
		if err := h.Session.ValidateDate(data.Date); err != nil {
			data.DateError = GetErrorMessage(ErrCodeInvalidDate)
		}
		if err := h.Session.ValidateTime(data.Time); err != nil {
			data.TimeError = GetErrorMessage(ErrCodeInvalidTime)
		}

		if data.DateError == "" && data.TimeError == "" {
			open, err := h.Session.FindOpen(data.Date, data.Time)
			if err != nil {
				// both fields validated above, so any failure here is unexpected
				handlerLogger.Error().Err(err).Msg("Query failed after validation")
				data.ErrorMessage = GetErrorMessage(ErrCodeQueryFailed)
			} else {
				data.Searched = true
				for _, restaurant := range open {
					data.Results = append(data.Results, restaurant.Name)
				}
			}
		}
	}

	h.RenderTemplate(w, "home.html", data)
}
