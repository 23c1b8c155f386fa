package handlers

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ravico/dinefinder/internal/logging"
)

//go:embed assets/css/*.css
var assetsFS embed.FS

// StaticHandler serves the embedded stylesheet with ETag based caching
type StaticHandler struct {
	cssContent []byte
	cssETag    string
	logger     zerolog.Logger
}

// NewStaticHandler creates a new static asset handler
func NewStaticHandler() (*StaticHandler, error) {
	logger := logging.GetLogger("static-handler")

	css, err := assetsFS.ReadFile("assets/css/app.css")
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read embedded CSS")
		return nil, fmt.Errorf("failed to read CSS file: %w", err)
	}

	hash := sha256.Sum256(css)
	etag := fmt.Sprintf("%q", hex.EncodeToString(hash[:]))
	logger.Debug().Str("etag", etag).Int("content_size", len(css)).Msg("Cached CSS with ETag")

	return &StaticHandler{
		cssContent: css,
		cssETag:    etag,
		logger:     logger,
	}, nil
}

// RegisterRoutes registers static asset routes
func (h *StaticHandler) RegisterRoutes() {
	http.HandleFunc("/static/css/app.css", h.handleCSS)
}

func (h *StaticHandler) handleCSS(w http.ResponseWriter, r *http.Request) {
	if match := r.Header.Get("If-None-Match"); match == h.cssETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("ETag", h.cssETag)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(h.cssContent); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write CSS response")
	}
}
