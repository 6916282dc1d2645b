package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"go-shortlink/internal/urlservice/domain"
	"go-shortlink/internal/urlservice/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for short link operations
type Handler struct {
	service *usecase.URLService
	baseURL string
	logger  *zap.Logger
}

// NewHandler creates a new Handler. An empty baseURL makes short links
// use the scheme and host of the incoming request.
func NewHandler(service *usecase.URLService, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// CreateShortURLRequest represents the request body for creating a short URL
type CreateShortURLRequest struct {
	URL       string `json:"url"`
	Validity  any    `json:"validity,omitempty"`
	ShortCode string `json:"shortcode,omitempty"`
}

// CreateShortURLResponse represents the response for a created short URL
type CreateShortURLResponse struct {
	ShortLink string `json:"shortLink"`
	Expiry    string `json:"expiry"`
}

// ClickResponse is one recorded redirect
type ClickResponse struct {
	Timestamp string `json:"timestamp"`
	Referrer  string `json:"referrer"`
	Geo       string `json:"geo"`
}

// StatsResponse represents the statistics of one short URL
type StatsResponse struct {
	OriginalURL string          `json:"originalUrl"`
	CreatedAt   string          `json:"createdAt"`
	Expiry      string          `json:"expiry"`
	TotalClicks int             `json:"totalClicks"`
	Clicks      []ClickResponse `json:"clicks"`
}

// CreateShortURL handles POST /shorturls
func (h *Handler) CreateShortURL(w http.ResponseWriter, r *http.Request) {
	var req CreateShortURLRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Request body must be valid JSON with a 'url' field.")
		return
	}

	link, err := h.service.Create(r.Context(), usecase.CreateParams{
		URL:       req.URL,
		Validity:  req.Validity,
		ShortCode: req.ShortCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidURL):
			writeError(w, http.StatusBadRequest, "Invalid or missing URL.")
		case errors.Is(err, domain.ErrInvalidShortcodeFormat):
			writeError(w, http.StatusBadRequest, "Invalid shortcode format. Must be alphanumeric, 4-10 chars.")
		case errors.Is(err, domain.ErrShortcodeCollision):
			writeError(w, http.StatusConflict, "Shortcode already in use.")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, CreateShortURLResponse{
		ShortLink: h.shortLink(r, link.ShortCode),
		Expiry:    isoTime(link.ExpiresAt),
	})
}

// GetStats handles GET /shorturls/{shortcode}
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortcode")

	link, err := h.service.Stats(r.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrShortcodeNotFound) {
			writeError(w, http.StatusNotFound, "Shortcode does not exist.")
			return
		}

		h.logger.Error("failed to load stats", zap.String("short_code", code), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{
		OriginalURL: link.OriginalURL,
		CreatedAt:   isoTime(link.CreatedAt),
		Expiry:      isoTime(link.ExpiresAt),
		TotalClicks: link.TotalClicks(),
		Clicks: lo.Map(link.Clicks, func(c domain.Click, _ int) ClickResponse {
			return ClickResponse{
				Timestamp: isoTime(c.Timestamp),
				Referrer:  c.Referrer,
				Geo:       c.Geo,
			}
		}),
	})
}

// Redirect handles GET /{shortcode}
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortcode")

	clientIP := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		clientIP = host
	}

	target, err := h.service.Resolve(r.Context(), code, usecase.Visit{
		Referrer: r.Header.Get("Referer"),
		ClientIP: clientIP,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShortcodeNotFound):
			writeError(w, http.StatusNotFound, "Shortcode not found.")
		case errors.Is(err, domain.ErrShortcodeExpired):
			writeError(w, http.StatusGone, "Shortcode expired.")
		default:
			h.logger.Error("failed to resolve short code", zap.String("short_code", code), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Links  int    `json:"links"`
}

// Healthz handles GET /_healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Links:  h.service.Count(r.Context()),
	})
}

func (h *Handler) shortLink(r *http.Request, code string) string {
	if h.baseURL != "" {
		return h.baseURL + "/" + code
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0]))
	}
	return scheme + "://" + r.Host + "/" + code
}
