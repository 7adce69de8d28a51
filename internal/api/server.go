package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaharia-lab/salon-notify/internal/logger"
	"github.com/shaharia-lab/salon-notify/internal/service"
)

const (
	errInvalidJSONBody  = "invalid JSON body"
	errMethodNotAllowed = "Method not allowed"
	errInternal         = "Internal server error"

	// maxBodyBytes bounds request bodies; base64 PDFs are the largest payloads.
	maxBodyBytes = 15 << 20
)

// Server holds all dependencies for the REST API handlers.
type Server struct {
	checkoutSvc   service.CheckoutService
	whatsAppSvc   service.WhatsAppService
	emailLog      *slog.Logger
	whatsAppLog   *slog.Logger
	apiLog        *slog.Logger
	exposeDetails bool
}

// New creates a new API Server backed by the provided services. When
// exposeDetails is true, 500 responses carry the underlying error text.
func New(
	checkoutSvc service.CheckoutService,
	whatsAppSvc service.WhatsAppService,
	log *slog.Logger,
	exposeDetails bool,
) *Server {
	return &Server{
		checkoutSvc:   checkoutSvc,
		whatsAppSvc:   whatsAppSvc,
		emailLog:      logger.Component(log, "email-notifier"),
		whatsAppLog:   logger.Component(log, "whatsapp-notifier"),
		apiLog:        logger.Component(log, "api"),
		exposeDetails: exposeDetails,
	}
}

// Mount registers all API routes under the given router.
func (s *Server) Mount(r chi.Router) {
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	r.Post("/send-checkout-email", s.handleSendCheckoutEmail)
	r.Post("/send-whatsapp-bill", s.handleSendWhatsAppBill)
}

// ─── Shared helpers ───────────────────────────────────────────────────────────

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Note    string `json:"note,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.apiLog.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
	writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
}

// decodeBody decodes a bounded JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// writeServiceError maps a service error onto the HTTP error taxonomy.
func (s *Server) writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	var ve *service.ValidationError
	var ce *service.ConfigurationError
	var de *service.DeliveryError

	switch {
	case errors.As(err, &ve):
		log.Warn("request rejected", "error", ve.Message, "field", ve.Field)
		writeError(w, http.StatusBadRequest, ve.Message)
	case errors.As(err, &ce):
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: ce.Message, Note: ce.Note})
	case errors.As(err, &de):
		resp := errorResponse{Error: de.Message}
		if s.exposeDetails {
			resp.Details = de.Details()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	default:
		log.Error("unexpected error", "error", err)
		resp := errorResponse{Error: errInternal}
		if s.exposeDetails {
			resp.Details = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}
