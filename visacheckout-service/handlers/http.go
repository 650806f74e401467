package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/draftea/visa-checkout/visacheckout-service/application"
	"github.com/draftea/visa-checkout/visacheckout-service/domain"
	"github.com/draftea/visa-checkout/visacheckout-service/infrastructure"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// VisaCheckoutHandlers contains Visa Checkout HTTP handlers
type VisaCheckoutHandlers struct {
	createProfileRequest *application.CreateProfileRequest
	tokenize             *application.TokenizeVisaCheckout
	activityResult       *application.HandleActivityResult
	logger               *zap.Logger
}

// NewVisaCheckoutHandlers creates new Visa Checkout handlers
func NewVisaCheckoutHandlers(
	createProfileRequest *application.CreateProfileRequest,
	tokenize *application.TokenizeVisaCheckout,
	activityResult *application.HandleActivityResult,
	logger *zap.Logger,
) *VisaCheckoutHandlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisaCheckoutHandlers{
		createProfileRequest: createProfileRequest,
		tokenize:             tokenize,
		activityResult:       activityResult,
		logger:               logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateProfileRequest handles profile requests
func (h *VisaCheckoutHandlers) CreateProfileRequest(w http.ResponseWriter, r *http.Request) {
	profile, err := h.createProfileRequest.Execute(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Tokenize handles tokenization requests
func (h *VisaCheckoutHandlers) Tokenize(w http.ResponseWriter, r *http.Request) {
	var cmd application.TokenizeVisaCheckoutCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	nonce, err := h.tokenize.Tokenize(r.Context(), &cmd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, nonce)
}

// ActivityResult accepts activity results forwarded by the host
func (h *VisaCheckoutHandlers) ActivityResult(w http.ResponseWriter, r *http.Request) {
	var result application.ActivityResult
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
			return
		}
	}

	h.activityResult.Execute(r.Context(), &result)
	w.WriteHeader(http.StatusAccepted)
}

// RegisterRoutes registers Visa Checkout routes
func (h *VisaCheckoutHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/visa-checkout", func(r chi.Router) {
		r.Get("/profile", h.CreateProfileRequest)
		r.Post("/tokenize", h.Tokenize)
		r.Post("/activity-result", h.ActivityResult)
	})
}

func (h *VisaCheckoutHandlers) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("visa checkout request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var cfgErr *domain.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, infrastructure.ErrUnprocessableEntity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, infrastructure.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, infrastructure.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
