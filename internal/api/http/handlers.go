package httpapi

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pulsemetrics/analytics-manager/internal/apisrv/analytics"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/auth"
	"github.com/pulsemetrics/analytics-manager/internal/entity"
	gerr "github.com/pulsemetrics/analytics-manager/internal/errors"
	"github.com/pulsemetrics/analytics-manager/internal/ratelimit"
)

type handlers struct {
	auth      *auth.Server
	analytics *analytics.Server
	limiter   *ratelimit.ServiceLimiter
}

// clientIP strips the port from RemoteAddr; the RealIP middleware has
// already resolved forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	if err := h.limiter.CheckRegister(clientIP(r)); err != nil {
		respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, gerr.ErrMalformedRequest)
		return
	}
	token, err := h.auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, tokenResponse{Token: token})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	if err := h.limiter.CheckLogin(clientIP(r)); err != nil {
		respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, gerr.ErrMalformedRequest)
		return
	}
	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *handlers) runReport(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.limiter.CheckRunReport(userID); err != nil {
		respondJSON(w, http.StatusTooManyRequests, errorResponse{Error: err.Error()})
		return
	}
	var req entity.RunReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, gerr.ErrMalformedRequest)
		return
	}
	resp, err := h.analytics.RunReport(r.Context(), userID, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *handlers) addSource(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req entity.SourceInsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, gerr.ErrMalformedRequest)
		return
	}
	src, err := h.analytics.AddSource(r.Context(), userID, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, src)
}

func (h *handlers) listSources(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	sources, err := h.analytics.ListSources(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if sources == nil {
		sources = []entity.Source{}
	}
	respondJSON(w, http.StatusOK, sources)
}

func (h *handlers) getSource(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	src, err := h.analytics.GetSource(r.Context(), userID, chi.URLParam(r, "sourceID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, src)
}

func (h *handlers) deleteSource(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.analytics.DeleteSource(r.Context(), userID, chi.URLParam(r, "sourceID")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) addReport(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	var req entity.ReportInsert
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, gerr.ErrMalformedRequest)
		return
	}
	report, err := h.analytics.AddReport(r.Context(), userID, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

func (h *handlers) listReports(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	reports, err := h.analytics.ListReports(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if reports == nil {
		reports = []entity.ReportWithSource{}
	}
	respondJSON(w, http.StatusOK, reports)
}

func (h *handlers) getReport(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	report, err := h.analytics.GetReport(r.Context(), userID, chi.URLParam(r, "reportID"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *handlers) deleteReport(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.analytics.DeleteReport(r.Context(), userID, chi.URLParam(r, "reportID")); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode response",
			slog.String("err", err.Error()))
	}
}

// respondError maps service errors onto HTTP status codes. Unmapped errors
// are logged and surfaced as an opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, gerr.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, gerr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gerr.ErrMalformedRequest),
		errors.Is(err, gerr.ErrMissingSource),
		errors.Is(err, gerr.ErrMissingCredentials):
		status = http.StatusBadRequest
	case errors.Is(err, gerr.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, gerr.ErrUpstream):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
		slog.Default().ErrorContext(r.Context(), "internal error",
			slog.String("err", err.Error()))
		respondJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
