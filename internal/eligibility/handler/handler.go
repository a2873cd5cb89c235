package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"carelink/internal/eligibility/models"
	id "carelink/pkg/domain"
	dErrors "carelink/pkg/domain-errors"
	"carelink/pkg/platform/httputil"
	"carelink/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	CheckEligibility(ctx context.Context, input models.CheckInput) (*models.Check, error)
	GetHistory(ctx context.Context, req models.HistoryRequest) ([]*models.Check, int, error)
	GetCheckByID(ctx context.Context, checkID id.CheckID) (*models.Check, error)
	SupportedInsurers() []string
}

// Handler wires eligibility endpoints to the eligibility service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/eligibility/check", h.HandleCheck)
	r.Get("/eligibility/history", h.HandleHistory)
	r.Get("/eligibility/insurers", h.HandleListInsurers)
	r.Get("/eligibility/{checkID}", h.HandleGetCheck)
}

// HandleCheck handles POST /eligibility/check requests.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.Decode[models.CheckEligibilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	check, err := h.service.CheckEligibility(ctx, req.Input())
	if err != nil {
		h.logger.ErrorContext(ctx, "eligibility check failed",
			"request_id", requestID,
			"insurance_company", req.InsuranceCompany,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility check served",
		"request_id", requestID,
		"check_id", check.ID,
		"status", check.ResultStatus(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, models.CheckResponseFrom(check))
}

// HandleHistory handles GET /eligibility/history requests.
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseHistoryRequest(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	checks, total, err := h.service.GetHistory(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "history query failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	items := make([]models.HistoryItem, 0, len(checks))
	for _, check := range checks {
		items = append(items, models.HistoryItemFrom(check))
	}
	httputil.WriteJSON(w, http.StatusOK, models.HistoryResponse{
		Data:       items,
		Pagination: models.NewPagination(req.Page, req.Limit, total),
	})
}

// HandleGetCheck handles GET /eligibility/{checkID} requests.
func (h *Handler) HandleGetCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checkID, err := id.ParseCheckID(chi.URLParam(r, "checkID"))
	if err != nil {
		// Malformed IDs and missing records look the same to callers.
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "eligibility check not found"))
		return
	}

	check, err := h.service.GetCheckByID(ctx, checkID)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "check lookup failed",
				"request_id", requestcontext.RequestID(ctx),
				"check_id", checkID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.CheckResponseFrom(check))
}

// HandleListInsurers handles GET /eligibility/insurers requests.
func (h *Handler) HandleListInsurers(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.SupportedInsurers())
}

func parseHistoryRequest(r *http.Request) (models.HistoryRequest, error) {
	req := models.HistoryRequest{
		Page:  1,
		Limit: models.DefaultPageLimit,
	}

	q := r.URL.Query()
	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, dErrors.New(dErrors.CodeBadRequest, "page must be an integer")
		}
		req.Page = page
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return req, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
		}
		req.Limit = limit
	}
	if raw := q.Get("start_date"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return req, dErrors.New(dErrors.CodeBadRequest, "start_date must be an ISO date (YYYY-MM-DD)")
		}
		req.StartDate = &d
	}
	if raw := q.Get("end_date"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			return req, dErrors.New(dErrors.CodeBadRequest, "end_date must be an ISO date (YYYY-MM-DD)")
		}
		req.EndDate = &d
	}

	return req, req.Validate()
}
