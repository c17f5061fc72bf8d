package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/senior-copycoders/Backend/internal/application/dto"
	"github.com/senior-copycoders/Backend/internal/application/usecase"
	"github.com/senior-copycoders/Backend/pkg/auth"
)

// CreditHandler serves the credit lifecycle: opening, schedule reads,
// payments, deletion, PDF export, payment previews, and policy constants.
type CreditHandler struct {
	generate  *usecase.GenerateScheduleUseCase
	payment   *usecase.ApplyPaymentUseCase
	schedule  *usecase.GetScheduleUseCase
	list      *usecase.ListCreditsUseCase
	remove    *usecase.DeleteCreditUseCase
	export    *usecase.ExportScheduleUseCase
	preview   *usecase.PreviewPaymentUseCase
	constants *usecase.GetCreditConstantsUseCase
	logger    *slog.Logger
}

// NewCreditHandler creates the credit HTTP handler.
func NewCreditHandler(
	generate *usecase.GenerateScheduleUseCase,
	payment *usecase.ApplyPaymentUseCase,
	schedule *usecase.GetScheduleUseCase,
	list *usecase.ListCreditsUseCase,
	remove *usecase.DeleteCreditUseCase,
	export *usecase.ExportScheduleUseCase,
	preview *usecase.PreviewPaymentUseCase,
	constants *usecase.GetCreditConstantsUseCase,
	logger *slog.Logger,
) *CreditHandler {
	return &CreditHandler{
		generate:  generate,
		payment:   payment,
		schedule:  schedule,
		list:      list,
		remove:    remove,
		export:    export,
		preview:   preview,
		constants: constants,
		logger:    logger,
	}
}

// RegisterRoutes attaches credit routes to the given mux.
func (h *CreditHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/credits", h.handleCreate)
	mux.HandleFunc("GET /api/v1/credits", h.handleList)
	mux.HandleFunc("GET /api/v1/credits/constants", h.handleConstants)
	mux.HandleFunc("GET /api/v1/credits/payment-preview", h.handlePreview)
	mux.HandleFunc("DELETE /api/v1/credits/{id}", h.handleDelete)
	mux.HandleFunc("GET /api/v1/credits/{id}/schedule", h.handleSchedule)
	mux.HandleFunc("POST /api/v1/credits/{id}/payments", h.handlePayment)
	mux.HandleFunc("GET /api/v1/credits/{id}/schedule/pdf", h.handleExport)
}

func (h *CreditHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing claims"})
		return
	}

	var req dto.CreateCreditRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.UserID = claims.UserID.String()

	resp, err := h.generate.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("credit rejected", "user_id", req.UserID, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *CreditHandler) handleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing claims"})
		return
	}

	resp, err := h.list.Execute(r.Context(), dto.ListCreditsRequest{UserID: claims.UserID.String()})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CreditHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.remove.Execute(r.Context(), dto.DeleteCreditRequest{CreditID: r.PathValue("id")})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CreditHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	resp, err := h.schedule.Execute(r.Context(), dto.GetScheduleRequest{CreditID: r.PathValue("id")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CreditHandler) handlePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.CreditID = r.PathValue("id")

	resp, err := h.payment.Execute(r.Context(), req)
	if err != nil {
		h.logger.Warn("payment rejected", "credit_id", req.CreditID, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CreditHandler) handleConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.constants.Execute(r.Context()))
}

// handlePreview reads credit parameters from query values, matching the way
// clients probe the payment before opening a credit.
func (h *CreditHandler) handlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	creditAmount, err := decimal.NewFromString(q.Get("credit_amount"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "credit_amount must be a number"})
		return
	}
	initialPayment := decimal.Zero
	if raw := q.Get("initial_payment"); raw != "" {
		if initialPayment, err = decimal.NewFromString(raw); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "initial_payment must be a number"})
			return
		}
	}
	annualRate, err := decimal.NewFromString(q.Get("annual_rate"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "annual_rate must be a number"})
		return
	}
	termMonths, err := strconv.Atoi(q.Get("term_months"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "term_months must be an integer"})
		return
	}

	resp, err := h.preview.Execute(r.Context(), dto.PreviewPaymentRequest{
		CreditAmount:   creditAmount,
		InitialPayment: initialPayment,
		AnnualRate:     annualRate,
		TermMonths:     termMonths,
		CreditType:     q.Get("credit_type"),
	})
	if err != nil {
		h.logger.Warn("preview rejected", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CreditHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.export.Execute(r.Context(), dto.ExportScheduleRequest{CreditID: r.PathValue("id")})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Content)
}
