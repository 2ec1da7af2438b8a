package http

import (
	"encoding/json"
	"net/http"

	"mortgage-agent/domain"
	"mortgage-agent/service"
)

type MortgageHandler struct {
	mortgage *service.MortgageService
	advisor  *service.AdvisorService
}

func NewMortgageHandler(
	mortgage *service.MortgageService,
	advisor *service.AdvisorService,
) *MortgageHandler {
	return &MortgageHandler{mortgage: mortgage, advisor: advisor}
}

type affordabilityRequest struct {
	PropertyPrice float64 `json:"property_price"`
	DownPayment   float64 `json:"down_payment"`
}

func (h *MortgageHandler) Affordability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req affordabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.mortgage.Affordability(domain.AffordabilityInput{
		PropertyPrice: req.PropertyPrice,
		DownPayment:   req.DownPayment,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type emiRequest struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TenureYears       int     `json:"tenure_years"`
}

func (h *MortgageHandler) MonthlyInstallment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req emiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.mortgage.MonthlyInstallment(domain.AmortizationInput{
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TenureYears:       req.TenureYears,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type evaluateRequest struct {
	Message string                      `json:"message"`
	Profile domain.UserFinancialProfile `json:"profile"`
}

type evaluateResponse struct {
	Profile        domain.UserFinancialProfile `json:"profile"`
	Recommendation *domain.Recommendation      `json:"recommendation,omitempty"`
}

// Evaluate is the stateless core boundary: callers own the profile and
// pass it back in on every turn.
func (h *MortgageHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	profile, rec, err := h.advisor.Evaluate(req.Message, req.Profile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{Profile: profile, Recommendation: rec})
}
