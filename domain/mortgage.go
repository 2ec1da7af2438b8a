package domain

type AffordabilityInput struct {
	PropertyPrice float64
	DownPayment   float64 // 0 means "use the policy minimum"
}

type AffordabilityResult struct {
	PropertyPrice float64 `json:"property_price"`
	DownPayment   float64 `json:"down_payment"`
	LoanAmount    float64 `json:"loan_amount"`
	UpfrontCosts  float64 `json:"upfront_costs"`
	TotalUpfront  float64 `json:"total_upfront"`
}

type AmortizationInput struct {
	Principal         float64
	AnnualRatePercent float64
	TenureYears       int
}

type AmortizationResult struct {
	MonthlyInstallment float64 `json:"monthly_installment"`
	TotalPayment       float64 `json:"total_payment"`
	TotalInterest      float64 `json:"total_interest"`
}

type Verdict string

const (
	VerdictBuy        Verdict = "Buy"
	VerdictRent       Verdict = "Rent"
	VerdictBorderline Verdict = "Borderline"
)

// SupportingFacts carries every number backing a recommendation,
// pre-rounded to 2 decimals. Downstream presenters must not recompute
// them.
type SupportingFacts struct {
	Affordability      AffordabilityResult `json:"affordability"`
	Amortization       AmortizationResult  `json:"amortization"`
	MonthlyMaintenance float64             `json:"monthly_maintenance"`
	MonthlyOwnCost     float64             `json:"monthly_own_cost"`
	EMIPercentOfIncome *float64            `json:"emi_percent_of_income,omitempty"`
}

type Recommendation struct {
	Verdict Verdict         `json:"verdict"`
	Reason  string          `json:"reason"`
	Facts   SupportingFacts `json:"supporting_facts"`
}
