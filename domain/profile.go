package domain

// UserFinancialProfile accumulates the facts extracted from one
// conversation. All amounts are AED. Nil means the user never stated the
// field; PlanningYears keeps a pointer so an explicit "0 years" is
// distinguishable from "not stated".
type UserFinancialProfile struct {
	MonthlyIncome *float64 `json:"monthly_income,omitempty"`
	PropertyPrice *float64 `json:"property_price,omitempty"`
	MonthlyRent   *float64 `json:"monthly_rent,omitempty"`
	DownPayment   *float64 `json:"down_payment,omitempty"`
	PlanningYears *int     `json:"planning_years,omitempty"`
}

// Merge applies a partial update onto a profile, last write wins per
// field. Both inputs are left untouched.
func Merge(profile UserFinancialProfile, update UserFinancialProfile) UserFinancialProfile {
	if update.MonthlyIncome != nil {
		profile.MonthlyIncome = update.MonthlyIncome
	}
	if update.PropertyPrice != nil {
		profile.PropertyPrice = update.PropertyPrice
	}
	if update.MonthlyRent != nil {
		profile.MonthlyRent = update.MonthlyRent
	}
	if update.DownPayment != nil {
		profile.DownPayment = update.DownPayment
	}
	if update.PlanningYears != nil {
		profile.PlanningYears = update.PlanningYears
	}
	return profile
}

// IsReadyForCalculation reports whether a recommendation can be computed.
// The property price is the only hard requirement; every other field only
// feeds the fallback ladder.
func (p UserFinancialProfile) IsReadyForCalculation() bool {
	return p.PropertyPrice != nil && *p.PropertyPrice > 0
}

// IsEmpty reports whether no field has been extracted yet.
func (p UserFinancialProfile) IsEmpty() bool {
	return p.MonthlyIncome == nil && p.PropertyPrice == nil &&
		p.MonthlyRent == nil && p.DownPayment == nil && p.PlanningYears == nil
}
