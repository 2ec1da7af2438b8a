package service

// Policy holds the business-rule constants behind every calculation. The
// ratios are UAE central-bank style rules for expat buyers; RentTolerance
// and MaxEMIPercentOfIncome are heuristic thresholds with no derivation,
// kept configurable rather than hard-coded.
type Policy struct {
	MaxLoanToValue            float64 `mapstructure:"max_loan_to_value"`
	MinDownPaymentRatio       float64 `mapstructure:"min_down_payment_ratio"`
	UpfrontCostRatio          float64 `mapstructure:"upfront_cost_ratio"`
	StandardAnnualRatePercent float64 `mapstructure:"standard_annual_rate_percent"`
	MaxTenureYears            int     `mapstructure:"max_tenure_years"`
	ShortStayThresholdYears   int     `mapstructure:"short_stay_threshold_years"`
	LongStayThresholdYears    int     `mapstructure:"long_stay_threshold_years"`

	// AnnualMaintenanceRatio is a flat-rate proxy for upkeep, a policy
	// assumption rather than a measured quantity.
	AnnualMaintenanceRatio float64 `mapstructure:"annual_maintenance_ratio"`
	// RentTolerancePercent is how far monthly ownership cost may exceed
	// rent before renting wins the comparison.
	RentTolerancePercent float64 `mapstructure:"rent_tolerance_percent"`
	// MaxEMIPercentOfIncome is the affordability-by-income cutoff.
	MaxEMIPercentOfIncome float64 `mapstructure:"max_emi_percent_of_income"`
}

func DefaultPolicy() Policy {
	return Policy{
		MaxLoanToValue:            0.80,
		MinDownPaymentRatio:       0.20,
		UpfrontCostRatio:          0.07,
		StandardAnnualRatePercent: 4.5,
		MaxTenureYears:            25,
		ShortStayThresholdYears:   3,
		LongStayThresholdYears:    5,
		AnnualMaintenanceRatio:    0.0025,
		RentTolerancePercent:      10,
		MaxEMIPercentOfIncome:     40,
	}
}
