package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"mortgage-agent/domain"
)

// DecisionService turns an accumulated profile into a buy/rent/borderline
// recommendation. The tie-break ladder is evaluated in a fixed order and
// the first matching rule wins; it is a heuristic, not a guaranteed
// optimum.
type DecisionService struct {
	policy   Policy
	mortgage *MortgageService
	logger   zerolog.Logger
}

func NewDecisionService(
	policy Policy,
	mortgage *MortgageService,
	logger zerolog.Logger,
) *DecisionService {
	return &DecisionService{policy: policy, mortgage: mortgage, logger: logger}
}

// Decide requires a property price; every other profile field is
// optional and only narrows the ladder.
func (s *DecisionService) Decide(
	profile domain.UserFinancialProfile,
) (domain.Recommendation, error) {

	if !profile.IsReadyForCalculation() {
		return domain.Recommendation{},
			fmt.Errorf("%w: property price is required for a recommendation", ErrInvalidInput)
	}

	price := *profile.PropertyPrice

	affordInput := domain.AffordabilityInput{PropertyPrice: price}
	if profile.DownPayment != nil {
		affordInput.DownPayment = *profile.DownPayment
	}

	afford, err := s.mortgage.Affordability(affordInput)
	if err != nil {
		return domain.Recommendation{}, err
	}

	amort, err := s.mortgage.MonthlyInstallment(domain.AmortizationInput{
		Principal:         afford.LoanAmount,
		AnnualRatePercent: s.policy.StandardAnnualRatePercent,
		TenureYears:       s.policy.MaxTenureYears,
	})
	if err != nil {
		return domain.Recommendation{}, err
	}

	maintenance := price * s.policy.AnnualMaintenanceRatio / 12
	ownCost := amort.MonthlyInstallment + maintenance

	facts := domain.SupportingFacts{
		Affordability:      afford,
		Amortization:       amort,
		MonthlyMaintenance: roundTo2Decimals(maintenance),
		MonthlyOwnCost:     roundTo2Decimals(ownCost),
	}

	verdict, reason := s.applyLadder(profile, amort.MonthlyInstallment, ownCost, &facts)

	s.logger.Debug().
		Str("verdict", string(verdict)).
		Float64("installment", amort.MonthlyInstallment).
		Msg("recommendation computed")

	return domain.Recommendation{Verdict: verdict, Reason: reason, Facts: facts}, nil
}

func (s *DecisionService) applyLadder(
	profile domain.UserFinancialProfile,
	installment float64,
	ownCost float64,
	facts *domain.SupportingFacts,
) (domain.Verdict, string) {

	if profile.PlanningYears != nil {
		years := *profile.PlanningYears
		if years < s.policy.ShortStayThresholdYears {
			return domain.VerdictRent, fmt.Sprintf(
				"A stay under %d years does not recover the transaction and upfront costs of buying.",
				s.policy.ShortStayThresholdYears)
		}
		if years > s.policy.LongStayThresholdYears {
			return domain.VerdictBuy, fmt.Sprintf(
				"Over %d years the equity you build up outweighs what you would pay in rent.",
				s.policy.LongStayThresholdYears)
		}
	}

	if profile.MonthlyRent != nil && *profile.MonthlyRent > 0 {
		rent := *profile.MonthlyRent
		if ownCost < rent {
			return domain.VerdictBuy,
				"Owning costs less per month than your current rent."
		}
		if ownCost > rent*(1+s.policy.RentTolerancePercent/100) {
			return domain.VerdictRent, fmt.Sprintf(
				"Owning exceeds your rent by more than %.0f%% per month; renting stays cheaper.",
				s.policy.RentTolerancePercent)
		}
		return domain.VerdictBuy,
			"Owning costs only slightly more than renting, which long-term equity absorbs."
	}

	if profile.MonthlyIncome != nil && *profile.MonthlyIncome > 0 {
		pct := installment / *profile.MonthlyIncome * 100
		rounded := roundTo2Decimals(pct)
		facts.EMIPercentOfIncome = &rounded
		if pct <= s.policy.MaxEMIPercentOfIncome {
			return domain.VerdictBuy, fmt.Sprintf(
				"The installment takes %.1f%% of your income, within the %.0f%% affordability cutoff.",
				pct, s.policy.MaxEMIPercentOfIncome)
		}
		return domain.VerdictRent, fmt.Sprintf(
			"The installment would take %.1f%% of your income, above the %.0f%% affordability cutoff.",
			pct, s.policy.MaxEMIPercentOfIncome)
	}

	return domain.VerdictBorderline,
		"Not enough information to decide; share how long you plan to stay, your current rent, or your monthly income."
}
