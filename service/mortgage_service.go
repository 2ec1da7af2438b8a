package service

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

// roundTo2Decimals rounds a float64 to currency minor-unit precision.
// Applied once at the output boundary, never on intermediate values.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MortgageService holds the deterministic mortgage math: affordability
// splits and amortizing-loan installments. Pure functions of the input
// and the policy; the repository save is an audit side channel and never
// affects results.
type MortgageService struct {
	policy Policy
	repo   repository.CalculationRepository
	logger zerolog.Logger
}

func NewMortgageService(
	policy Policy,
	repo repository.CalculationRepository,
	logger zerolog.Logger,
) *MortgageService {
	return &MortgageService{policy: policy, repo: repo, logger: logger}
}

func (s *MortgageService) Policy() Policy {
	return s.policy
}

// Affordability derives down payment, loan principal and one-time upfront
// costs from a property price. A zero DownPayment means the buyer pays the
// policy minimum; a stated down payment replaces it and the loan shrinks
// accordingly, so down + loan == price either way. A stated down payment
// that would push the loan past the loan-to-value cap is rejected.
func (s *MortgageService) Affordability(
	input domain.AffordabilityInput,
) (domain.AffordabilityResult, error) {

	price := input.PropertyPrice
	if price <= 0 {
		return domain.AffordabilityResult{},
			fmt.Errorf("%w: property price must be > 0, got %.2f", ErrInvalidInput, price)
	}
	if price > MaxPropertyPrice {
		return domain.AffordabilityResult{},
			fmt.Errorf("%w: property price exceeds the maximum of %.0f AED", ErrInvalidInput, MaxPropertyPrice)
	}
	if input.DownPayment < 0 {
		return domain.AffordabilityResult{},
			fmt.Errorf("%w: down payment must not be negative", ErrInvalidInput)
	}
	if input.DownPayment >= price {
		return domain.AffordabilityResult{},
			fmt.Errorf("%w: down payment must be below the property price", ErrInvalidInput)
	}

	downPayment := input.DownPayment
	if downPayment == 0 {
		downPayment = price * s.policy.MinDownPaymentRatio
	}

	loan := price - downPayment
	if loan > price*s.policy.MaxLoanToValue+LoanBalanceTolerance {
		return domain.AffordabilityResult{},
			fmt.Errorf("%w: a down payment of %.2f keeps the loan above the %.0f%% loan-to-value cap",
				ErrInvalidInput, downPayment, s.policy.MaxLoanToValue*100)
	}
	upfront := price * s.policy.UpfrontCostRatio

	result := domain.AffordabilityResult{
		PropertyPrice: roundTo2Decimals(price),
		DownPayment:   roundTo2Decimals(downPayment),
		LoanAmount:    roundTo2Decimals(loan),
		UpfrontCosts:  roundTo2Decimals(upfront),
		TotalUpfront:  roundTo2Decimals(downPayment + upfront),
	}

	if err := s.repo.Save("affordability", result); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save affordability calculation")
	}

	return result, nil
}

// MonthlyInstallment computes the fixed EMI for a principal at an annual
// rate over a tenure. Zero principal and zero rate are guarded special
// cases: the first to avoid floating-point noise, the second to avoid a
// division by zero in the general formula.
func (s *MortgageService) MonthlyInstallment(
	input domain.AmortizationInput,
) (domain.AmortizationResult, error) {

	if input.Principal < 0 {
		return domain.AmortizationResult{},
			fmt.Errorf("%w: principal must not be negative", ErrInvalidInput)
	}
	if input.Principal > MaxPropertyPrice {
		return domain.AmortizationResult{},
			fmt.Errorf("%w: principal exceeds the maximum of %.0f AED", ErrInvalidInput, MaxPropertyPrice)
	}
	if input.AnnualRatePercent < 0 {
		return domain.AmortizationResult{},
			fmt.Errorf("%w: annual rate must not be negative", ErrInvalidInput)
	}
	if input.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.AmortizationResult{},
			fmt.Errorf("%w: annual rate exceeds the maximum of %.0f%%", ErrInvalidInput, MaxAnnualRatePercent)
	}
	if input.TenureYears <= 0 {
		return domain.AmortizationResult{},
			fmt.Errorf("%w: tenure years must be > 0, got %d", ErrInvalidInput, input.TenureYears)
	}
	if input.TenureYears > MaxSupportedTenureYears {
		return domain.AmortizationResult{},
			fmt.Errorf("%w: tenure exceeds the maximum of %d years", ErrInvalidInput, MaxSupportedTenureYears)
	}

	if input.Principal == 0 {
		return domain.AmortizationResult{}, nil
	}

	monthlyRate := input.AnnualRatePercent / 100 / 12
	n := float64(input.TenureYears * 12)

	var installment float64
	if monthlyRate == 0 {
		installment = input.Principal / n
	} else {
		factor := math.Pow(1+monthlyRate, n)
		installment = input.Principal * monthlyRate * factor / (factor - 1)
	}

	totalPayment := installment * n
	totalInterest := totalPayment - input.Principal

	result := domain.AmortizationResult{
		MonthlyInstallment: roundTo2Decimals(installment),
		TotalPayment:       roundTo2Decimals(totalPayment),
		TotalInterest:      roundTo2Decimals(totalInterest),
	}

	if err := s.repo.Save("amortization", result); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save amortization calculation")
	}

	return result, nil
}
