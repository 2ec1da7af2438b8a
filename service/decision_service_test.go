package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-agent/domain"
	"mortgage-agent/repository"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func newDecisionService() *DecisionService {
	policy := DefaultPolicy()
	mortgage := NewMortgageService(policy, repository.NewCalculationRepositoryMemory(), zerolog.Nop())
	return NewDecisionService(policy, mortgage, zerolog.Nop())
}

// Scenario A: price only, nothing to lean on.
func TestDecide_PriceOnlyIsBorderline(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictBorderline, rec.Verdict)
	assert.Equal(t, 400_000.0, rec.Facts.Affordability.DownPayment)
	assert.Equal(t, 1_600_000.0, rec.Facts.Affordability.LoanAmount)
	assert.Equal(t, 140_000.0, rec.Facts.Affordability.UpfrontCosts)
	assert.Equal(t, 540_000.0, rec.Facts.Affordability.TotalUpfront)
	assert.Equal(t, 8893.32, rec.Facts.Amortization.MonthlyInstallment)
	assert.Equal(t, 416.67, rec.Facts.MonthlyMaintenance)
	assert.Equal(t, 9309.99, rec.Facts.MonthlyOwnCost)
	assert.Nil(t, rec.Facts.EMIPercentOfIncome)
}

// Scenario B: short stay wins immediately.
func TestDecide_ShortStayRents(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRent, rec.Verdict)
}

// Scenario C: long stay wins immediately.
func TestDecide_LongStayBuys(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(6),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictBuy, rec.Verdict)
}

// Scenario D: mid stay falls through to the rent comparison. Owning costs
// 9,309.99/month against 9,000 rent: over, but inside the 10% band.
func TestDecide_MidStayRentComparisonWithinBand(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(4),
		MonthlyRent:   fptr(9_000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictBuy, rec.Verdict)
}

func TestDecide_OwnCostFarAboveRentRents(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(4),
		MonthlyRent:   fptr(7_000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRent, rec.Verdict)
}

func TestDecide_OwnCostBelowRentBuys(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(4),
		MonthlyRent:   fptr(12_000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictBuy, rec.Verdict)
}

// Scenario E: no rent, income test. EMI is 44.47% of 20,000, above 40.
func TestDecide_IncomeTestFails(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(4),
		MonthlyIncome: fptr(20_000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictRent, rec.Verdict)
	require.NotNil(t, rec.Facts.EMIPercentOfIncome)
	assert.Equal(t, 44.47, *rec.Facts.EMIPercentOfIncome)
}

func TestDecide_IncomeTestPasses(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(4),
		MonthlyIncome: fptr(30_000),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictBuy, rec.Verdict)
	require.NotNil(t, rec.Facts.EMIPercentOfIncome)
	assert.Equal(t, 29.64, *rec.Facts.EMIPercentOfIncome)
}

// Rule 1 short-circuits the rest of the ladder regardless of rent/income.
func TestDecide_LadderOrdering(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(2),
		MonthlyRent:   fptr(1),
		MonthlyIncome: fptr(1_000_000),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRent, rec.Verdict)
}

// An explicit "0 years" is a stated short stay, not a missing field.
func TestDecide_ZeroPlanningYearsIsShortStay(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		PlanningYears: iptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictRent, rec.Verdict)
}

func TestDecide_StatedDownPaymentFlowsThrough(t *testing.T) {
	rec, err := newDecisionService().Decide(domain.UserFinancialProfile{
		PropertyPrice: fptr(2_000_000),
		DownPayment:   fptr(600_000),
	})
	require.NoError(t, err)

	assert.Equal(t, 600_000.0, rec.Facts.Affordability.DownPayment)
	assert.Equal(t, 1_400_000.0, rec.Facts.Affordability.LoanAmount)
	assert.InDelta(t, 2_000_000.0,
		rec.Facts.Affordability.DownPayment+rec.Facts.Affordability.LoanAmount, 0.01)
}

func TestDecide_MissingPriceIsInvalidInput(t *testing.T) {
	_, err := newDecisionService().Decide(domain.UserFinancialProfile{
		MonthlyIncome: fptr(20_000),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
