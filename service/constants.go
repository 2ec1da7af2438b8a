package service

const (
	MaxPropertyPrice        = 1_000_000_000.0 // 1 billion AED
	MaxAnnualRatePercent    = 1000.0          // 1000% annual
	MaxSupportedTenureYears = 50
	MinTenureYears          = 1

	// LoanBalanceTolerance absorbs float drift when checking the loan
	// against the LTV cap.
	LoanBalanceTolerance = 0.01

	// DefaultRentCeiling is the plausibility cap used when tagging a
	// number as monthly rent; anything above it is far more likely a
	// property price.
	DefaultRentCeiling = 100_000.0

	// Sliding window of transcript turns included in LLM prompts.
	ContextWindowMessages = 10

	// FeedbackTriggerMessages is the transcript length at which the
	// post-chat feedback flow starts.
	FeedbackTriggerMessages = 10
)
