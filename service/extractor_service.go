package service

import (
	"regexp"
	"strconv"
	"strings"

	"mortgage-agent/domain"
)

var (
	numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)
	yearsPattern  = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\b`)
)

// ExtractorConfig is the keyword-to-field table. Kept configurable since
// both policy wording and language evolve faster than code.
type ExtractorConfig struct {
	IncomeKeywords      []string `mapstructure:"income_keywords"`
	PriceKeywords       []string `mapstructure:"price_keywords"`
	RentKeywords        []string `mapstructure:"rent_keywords"`
	StayKeywords        []string `mapstructure:"stay_keywords"`
	DownPaymentKeywords []string `mapstructure:"down_payment_keywords"`

	// RentCeiling caps what a monthly rent can plausibly be; candidates
	// above it are skipped in favor of smaller matches.
	RentCeiling float64 `mapstructure:"rent_ceiling"`
}

func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		IncomeKeywords:      []string{"income", "salary", "earn"},
		PriceKeywords:       []string{"price", "aed", "apartment", "property", "buy", "flat"},
		RentKeywords:        []string{"rent"},
		StayKeywords:        []string{"year", "years", "stay"},
		DownPaymentKeywords: []string{"down payment", "downpayment", "deposit"},
		RentCeiling:         DefaultRentCeiling,
	}
}

// ExtractorService pulls candidate monetary amounts and a stay duration
// out of free-form text. It is a best-effort classifier, not a parser:
// when nothing matches, fields simply stay unset and the caller asks the
// user again.
type ExtractorService struct {
	cfg ExtractorConfig
}

func NewExtractorService(cfg ExtractorConfig) *ExtractorService {
	if cfg.RentCeiling <= 0 {
		cfg.RentCeiling = DefaultRentCeiling
	}
	return &ExtractorService{cfg: cfg}
}

// Extract returns a partial profile holding only the fields this message
// yielded. Thousands separators are stripped before matching.
func (s *ExtractorService) Extract(text string) domain.UserFinancialProfile {
	var update domain.UserFinancialProfile

	lower := strings.ToLower(text)
	stripped := strings.ReplaceAll(lower, ",", "")
	nums := extractNumbers(stripped)

	if len(nums) > 0 {
		if containsAny(lower, s.cfg.IncomeKeywords) {
			v := nums[0]
			update.MonthlyIncome = &v
		}
		if containsAny(lower, s.cfg.PriceKeywords) {
			// Property prices dominate in magnitude, so take the
			// largest candidate.
			v := maxOf(nums)
			update.PropertyPrice = &v
		}
		if containsAny(lower, s.cfg.RentKeywords) {
			v := s.pickRent(nums)
			update.MonthlyRent = &v
		}
		if containsAny(lower, s.cfg.DownPaymentKeywords) {
			if v, ok := pickDownPayment(nums, update.PropertyPrice); ok {
				update.DownPayment = &v
			}
		}
	}

	if containsAny(lower, s.cfg.StayKeywords) {
		if m := yearsPattern.FindStringSubmatch(stripped); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				update.PlanningYears = &years
			}
		}
	}

	return update
}

// pickDownPayment avoids tagging the number already identified as the
// property price: when a price is in play only a strictly smaller
// candidate qualifies, and with none the field stays unset rather than
// guessing.
func pickDownPayment(nums []float64, price *float64) (float64, bool) {
	if price == nil {
		return nums[0], true
	}
	for _, n := range nums {
		if n < *price {
			return n, true
		}
	}
	return 0, false
}

// pickRent prefers the first candidate under the plausibility ceiling and
// falls back to the first raw match when every number is above it.
func (s *ExtractorService) pickRent(nums []float64) float64 {
	for _, n := range nums {
		if n <= s.cfg.RentCeiling {
			return n
		}
	}
	return nums[0]
}

func extractNumbers(text string) []float64 {
	matches := numberPattern.FindAllString(text, -1)
	nums := make([]float64, 0, len(matches))
	for _, m := range matches {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			nums = append(nums, v)
		}
	}
	return nums
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func maxOf(nums []float64) float64 {
	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return max
}
