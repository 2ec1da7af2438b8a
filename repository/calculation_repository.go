package repository

// CalculationRepository records computed results for later inspection.
// Saving is best-effort: a failure never invalidates the calculation.
type CalculationRepository interface {
	Save(kind string, result any) error
}
