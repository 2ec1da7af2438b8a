package repository

import "sync"

type calculationRecord struct {
	Kind   string
	Result any
}

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []calculationRecord
}

func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{}
}

func (r *CalculationRepositoryMemory) Save(kind string, result any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, calculationRecord{Kind: kind, Result: result})
	return nil
}

// Len reports how many results were recorded.
func (r *CalculationRepositoryMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}
