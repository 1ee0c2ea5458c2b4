package memory

import (
	"sync"

	"mugloarbot/internal/app/ports"
)

type Store struct {
	mu      sync.RWMutex
	records map[string][]ports.TurnRecord
}

func NewStore() *Store {
	return &Store{
		records: make(map[string][]ports.TurnRecord),
	}
}
