package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

type memoryResults struct {
	mu      sync.RWMutex
	records []entity.GameResult
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResults{}
}

func (that *memoryResults) Append(_ context.Context, result *entity.GameResult) error {
	record := entity.GameResult{IsDraw: result.IsDraw}
	if result.Winner != nil {
		winner := *result.Winner
		record.Winner = &winner
	}
	if result.Loser != nil {
		loser := *result.Loser
		record.Loser = &loser
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.records = append(that.records, record)

	return nil
}

func (that *memoryResults) CountBy(_ context.Context, field entity.ResultField) (map[entity.Mark]int64, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	counts := make(map[entity.Mark]int64)
	for _, record := range that.records {
		if record.IsDraw {
			continue
		}

		mark := record.Mark(field)
		if mark == nil || *mark == entity.EmptyCell {
			continue
		}

		counts[*mark]++
	}

	return counts, nil
}

func (that *memoryResults) CountDraws(_ context.Context) (int64, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	var draws int64
	for _, record := range that.records {
		if record.IsDraw {
			draws++
		}
	}

	return draws, nil
}
