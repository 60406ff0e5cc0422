package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

var ErrUnknownField = errors.New("unknown result field")

// ResultRepository is an append-only log of finished games that can count its records.
type ResultRepository interface {
	Append(ctx context.Context, result *entity.GameResult) error
	// CountBy groups the non-draw records by the mark stored in field.
	// Records without a mark in that field are skipped.
	CountBy(ctx context.Context, field entity.ResultField) (map[entity.Mark]int64, error)
	CountDraws(ctx context.Context) (int64, error)
}

func checkField(field entity.ResultField) error {
	switch field {
	case entity.FieldWinner, entity.FieldLoser:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}
