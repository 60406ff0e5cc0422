package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

type ResultsService interface {
	RecordResult(ctx context.Context, result *entity.GameResult) error
	GetStats(ctx context.Context) (*entity.StatsSnapshot, error)
}

type resultRepo interface {
	Append(ctx context.Context, result *entity.GameResult) error
	CountBy(ctx context.Context, field entity.ResultField) (map[entity.Mark]int64, error)
	CountDraws(ctx context.Context) (int64, error)
}

type resultsService struct {
	logger *slog.Logger

	resultRepo resultRepo
}

func NewResultsService(logger *slog.Logger, resultRepo resultRepo) ResultsService {
	return &resultsService{
		logger:     logger.With("component", "results"),
		resultRepo: resultRepo,
	}
}

// RecordResult - appends one record. Nothing is retried or de-duplicated here.
func (that *resultsService) RecordResult(ctx context.Context, result *entity.GameResult) error {
	if err := that.resultRepo.Append(ctx, result); err != nil {
		that.logger.Error("failed to record result", "method", "RecordResult", "error", err)
		return fmt.Errorf("%w: record result: %w", apperror.ErrStorageUnavailable, err)
	}

	that.logger.Debug("result recorded", "draw", result.IsDraw)

	return nil
}

// GetStats - aggregates the whole history on every call.
func (that *resultsService) GetStats(ctx context.Context) (*entity.StatsSnapshot, error) {
	log := that.logger.With("method", "GetStats")

	wins, err := that.resultRepo.CountBy(ctx, entity.FieldWinner)
	if err != nil {
		log.Error("failed to count wins", "error", err)
		return nil, fmt.Errorf("%w: count wins: %w", apperror.ErrStorageUnavailable, err)
	}

	losses, err := that.resultRepo.CountBy(ctx, entity.FieldLoser)
	if err != nil {
		log.Error("failed to count losses", "error", err)
		return nil, fmt.Errorf("%w: count losses: %w", apperror.ErrStorageUnavailable, err)
	}

	draws, err := that.resultRepo.CountDraws(ctx)
	if err != nil {
		log.Error("failed to count draws", "error", err)
		return nil, fmt.Errorf("%w: count draws: %w", apperror.ErrStorageUnavailable, err)
	}

	stats := entity.NewStatsSnapshot()
	stats.Draws = draws
	that.merge(log, stats.Wins, wins)
	that.merge(log, stats.Losses, losses)

	return stats, nil
}

// merge - copies grouped counts into the zero-filled snapshot, dropping groups that are not player marks.
func (that *resultsService) merge(log *slog.Logger, dst, groups map[entity.Mark]int64) {
	for mark, count := range groups {
		if !mark.IsPlayer() {
			log.Warn("ignoring unexpected group", "mark", mark, "count", count)
			continue
		}
		dst[mark] = count
	}
}
