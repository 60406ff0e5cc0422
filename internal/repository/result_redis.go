package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

const (
	resultsKey      = "results"
	resultsDrawsKey = "results:draws"
)

func resultsCountKey(field entity.ResultField) string {
	return "results:" + string(field)
}

// dbResults keeps every record in a list and the grouped counters next to it.
// Both are written in one MULTI/EXEC so counters never drift from the log.
type dbResults struct {
	client *redis.Client
}

func NewRedisResultRepository(client *redis.Client) ResultRepository {
	return &dbResults{
		client: client,
	}
}

func (that *dbResults) Append(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, resultsKey, resultJSON)

	if result.IsDraw {
		pipe.Incr(ctx, resultsDrawsKey)
	} else {
		for _, field := range []entity.ResultField{entity.FieldWinner, entity.FieldLoser} {
			if mark := result.Mark(field); mark != nil && *mark != entity.EmptyCell {
				pipe.HIncrBy(ctx, resultsCountKey(field), string(*mark), 1)
			}
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}

	return nil
}

func (that *dbResults) CountBy(ctx context.Context, field entity.ResultField) (map[entity.Mark]int64, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}

	response, err := that.client.HGetAll(ctx, resultsCountKey(field)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get %s counts: %w", field, err)
	}

	counts := make(map[entity.Mark]int64, len(response))
	for mark, value := range response {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s count for %q: %w", field, mark, err)
		}
		counts[entity.Mark(mark)] = count
	}

	return counts, nil
}

func (that *dbResults) CountDraws(ctx context.Context) (int64, error) {
	draws, err := that.client.Get(ctx, resultsDrawsKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get draw count: %w", err)
	}

	return draws, nil
}
