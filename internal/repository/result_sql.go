package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
	"github.com/rocketscienceinc/tictactoe-stats/internal/repository/storage"
)

var insertResultQuery = map[string]string{
	storage.DriverPostgres: `INSERT INTO game_results (winner, loser, is_draw) VALUES ($1, $2, $3)`,
	storage.DriverSQLite:   `INSERT INTO game_results (winner, loser, is_draw) VALUES (?, ?, ?)`,
}

// countByQuery partitions on is_draw before grouping so a draw never shows up as a NULL group.
var countByQuery = map[entity.ResultField]string{
	entity.FieldWinner: `SELECT winner, COUNT(*) FROM game_results
		WHERE is_draw = FALSE AND winner IS NOT NULL AND winner <> ''
		GROUP BY winner`,
	entity.FieldLoser: `SELECT loser, COUNT(*) FROM game_results
		WHERE is_draw = FALSE AND loser IS NOT NULL AND loser <> ''
		GROUP BY loser`,
}

const countDrawsQuery = `SELECT COUNT(*) FROM game_results WHERE is_draw = TRUE`

type sqlResults struct {
	conn        *sql.DB
	insertQuery string
}

// NewSQLResultRepository - works on a game_results table created by storage.Storage.Init.
func NewSQLResultRepository(st *storage.Storage) (ResultRepository, error) {
	insertQuery, ok := insertResultQuery[st.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported sql driver %q", st.Driver)
	}

	return &sqlResults{
		conn:        st.Connection,
		insertQuery: insertQuery,
	}, nil
}

func (that *sqlResults) Append(ctx context.Context, result *entity.GameResult) error {
	_, err := that.conn.ExecContext(ctx, that.insertQuery, nullMark(result.Winner), nullMark(result.Loser), result.IsDraw)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *sqlResults) CountBy(ctx context.Context, field entity.ResultField) (map[entity.Mark]int64, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}

	rows, err := that.conn.QueryContext(ctx, countByQuery[field])
	if err != nil {
		return nil, fmt.Errorf("can't count results by %s: %w", field, err)
	}
	defer rows.Close()

	counts := make(map[entity.Mark]int64)
	for rows.Next() {
		var (
			mark  string
			count int64
		)
		if err = rows.Scan(&mark, &count); err != nil {
			return nil, fmt.Errorf("can't scan %s count: %w", field, err)
		}
		counts[entity.Mark(mark)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read %s counts: %w", field, err)
	}

	return counts, nil
}

func (that *sqlResults) CountDraws(ctx context.Context) (int64, error) {
	var draws int64
	if err := that.conn.QueryRowContext(ctx, countDrawsQuery).Scan(&draws); err != nil {
		return 0, fmt.Errorf("can't count draws: %w", err)
	}

	return draws, nil
}

func nullMark(mark *entity.Mark) sql.NullString {
	if mark == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: string(*mark), Valid: true}
}
