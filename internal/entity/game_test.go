package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
)

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	assert.Equal(t, PlayerTie, PlayerTie.Opponent())
}

func TestMark_IsPlayer(t *testing.T) {
	assert.True(t, PlayerX.IsPlayer())
	assert.True(t, PlayerO.IsPlayer())
	assert.False(t, EmptyCell.IsPlayer())
	assert.False(t, PlayerTie.IsPlayer())
	assert.False(t, Mark("Z").IsPlayer())
}

func TestBoard(t *testing.T) {
	t.Run("NewBoard creates an empty square board", func(t *testing.T) {
		// When: a 4x4 board is created
		board := NewBoard(4)

		// Then: it has 16 empty cells
		assert.Equal(t, 4, board.Size)
		require.Len(t, board.Cells, 16)
		for _, cell := range board.Cells {
			assert.Equal(t, EmptyCell, cell)
		}
		assert.False(t, board.IsFull())
	})

	t.Run("InBounds rejects cells outside the grid", func(t *testing.T) {
		board := NewBoard(3)

		assert.True(t, board.InBounds(0, 0))
		assert.True(t, board.InBounds(2, 2))
		assert.False(t, board.InBounds(-1, 0))
		assert.False(t, board.InBounds(0, -1))
		assert.False(t, board.InBounds(3, 0))
		assert.False(t, board.InBounds(0, 3))
	})

	t.Run("Clone does not share cells", func(t *testing.T) {
		// Given: a board with one mark
		board := NewBoard(3)
		board.Cells[board.Index(1, 2)] = PlayerX

		// When: the clone is modified
		clone := board.Clone()
		clone.Cells[0] = PlayerO

		// Then: the original is untouched
		assert.Equal(t, PlayerX, clone.At(1, 2))
		assert.Equal(t, EmptyCell, board.At(0, 0))
	})
}

func TestGame_Result(t *testing.T) {
	t.Run("Win produces winner and opponent as loser", func(t *testing.T) {
		// Given: a game won by O
		game := Game{Status: StatusFinished, Winner: PlayerO, Turn: PlayerO}

		// When: deriving the result
		result, ok := game.Result()

		// Then: O won and X lost
		require.True(t, ok)
		require.NotNil(t, result.Winner)
		require.NotNil(t, result.Loser)
		assert.Equal(t, PlayerO, *result.Winner)
		assert.Equal(t, PlayerX, *result.Loser)
		assert.False(t, result.IsDraw)
	})

	t.Run("Draw produces no marks", func(t *testing.T) {
		game := Game{Status: StatusFinished, Winner: PlayerTie}

		result, ok := game.Result()

		require.True(t, ok)
		assert.True(t, result.IsDraw)
		assert.Nil(t, result.Winner)
		assert.Nil(t, result.Loser)
	})

	t.Run("Ongoing game has no result", func(t *testing.T) {
		game := Game{Status: StatusOngoing, Turn: PlayerX}

		_, ok := game.Result()

		assert.False(t, ok)
	})
}

func TestGameResult_Validate(t *testing.T) {
	x, o := PlayerX, PlayerO
	empty := EmptyCell

	tests := []struct {
		name    string
		result  GameResult
		wantErr bool
	}{
		{name: "win", result: NewWinResult(PlayerX)},
		{name: "draw", result: NewDrawResult()},
		{name: "draw with winner", result: GameResult{Winner: &x, IsDraw: true}, wantErr: true},
		{name: "missing winner", result: GameResult{Loser: &o}, wantErr: true},
		{name: "missing loser", result: GameResult{Winner: &x}, wantErr: true},
		{name: "same marks", result: GameResult{Winner: &x, Loser: &x}, wantErr: true},
		{name: "empty winner", result: GameResult{Winner: &empty, Loser: &o}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.result.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidResult)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewStatsSnapshot(t *testing.T) {
	stats := NewStatsSnapshot()

	assert.Equal(t, map[Mark]int64{PlayerX: 0, PlayerO: 0}, stats.Wins)
	assert.Equal(t, map[Mark]int64{PlayerX: 0, PlayerO: 0}, stats.Losses)
	assert.Zero(t, stats.Draws)
}
