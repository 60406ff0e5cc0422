package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Mark is the content of a single board cell.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"

	// PlayerTie is stored as the winner of a drawn game.
	PlayerTie Mark = "-"
)

// Marks returns the two player marks in turn order.
func Marks() []Mark {
	return []Mark{PlayerX, PlayerO}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player mark. Non-player marks are returned as is.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return that
	}
}

// Board is a square grid of marks stored row-major.
type Board struct {
	Size  int    `json:"size"`
	Cells []Mark `json:"cells"`
}

func NewBoard(size int) Board {
	return Board{
		Size:  size,
		Cells: make([]Mark, size*size),
	}
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

func (that Board) Index(row, col int) int {
	return row*that.Size + col
}

func (that Board) At(row, col int) Mark {
	return that.Cells[that.Index(row, col)]
}

// Clone - returns a copy that shares no cells with the original.
func (that Board) Clone() Board {
	cells := make([]Mark, len(that.Cells))
	copy(cells, that.Cells)

	return Board{Size: that.Size, Cells: cells}
}

func (that Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Game is the state of one match. Values are never changed in place by the engine.
type Game struct {
	Board  Board  `json:"board"`
	Turn   Mark   `json:"turn"`
	Winner Mark   `json:"winner"`
	Status string `json:"status"`
	Moves  int    `json:"moves"`
}

func (that Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that Game) IsWin() bool {
	return that.IsFinished() && that.Winner.IsPlayer()
}

// Result - derives the record to persist for a finished game.
// The second value is false while the game is still in progress.
func (that Game) Result() (GameResult, bool) {
	switch {
	case that.IsWin():
		return NewWinResult(that.Winner), true
	case that.IsDraw():
		return NewDrawResult(), true
	default:
		return GameResult{}, false
	}
}
