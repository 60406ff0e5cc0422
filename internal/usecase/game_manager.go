package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
	"github.com/rocketscienceinc/tictactoe-stats/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type resultsService interface {
	RecordResult(ctx context.Context, result *entity.GameResult) error
}

// GameManager drives one game per session and forwards finished games to the results service.
type GameManager struct {
	logger *slog.Logger

	sessionRepo    sessionRepo
	resultsService resultsService

	defaultSize int
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, resultsService resultsService, defaultSize int) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo:    sessionRepo,
		resultsService: resultsService,

		defaultSize: defaultSize,
	}
}

// NewGame - starts a game in a new session. A zero size means the configured default.
func (that *GameManager) NewGame(ctx context.Context, size int) (*entity.Session, error) {
	game, err := tictactoe.Create(that.sizeOrDefault(size))
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	session := &entity.Session{
		ID:   uuid.NewString(),
		Game: game,
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "session", session.ID, "size", game.Board.Size)

	return session, nil
}

func (that *GameManager) GetGame(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, sessionError("failed get session by id", err)
	}

	return session, nil
}

// MakeTurn - applies a move for the session's current mark. Illegal moves leave the session
// untouched and are not reported as errors. When the move ends the game the result is recorded;
// a failed recording is logged and the session is still saved with Recorded = false.
func (that *GameManager) MakeTurn(ctx context.Context, sessionID string, row, col int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "session", sessionID)

	session, err := that.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.CheckMove(session.Game, row, col); err != nil {
		log.Debug("move ignored", "row", row, "col", col, "reason", err)
		return session, nil
	}

	session.Game = tictactoe.ApplyMove(session.Game, row, col)

	if session.Game.IsFinished() {
		that.recordResult(ctx, log, session)
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Reset - replaces the session's game with a fresh one, possibly of another size.
func (that *GameManager) Reset(ctx context.Context, sessionID string, size int) (*entity.Session, error) {
	session, err := that.GetGame(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if size == 0 {
		size = session.Game.Board.Size
	}

	game, err := tictactoe.Reset(size)
	if err != nil {
		return nil, fmt.Errorf("failed reset game: %w", err)
	}

	session.Game = game
	session.Recorded = false

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *GameManager) EndSession(ctx context.Context, sessionID string) error {
	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return sessionError("failed delete session", err)
	}

	that.logger.Info("session ended", "session", sessionID)

	return nil
}

func (that *GameManager) recordResult(ctx context.Context, log *slog.Logger, session *entity.Session) {
	result, ok := session.Game.Result()
	if !ok {
		return
	}

	if err := that.resultsService.RecordResult(ctx, &result); err != nil {
		log.Error("result lost", "winner", session.Game.Winner, "error", err)
		return
	}

	session.Recorded = true
	log.Info("game finished", "winner", session.Game.Winner, "moves", session.Game.Moves)
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return sessionError("failed to update session", err)
	}

	return nil
}

func (that *GameManager) sizeOrDefault(size int) int {
	if size == 0 {
		return that.defaultSize
	}

	return size
}

// sessionError - marks everything except a missing session as a storage failure.
func sessionError(msg string, err error) error {
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	return fmt.Errorf("%w: %s: %w", apperror.ErrStorageUnavailable, msg, err)
}
