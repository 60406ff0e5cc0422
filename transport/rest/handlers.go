package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-stats/internal/entity"
)

const messageResultSaved = "Game result saved"

var errBadRequest = errors.New("bad request")

type Handlers interface {
	SaveGame(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)

	NewGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	MakeMove(w http.ResponseWriter, r *http.Request)
	ResetGame(w http.ResponseWriter, r *http.Request)
	EndGame(w http.ResponseWriter, r *http.Request)
}

type resultsService interface {
	RecordResult(ctx context.Context, result *entity.GameResult) error
	GetStats(ctx context.Context) (*entity.StatsSnapshot, error)
}

type gameManager interface {
	NewGame(ctx context.Context, size int) (*entity.Session, error)
	GetGame(ctx context.Context, sessionID string) (*entity.Session, error)
	MakeTurn(ctx context.Context, sessionID string, row, col int) (*entity.Session, error)
	Reset(ctx context.Context, sessionID string, size int) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error
}

type sizeRequest struct {
	Size int `json:"size"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type handlers struct {
	logger *slog.Logger

	results resultsService
	games   gameManager
}

func NewHandlers(logger *slog.Logger, results resultsService, games gameManager) Handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		results: results,
		games:   games,
	}
}

// SaveGame handles POST /api/saveGame.
func (that *handlers) SaveGame(w http.ResponseWriter, r *http.Request) {
	var result entity.GameResult
	if err := decodeJSON(r, &result, false); err != nil {
		writeError(w, that.logger, err)
		return
	}

	if err := result.Validate(); err != nil {
		writeError(w, that.logger, err)
		return
	}

	if err := that.results.RecordResult(r.Context(), &result); err != nil {
		writeError(w, that.logger.With("method", "SaveGame"), err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: messageResultSaved})
}

// Stats handles GET /api/stats.
func (that *handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.results.GetStats(r.Context())
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// NewGame handles POST /api/games. The body is optional.
func (that *handlers) NewGame(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, that.logger, err)
		return
	}

	session, err := that.games.NewGame(r.Context(), req.Size)
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// GetGame handles GET /api/games/{id}.
func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.GetGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// MakeMove handles POST /api/games/{id}/moves. An illegal move answers 200 with the unchanged game.
func (that *handlers) MakeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, that.logger, err)
		return
	}

	if req.Row == nil || req.Col == nil {
		writeError(w, that.logger, fmt.Errorf("%w: row and col are required", errBadRequest))
		return
	}

	session, err := that.games.MakeTurn(r.Context(), mux.Vars(r)["id"], *req.Row, *req.Col)
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// ResetGame handles POST /api/games/{id}/reset. Without a size the current one is kept.
func (that *handlers) ResetGame(w http.ResponseWriter, r *http.Request) {
	var req sizeRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, that.logger, err)
		return
	}

	session, err := that.games.Reset(r.Context(), mux.Vars(r)["id"], req.Size)
	if err != nil {
		writeError(w, that.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// EndGame handles DELETE /api/games/{id}.
func (that *handlers) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.EndSession(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, that.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeJSON - reads exactly one JSON object with known fields. An optional body may be empty.
func decodeJSON(r *http.Request, dst any, optional bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if optional && errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after the JSON body", errBadRequest)
	}

	return nil
}
