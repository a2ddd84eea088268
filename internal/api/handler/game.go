package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/weixigu/boardgame-go/internal/api/request"
	"github.com/weixigu/boardgame-go/internal/api/response"
	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/services/history"
)

// GameHandler handles Tic-Tac-Toe game endpoints
type GameHandler struct {
	historyService history.ServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(historyService history.ServiceInterface) *GameHandler {
	return &GameHandler{
		historyService: historyService,
	}
}

// Reset handles POST /api/v1/game/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	message, err := h.historyService.ResetGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: message})
}

// SaveMove handles POST /api/v1/game/moves
func (h *GameHandler) SaveMove(w http.ResponseWriter, r *http.Request) {
	var req request.Move
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := validateBoard(req.Board); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := h.historyService.SaveMove(r.Context(), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MoveFromModel(saved))
}

// ViewMove handles GET /api/v1/game/moves/{index}
func (h *GameHandler) ViewMove(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	move, err := h.historyService.ViewPrevMove(r.Context(), index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveFromModel(move))
}

// Revert handles POST /api/v1/game/moves/{index}/revert
func (h *GameHandler) Revert(w http.ResponseWriter, r *http.Request) {
	index, err := pathIndex(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	move, err := h.historyService.RevertToPrevMove(r.Context(), index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveFromModel(move))
}

// Winner handles POST /api/v1/game/winner. Evaluation is pure, but the board
// arrives in a body so the endpoint takes POST.
func (h *GameHandler) Winner(w http.ResponseWriter, r *http.Request) {
	var req request.Winner
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := validateBoard(req.Board); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Winner{Winner: req.Board.Winner()})
}

func pathIndex(r *http.Request) (int, error) {
	raw := mux.Vars(r)["index"]
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewInvalidRequestError(fmt.Sprintf("index %q is not an integer", raw))
	}
	return index, nil
}

func validateBoard(board model.Board) error {
	for i := range board {
		for j, cell := range board[i] {
			switch cell {
			case model.MarkX, model.MarkO, model.NoWinner:
			default:
				return NewInvalidRequestError(fmt.Sprintf("cell (%d,%d) holds %q; want X, O or empty", i, j, cell))
			}
		}
	}
	return nil
}
