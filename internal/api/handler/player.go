package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/weixigu/boardgame-go/internal/api/request"
	"github.com/weixigu/boardgame-go/internal/api/response"
	"github.com/weixigu/boardgame-go/internal/services/ledger"
	"github.com/weixigu/boardgame-go/internal/validation"
)

// Default pagination applied to GET /players when the caller omits params
const (
	defaultPage     = 0
	defaultPageSize = 10
	defaultSortBy   = ledger.SortByID
)

// PlayerHandler handles player ledger endpoints
type PlayerHandler struct {
	ledgerService ledger.ServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(ledgerService ledger.ServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		ledgerService: ledgerService,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.Player
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := req.ToModel()
	if err := validation.ValidatePlayer(player); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := h.ledgerService.Create(r.Context(), player)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(saved))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		WriteError(w, NewInvalidRequestError("page must be an integer"))
		return
	}
	size, err := queryInt(r, "size", defaultPageSize)
	if err != nil {
		WriteError(w, NewInvalidRequestError("size must be an integer"))
		return
	}
	sortBy := r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	result, err := h.ledgerService.ListActive(r.Context(), page, size, sortBy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PageFromModel(result))
}

// Delete handles POST /api/v1/players/delete. The full record travels in the
// body so the service can reject stale deletes, hence POST rather than a
// bodyless DELETE.
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req request.Player
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	message, err := h.ledgerService.Delete(r.Context(), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: message})
}

// Replace handles POST /api/v1/players/replace
func (h *PlayerHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req request.ReplacePlayer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	newPlayer := req.New.ToModel()
	if err := validation.ValidatePlayer(newPlayer); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := h.ledgerService.Replace(r.Context(), req.Old.ToModel(), newPlayer)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(saved))
}

// SaveRecord handles POST /api/v1/players/record
func (h *PlayerHandler) SaveRecord(w http.ResponseWriter, r *http.Request) {
	var req request.Player
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player := req.ToModel()
	if err := validation.ValidatePlayer(player); err != nil {
		WriteError(w, err)
		return
	}

	saved, err := h.ledgerService.SaveRecord(r.Context(), player)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(saved))
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
