package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"vigil/internal/domain/item"
)

// Opaque error tokens returned to clients. Internal error detail is logged
// server-side and never crosses the HTTP boundary.
const (
	errTokenDB      = "db_error"
	errTokenInvalid = "invalid_request"
)

// ItemService is what the handler needs from the item domain.
type ItemService interface {
	List(ctx context.Context) ([]item.Item, error)
	Create(ctx context.Context, params item.CreateItemParams) (*item.Item, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Request DTOs

type CreateItemRequest struct {
	Name string `json:"name"`
}

// HandleListItems returns the newest items (at most 100) with their derived
// risk fields.
func (h *ItemHandler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		log.Printf("Error listing items: %v", err)
		writeError(w, http.StatusInternalServerError, errTokenDB)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleCreateItem persists a new item and echoes it back with derived
// risk fields.
func (h *ItemHandler) HandleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding create item request: %v", err)
		writeError(w, http.StatusBadRequest, errTokenInvalid)
		return
	}

	params := item.CreateItemParams{Name: req.Name}
	if err := params.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, errTokenInvalid)
		return
	}

	created, err := h.svc.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating item: %v", err)
		writeError(w, http.StatusInternalServerError, errTokenDB)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, token string) {
	writeJSON(w, status, map[string]string{"error": token})
}
