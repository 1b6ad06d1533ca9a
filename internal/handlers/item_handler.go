package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/skevingreen/ims-server/internal/cache"
	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/services"
	"github.com/skevingreen/ims-server/internal/validation"
)

type ItemHandler struct {
	Service *services.ItemService
	Cache   *cache.Cache
	Logger  *slog.Logger
}

// List returns every item. An empty collection is a 200 with an empty array,
// unlike the by-category filter.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.Cache.Get(ctx, cache.ItemsKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	items, err := h.Service.List(ctx)
	if err != nil {
		respondError(h.Logger, w, err, "Item not found")
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}

	body, err := json.Marshal(items)
	if err != nil {
		respondError(h.Logger, w, err, "Item not found")
		return
	}
	h.Cache.Set(ctx, cache.ItemsKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["inventoryItemId"]

	item, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		respondError(h.Logger, w, err, "Item not found")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// ListByCategory filters on the logical categoryId. Zero matches is a 404 by
// the current API contract, asymmetric with List.
func (h *ItemHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	categoryID, err := strconv.ParseInt(vars["categoryId"], 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "categoryId must be a number")
		return
	}

	items, err := h.Service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		respondError(h.Logger, w, err, "Item(s) by category not found")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload validation.AddItem
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		respondError(h.Logger, w, err, "Item not found")
		return
	}

	h.Cache.Invalidate(r.Context(), cache.ItemsKey)

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Item created successfully",
		"id":      item.ID,
	})
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["inventoryItemId"]

	var payload validation.UpdateItem
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.Service.Update(r.Context(), id, payload)
	if err != nil {
		respondError(h.Logger, w, err, "Item not found")
		return
	}

	h.Cache.Invalidate(r.Context(), cache.ItemsKey)

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Item updated successfully",
		"id":      item.ID,
	})
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["inventoryItemId"]

	if err := h.Service.DeleteByID(r.Context(), id); err != nil {
		respondError(h.Logger, w, err, "Item not found")
		return
	}

	h.Cache.Invalidate(r.Context(), cache.ItemsKey)

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Item deleted successfully",
		"id":      id,
	})
}
