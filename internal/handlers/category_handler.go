package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/skevingreen/ims-server/internal/cache"
	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/services"
)

type CategoryHandler struct {
	Service *services.CategoryService
	Cache   *cache.Cache
	Logger  *slog.Logger
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.Cache.Get(ctx, cache.CategoriesKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	categories, err := h.Service.List(ctx)
	if err != nil {
		respondError(h.Logger, w, err, "Category not found")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	body, err := json.Marshal(categories)
	if err != nil {
		respondError(h.Logger, w, err, "Category not found")
		return
	}
	h.Cache.Set(ctx, cache.CategoriesKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
