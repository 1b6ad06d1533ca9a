package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/skevingreen/ims-server/internal/cache"
	"github.com/skevingreen/ims-server/internal/models"
	"github.com/skevingreen/ims-server/internal/services"
	"github.com/skevingreen/ims-server/internal/validation"
)

type SupplierHandler struct {
	Service *services.SupplierService
	Cache   *cache.Cache
	Logger  *slog.Logger
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.Cache.Get(ctx, cache.SuppliersKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	suppliers, err := h.Service.List(ctx)
	if err != nil {
		respondError(h.Logger, w, err, "Supplier not found")
		return
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}

	body, err := json.Marshal(suppliers)
	if err != nil {
		respondError(h.Logger, w, err, "Supplier not found")
		return
	}
	h.Cache.Set(ctx, cache.SuppliersKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload validation.AddSupplier
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	supplier, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		respondError(h.Logger, w, err, "Supplier not found")
		return
	}

	h.Cache.Invalidate(r.Context(), cache.SuppliersKey)

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Supplier created successfully",
		"id":      supplier.ID,
	})
}
