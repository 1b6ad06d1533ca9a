package handlers

import (
	"github.com/gorilla/mux"
)

// NewRouter wires the API routes. The by-category route is registered before
// the id route so "bycategory" is never taken for an item id.
func NewRouter(items *ItemHandler, suppliers *SupplierHandler, categories *CategoryHandler, health *HealthHandler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/categories", categories.List).Methods("GET")

	api.HandleFunc("/items", items.List).Methods("GET")
	api.HandleFunc("/items", items.Create).Methods("POST")
	api.HandleFunc("/items/bycategory/{categoryId}", items.ListByCategory).Methods("GET")
	api.HandleFunc("/items/{inventoryItemId}", items.GetByID).Methods("GET")
	api.HandleFunc("/items/{inventoryItemId}", items.Update).Methods("PATCH")
	api.HandleFunc("/items/{inventoryItemId}", items.Delete).Methods("DELETE")

	api.HandleFunc("/suppliers", suppliers.List).Methods("GET")
	api.HandleFunc("/suppliers", suppliers.Create).Methods("POST")

	if health != nil {
		api.HandleFunc("/health", health.Status).Methods("GET")
	}

	return r
}
