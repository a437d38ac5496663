package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/basecamp-gear/outfitter/internal/catalog"
	"github.com/basecamp-gear/outfitter/internal/events"
	"github.com/basecamp-gear/outfitter/internal/store"
)

type ProductsHandler struct {
	store  store.Store
	events events.Client
}

func NewProductsHandler(s store.Store, ev events.Client) *ProductsHandler {
	return &ProductsHandler{store: s, events: ev}
}

// Create handles POST /api/v1/products (admin).
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if p.Name == "" || p.Category == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and category required"})
		return
	}
	if p.Price < 0 || p.DeliveryDays < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "price and delivery_days must be non-negative"})
		return
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rating must be between 0 and 5"})
		return
	}

	if err := h.store.CreateProduct(r.Context(), &p); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectProductCreated(p.ID.String()), events.ProductEvent{
			ProductID: p.ID.String(),
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.Price,
		})
	}

	writeJSON(w, http.StatusCreated, p)
}

// List handles GET /api/v1/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Retailer: r.URL.Query().Get("retailer"),
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = f
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}

	products, err := h.store.ListProducts(r.Context(), filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}

	p, err := h.store.GetProduct(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /api/v1/products/{id} (admin).
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}

	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectProductDeleted(id.String()), events.ProductEvent{ProductID: id.String()})
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
