package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/models"
	"github.com/andrelms/comercio-api/internal/repository"
	"github.com/andrelms/comercio-api/internal/validation"
)

type ProductHandler struct {
	Store *repository.ProductStore
}

func NewProductHandler(store *repository.ProductStore) *ProductHandler {
	return &ProductHandler{Store: store}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.All()
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	p, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

// productInput uses pointers where pure presence matters: a product without
// a stock quantity is rejected, a product with zero stock is fine.
type productInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity *int    `json:"stock_quantity"`
	SupplierID    *uint   `json:"supplier_id"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.RequiredInt("stock_quantity", in.StockQuantity, v)
	validation.NonNegativeFloat("price", in.Price, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	p := models.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: *in.StockQuantity,
		SupplierID:    in.SupplierID,
	}
	if err := h.Store.Save(&p); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

// Update applies only the fields present in the body.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	p, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	var body struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		StockQuantity *int     `json:"stock_quantity"`
		SupplierID    *uint    `json:"supplier_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if body.Name != nil {
		p.Name = *body.Name
	}
	if body.Description != nil {
		p.Description = *body.Description
	}
	if body.Price != nil {
		p.Price = *body.Price
	}
	if body.StockQuantity != nil {
		p.StockQuantity = *body.StockQuantity
	}
	if body.SupplierID != nil {
		p.SupplierID = body.SupplierID
	}
	p.Supplier = nil
	if err := h.Store.Save(&p); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	if err := h.Store.Delete(id); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.NoContent(w)
}

// Search: GET /api/products/search?name=term
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_name_param", nil)
		return
	}
	products, err := h.Store.SearchByName(name)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) BySupplier(w http.ResponseWriter, r *http.Request) {
	supplierID := pathID(w, r, "supplierId")
	if supplierID == 0 {
		return
	}
	products, err := h.Store.BySupplier(supplierID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// LowStock: GET /api/products/low-stock?threshold=N, default 10.
func (h *ProductHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold := 10
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_threshold", nil)
			return
		}
		threshold = n
	}
	products, err := h.Store.BelowStock(threshold)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}
