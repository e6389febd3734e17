package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/models"
	"github.com/andrelms/comercio-api/internal/repository"
	"github.com/andrelms/comercio-api/internal/validation"
)

type SaleItemHandler struct {
	Store *repository.SaleItemStore
}

func NewSaleItemHandler(store *repository.SaleItemStore) *SaleItemHandler {
	return &SaleItemHandler{Store: store}
}

func (h *SaleItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.All()
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *SaleItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	item, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

type saleItemInput struct {
	SaleID    uint     `json:"sale_id"`
	ProductID uint     `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	UnitPrice *float64 `json:"unit_price"`
}

func (h *SaleItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in saleItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.RequiredInt("quantity", in.Quantity, v)
	validation.RequiredFloat("unit_price", in.UnitPrice, v)
	if in.SaleID == 0 {
		v["sale_id"] = "required"
	}
	if in.ProductID == 0 {
		v["product_id"] = "required"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	item := models.SaleItem{
		SaleID:    in.SaleID,
		ProductID: in.ProductID,
		Quantity:  *in.Quantity,
		UnitPrice: *in.UnitPrice,
	}
	if err := h.Store.Save(&item); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

// Update replaces quantity and unit price; the subtotal follows via the
// model hook.
func (h *SaleItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	item, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	var body struct {
		Quantity  *int     `json:"quantity"`
		UnitPrice *float64 `json:"unit_price"`
		ProductID *uint    `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if body.Quantity != nil {
		item.Quantity = *body.Quantity
	}
	if body.UnitPrice != nil {
		item.UnitPrice = *body.UnitPrice
	}
	if body.ProductID != nil {
		item.ProductID = *body.ProductID
	}
	item.Product = nil
	if err := h.Store.Save(&item); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *SaleItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *SaleItemHandler) BySale(w http.ResponseWriter, r *http.Request) {
	saleID := pathID(w, r, "saleId")
	if saleID == 0 {
		return
	}
	items, err := h.Store.BySale(saleID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *SaleItemHandler) ByProduct(w http.ResponseWriter, r *http.Request) {
	productID := pathID(w, r, "productId")
	if productID == 0 {
		return
	}
	items, err := h.Store.ByProduct(productID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}
