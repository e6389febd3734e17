package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/models"
	"github.com/andrelms/comercio-api/internal/repository"
)

type SaleHandler struct {
	Store *repository.SaleStore
}

func NewSaleHandler(store *repository.SaleStore) *SaleHandler {
	return &SaleHandler{Store: store}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Store.All()
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	sale, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}

// Create accepts a sale with embedded items; the whole aggregate is persisted
// in one transaction. SoldAt is stamped when absent.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sale.ID = 0
	if err := h.Store.Create(&sale); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	var sale models.Sale
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	sale.ID = id
	sale.Items = nil
	if err := h.Store.Update(&sale); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func (h *SaleHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := pathID(w, r, "customerId")
	if customerID == 0 {
		return
	}
	sales, err := h.Store.ByCustomer(customerID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

// ByPeriod: GET /api/sales/period?start=...&end=... with RFC 3339 timestamps,
// both bounds inclusive.
func (h *SaleHandler) ByPeriod(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_start", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_end", nil)
		return
	}
	sales, err := h.Store.SoldBetween(start, end)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

// AddItem: POST /api/sales/{id}/items with an item payload.
func (h *SaleHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	saleID := pathID(w, r, "id")
	if saleID == 0 {
		return
	}
	var item models.SaleItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	item.ID = 0
	if err := h.Store.AddItem(saleID, &item); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

// RemoveItem: DELETE /api/sales/{id}/items/{itemId}. The detached item is an
// orphan and is deleted with the detach.
func (h *SaleHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	saleID := pathID(w, r, "id")
	if saleID == 0 {
		return
	}
	itemID := pathID(w, r, "itemId")
	if itemID == 0 {
		return
	}
	if err := h.Store.RemoveItem(saleID, itemID); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.NoContent(w)
}
