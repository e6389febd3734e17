package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/models"
	"github.com/andrelms/comercio-api/internal/repository"
	"github.com/andrelms/comercio-api/internal/validation"
)

type CustomerHandler struct {
	Store *repository.CustomerStore
}

func NewCustomerHandler(store *repository.CustomerStore) *CustomerHandler {
	return &CustomerHandler{Store: store}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Store.All()
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	c, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) GetByTaxID(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.ByTaxID(r.PathValue("taxid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// Create accepts a customer payload, optionally with an embedded address.
// The address is persisted with the customer and linked exclusively.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", c.Name, v)
	validation.Required("tax_id", c.TaxID, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	c.ID = 0
	if err := h.Store.Create(&c); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	c.ID = id
	if err := h.Store.Update(&c); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

// AttachSale / DetachSale manage the Customer-Sale pairing. Detach always
// fails: a sale cannot be left without a customer.
func (h *CustomerHandler) AttachSale(w http.ResponseWriter, r *http.Request) {
	customerID := pathID(w, r, "id")
	if customerID == 0 {
		return
	}
	saleID := pathID(w, r, "saleId")
	if saleID == 0 {
		return
	}
	if err := h.Store.AttachSale(customerID, saleID); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *CustomerHandler) DetachSale(w http.ResponseWriter, r *http.Request) {
	customerID := pathID(w, r, "id")
	if customerID == 0 {
		return
	}
	saleID := pathID(w, r, "saleId")
	if saleID == 0 {
		return
	}
	if err := h.Store.DetachSale(customerID, saleID); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
