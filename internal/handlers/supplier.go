package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/models"
	"github.com/andrelms/comercio-api/internal/repository"
	"github.com/andrelms/comercio-api/internal/validation"
)

type SupplierHandler struct {
	Store *repository.SupplierStore
}

func NewSupplierHandler(store *repository.SupplierStore) *SupplierHandler {
	return &SupplierHandler{Store: store}
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Store.All()
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, suppliers)
}

func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	s, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

func (h *SupplierHandler) GetByTaxID(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store.ByTaxID(r.PathValue("taxid"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var s models.Supplier
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("name", s.Name, v)
	validation.Required("tax_id", s.TaxID, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	s.ID = 0
	if err := h.Store.Create(&s); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, s)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	var s models.Supplier
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	s.ID = id
	if err := h.Store.Update(&s); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// AttachProduct / DetachProduct maintain the non-owning Supplier-Product
// association without cascading anything.
func (h *SupplierHandler) AttachProduct(w http.ResponseWriter, r *http.Request) {
	supplierID := pathID(w, r, "id")
	if supplierID == 0 {
		return
	}
	productID := pathID(w, r, "productId")
	if productID == 0 {
		return
	}
	if err := h.Store.AttachProduct(supplierID, productID); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *SupplierHandler) DetachProduct(w http.ResponseWriter, r *http.Request) {
	supplierID := pathID(w, r, "id")
	if supplierID == 0 {
		return
	}
	productID := pathID(w, r, "productId")
	if productID == 0 {
		return
	}
	if err := h.Store.DetachProduct(supplierID, productID); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.NoContent(w)
}
