package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/andrelms/comercio-api/internal/httpx"
	"github.com/andrelms/comercio-api/internal/models"
	"github.com/andrelms/comercio-api/internal/repository"
)

type AddressHandler struct {
	Store *repository.AddressStore
}

func NewAddressHandler(store *repository.AddressStore) *AddressHandler {
	return &AddressHandler{Store: store}
}

// List also serves the exact-match filters: ?postal_code=, ?city=, ?state=,
// or city and state combined.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := strings.TrimSpace(q.Get("city"))
	state := strings.TrimSpace(q.Get("state"))
	postalCode := strings.TrimSpace(q.Get("postal_code"))

	var addresses []models.Address
	var err error
	switch {
	case postalCode != "":
		addresses, err = h.Store.ByPostalCode(postalCode)
	case city != "" && state != "":
		addresses, err = h.Store.ByCityAndState(city, state)
	case city != "":
		addresses, err = h.Store.ByCity(city)
	case state != "":
		addresses, err = h.Store.ByState(state)
	default:
		addresses, err = h.Store.All()
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, addresses)
}

func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	a, err := h.Store.ByID(id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Address
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	a.ID = 0
	if err := h.Store.Save(&a); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, a)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := pathID(w, r, "id")
	if id == 0 {
		return
	}
	var a models.Address
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	a.ID = id
	if err := h.Store.Save(&a); err != nil {
		writeRepoError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, a)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
