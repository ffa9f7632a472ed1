package petstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vitalvas/swaggerdoc/mux"
)

const maxPhotoSize = 8 << 20

// APIError is the body of every non-2xx response.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	mux.ResponseJSON(w, code, APIError{Code: code, Message: msg})
}

type handlers struct {
	store *Store
}

func (h *handlers) listPets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	if status == "" {
		status = StatusAvailable
	}
	if !validStatus(status) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid status %q", status))
		return
	}

	limit := defaultLimit
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	mux.ResponseJSON(w, http.StatusOK, h.store.Pets(status, limit))
}

func (h *handlers) addPet(w http.ResponseWriter, r *http.Request) {
	var p Pet
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid pet: "+err.Error())
		return
	}
	if p.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if p.Status != "" && !validStatus(p.Status) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid status %q", p.Status))
		return
	}

	mux.ResponseJSON(w, http.StatusCreated, h.store.AddPet(p))
}

func (h *handlers) getPet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	p, err := h.store.Pet(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	mux.ResponseJSON(w, http.StatusOK, p)
}

func (h *handlers) deletePet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.store.DeletePet(id); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	p, err := h.store.AddPhoto(id, header.Filename)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	mux.ResponseJSON(w, http.StatusOK, p)
}

func (h *handlers) placeOrder(w http.ResponseWriter, r *http.Request) {
	var o Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order: "+err.Error())
		return
	}
	if o.Quantity < 0 {
		writeError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	placed, err := h.store.PlaceOrder(o)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	mux.ResponseJSON(w, http.StatusCreated, placed)
}

func (h *handlers) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "orderId")
	if !ok {
		return
	}
	o, err := h.store.Order(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	mux.ResponseJSON(w, http.StatusOK, o)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw, _ := mux.VarGet(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s %q", name, raw))
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func validStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}
