package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mobilebanquet/banquet-service/internal/supplier"
)

type SupplierHandler struct {
	svc supplier.Service
}

func NewSupplierHandler(svc supplier.Service) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, suppliers)
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sup supplier.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), &sup)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

func (h *SupplierHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	var sup supplier.Supplier
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	replaced, err := h.svc.Replace(r.Context(), id, &sup)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, replaced)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "supplier deleted", "id": id})
}
