package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mobilebanquet/banquet-service/internal/dish"
)

type DishHandler struct {
	svc dish.Service
}

func NewDishHandler(svc dish.Service) *DishHandler {
	return &DishHandler{svc: svc}
}

func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.svc.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, dishes)
}

func (h *DishHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	d, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, d)
}

func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dish.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, d)
}

func (h *DishHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	var d dish.Dish
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	replaced, err := h.svc.Replace(r.Context(), id, &d)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, replaced)
}

func (h *DishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "dish deleted", "id": id})
}
