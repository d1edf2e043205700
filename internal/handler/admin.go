package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/lucsky/cuid"
	"github.com/rs/zerolog/log"

	"github.com/mobilebanquet/banquet-service/internal/admin"
	"github.com/mobilebanquet/banquet-service/internal/blob"
	"github.com/mobilebanquet/banquet-service/internal/dashboard"
	"github.com/mobilebanquet/banquet-service/internal/ingredient"
	"github.com/mobilebanquet/banquet-service/internal/sysconfig"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// AdminHandler covers the /api/admin surface: stats, config records, the
// ingredient library, image upload, and login.
type AdminHandler struct {
	stats       dashboard.Service
	configs     sysconfig.Service
	ingredients ingredient.Service
	auth        *admin.Auth
	blobs       blob.Store
	// blobFallback takes over when a put to the primary store fails;
	// nil when the primary already is the local store.
	blobFallback blob.Store
}

func NewAdminHandler(
	stats dashboard.Service,
	configs sysconfig.Service,
	ingredients ingredient.Service,
	auth *admin.Auth,
	blobs blob.Store,
	blobFallback blob.Store,
) *AdminHandler {
	return &AdminHandler{
		stats:        stats,
		configs:      configs,
		ingredients:  ingredients,
		auth:         auth,
		blobs:        blobs,
		blobFallback: blobFallback,
	}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.configs.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, configs)
}

func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	cfg, err := h.configs.Get(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, cfg)
}

func (h *AdminHandler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	var cfg sysconfig.SystemConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.configs.Save(r.Context(), &cfg)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, saved)
}

func (h *AdminHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	items, err := h.ingredients.List(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

func (h *AdminHandler) SaveIngredient(w http.ResponseWriter, r *http.Request) {
	var item ingredient.LibraryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.ingredients.Save(r.Context(), &item)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, saved)
}

func (h *AdminHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.ingredients.Delete(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "ingredient deleted", "id": id})
}

// Upload accepts a multipart image under the "file" field and stores it in
// the blob store. A failed put against S3 degrades to the local fallback
// instead of failing the request.
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	// Read one byte past the limit so an oversize file is rejected
	// rather than stored truncated.
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	if len(data) > maxUploadBytes {
		respondWithError(w, http.StatusBadRequest, "file exceeds the 10 MiB upload limit")
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		respondWithError(w, http.StatusBadRequest, "only image uploads are accepted")
		return
	}

	path := fmt.Sprintf("dishes/%s%s", cuid.New(), filepath.Ext(header.Filename))
	url, err := h.blobs.Put(r.Context(), path, data, contentType)
	if err != nil && h.blobFallback != nil {
		log.Warn().Err(err).Str("path", path).Msg("handler: blob store put failed, using local fallback")
		url, err = h.blobFallback.Put(r.Context(), path, data, contentType)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("handler: failed to store upload")
		respondWithError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.auth.Login(req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}
