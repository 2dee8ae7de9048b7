package images

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/handlers"
	"github.com/JaimeStill/menu-lab/pkg/routes"
)

// Handler provides HTTP endpoints for item images.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "images"),
		maxUploadSize: maxUploadSize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/images",
		Tags:        []string{"Images"},
		Description: "Food item image upload, download, and removal",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "DELETE", Pattern: "", Handler: h.Remove, OpenAPI: Spec.Remove},
			{Method: "GET", Pattern: "/o/{path...}", Handler: h.Data, OpenAPI: Spec.Data, Public: true},
		},
	}
}

type removeRequest struct {
	RestaurantID string `json:"restaurantId"`
	URL          string `json:"url"`
}

// Upload handles POST - stores a multipart "file" for the form's restaurantId.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	restaurantID := r.FormValue("restaurantId")
	if err := menu.Authorize(r.Context(), restaurantID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	result, err := h.sys.Upload(r.Context(), restaurantID, header.Filename, data)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Data handles GET /o/{path...} - streams the stored object.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := h.sys.Data(r.Context(), r.PathValue("path"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Remove handles DELETE - deletes the object behind a download URL.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), req.RestaurantID); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.sys.Remove(r.Context(), req.RestaurantID, req.URL); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": "Image deleted"})
}
