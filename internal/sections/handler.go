package sections

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/handlers"
	"github.com/JaimeStill/menu-lab/pkg/routes"
)

// IdempotencyHeader carries the client-chosen key for a workflow request.
const IdempotencyHeader = "Idempotency-Key"

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "sections"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/sections",
		Tags:        []string{"Sections"},
		Description: "Menu sections and the rename and delete workflows",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PATCH", Pattern: "", Handler: h.Rename, OpenAPI: Spec.Rename},
			{Method: "DELETE", Pattern: "", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

type renameResponse struct {
	Message string `json:"message"`
	RenameResult
}

type deleteResponse struct {
	Message string `json:"message"`
	DeleteResult
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.URL.Query().Get("restaurantId")
	if err := menu.Authorize(r.Context(), restaurantID); err != nil {
		h.fail(w, "list sections", err)
		return
	}

	result, err := h.sys.List(r.Context(), restaurantID)
	if err != nil {
		h.fail(w, "list sections", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	restaurantID := r.URL.Query().Get("restaurantId")
	if err := menu.Authorize(r.Context(), restaurantID); err != nil {
		h.fail(w, "read section", err)
		return
	}

	result, err := h.sys.Find(r.Context(), restaurantID, r.PathValue("id"))
	if err != nil {
		h.fail(w, "read section", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), cmd.RestaurantID); err != nil {
		h.fail(w, "create section", err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		h.fail(w, "create section", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Rename handles PATCH - migrates a section to a new key and name.
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	var cmd RenameCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), cmd.RestaurantID); err != nil {
		h.fail(w, "update section", err)
		return
	}

	result, err := h.sys.Rename(r.Context(), cmd, r.Header.Get(IdempotencyHeader))
	if err != nil {
		h.fail(w, "update section", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, renameResponse{
		Message:      "Section updated",
		RenameResult: *result,
	})
}

// Delete handles DELETE - removes a section, its items, and their images.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var cmd DeleteCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), cmd.RestaurantID); err != nil {
		h.fail(w, "delete section", err)
		return
	}

	result, err := h.sys.Delete(r.Context(), cmd, r.Header.Get(IdempotencyHeader))
	if err != nil {
		h.fail(w, "delete section", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, deleteResponse{
		Message:      "Section deleted",
		DeleteResult: *result,
	})
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	status := MapHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		err = fmt.Errorf("failed to %s: %w", op, err)
	}
	handlers.RespondError(w, h.logger, status, err)
}
