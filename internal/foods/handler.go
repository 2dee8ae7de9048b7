package foods

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/images"
	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/handlers"
	"github.com/JaimeStill/menu-lab/pkg/pagination"
	"github.com/JaimeStill/menu-lab/pkg/routes"
)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "foods"),
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/foods",
		Tags:        []string{"Foods"},
		Description: "Food item management within restaurant sections",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "PUT", Pattern: "", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "DELETE", Pattern: "", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

type mutationResponse struct {
	Message string         `json:"message"`
	ID      string         `json:"id"`
	Images  *images.Report `json:"images,omitempty"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r.URL.Query())
	if err := menu.Authorize(r.Context(), filters.RestaurantID); err != nil {
		h.fail(w, "list food items", err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), filters, page)
	if err != nil {
		h.fail(w, "list food items", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r.URL.Query())
	if err := menu.Authorize(r.Context(), filters.RestaurantID); err != nil {
		h.fail(w, "read food item", err)
		return
	}

	food, err := h.sys.Find(r.Context(), filters.RestaurantID, filters.SectionID, r.PathValue("id"))
	if err != nil {
		h.fail(w, "read food item", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, food)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), cmd.RestaurantID); err != nil {
		h.fail(w, "add food item", err)
		return
	}

	id, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		h.fail(w, "add food item", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), cmd.RestaurantID); err != nil {
		h.fail(w, "update food item", err)
		return
	}

	report, err := h.sys.Update(r.Context(), cmd)
	if err != nil {
		h.fail(w, "update food item", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, mutationResponse{
		Message: "Food item updated",
		ID:      cmd.ID,
		Images:  reportOrNil(report),
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var cmd DeleteCommand
	if err := handlers.DecodeJSON(r, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := menu.Authorize(r.Context(), cmd.RestaurantID); err != nil {
		h.fail(w, "delete food item", err)
		return
	}

	report, err := h.sys.Delete(r.Context(), cmd)
	if err != nil {
		h.fail(w, "delete food item", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, mutationResponse{
		Message: "Food item deleted",
		ID:      cmd.ID,
		Images:  reportOrNil(report),
	})
}

// fail writes err with its mapped status. Server errors carry the failed operation.
func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	status := MapHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		err = fmt.Errorf("failed to %s: %w", op, err)
	}
	handlers.RespondError(w, h.logger, status, err)
}

func reportOrNil(r images.Report) *images.Report {
	if r.Deleted == 0 && r.Skipped == 0 && len(r.Failures) == 0 {
		return nil
	}
	return &r
}
