package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/domain/label"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/middleware"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/v1/dto"
)

// LabelsRouter handles label API endpoints.
type LabelsRouter struct {
	client *todoer.Client
	logger *slog.Logger
}

// NewLabelsRouter creates a new LabelsRouter.
func NewLabelsRouter(client *todoer.Client) *LabelsRouter {
	return &LabelsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for label endpoints.
func (r *LabelsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)
	router.Patch("/{id}", r.Update)
	router.Delete("/{id}", r.Delete)

	return router
}

// List handles GET /api/v1/labels.
//
//	@Summary		List labels
//	@Description	Get all labels ordered by name
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.LabelListResponse
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/labels [get]
func (r *LabelsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	labels, err := r.client.Labels.List(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.LabelListResponse{Data: labelsToDTO(labels)})
}

// Create handles POST /api/v1/labels.
//
//	@Summary		Create label
//	@Description	Create a new label
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LabelCreateRequest	true	"Label request"
//	@Success		201		{object}	dto.LabelResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/labels [post]
func (r *LabelsRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.LabelCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attrs := body.Data.Attributes
	if attrs.Name == "" {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "name is required",
		})
		return
	}

	created, err := r.client.Labels.Create(ctx, &service.LabelCreateParams{
		Name:  attrs.Name,
		Color: attrs.Color,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.LabelResponse{Data: labelToDTO(created)})
}

// Get handles GET /api/v1/labels/{id}.
//
//	@Summary		Get label
//	@Description	Get a label by ID
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Label ID"
//	@Success		200	{object}	dto.LabelResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/labels/{id} [get]
func (r *LabelsRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	found, err := r.client.Labels.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.LabelResponse{Data: labelToDTO(found)})
}

// Update handles PATCH /api/v1/labels/{id}.
//
//	@Summary		Update label
//	@Description	Update label fields. Absent fields are left unchanged.
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Label ID"
//	@Param			body	body		dto.LabelUpdateRequest	true	"Label update request"
//	@Success		200		{object}	dto.LabelResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/labels/{id} [patch]
func (r *LabelsRouter) Update(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")

	var body dto.LabelUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attrs := body.Data.Attributes
	updated, err := r.client.Labels.Update(ctx, id, &service.LabelUpdateParams{
		Name:  attrs.Name,
		Color: attrs.Color,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.LabelResponse{Data: labelToDTO(updated)})
}

// Delete handles DELETE /api/v1/labels/{id}.
//
//	@Summary		Delete label
//	@Description	Delete a label and detach it from all tasks
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Label ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/labels/{id} [delete]
func (r *LabelsRouter) Delete(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	if err := r.client.Labels.Delete(ctx, id); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func labelsToDTO(labels []label.Label) []dto.LabelData {
	result := make([]dto.LabelData, len(labels))
	for i, l := range labels {
		result[i] = labelToDTO(l)
	}
	return result
}

func labelToDTO(l label.Label) dto.LabelData {
	return dto.LabelData{
		Type: "label",
		ID:   l.ID(),
		Attributes: dto.LabelAttributes{
			Name:      l.Name(),
			Color:     l.Color(),
			CreatedAt: l.CreatedAt(),
			UpdatedAt: l.UpdatedAt(),
		},
	}
}
