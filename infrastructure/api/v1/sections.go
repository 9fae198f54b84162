package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/domain/section"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/middleware"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/v1/dto"
)

// SectionsRouter handles section API endpoints.
type SectionsRouter struct {
	client *todoer.Client
	logger *slog.Logger
}

// NewSectionsRouter creates a new SectionsRouter.
func NewSectionsRouter(client *todoer.Client) *SectionsRouter {
	return &SectionsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for section endpoints.
func (r *SectionsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)
	router.Patch("/{id}", r.Update)
	router.Delete("/{id}", r.Delete)

	return router
}

// List handles GET /api/v1/sections.
//
//	@Summary		List sections
//	@Description	Get sections, optionally narrowed to one project
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Param			project_id	query	string	false	"Only sections of this project"
//	@Success		200	{object}	dto.SectionListResponse
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/sections [get]
func (r *SectionsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	projectID := req.URL.Query().Get("project_id")
	sections, err := r.client.Sections.List(ctx, projectID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SectionListResponse{Data: sectionsToDTO(sections)})
}

// Create handles POST /api/v1/sections.
//
//	@Summary		Create section
//	@Description	Create a new section inside a project
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.SectionCreateRequest	true	"Section request"
//	@Success		201		{object}	dto.SectionResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/sections [post]
func (r *SectionsRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.SectionCreateRequest
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
	if attrs.ProjectID == "" {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "project_id is required",
		})
		return
	}

	created, err := r.client.Sections.Create(ctx, &service.SectionCreateParams{
		Name:      attrs.Name,
		ProjectID: attrs.ProjectID,
		Position:  attrs.Position,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.SectionResponse{Data: sectionToDTO(created)})
}

// Get handles GET /api/v1/sections/{id}.
//
//	@Summary		Get section
//	@Description	Get a section by ID
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Section ID"
//	@Success		200	{object}	dto.SectionResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/sections/{id} [get]
func (r *SectionsRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	found, err := r.client.Sections.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SectionResponse{Data: sectionToDTO(found)})
}

// Update handles PATCH /api/v1/sections/{id}.
//
//	@Summary		Update section
//	@Description	Update section fields. Absent fields are left unchanged.
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Section ID"
//	@Param			body	body		dto.SectionUpdateRequest	true	"Section update request"
//	@Success		200		{object}	dto.SectionResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/sections/{id} [patch]
func (r *SectionsRouter) Update(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")

	var body dto.SectionUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attrs := body.Data.Attributes
	updated, err := r.client.Sections.Update(ctx, id, &service.SectionUpdateParams{
		Name:     attrs.Name,
		Position: attrs.Position,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.SectionResponse{Data: sectionToDTO(updated)})
}

// Delete handles DELETE /api/v1/sections/{id}.
//
//	@Summary		Delete section
//	@Description	Delete a section. Its tasks keep their section assignment.
//	@Tags			sections
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Section ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/sections/{id} [delete]
func (r *SectionsRouter) Delete(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	if err := r.client.Sections.Delete(ctx, id); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sectionsToDTO(sections []section.Section) []dto.SectionData {
	result := make([]dto.SectionData, len(sections))
	for i, s := range sections {
		result[i] = sectionToDTO(s)
	}
	return result
}

func sectionToDTO(s section.Section) dto.SectionData {
	return dto.SectionData{
		Type: "section",
		ID:   s.ID(),
		Attributes: dto.SectionAttributes{
			Name:      s.Name(),
			ProjectID: s.ProjectID(),
			Position:  s.Position(),
			CreatedAt: s.CreatedAt(),
			UpdatedAt: s.UpdatedAt(),
		},
	}
}
