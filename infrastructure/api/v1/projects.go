package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/middleware"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/v1/dto"
)

// ProjectsRouter handles project API endpoints.
type ProjectsRouter struct {
	client *todoer.Client
	logger *slog.Logger
}

// NewProjectsRouter creates a new ProjectsRouter.
func NewProjectsRouter(client *todoer.Client) *ProjectsRouter {
	return &ProjectsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for project endpoints.
func (r *ProjectsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)
	router.Patch("/{id}", r.Update)
	router.Delete("/{id}", r.Delete)

	return router
}

// List handles GET /api/v1/projects.
//
//	@Summary		List projects
//	@Description	Get all projects ordered by position
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.ProjectListResponse
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/projects [get]
func (r *ProjectsRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	projects, err := r.client.Projects.List(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ProjectListResponse{Data: projectsToDTO(projects)})
}

// Create handles POST /api/v1/projects.
//
//	@Summary		Create project
//	@Description	Create a new project
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.ProjectCreateRequest	true	"Project request"
//	@Success		201		{object}	dto.ProjectResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/projects [post]
func (r *ProjectsRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.ProjectCreateRequest
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

	created, err := r.client.Projects.Create(ctx, &service.ProjectCreateParams{
		Name:     attrs.Name,
		Color:    attrs.Color,
		Position: attrs.Position,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.ProjectResponse{Data: projectToDTO(created)})
}

// Get handles GET /api/v1/projects/{id}.
//
//	@Summary		Get project
//	@Description	Get a project by ID
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	dto.ProjectResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/projects/{id} [get]
func (r *ProjectsRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	found, err := r.client.Projects.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ProjectResponse{Data: projectToDTO(found)})
}

// Update handles PATCH /api/v1/projects/{id}.
//
//	@Summary		Update project
//	@Description	Update project fields. Absent fields are left unchanged.
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Project ID"
//	@Param			body	body		dto.ProjectUpdateRequest	true	"Project update request"
//	@Success		200		{object}	dto.ProjectResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/projects/{id} [patch]
func (r *ProjectsRouter) Update(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")

	var body dto.ProjectUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attrs := body.Data.Attributes
	updated, err := r.client.Projects.Update(ctx, id, &service.ProjectUpdateParams{
		Name:     attrs.Name,
		Color:    attrs.Color,
		Position: attrs.Position,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.ProjectResponse{Data: projectToDTO(updated)})
}

// Delete handles DELETE /api/v1/projects/{id}.
//
//	@Summary		Delete project
//	@Description	Delete a project. Its tasks and sections are left in place.
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/projects/{id} [delete]
func (r *ProjectsRouter) Delete(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	if err := r.client.Projects.Delete(ctx, id); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func projectsToDTO(projects []project.Project) []dto.ProjectData {
	result := make([]dto.ProjectData, len(projects))
	for i, p := range projects {
		result[i] = projectToDTO(p)
	}
	return result
}

func projectToDTO(p project.Project) dto.ProjectData {
	return dto.ProjectData{
		Type: "project",
		ID:   p.ID(),
		Attributes: dto.ProjectAttributes{
			Name:      p.Name(),
			Color:     p.Color(),
			Position:  p.Position(),
			CreatedAt: p.CreatedAt(),
			UpdatedAt: p.UpdatedAt(),
		},
	}
}
