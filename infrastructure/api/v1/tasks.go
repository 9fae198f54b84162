// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	todoer "github.com/hunterjackson/todoer-sub000"
	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/domain/task"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/middleware"
	"github.com/hunterjackson/todoer-sub000/infrastructure/api/v1/dto"
)

// TasksRouter handles task API endpoints.
type TasksRouter struct {
	client *todoer.Client
	logger *slog.Logger
}

// NewTasksRouter creates a new TasksRouter.
func NewTasksRouter(client *todoer.Client) *TasksRouter {
	return &TasksRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for task endpoints.
func (r *TasksRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Post("/", r.Create)
	router.Get("/{id}", r.Get)
	router.Patch("/{id}", r.Update)
	router.Delete("/{id}", r.Delete)
	router.Post("/{id}/complete", r.Complete)
	router.Post("/{id}/reopen", r.Reopen)

	return router
}

// List handles GET /api/v1/tasks.
//
//	@Summary		List tasks
//	@Description	List tasks matching a filter query. An empty filter returns every task, completed and deleted ones included.
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			filter		query	string	false	"Filter query, e.g. p1 & #work"
//	@Param			page		query	int		false	"Page number (default: 1)"
//	@Param			page_size	query	int		false	"Results per page (default: 20, max: 100)"
//	@Success		200	{object}	dto.TaskListResponse
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks [get]
func (r *TasksRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)
	query := req.URL.Query().Get("filter")

	matches, err := r.client.Filters.Query(ctx, query,
		service.WithLimit(pagination.Limit()),
		service.WithOffset(pagination.Offset()),
	)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	total, err := r.client.Filters.Count(ctx, query)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := dto.TaskListResponse{
		Data:  tasksToDTO(matches),
		Meta:  PaginationMeta(pagination, total),
		Links: PaginationLinks(req, pagination, total),
	}

	middleware.WriteJSON(w, http.StatusOK, response)
}

// Create handles POST /api/v1/tasks.
//
//	@Summary		Create task
//	@Description	Create a new task
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.TaskCreateRequest	true	"Task request"
//	@Success		201		{object}	dto.TaskResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks [post]
func (r *TasksRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.TaskCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attrs := body.Data.Attributes
	if attrs.Content == "" {
		middleware.WriteJSON(w, http.StatusBadRequest, map[string]string{
			"error": "content is required",
		})
		return
	}

	params := &service.TaskCreateParams{
		Content:     attrs.Content,
		Description: attrs.Description,
		ProjectID:   attrs.ProjectID,
		SectionID:   attrs.SectionID,
		LabelIDs:    attrs.LabelIDs,
		Priority:    attrs.Priority,
		Duration:    attrs.Duration,
		Recurrence:  attrs.Recurrence,
		DelegatedTo: attrs.DelegatedTo,
	}
	if attrs.DueDate != nil {
		params.DueDate = *attrs.DueDate
	}
	if attrs.Deadline != nil {
		params.Deadline = *attrs.Deadline
	}

	created, err := r.client.Tasks.Create(ctx, params)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.TaskResponse{Data: taskToDTO(created)})
}

// Get handles GET /api/v1/tasks/{id}.
//
//	@Summary		Get task
//	@Description	Get a task by ID
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Task ID"
//	@Success		200	{object}	dto.TaskResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks/{id} [get]
func (r *TasksRouter) Get(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	found, err := r.client.Tasks.Get(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.TaskResponse{Data: taskToDTO(found)})
}

// Update handles PATCH /api/v1/tasks/{id}.
//
//	@Summary		Update task
//	@Description	Update task fields. Absent fields are left unchanged.
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Task ID"
//	@Param			body	body		dto.TaskUpdateRequest	true	"Task update request"
//	@Success		200		{object}	dto.TaskResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks/{id} [patch]
func (r *TasksRouter) Update(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")

	var body dto.TaskUpdateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attrs := body.Data.Attributes
	updated, err := r.client.Tasks.Update(ctx, id, &service.TaskUpdateParams{
		Content:     attrs.Content,
		Description: attrs.Description,
		ProjectID:   attrs.ProjectID,
		SectionID:   attrs.SectionID,
		LabelIDs:    attrs.LabelIDs,
		Priority:    attrs.Priority,
		DueDate:     attrs.DueDate,
		Deadline:    attrs.Deadline,
		Duration:    attrs.Duration,
		Recurrence:  attrs.Recurrence,
		DelegatedTo: attrs.DelegatedTo,
	})
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.TaskResponse{Data: taskToDTO(updated)})
}

// Delete handles DELETE /api/v1/tasks/{id}.
//
//	@Summary		Delete task
//	@Description	Soft-delete a task. Pass permanent=true to remove it entirely.
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string	true	"Task ID"
//	@Param			permanent	query	bool	false	"Remove the task instead of soft-deleting it"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks/{id} [delete]
func (r *TasksRouter) Delete(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")

	var err error
	if req.URL.Query().Get("permanent") == "true" {
		err = r.client.Tasks.Delete(ctx, id)
	} else {
		err = r.client.Tasks.SoftDelete(ctx, id)
	}
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Complete handles POST /api/v1/tasks/{id}/complete.
//
//	@Summary		Complete task
//	@Description	Mark a task as completed
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Task ID"
//	@Success		200	{object}	dto.TaskResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks/{id}/complete [post]
func (r *TasksRouter) Complete(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	completed, err := r.client.Tasks.Complete(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.TaskResponse{Data: taskToDTO(completed)})
}

// Reopen handles POST /api/v1/tasks/{id}/reopen.
//
//	@Summary		Reopen task
//	@Description	Clear a task's completed flag
//	@Tags			tasks
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string	true	"Task ID"
//	@Success		200	{object}	dto.TaskResponse
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		APIKeyAuth
//	@Router			/tasks/{id}/reopen [post]
func (r *TasksRouter) Reopen(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	id := chi.URLParam(req, "id")
	reopened, err := r.client.Tasks.Reopen(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.TaskResponse{Data: taskToDTO(reopened)})
}

func tasksToDTO(tasks []task.Task) []dto.TaskData {
	result := make([]dto.TaskData, len(tasks))
	for i, t := range tasks {
		result[i] = taskToDTO(t)
	}
	return result
}

func taskToDTO(t task.Task) dto.TaskData {
	taskLabels := t.Labels()
	labels := make([]string, len(taskLabels))
	for i, l := range taskLabels {
		labels[i] = l.Name()
	}

	attrs := dto.TaskAttributes{
		Content:     t.Content(),
		Description: t.Description(),
		ProjectID:   t.ProjectID(),
		SectionID:   t.SectionID(),
		Labels:      labels,
		Priority:    int(t.Priority()),
		Completed:   t.Completed(),
		Deleted:     t.IsDeleted(),
		Duration:    t.Duration(),
		Recurrence:  t.RecurrenceRule(),
		DelegatedTo: t.DelegatedTo(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if t.HasDueDate() {
		due := t.DueDate()
		attrs.DueDate = &due
	}
	if t.HasDeadline() {
		deadline := t.Deadline()
		attrs.Deadline = &deadline
	}

	return dto.TaskData{
		Type:       "task",
		ID:         t.ID(),
		Attributes: attrs,
	}
}
