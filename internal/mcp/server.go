// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hunterjackson/todoer-sub000/application/service"
	"github.com/hunterjackson/todoer-sub000/domain/project"
	"github.com/hunterjackson/todoer-sub000/domain/task"
)

// defaultFilterLimit caps filter_tasks output when the caller gives no limit.
const defaultFilterLimit = 50

// TaskFilter runs filter queries for MCP tools.
type TaskFilter interface {
	Query(ctx context.Context, query string, opts ...service.QueryOption) ([]task.Task, error)
}

// TaskWriter creates and completes tasks for MCP tools.
type TaskWriter interface {
	Create(ctx context.Context, params *service.TaskCreateParams) (task.Task, error)
	Complete(ctx context.Context, id string) (task.Task, error)
}

// ProjectLister lists projects for MCP tools.
type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

// Server wraps the MCP server with todoer-specific tools.
type Server struct {
	mcpServer *server.MCPServer
	filters   TaskFilter
	tasks     TaskWriter
	projects  ProjectLister
	version   string
	logger    *slog.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(filters TaskFilter, tasks TaskWriter, projects ProjectLister, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		filters:  filters,
		tasks:    tasks,
		projects: projects,
		version:  version,
		logger:   logger,
	}

	mcpServer := server.NewMCPServer(
		"todoer",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

// registerTools registers all todoer tools with the MCP server.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	filterTool := mcp.NewTool("filter_tasks",
		mcp.WithDescription("Find tasks matching a filter query. Queries combine priorities (p1-p4), #project, @label, /section, date keywords (today, tomorrow, overdue, no date, before: <date>, after: <date>), flags (recurring, subtask, shared, assigned), and free text (search: <text>) with & (and), | (or), ! (not), and parentheses. An empty query returns every task."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The filter query, e.g. 'p1 & #work' or '@urgent | overdue'"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of tasks to return (default: 50)"),
		),
	)
	mcpServer.AddTool(filterTool, s.handleFilterTasks)

	addTool := mcp.NewTool("add_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The task text"),
		),
		mcp.WithString("description",
			mcp.Description("Longer free-form notes"),
		),
		mcp.WithString("project_id",
			mcp.Description("ID of the project the task belongs to"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority from 1 (urgent) to 4 (default)"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date in RFC 3339 format"),
		),
	)
	mcpServer.AddTool(addTool, s.handleAddTask)

	completeTool := mcp.NewTool("complete_task",
		mcp.WithDescription("Mark a task as completed"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("The task ID"),
		),
	)
	mcpServer.AddTool(completeTool, s.handleCompleteTask)

	listProjectsTool := mcp.NewTool("list_projects",
		mcp.WithDescription("List all projects with their IDs"),
	)
	mcpServer.AddTool(listProjectsTool, s.handleListProjects)

	versionTool := mcp.NewTool("get_version",
		mcp.WithDescription("Get the todoer server version"),
	)
	mcpServer.AddTool(versionTool, s.handleGetVersion)
}

// taskResult is the JSON shape task tools return.
type taskResult struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority"`
	ProjectID   string   `json:"project_id,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Completed   bool     `json:"completed"`
}

func toTaskResult(t task.Task) taskResult {
	r := taskResult{
		ID:          t.ID(),
		Content:     t.Content(),
		Description: t.Description(),
		Priority:    int(t.Priority()),
		ProjectID:   t.ProjectID(),
		Completed:   t.Completed(),
	}
	for _, l := range t.Labels() {
		r.Labels = append(r.Labels, l.Name())
	}
	if t.HasDueDate() {
		r.DueDate = t.DueDate().Format(time.RFC3339)
	}
	return r
}

// handleFilterTasks handles the filter_tasks tool invocation.
func (s *Server) handleFilterTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	limit := request.GetInt("limit", defaultFilterLimit)

	matches, err := s.filters.Query(ctx, query, service.WithLimit(limit))
	if err != nil {
		s.logger.Error("filter query failed", slog.String("query", query), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("filter query failed: %v", err)), nil
	}

	results := make([]taskResult, len(matches))
	for i, t := range matches {
		results[i] = toTaskResult(t)
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleAddTask handles the add_task tool invocation.
func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}

	params := &service.TaskCreateParams{
		Content:     content,
		Description: request.GetString("description", ""),
		ProjectID:   request.GetString("project_id", ""),
		Priority:    request.GetInt("priority", 0),
	}
	if due := request.GetString("due_date", ""); due != "" {
		parsed, err := time.Parse(time.RFC3339, due)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid due_date: %v", err)), nil
		}
		params.DueDate = parsed
	}

	created, err := s.tasks.Create(ctx, params)
	if err != nil {
		s.logger.Error("add task failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("add task failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(toTaskResult(created))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleCompleteTask handles the complete_task tool invocation.
func (s *Server) handleCompleteTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	completed, err := s.tasks.Complete(ctx, id)
	if err != nil {
		s.logger.Error("complete task failed", slog.String("task_id", id), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("complete task failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(toTaskResult(completed))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleListProjects handles the list_projects tool invocation.
func (s *Server) handleListProjects(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error("list projects failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("list projects failed: %v", err)), nil
	}

	type projectResult struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color,omitempty"`
	}

	results := make([]projectResult, len(projects))
	for i, p := range projects {
		results[i] = projectResult{
			ID:    p.ID(),
			Name:  p.Name(),
			Color: p.Color(),
		}
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleGetVersion handles the get_version tool invocation.
func (s *Server) handleGetVersion(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.version), nil
}

// MCPServer returns the underlying MCP server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
