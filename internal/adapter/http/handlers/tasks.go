package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/adapter/http/validation"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	in, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), middlewarePrincipal(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), middlewarePrincipal(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

// UpdateTask is a PATCH: only keys present in the body change, and a null
// value clears the field where the model allows it.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	in, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), middlewarePrincipal(c), taskID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), middlewarePrincipal(c), taskID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ListSubtasks(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subtasks, err := h.taskService.ListSubtasks(c.Request.Context(), middlewarePrincipal(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(subtasks))
}

// QueryTasks filters the workspace's tasks. Every query parameter is
// optional except workspace_id; assignee accepts the literal "me", resolved
// against the calling principal before the filters run.
func (h *TaskHandler) QueryTasks(c *gin.Context) {
	p := middlewarePrincipal(c)

	q, ok := h.parseTaskQuery(c, p)
	if !ok {
		return
	}

	page, err := h.taskService.Query(c.Request.Context(), p, q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskPageResponse(page))
}

func (h *TaskHandler) parseTaskQuery(c *gin.Context, p domain.Principal) (domain.TaskQuery, bool) {
	var q domain.TaskQuery

	workspaceID, err := strconv.ParseUint(c.Query("workspace_id"), 10, 64)
	if err != nil || workspaceID == 0 {
		respondInvalidPayload(c)
		return q, false
	}
	q.WorkspaceID = workspaceID

	var ok bool
	if q.ProjectID, ok = parseIDQuery(c, "project_id"); !ok {
		return q, false
	}
	if q.SectionID, ok = parseIDQuery(c, "section_id"); !ok {
		return q, false
	}
	if q.TagID, ok = parseIDQuery(c, "tag_id"); !ok {
		return q, false
	}

	if value := c.Query("assignee"); value != "" {
		assigneeID := p.UserID
		if value != "me" {
			assigneeID, err = strconv.ParseUint(value, 10, 64)
			if err != nil || assigneeID == 0 {
				respondInvalidPayload(c)
				return q, false
			}
		}
		q.AssigneeID = &assigneeID
	}

	if value := c.Query("completed"); value != "" {
		completed, err := strconv.ParseBool(value)
		if err != nil {
			respondInvalidPayload(c)
			return q, false
		}
		q.Completed = &completed
	}

	if q.CompletedSince, ok = parseTimeQuery(c, "completed_since"); !ok {
		return q, false
	}
	if q.DueBefore, ok = parseTimeQuery(c, "due_before"); !ok {
		return q, false
	}

	if value := c.Query("limit"); value != "" {
		limit, err := strconv.Atoi(value)
		if err != nil {
			respondInvalidPayload(c)
			return q, false
		}
		q.Limit = limit
	}
	if value := c.Query("offset"); value != "" {
		offset, err := strconv.Atoi(value)
		if err != nil {
			respondInvalidPayload(c)
			return q, false
		}
		q.Offset = offset
	}

	return q, true
}

// parseIDQuery reads an optional positive id query parameter. A missing
// parameter is fine; a malformed one writes the 400 and reports false.
func parseIDQuery(c *gin.Context, name string) (*uint64, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		respondInvalidPayload(c)
		return nil, false
	}
	return &id, true
}

func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return nil, true
	}
	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		respondInvalidPayload(c)
		return nil, false
	}
	return &instant, true
}
