package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/adapter/http/validation"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type ProjectHandler struct {
	projectService ports.ProjectService
}

func NewProjectHandler(projectService ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	project, err := h.projectService.Create(c.Request.Context(), middlewarePrincipal(c), domain.CreateProjectInput{
		Name:        name,
		Description: req.Description,
		WorkspaceID: req.WorkspaceID,
		TeamID:      req.TeamID,
		IsPublic:    isPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), middlewarePrincipal(c), projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Query("workspace_id"), 10, 64)
	if err != nil || workspaceID == 0 {
		respondInvalidPayload(c)
		return
	}

	projects, err := h.projectService.ListByWorkspace(c.Request.Context(), middlewarePrincipal(c), workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

// UpdateProject is a PATCH: a null team_id detaches the project from its
// team, an absent one leaves the team alone.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		respondInvalidPayload(c)
		return
	}

	in, err := validation.BuildUpdateProjectInput(req, raw)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), middlewarePrincipal(c), projectID, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), middlewarePrincipal(c), projectID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
