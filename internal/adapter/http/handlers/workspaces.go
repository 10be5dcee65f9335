package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type WorkspaceHandler struct {
	workspaceService ports.WorkspaceService
}

func NewWorkspaceHandler(workspaceService ports.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	workspace, err := h.workspaceService.Create(c.Request.Context(), middlewarePrincipal(c), domain.CreateWorkspaceInput{
		Name: name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToWorkspaceItem(workspace))
}

// ListWorkspaces returns only the workspaces the principal belongs to; under
// soft auth with no hint that is the fallback account's own memberships,
// never the whole catalog.
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.List(c.Request.Context(), middlewarePrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkspaceItems(workspaces))
}

func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Get(c.Request.Context(), middlewarePrincipal(c), workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkspaceItem(workspace))
}

func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			respondInvalidPayload(c)
			return
		}
		name = &value
	}
	if name == nil {
		respondInvalidPayload(c)
		return
	}

	workspace, err := h.workspaceService.Update(c.Request.Context(), middlewarePrincipal(c), workspaceID, domain.UpdateWorkspaceInput{
		Name: name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToWorkspaceItem(workspace))
}

func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(c.Request.Context(), middlewarePrincipal(c), workspaceID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) AddMember(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddWorkspaceMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	user, err := h.workspaceService.AddMember(c.Request.Context(), middlewarePrincipal(c), workspaceID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *WorkspaceHandler) ListMembers(c *gin.Context) {
	workspaceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := h.workspaceService.ListMembers(c.Request.Context(), middlewarePrincipal(c), workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(members))
}
