package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/internal/core/ports"
)

type TagHandler struct {
	tagService ports.TagService
}

func NewTagHandler(tagService ports.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), middlewarePrincipal(c), domain.CreateTagInput{
		Name:        name,
		Color:       req.Color,
		WorkspaceID: req.WorkspaceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTagItem(tag))
}

func (h *TagHandler) ListTags(c *gin.Context) {
	workspaceID, err := strconv.ParseUint(c.Query("workspace_id"), 10, 64)
	if err != nil || workspaceID == 0 {
		respondInvalidPayload(c)
		return
	}

	tags, err := h.tagService.ListByWorkspace(c.Request.Context(), middlewarePrincipal(c), workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTagItems(tags))
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	if req.Name == nil && req.Color == nil {
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

	tag, err := h.tagService.Update(c.Request.Context(), middlewarePrincipal(c), tagID, domain.UpdateTagInput{
		Name:     name,
		Color:    req.Color,
		ColorSet: req.Color != nil,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTagItem(tag))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), middlewarePrincipal(c), tagID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachTag links the tag to the task; re-attaching is a no-op, so PUT is
// the natural verb.
func (h *TagHandler) AttachTag(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagID")
	if !ok {
		return
	}

	if err := h.tagService.Attach(c.Request.Context(), middlewarePrincipal(c), taskID, tagID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) DetachTag(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagID")
	if !ok {
		return
	}

	if err := h.tagService.Detach(c.Request.Context(), middlewarePrincipal(c), taskID, tagID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TagHandler) ListTaskTags(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tags, err := h.tagService.ListForTask(c.Request.Context(), middlewarePrincipal(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTagItems(tags))
}
