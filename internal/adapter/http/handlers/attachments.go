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

type AttachmentHandler struct {
	attachmentService ports.AttachmentService
}

func NewAttachmentHandler(attachmentService ports.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// CreateTaskAttachment records a file reference against a task. The bytes
// themselves live in external storage; only the opaque reference is kept.
func (h *AttachmentHandler) CreateTaskAttachment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	in, ok := h.bindAttachment(c)
	if !ok {
		return
	}
	in.TaskID = &taskID

	attachment, err := h.attachmentService.Create(c.Request.Context(), middlewarePrincipal(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToAttachmentItem(attachment))
}

func (h *AttachmentHandler) CreateCommentAttachment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	in, ok := h.bindAttachment(c)
	if !ok {
		return
	}
	in.CommentID = &commentID

	attachment, err := h.attachmentService.Create(c.Request.Context(), middlewarePrincipal(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToAttachmentItem(attachment))
}

func (h *AttachmentHandler) ListTaskAttachments(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.ListByTask(c.Request.Context(), middlewarePrincipal(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAttachmentItems(attachments))
}

func (h *AttachmentHandler) ListCommentAttachments(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	attachments, err := h.attachmentService.ListByComment(c.Request.Context(), middlewarePrincipal(c), commentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAttachmentItems(attachments))
}

func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), middlewarePrincipal(c), attachmentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AttachmentHandler) bindAttachment(c *gin.Context) (domain.CreateAttachmentInput, bool) {
	var req dto.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return domain.CreateAttachmentInput{}, false
	}

	filename := strings.TrimSpace(req.Filename)
	reference := strings.TrimSpace(req.Reference)
	if filename == "" || reference == "" {
		respondInvalidPayload(c)
		return domain.CreateAttachmentInput{}, false
	}

	return domain.CreateAttachmentInput{
		Filename:  filename,
		Reference: reference,
	}, true
}
