package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/mapper"
	"github.com/goer/asana-clone/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		respondInvalidPayload(c)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), middlewarePrincipal(c), taskID, text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.ListByTask(c.Request.Context(), middlewarePrincipal(c), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

// UpdateComment edits the text only; author and timestamps are fixed.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		respondInvalidPayload(c)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), middlewarePrincipal(c), commentID, text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItem(comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), middlewarePrincipal(c), commentID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
