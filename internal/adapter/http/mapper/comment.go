package mapper

import (
	"time"

	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/core/domain"
)

func ToCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		Text:      comment.Text,
		TaskID:    comment.TaskID,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAttachmentItems(attachments []domain.Attachment) []dto.AttachmentItem {
	items := make([]dto.AttachmentItem, 0, len(attachments))
	for _, attachment := range attachments {
		items = append(items, ToAttachmentItem(attachment))
	}
	return items
}

func ToAttachmentItem(attachment domain.Attachment) dto.AttachmentItem {
	item := dto.AttachmentItem{
		ID:         attachment.ID,
		Filename:   attachment.Filename,
		Reference:  attachment.Reference,
		UploaderID: attachment.UploaderID,
		CreatedAt:  attachment.CreatedAt.Format(time.RFC3339),
	}

	if attachment.TaskID != nil {
		value := *attachment.TaskID
		item.TaskID = &value
	}

	if attachment.CommentID != nil {
		value := *attachment.CommentID
		item.CommentID = &value
	}

	return item
}
