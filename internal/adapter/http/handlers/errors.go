package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goer/asana-clone/internal/adapter/http/middleware"
	"github.com/goer/asana-clone/internal/core/domain"
	"github.com/goer/asana-clone/pkg/apierrors"
)

// httpErrors pairs domain sentinels with their wire form. Order matters:
// specific errors sit above the category they wrap so the first match wins.
var httpErrors = []struct {
	target error
	status int
	msgKey string
}{
	{domain.ErrTaskHierarchyCycle, http.StatusBadRequest, apierrors.MsgHierarchyCycle},
	{domain.ErrTaskHierarchyTooDeep, http.StatusBadRequest, apierrors.MsgHierarchyTooDeep},
	{domain.ErrValueTypeMismatch, http.StatusBadRequest, apierrors.MsgValueTypeMismatch},
	{domain.ErrUnknownOption, http.StatusBadRequest, apierrors.MsgUnknownOption},
	{domain.ErrAttachmentTarget, http.StatusBadRequest, apierrors.MsgAttachmentTarget},
	{domain.ErrAssigneeNotMember, http.StatusBadRequest, apierrors.MsgNotInWorkspace},
	{domain.ErrUserNotInWorkspace, http.StatusBadRequest, apierrors.MsgNotInWorkspace},
	{domain.ErrTeamWorkspaceMismatch, http.StatusBadRequest, apierrors.MsgWorkspaceMismatch},
	{domain.ErrTagWorkspaceMismatch, http.StatusBadRequest, apierrors.MsgWorkspaceMismatch},
	{domain.ErrSectionProjectMismatch, http.StatusBadRequest, apierrors.MsgProjectMismatch},
	{domain.ErrParentProjectMismatch, http.StatusBadRequest, apierrors.MsgProjectMismatch},
	{domain.ErrFieldProjectMismatch, http.StatusBadRequest, apierrors.MsgProjectMismatch},

	{domain.ErrUserNotFound, http.StatusNotFound, apierrors.MsgUserNotFound},
	{domain.ErrWorkspaceNotFound, http.StatusNotFound, apierrors.MsgWorkspaceNotFound},
	{domain.ErrTeamNotFound, http.StatusNotFound, apierrors.MsgTeamNotFound},
	{domain.ErrProjectNotFound, http.StatusNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrSectionNotFound, http.StatusNotFound, apierrors.MsgSectionNotFound},
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrTagNotFound, http.StatusNotFound, apierrors.MsgTagNotFound},
	{domain.ErrFieldNotFound, http.StatusNotFound, apierrors.MsgFieldNotFound},
	{domain.ErrCommentNotFound, http.StatusNotFound, apierrors.MsgCommentNotFound},
	{domain.ErrAttachmentNotFound, http.StatusNotFound, apierrors.MsgAttachmentNotFound},

	{domain.ErrEmailTaken, http.StatusConflict, apierrors.MsgEmailTaken},
	{domain.ErrTagNameTaken, http.StatusConflict, apierrors.MsgTagNameTaken},
	{domain.ErrFieldHasValues, http.StatusConflict, apierrors.MsgFieldHasValues},

	{domain.ErrInvalidInput, http.StatusBadRequest, apierrors.MsgInvalidPayload},
	{domain.ErrNotFound, http.StatusNotFound, apierrors.MsgNotFound},
	{domain.ErrConflict, http.StatusConflict, apierrors.MsgConflict},
	{domain.ErrForbidden, http.StatusForbidden, apierrors.MsgForbidden},
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.MsgUnauthorized},
}

// respondError translates a service error into the JSON error envelope.
// Anything that matches no sentinel is a 500 and the only place we log it.
func respondError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	for _, entry := range httpErrors {
		if errors.Is(err, entry.target) {
			c.JSON(entry.status, apierrors.CreateError(entry.status, entry.msgKey, lang))
			return
		}
	}

	zap.L().Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalServerError, lang),
	)
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
	)
}

func respondInvalidID(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang),
	)
}

// middlewarePrincipal reads the identity the auth middleware resolved for
// this request.
func middlewarePrincipal(c *gin.Context) domain.Principal {
	return middleware.GetPrincipal(c)
}

// parseIDParam reads a positive numeric path parameter; on failure it writes
// the 400 itself and reports false.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondInvalidID(c)
		return 0, false
	}
	return id, true
}
