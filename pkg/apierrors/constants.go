package apierrors

const (
	MsgInvalidPayload = "invalidPayload"
	MsgInvalidID      = "invalidID"

	MsgUserNotFound       = "userNotFound"
	MsgWorkspaceNotFound  = "workspaceNotFound"
	MsgTeamNotFound       = "teamNotFound"
	MsgProjectNotFound    = "projectNotFound"
	MsgSectionNotFound    = "sectionNotFound"
	MsgTaskNotFound       = "taskNotFound"
	MsgTagNotFound        = "tagNotFound"
	MsgFieldNotFound      = "customFieldNotFound"
	MsgCommentNotFound    = "commentNotFound"
	MsgAttachmentNotFound = "attachmentNotFound"
	MsgNotFound           = "notFound"

	MsgHierarchyCycle    = "taskHierarchyCycle"
	MsgHierarchyTooDeep  = "taskHierarchyTooDeep"
	MsgValueTypeMismatch = "valueTypeMismatch"
	MsgUnknownOption     = "unknownSelectOption"
	MsgAttachmentTarget  = "attachmentTarget"
	MsgNotInWorkspace    = "notWorkspaceMember"
	MsgWorkspaceMismatch = "workspaceMismatch"
	MsgProjectMismatch   = "projectMismatch"

	MsgEmailTaken     = "emailTaken"
	MsgTagNameTaken   = "tagNameTaken"
	MsgFieldHasValues = "customFieldHasValues"
	MsgConflict       = "conflict"

	MsgForbidden           = "forbidden"
	MsgUnauthorized        = "unauthorized"
	MsgInternalServerError = "internalServerError"
)
