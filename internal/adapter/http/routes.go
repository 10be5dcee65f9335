package http

import (
	"github.com/gin-gonic/gin"

	"github.com/goer/asana-clone/internal/adapter/http/handlers"
	"github.com/goer/asana-clone/internal/adapter/http/middleware"
	"github.com/goer/asana-clone/internal/core/ports"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Workspace   *handlers.WorkspaceHandler
	Team        *handlers.TeamHandler
	Project     *handlers.ProjectHandler
	Section     *handlers.SectionHandler
	Task        *handlers.TaskHandler
	Tag         *handlers.TagHandler
	Comment     *handlers.CommentHandler
	Attachment  *handlers.AttachmentHandler
	CustomField *handlers.CustomFieldHandler
}

// RegisterRoutes mounts the same handler set twice: under /api/v1 behind
// bearer authentication, and under /agent/v1 behind an API key with an
// optional acting-user hint. The handlers never know which surface called
// them; both middlewares leave a resolved principal in the context.
func RegisterRoutes(r *gin.Engine, h Handlers, identity ports.IdentityService, automationAPIKey string) {
	r.GET("/health", middleware.LanguageMiddleware(), h.Health.CheckHealth)
	r.GET("/health/report", middleware.LanguageMiddleware(), h.Health.CheckHealthReport)

	api := r.Group("/api/v1")
	api.Use(middleware.LanguageMiddleware())
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
	}

	strict := api.Group("")
	strict.Use(middleware.RequireAuth(identity))
	registerEntityRoutes(strict, h)

	agent := r.Group("/agent/v1")
	agent.Use(
		middleware.LanguageMiddleware(),
		middleware.RequireAPIKey(automationAPIKey),
		middleware.SoftIdentity(identity),
	)
	registerEntityRoutes(agent, h)
}

func registerEntityRoutes(g *gin.RouterGroup, h Handlers) {
	g.GET("/users/me", h.Auth.Me)
	g.GET("/users/:id", h.Auth.GetUser)

	g.POST("/workspaces", h.Workspace.CreateWorkspace)
	g.GET("/workspaces", h.Workspace.ListWorkspaces)
	g.GET("/workspaces/:id", h.Workspace.GetWorkspace)
	g.PATCH("/workspaces/:id", h.Workspace.UpdateWorkspace)
	g.DELETE("/workspaces/:id", h.Workspace.DeleteWorkspace)
	g.POST("/workspaces/:id/members", h.Workspace.AddMember)
	g.GET("/workspaces/:id/members", h.Workspace.ListMembers)

	g.POST("/teams", h.Team.CreateTeam)
	g.GET("/teams", h.Team.ListTeams)
	g.GET("/teams/:id", h.Team.GetTeam)
	g.DELETE("/teams/:id", h.Team.DeleteTeam)
	g.POST("/teams/:id/members", h.Team.AddMember)
	g.GET("/teams/:id/members", h.Team.ListMembers)
	g.DELETE("/teams/:id/members/:userID", h.Team.RemoveMember)

	g.POST("/projects", h.Project.CreateProject)
	g.GET("/projects", h.Project.ListProjects)
	g.GET("/projects/:id", h.Project.GetProject)
	g.PATCH("/projects/:id", h.Project.UpdateProject)
	g.DELETE("/projects/:id", h.Project.DeleteProject)
	g.POST("/projects/:id/custom-fields", h.CustomField.CreateField)
	g.GET("/projects/:id/custom-fields", h.CustomField.ListFields)

	g.POST("/sections", h.Section.CreateSection)
	g.GET("/sections", h.Section.ListSections)
	g.PATCH("/sections/:id", h.Section.UpdateSection)
	g.DELETE("/sections/:id", h.Section.DeleteSection)

	g.POST("/tasks", h.Task.CreateTask)
	g.GET("/tasks", h.Task.QueryTasks)
	g.GET("/tasks/:id", h.Task.GetTask)
	g.PATCH("/tasks/:id", h.Task.UpdateTask)
	g.DELETE("/tasks/:id", h.Task.DeleteTask)
	g.GET("/tasks/:id/subtasks", h.Task.ListSubtasks)

	g.POST("/tasks/:id/comments", h.Comment.CreateComment)
	g.GET("/tasks/:id/comments", h.Comment.ListComments)
	g.PATCH("/comments/:id", h.Comment.UpdateComment)
	g.DELETE("/comments/:id", h.Comment.DeleteComment)

	g.POST("/tasks/:id/attachments", h.Attachment.CreateTaskAttachment)
	g.GET("/tasks/:id/attachments", h.Attachment.ListTaskAttachments)
	g.POST("/comments/:id/attachments", h.Attachment.CreateCommentAttachment)
	g.GET("/comments/:id/attachments", h.Attachment.ListCommentAttachments)
	g.DELETE("/attachments/:id", h.Attachment.DeleteAttachment)

	g.POST("/tags", h.Tag.CreateTag)
	g.GET("/tags", h.Tag.ListTags)
	g.PATCH("/tags/:id", h.Tag.UpdateTag)
	g.DELETE("/tags/:id", h.Tag.DeleteTag)
	g.GET("/tasks/:id/tags", h.Tag.ListTaskTags)
	g.PUT("/tasks/:id/tags/:tagID", h.Tag.AttachTag)
	g.DELETE("/tasks/:id/tags/:tagID", h.Tag.DetachTag)

	g.PATCH("/custom-fields/:id", h.CustomField.UpdateField)
	g.DELETE("/custom-fields/:id", h.CustomField.DeleteField)
	g.POST("/custom-fields/:id/options", h.CustomField.AddOption)
	g.GET("/tasks/:id/custom-fields", h.CustomField.ListValues)
	g.PUT("/tasks/:id/custom-fields/:fieldID", h.CustomField.SetValue)
	g.DELETE("/tasks/:id/custom-fields/:fieldID", h.CustomField.ClearValue)
}
