//go:build integration
// +build integration

package tests

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	authadapter "github.com/goer/asana-clone/internal/adapter/auth"
	dbadapter "github.com/goer/asana-clone/internal/adapter/db"
	httpadapter "github.com/goer/asana-clone/internal/adapter/http"
	"github.com/goer/asana-clone/internal/adapter/http/dto"
	"github.com/goer/asana-clone/internal/adapter/http/handlers"
	appservice "github.com/goer/asana-clone/internal/app/service"
	"github.com/goer/asana-clone/pkg/apierrors"
)

const (
	testAutomationKey = "integration-automation-key"
	testFallbackEmail = "automation@example.com"
)

type WorkflowIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
	token  string
	userID uint64
}

func TestWorkflowIntegrationSuite(t *testing.T) {
	suite.Run(t, new(WorkflowIntegrationSuite))
}

func (s *WorkflowIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	userRepo := dbadapter.NewUserRepository(s.DB)
	workspaceRepo := dbadapter.NewWorkspaceRepository(s.DB)
	teamRepo := dbadapter.NewTeamRepository(s.DB)
	projectRepo := dbadapter.NewProjectRepository(s.DB)
	sectionRepo := dbadapter.NewSectionRepository(s.DB)
	taskRepo := dbadapter.NewTaskRepository(s.DB)
	tagRepo := dbadapter.NewTagRepository(s.DB)
	commentRepo := dbadapter.NewCommentRepository(s.DB)
	attachmentRepo := dbadapter.NewAttachmentRepository(s.DB)
	customFieldRepo := dbadapter.NewCustomFieldRepository(s.DB)

	tokenCodec := authadapter.NewHMACTokenCodec("integration-secret")
	identityService := appservice.NewIdentityService(userRepo, tokenCodec, testFallbackEmail, "Automation")
	s.Require().NoError(identityService.EnsureFallbackUser(s.T().Context()))

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(s.DB),
		Auth:        handlers.NewAuthHandler(appservice.NewAuthService(userRepo, tokenCodec, time.Hour)),
		Workspace:   handlers.NewWorkspaceHandler(appservice.NewWorkspaceService(workspaceRepo, userRepo)),
		Team:        handlers.NewTeamHandler(appservice.NewTeamService(teamRepo, workspaceRepo, userRepo)),
		Project:     handlers.NewProjectHandler(appservice.NewProjectService(projectRepo, workspaceRepo, teamRepo)),
		Section:     handlers.NewSectionHandler(appservice.NewSectionService(sectionRepo, projectRepo, workspaceRepo)),
		Task:        handlers.NewTaskHandler(appservice.NewTaskService(taskRepo, projectRepo, sectionRepo, workspaceRepo, userRepo)),
		Tag:         handlers.NewTagHandler(appservice.NewTagService(tagRepo, taskRepo, projectRepo, workspaceRepo)),
		Comment:     handlers.NewCommentHandler(appservice.NewCommentService(commentRepo, taskRepo, projectRepo, workspaceRepo)),
		Attachment:  handlers.NewAttachmentHandler(appservice.NewAttachmentService(attachmentRepo, commentRepo, taskRepo, projectRepo, workspaceRepo)),
		CustomField: handlers.NewCustomFieldHandler(appservice.NewCustomFieldService(customFieldRepo, taskRepo, projectRepo, workspaceRepo)),
	}, identityService, testAutomationKey)
	s.router = router

	var login dto.LoginResponse
	s.do(http.MethodPost, "/api/v1/auth/register",
		`{"email":"ana@example.com","name":"Ana","password":"s3cretpass"}`,
		http.StatusCreated, &login)
	s.token = login.Token
	s.userID = login.User.ID
}

// do runs one request against the interactive surface with the suite token.
func (s *WorkflowIntegrationSuite) do(method, path, body string, wantStatus int, out any) {
	s.T().Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equalf(wantStatus, rec.Code, "%s %s: %s", method, path, rec.Body.String())
	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func (s *WorkflowIntegrationSuite) createProject() (workspaceID, projectID uint64) {
	var workspace dto.WorkspaceItem
	s.do(http.MethodPost, "/api/v1/workspaces", `{"name":"Acme"}`, http.StatusCreated, &workspace)

	var project dto.ProjectItem
	s.do(http.MethodPost, "/api/v1/projects",
		fmt.Sprintf(`{"name":"Launch","workspace_id":%d}`, workspace.ID),
		http.StatusCreated, &project)

	return workspace.ID, project.ID
}

func (s *WorkflowIntegrationSuite) TestTaskLifecycle() {
	workspaceID, projectID := s.createProject()

	var section dto.SectionItem
	s.do(http.MethodPost, "/api/v1/sections",
		fmt.Sprintf(`{"name":"Backlog","project_id":%d}`, projectID),
		http.StatusCreated, &section)

	var task dto.TaskItem
	s.do(http.MethodPost, "/api/v1/tasks",
		fmt.Sprintf(`{"name":"Write announcement","project_id":%d,"section_id":%d,"assignee_id":%d}`, projectID, section.ID, s.userID),
		http.StatusCreated, &task)
	s.Require().Equal(projectID, task.ProjectID)
	s.Require().Equal(s.userID, *task.AssigneeID)

	var subtask dto.TaskItem
	s.do(http.MethodPost, "/api/v1/tasks",
		fmt.Sprintf(`{"name":"Draft copy","project_id":%d,"parent_task_id":%d}`, projectID, task.ID),
		http.StatusCreated, &subtask)

	// Re-parenting the root under its own child must fail and leave the
	// stored parent untouched.
	var cycleErr apierrors.JsonErr
	s.do(http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", task.ID),
		fmt.Sprintf(`{"parent_task_id":%d}`, subtask.ID),
		http.StatusBadRequest, &cycleErr)
	s.Require().Equal("This move would create a cycle in the task hierarchy.", cycleErr.ErrDetails.Message)

	var parentID sql.NullInt64
	s.Require().NoError(s.DB.Get(&parentID, "SELECT parent_task_id FROM tasks WHERE id = ?", task.ID))
	s.Require().False(parentID.Valid)

	var subtasks []dto.TaskItem
	s.do(http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/subtasks", task.ID), "", http.StatusOK, &subtasks)
	s.Require().Len(subtasks, 1)
	s.Require().Equal(subtask.ID, subtasks[0].ID)

	var completed dto.TaskItem
	s.do(http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d", subtask.ID),
		`{"completed":true}`, http.StatusOK, &completed)
	s.Require().True(completed.Completed)
	s.Require().NotNil(completed.CompletedAt)

	var page dto.TaskPageResponse
	s.do(http.MethodGet,
		fmt.Sprintf("/api/v1/tasks?workspace_id=%d&completed=true", workspaceID),
		"", http.StatusOK, &page)
	s.Require().Equal(1, page.Total)
	s.Require().Equal(subtask.ID, page.Tasks[0].ID)

	// completed_since in the future excludes the completion that just happened.
	future := time.Now().UTC().Add(time.Hour).Format(time.RFC3339)
	s.do(http.MethodGet,
		fmt.Sprintf("/api/v1/tasks?workspace_id=%d&completed_since=%s", workspaceID, future),
		"", http.StatusOK, &page)
	s.Require().Equal(0, page.Total)
}

func (s *WorkflowIntegrationSuite) TestDeleteTaskCascades() {
	workspaceID, projectID := s.createProject()

	var task dto.TaskItem
	s.do(http.MethodPost, "/api/v1/tasks",
		fmt.Sprintf(`{"name":"Parent","project_id":%d}`, projectID),
		http.StatusCreated, &task)

	var subtask dto.TaskItem
	s.do(http.MethodPost, "/api/v1/tasks",
		fmt.Sprintf(`{"name":"Child","project_id":%d,"parent_task_id":%d}`, projectID, task.ID),
		http.StatusCreated, &subtask)

	var comment dto.CommentItem
	s.do(http.MethodPost, fmt.Sprintf("/api/v1/tasks/%d/comments", subtask.ID),
		`{"text":"done soon"}`, http.StatusCreated, &comment)

	var attachment dto.AttachmentItem
	s.do(http.MethodPost, fmt.Sprintf("/api/v1/comments/%d/attachments", comment.ID),
		`{"filename":"spec.pdf","reference":"s3://bucket/spec.pdf"}`,
		http.StatusCreated, &attachment)

	var tag dto.TagItem
	s.do(http.MethodPost, "/api/v1/tags",
		fmt.Sprintf(`{"name":"urgent","workspace_id":%d}`, workspaceID),
		http.StatusCreated, &tag)
	s.do(http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d/tags/%d", subtask.ID, tag.ID), "", http.StatusNoContent, nil)
	// Attaching again is a no-op, not a conflict.
	s.do(http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d/tags/%d", subtask.ID, tag.ID), "", http.StatusNoContent, nil)

	s.do(http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d", task.ID), "", http.StatusNoContent, nil)

	for query, want := range map[string]int{
		"SELECT COUNT(*) FROM tasks":       0,
		"SELECT COUNT(*) FROM comments":    0,
		"SELECT COUNT(*) FROM attachments": 0,
		"SELECT COUNT(*) FROM task_tags":   0,
		"SELECT COUNT(*) FROM tags":        1,
	} {
		var count int
		s.Require().NoError(s.DB.Get(&count, query))
		s.Require().Equalf(want, count, "query %q", query)
	}
}

func (s *WorkflowIntegrationSuite) TestCustomFieldValues() {
	_, projectID := s.createProject()

	var field dto.CustomFieldItem
	s.do(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/custom-fields", projectID),
		`{"name":"Priority","type":"single_select","options":[{"value":"High"},{"value":"Low"}]}`,
		http.StatusCreated, &field)
	s.Require().Len(field.Options, 2)

	var task dto.TaskItem
	s.do(http.MethodPost, "/api/v1/tasks",
		fmt.Sprintf(`{"name":"Pick vendor","project_id":%d}`, projectID),
		http.StatusCreated, &task)

	var set dto.FieldValueItem
	s.do(http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d/custom-fields/%d", task.ID, field.ID),
		`{"value":"High"}`, http.StatusOK, &set)
	s.Require().Equal("High", set.Value)

	var unknownErr apierrors.JsonErr
	s.do(http.MethodPut, fmt.Sprintf("/api/v1/tasks/%d/custom-fields/%d", task.ID, field.ID),
		`{"value":"Critical"}`, http.StatusBadRequest, &unknownErr)
	s.Require().Equal("The value does not match any option of this field.", unknownErr.ErrDetails.Message)

	var values []dto.FieldValueItem
	s.do(http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/custom-fields", task.ID), "", http.StatusOK, &values)
	s.Require().Len(values, 1)
	s.Require().Equal("High", values[0].Value)

	// Changing the field type while a task still holds a value conflicts.
	var typeErr apierrors.JsonErr
	s.do(http.MethodPatch, fmt.Sprintf("/api/v1/custom-fields/%d", field.ID),
		`{"type":"text"}`, http.StatusConflict, &typeErr)
	s.Require().Equal("The field type cannot change while tasks still hold values.", typeErr.ErrDetails.Message)

	s.do(http.MethodDelete, fmt.Sprintf("/api/v1/tasks/%d/custom-fields/%d", task.ID, field.ID),
		"", http.StatusNoContent, nil)
	s.do(http.MethodGet, fmt.Sprintf("/api/v1/tasks/%d/custom-fields", task.ID), "", http.StatusOK, &values)
	s.Require().Len(values, 0)
}

func (s *WorkflowIntegrationSuite) TestAgentSurfaceFallsBackToAutomationUser() {
	req := httptest.NewRequest(http.MethodPost, "/agent/v1/workspaces", strings.NewReader(`{"name":"Bot space"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAutomationKey)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var workspace dto.WorkspaceItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &workspace))

	var ownerEmail string
	s.Require().NoError(s.DB.Get(&ownerEmail,
		"SELECT u.email FROM users u JOIN workspaces w ON w.owner_id = u.id WHERE w.id = ?", workspace.ID))
	s.Require().Equal(testFallbackEmail, ownerEmail)
}

func (s *WorkflowIntegrationSuite) TestAgentSurfaceRejectsWrongKey() {
	req := httptest.NewRequest(http.MethodPost, "/agent/v1/workspaces", strings.NewReader(`{"name":"Bot space"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "not-the-key")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusUnauthorized, rec.Code)
}
