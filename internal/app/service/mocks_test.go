package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/goer/asana-clone/internal/core/domain"
)

type taskRepositoryMock struct{ mock.Mock }

func (m *taskRepositoryMock) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, t domain.Task) (domain.Task, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *taskRepositoryMock) ListSubtasks(ctx context.Context, parentID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Query(ctx context.Context, q domain.TaskQuery) (domain.TaskPage, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.TaskPage), args.Error(1)
}

type projectRepositoryMock struct{ mock.Mock }

func (m *projectRepositoryMock) Create(ctx context.Context, in domain.CreateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) ListByWorkspace(ctx context.Context, workspaceID uint64) ([]domain.Project, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) Update(ctx context.Context, id uint64, in domain.UpdateProjectInput) (domain.Project, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *projectRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type sectionRepositoryMock struct{ mock.Mock }

func (m *sectionRepositoryMock) Create(ctx context.Context, in domain.CreateSectionInput) (domain.Section, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Section), args.Error(1)
}

func (m *sectionRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Section, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Section), args.Error(1)
}

func (m *sectionRepositoryMock) ListByProject(ctx context.Context, projectID uint64) ([]domain.Section, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.Section), args.Error(1)
}

func (m *sectionRepositoryMock) Update(ctx context.Context, id uint64, in domain.UpdateSectionInput) (domain.Section, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Section), args.Error(1)
}

func (m *sectionRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type workspaceRepositoryMock struct{ mock.Mock }

func (m *workspaceRepositoryMock) Create(ctx context.Context, in domain.CreateWorkspaceInput) (domain.Workspace, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Workspace), args.Error(1)
}

func (m *workspaceRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Workspace, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Workspace), args.Error(1)
}

func (m *workspaceRepositoryMock) ListByUser(ctx context.Context, userID uint64) ([]domain.Workspace, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Workspace), args.Error(1)
}

func (m *workspaceRepositoryMock) Update(ctx context.Context, id uint64, in domain.UpdateWorkspaceInput) (domain.Workspace, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.Workspace), args.Error(1)
}

func (m *workspaceRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *workspaceRepositoryMock) AddMember(ctx context.Context, workspaceID, userID uint64) error {
	return m.Called(ctx, workspaceID, userID).Error(0)
}

func (m *workspaceRepositoryMock) ListMembers(ctx context.Context, workspaceID uint64) ([]domain.User, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *workspaceRepositoryMock) IsMember(ctx context.Context, workspaceID, userID uint64) (bool, error) {
	args := m.Called(ctx, workspaceID, userID)
	return args.Bool(0), args.Error(1)
}

type userRepositoryMock struct{ mock.Mock }

func (m *userRepositoryMock) Create(ctx context.Context, in domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type customFieldRepositoryMock struct{ mock.Mock }

func (m *customFieldRepositoryMock) Create(ctx context.Context, in domain.CreateCustomFieldInput) (domain.CustomField, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.CustomField), args.Error(1)
}

func (m *customFieldRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.CustomField, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.CustomField), args.Error(1)
}

func (m *customFieldRepositoryMock) ListByProject(ctx context.Context, projectID uint64) ([]domain.CustomField, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]domain.CustomField), args.Error(1)
}

func (m *customFieldRepositoryMock) Update(ctx context.Context, id uint64, in domain.UpdateCustomFieldInput) (domain.CustomField, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.CustomField), args.Error(1)
}

func (m *customFieldRepositoryMock) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *customFieldRepositoryMock) AddOption(ctx context.Context, fieldID uint64, in domain.CreateFieldOptionInput) (domain.FieldOption, error) {
	args := m.Called(ctx, fieldID, in)
	return args.Get(0).(domain.FieldOption), args.Error(1)
}

func (m *customFieldRepositoryMock) SetValue(ctx context.Context, taskID, fieldID uint64, v domain.FieldValue) (domain.FieldValue, error) {
	args := m.Called(ctx, taskID, fieldID, v)
	return args.Get(0).(domain.FieldValue), args.Error(1)
}

func (m *customFieldRepositoryMock) ClearValue(ctx context.Context, taskID, fieldID uint64) error {
	return m.Called(ctx, taskID, fieldID).Error(0)
}

func (m *customFieldRepositoryMock) ListValues(ctx context.Context, taskID uint64) ([]domain.TaskFieldValue, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]domain.TaskFieldValue), args.Error(1)
}

func (m *customFieldRepositoryMock) HasValues(ctx context.Context, fieldID uint64) (bool, error) {
	args := m.Called(ctx, fieldID)
	return args.Bool(0), args.Error(1)
}

type tokenCodecMock struct{ mock.Mock }

func (m *tokenCodecMock) Issue(userID uint64, ttl time.Duration) (string, error) {
	args := m.Called(userID, ttl)
	return args.String(0), args.Error(1)
}

func (m *tokenCodecMock) Verify(token string) (uint64, error) {
	args := m.Called(token)
	return args.Get(0).(uint64), args.Error(1)
}
