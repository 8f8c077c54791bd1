package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskhub/internal/errors"
	"taskhub/internal/model"
)

func TestTaskService_CreateStartsPending(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	mockProjects.On("FindByIDAndOwner", mock.Anything, uint(1), uint(10)).
		Return(&model.Project{ID: 1, UserID: 10}, nil)
	mockTasks.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	service := NewTaskService(mockProjects, mockTasks)
	task, err := service.Create(context.Background(), CreateTaskInput{
		Title:   "Write report",
		DueDate: time.Now().Add(48 * time.Hour),
	}, 1, 10)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, uint(1), task.ProjectID)
	mockProjects.AssertExpectations(t)
	mockTasks.AssertExpectations(t)
}

func TestTaskService_CreateInUnownedProject(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	// Project absent or owned by another user: repo yields nil either way.
	mockProjects.On("FindByIDAndOwner", mock.Anything, uint(1), uint(99)).Return(nil, nil)

	service := NewTaskService(mockProjects, mockTasks)
	task, err := service.Create(context.Background(), CreateTaskInput{
		Title:   "Write report",
		DueDate: time.Now(),
	}, 1, 99)

	assert.Nil(t, task)
	assert.Equal(t, errors.ErrProjectNotFound, err)
	mockTasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_UpdateStatusParsing(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		expectedError  error
		expectedStatus model.Status
	}{
		{"exact casing", "InProgress", nil, model.StatusInProgress},
		{"lower casing", "inprogress", nil, model.StatusInProgress},
		{"upper casing", "COMPLETED", nil, model.StatusCompleted},
		{"pending", "pending", nil, model.StatusPending},
		{"unknown value", "archived", errors.ErrInvalidStatus, ""},
		{"empty value", "", errors.ErrInvalidStatus, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjects := new(MockProjectRepository)
			mockTasks := new(MockTaskRepository)

			existing := &model.Task{ID: 5, ProjectID: 1, Status: model.StatusPending, Title: "Old"}
			mockTasks.On("FindOwned", mock.Anything, uint(5), uint(1), uint(10)).Return(existing, nil)
			if tt.expectedError == nil {
				mockTasks.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
			}

			service := NewTaskService(mockProjects, mockTasks)
			task, err := service.Update(context.Background(), 5, 1, UpdateTaskInput{
				Title:   "New title",
				Status:  tt.status,
				DueDate: time.Now(),
			}, 10)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, task)
				mockTasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, task.Status)
				assert.Equal(t, "New title", task.Title)
			}
		})
	}
}

func TestTaskService_UpdateNotFoundBeatsValidation(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	mockTasks.On("FindOwned", mock.Anything, uint(5), uint(1), uint(10)).Return(nil, nil)

	service := NewTaskService(mockProjects, mockTasks)
	_, err := service.Update(context.Background(), 5, 1, UpdateTaskInput{
		Title:   "New title",
		Status:  "archived",
		DueDate: time.Now(),
	}, 10)

	// An unresolvable task is not-found, even with a bad status in tow.
	assert.Equal(t, errors.ErrTaskNotFound, err)
}

func TestTaskService_CompleteIsIdempotent(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	task := &model.Task{ID: 5, ProjectID: 1, Status: model.StatusPending}
	mockTasks.On("FindOwned", mock.Anything, uint(5), uint(1), uint(10)).Return(task, nil)
	mockTasks.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	service := NewTaskService(mockProjects, mockTasks)

	first, err := service.Complete(context.Background(), 5, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, first.Status)

	second, err := service.Complete(context.Background(), 5, 1, 10)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, second.Status)
}

func TestTaskService_ListByProjectInaccessible(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	mockProjects.On("FindByIDAndOwner", mock.Anything, uint(1), uint(99)).Return(nil, nil)

	service := NewTaskService(mockProjects, mockTasks)
	tasks, err := service.ListByProject(context.Background(), 1, 99)

	// Listing an inaccessible project yields nothing, not an error.
	assert.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
	mockTasks.AssertNotCalled(t, "ListByProject", mock.Anything, mock.Anything)
}

func TestTaskService_GetNotFound(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	mockTasks.On("FindOwned", mock.Anything, uint(5), uint(1), uint(99)).Return(nil, nil)

	service := NewTaskService(mockProjects, mockTasks)
	task, err := service.Get(context.Background(), 5, 1, 99)

	assert.Nil(t, task)
	assert.Equal(t, errors.ErrTaskNotFound, err)
}

func TestTaskService_DeleteNotFound(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	mockTasks.On("FindOwned", mock.Anything, uint(5), uint(1), uint(10)).Return(nil, nil)

	service := NewTaskService(mockProjects, mockTasks)
	err := service.Delete(context.Background(), 5, 1, 10)

	assert.Equal(t, errors.ErrTaskNotFound, err)
	mockTasks.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestTaskService_Delete(t *testing.T) {
	mockProjects := new(MockProjectRepository)
	mockTasks := new(MockTaskRepository)

	mockTasks.On("FindOwned", mock.Anything, uint(5), uint(1), uint(10)).
		Return(&model.Task{ID: 5, ProjectID: 1}, nil)
	mockTasks.On("DeleteByID", mock.Anything, uint(5)).Return(true, nil)

	service := NewTaskService(mockProjects, mockTasks)
	err := service.Delete(context.Background(), 5, 1, 10)

	assert.NoError(t, err)
	mockTasks.AssertExpectations(t)
}
