package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bucky/internal/auth"
	"bucky/internal/errors"
	"bucky/internal/model"
)

func TestTaskHandler_Create(t *testing.T) {
	e := newTestEcho()
	tasks := new(MockTaskService)
	h := NewTaskHandler(tasks)

	tasks.On("Create", mock.Anything, uint(1), uint(3), "get to mars").
		Return(&model.Task{ID: 8, Description: "get to mars", UserID: 1, BucketListID: 3}, nil)

	c, rec := newTestContext(e, http.MethodPost, "/api/v1.0/bucketlists/3/tasks/", `{"description":"get to mars"}`)
	c.SetPath("/api/v1.0/bucketlists/:id/tasks/")
	c.SetParamNames("id")
	c.SetParamValues("3")
	auth.SetIdentity(c, auth.Identity{UserID: 1})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task created")
	assert.Contains(t, rec.Body.String(), "get to mars")
}

func TestTaskHandler_Create_ParentMissing(t *testing.T) {
	e := newTestEcho()
	tasks := new(MockTaskService)
	h := NewTaskHandler(tasks)

	tasks.On("Create", mock.Anything, uint(1), uint(3), "get to mars").
		Return(nil, errors.ErrTaskBucketListNotFound)

	c, rec := newTestContext(e, http.MethodPost, "/api/v1.0/bucketlists/3/tasks/", `{"description":"get to mars"}`)
	c.SetPath("/api/v1.0/bucketlists/:id/tasks/")
	c.SetParamNames("id")
	c.SetParamValues("3")
	auth.SetIdentity(c, auth.Identity{UserID: 1})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This bucket-list does not exist")
}

func TestTaskHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	tasks := new(MockTaskService)
	h := NewTaskHandler(tasks)

	tasks.On("List", mock.Anything, uint(1), uint(3)).Return(nil, errors.ErrNoTasks)

	c, rec := newTestContext(e, http.MethodGet, "/api/v1.0/bucketlists/3/tasks/", "")
	c.SetPath("/api/v1.0/bucketlists/:id/tasks/")
	c.SetParamNames("id")
	c.SetParamValues("3")
	auth.SetIdentity(c, auth.Identity{UserID: 1})
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No tasks found")
}

func TestTaskHandler_Delete(t *testing.T) {
	e := newTestEcho()
	tasks := new(MockTaskService)
	h := NewTaskHandler(tasks)

	tasks.On("Delete", mock.Anything, uint(1), uint(3), uint(8)).Return(nil)

	c, rec := newTestContext(e, http.MethodDelete, "/api/v1.0/bucketlists/3/tasks/8", "")
	c.SetPath("/api/v1.0/bucketlists/:id/tasks/:task_id")
	c.SetParamNames("id", "task_id")
	c.SetParamValues("3", "8")
	auth.SetIdentity(c, auth.Identity{UserID: 1})
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task deleted")
}
