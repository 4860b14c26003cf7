// Package handler はタスクの JSON エンドポイントを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/tasks/domain/entity"
	"youth_balance/internal/feature/tasks/transport/http/dto"
	"youth_balance/internal/platform/http/response"
)

// TaskUsecase はハンドラが使うタスクの操作を定義します。
type TaskUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Task, error)
	Create(ctx context.Context, userID uint, f entity.Fields) (uint, error)
	Update(ctx context.Context, userID, id uint, f entity.Fields) error
	Delete(ctx context.Context, userID, id uint) error
	Toggle(ctx context.Context, userID, id uint) (bool, error)
}

// TaskHandler は /api/tasks を処理します。ルートはセッションのミドルウェアの後ろに置くこと。
type TaskHandler struct {
	tasks TaskUsecase
	log   *logrus.Logger
}

// NewTaskHandler は TaskHandler を生成します。
func NewTaskHandler(tasks TaskUsecase, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: log}
}

// List は GET /api/tasks を処理します。
func (h *TaskHandler) List(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	tasks, err := h.tasks.List(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskList(tasks))
}

// Create は POST /api/tasks を処理します。
func (h *TaskHandler) Create(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	var req dto.TaskRequest
	if !response.BindJSON(c, &req) {
		return
	}
	id, err := h.tasks.Create(c.Request.Context(), owner, req.Fields())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// Update は PUT /api/tasks/:id を処理します。
func (h *TaskHandler) Update(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	var req dto.TaskRequest
	if !response.BindJSON(c, &req) {
		return
	}
	if err := h.tasks.Update(c.Request.Context(), owner, id, req.Fields()); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, nil)
}

// Delete は DELETE /api/tasks/:id を処理します。
func (h *TaskHandler) Delete(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), owner, id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, nil)
}

// Toggle は POST /api/tasks/:id/toggle を処理します。
func (h *TaskHandler) Toggle(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	completed, err := h.tasks.Toggle(c.Request.Context(), owner, id)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, gin.H{"completed": completed})
}
