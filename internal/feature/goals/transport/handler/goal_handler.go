// Package handler はゴールの JSON エンドポイントを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/goals/domain/entity"
	"youth_balance/internal/feature/goals/transport/http/dto"
	"youth_balance/internal/platform/http/response"
)

// GoalUsecase はハンドラが使うゴールの操作を定義します。
type GoalUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Goal, error)
	Create(ctx context.Context, userID uint, f entity.Fields) (uint, error)
	Update(ctx context.Context, userID, id uint, f entity.Fields) error
	Delete(ctx context.Context, userID, id uint) error
}

// GoalHandler は /api/goals を処理します。
type GoalHandler struct {
	goals GoalUsecase
	log   *logrus.Logger
}

// NewGoalHandler は GoalHandler を生成します。
func NewGoalHandler(goals GoalUsecase, log *logrus.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, log: log}
}

// List は GET /api/goals を処理します。
func (h *GoalHandler) List(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	goals, err := h.goals.List(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalList(goals))
}

// Create は POST /api/goals を処理します。
func (h *GoalHandler) Create(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	f, ok := h.bind(c)
	if !ok {
		return
	}
	id, err := h.goals.Create(c.Request.Context(), owner, f)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// Update は PUT /api/goals/:id を処理します。
func (h *GoalHandler) Update(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	f, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.goals.Update(c.Request.Context(), owner, id, f); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, nil)
}

// Delete は DELETE /api/goals/:id を処理します。
func (h *GoalHandler) Delete(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	if err := h.goals.Delete(c.Request.Context(), owner, id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, nil)
}

func (h *GoalHandler) bind(c *gin.Context) (entity.Fields, bool) {
	var req dto.GoalRequest
	if !response.BindJSON(c, &req) {
		return entity.Fields{}, false
	}
	f, err := req.Fields()
	if err != nil {
		response.Error(c, h.log, err)
		return entity.Fields{}, false
	}
	return f, true
}
