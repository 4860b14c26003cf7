// Package handler はノートの JSON エンドポイントを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/feature/notes/domain/entity"
	"youth_balance/internal/feature/notes/transport/http/dto"
	"youth_balance/internal/platform/http/response"
)

// NoteUsecase はハンドラが使うノートの操作を定義します。
type NoteUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Note, error)
	Create(ctx context.Context, userID uint, f entity.Fields) (uint, error)
	Update(ctx context.Context, userID, id uint, f entity.Fields) error
	Delete(ctx context.Context, userID, id uint) error
}

// NoteHandler は /api/notes を処理します。
type NoteHandler struct {
	notes NoteUsecase
	log   *logrus.Logger
}

// NewNoteHandler は NoteHandler を生成します。
func NewNoteHandler(notes NoteUsecase, log *logrus.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, log: log}
}

// List は GET /api/notes を処理します。
func (h *NoteHandler) List(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	notes, err := h.notes.List(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewNoteList(notes))
}

// Create は POST /api/notes を処理します。
func (h *NoteHandler) Create(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	var req dto.NoteRequest
	if !response.BindJSON(c, &req) {
		return
	}
	id, err := h.notes.Create(c.Request.Context(), owner, req.Fields())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Created(c, id)
}

// Update は PUT /api/notes/:id を処理します。
func (h *NoteHandler) Update(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	var req dto.NoteRequest
	if !response.BindJSON(c, &req) {
		return
	}
	if err := h.notes.Update(c.Request.Context(), owner, id, req.Fields()); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, nil)
}

// Delete は DELETE /api/notes/:id を処理します。
func (h *NoteHandler) Delete(c *gin.Context) {
	owner, ok := response.Owner(c)
	if !ok {
		return
	}
	id, ok := response.ParamID(c)
	if !ok {
		return
	}
	if err := h.notes.Delete(c.Request.Context(), owner, id); err != nil {
		response.Error(c, h.log, err)
		return
	}
	response.Success(c, nil)
}
