// Package handler はプラットフォーム共通のエンドポイントの HTTP ハンドラを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Check は依存先が利用可能かどうかを返します。
type Check func(ctx context.Context) error

// HealthHandler は /healthz を処理します。
type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
	log     *logrus.Logger
}

// NewHealthHandler は GET のたびに checks を実行する HealthHandler を生成します。
func NewHealthHandler(checks map[string]Check, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second, log: log}
}

// Health はすべてのチェックが通れば 200 {"status":"ok"}、それ以外は 503 を返します。
// HEAD と OPTIONS ではチェックを行いません。
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	failed := gin.H{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.log.WithError(err).WithField("check", name).Warn("health check failed")
			failed[name] = "unavailable"
		}
	}
	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
