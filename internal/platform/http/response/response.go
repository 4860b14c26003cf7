// Package response はすべての API ハンドラが使う JSON レスポンスを書き出します。
package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"youth_balance/internal/shared/apperr"
	"youth_balance/internal/shared/identity"
)

// Success は extra をマージした {"success":true} を書き出します。
func Success(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Created は {"success":true,"id":id} を書き出します。
func Created(c *gin.Context, id uint) {
	Success(c, gin.H{"id": id})
}

// BadRequest は message 付きで 400 を返します。
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error は err をステータスコードに変換します。サーバ側の失敗はログに残し、
// 汎用メッセージで応答します。
func Error(c *gin.Context, log *logrus.Logger, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error("request failed")
	}
	c.JSON(status, gin.H{"error": apperr.PublicMessage(err)})
}

// Owner は認証済みの呼び出し元の ID を返します。匿名リクエストには 401 を返します。
func Owner(c *gin.Context) (uint, bool) {
	id, ok := identity.FromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return 0, false
	}
	return id.UserID, true
}

// ParamID はパスパラメータ :id を解析します。正の整数以外は 400 を返します。
func ParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// BindJSON はリクエストボディを dst にデコードします。不正なボディには 400 を返します。
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		BadRequest(c, "invalid request body")
		return false
	}
	return true
}
