// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume_analyzer/internal/api"
)

// Check は外部依存1つ分の状態を返す関数です（"ready"、"unavailable"、"disabled" など）。
type Check struct {
	Name   string
	Status func() string
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを返します。
// プロセスが応答できる限り200を返し、外部依存の状態は checks に載せるだけです。
func Health(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			resp := api.HealthResponse{Status: "ok"}
			if len(checks) > 0 {
				resp.Checks = make(map[string]string, len(checks))
				for _, ch := range checks {
					resp.Checks[ch.Name] = ch.Status()
				}
			}
			c.JSON(http.StatusOK, resp)
		}
	}
}
