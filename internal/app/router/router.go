package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	resumehandler "resume_analyzer/internal/feature/resumeanalysis/transport/handler"
	"resume_analyzer/internal/feature/resumeanalysis/ui"
	"resume_analyzer/internal/platform/http/middleware"
)

// APIPrefix はJSON APIのルートグループです。
const APIPrefix = "/api"

// Options はルーター構築時の任意設定です。
type Options struct {
	// CORSAllowedOrigins が空でなければ /api に CORS を適用します。
	CORSAllowedOrigins []string
}

func NewRouter(analysis *resumehandler.AnalysisHandler, page *ui.PageHandler,
	health gin.HandlerFunc, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(APIPrefix, resumehandler.GenericAnalyzeError),
	)
	r.SetHTMLTemplate(ui.Templates())

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// ページ（サーバーレンダリング）
	r.GET("/", page.Index)
	r.POST("/upload", page.Upload)
	r.POST("/clear", page.Clear)
	r.POST("/analyze", page.Analyze)

	// JSON API
	api := r.Group(APIPrefix)
	if len(opts.CORSAllowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:  opts.CORSAllowedOrigins,
			AllowMethods:  []string{"POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
			ExposeHeaders: []string{middleware.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
		// プリフライトをグループのミドルウェアまで届かせる
		api.OPTIONS("/*path", func(c *gin.Context) {})
	}
	{
		api.POST("/analyze", analysis.Analyze)
		api.POST("/extract", analysis.Extract)
	}

	return r
}
