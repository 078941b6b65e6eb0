package router

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"moneytrack/api"
	"moneytrack/config"
	_ "moneytrack/docs"
	"moneytrack/middleware"
	"moneytrack/service"
	"moneytrack/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SigninPath 登录页路径，页面鉴权失败时重定向到这里
const SigninPath = "/auth/signin"

// SetupRouter 设置路由，ctx 结束时停止限流清理协程
func SetupRouter(ctx context.Context, cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware())

	sessions := middleware.NewSessionIssuer(cfg)
	aggregator := service.NewAggregator(db, cfg.Dashboard)
	mailer := service.NewEmailService(&cfg.Email, cfg.Server.BaseURL)

	// 页面
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})
	r.GET(SigninPath, servePage("signin.html"))
	r.GET("/auth/signup", servePage("signup.html"))
	pages := r.Group("/dashboard")
	pages.Use(sessions.RequirePageSession(SigninPath))
	{
		pages.GET("", servePage("dashboard.html"))
		pages.GET("/*path", servePage("dashboard.html"))
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	healthHandler := api.NewHealthHandler(db, cfg.Server.Mode)
	r.GET("/health", healthHandler.Live)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health/db", healthHandler.Database)

		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(db, sessions, mailer)
		auth := apiGroup.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin",
				middleware.LoginRateLimit(ctx, cfg.Auth.SigninMaxAttempts, time.Duration(cfg.Auth.SigninWindowSeconds)*time.Second),
				authHandler.Signin)
			auth.POST("/signout", authHandler.Signout)
			auth.GET("/session", sessions.RequireSession(), authHandler.Session)
		}

		// 需要会话的路由
		authorized := apiGroup.Group("")
		authorized.Use(sessions.RequireSession())
		{
			expenseHandler := api.NewExpenseHandler(db)
			authorized.GET("/expenses", expenseHandler.List)
			authorized.POST("/expenses", expenseHandler.Create)

			incomeHandler := api.NewIncomeHandler(db)
			authorized.GET("/income", incomeHandler.List)
			authorized.POST("/income", incomeHandler.Create)

			budgetHandler := api.NewBudgetHandler(db)
			authorized.GET("/budget", budgetHandler.List)
			authorized.POST("/budget", budgetHandler.Create)

			goalHandler := api.NewGoalHandler(db)
			authorized.GET("/goals", goalHandler.List)
			authorized.POST("/goals", goalHandler.Create)
			authorized.PUT("/goals", goalHandler.UpdateProgress)

			transactionHandler := api.NewTransactionHandler(db)
			transactions := authorized.Group("/transactions")
			{
				transactions.GET("", transactionHandler.List)
				transactions.POST("", transactionHandler.Create)
				transactions.GET("/export", transactionHandler.ExportCSV)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			authorized.GET("/dashboard", api.NewDashboardHandler(db, aggregator).Get)

			reportHandler := api.NewReportHandler(db, aggregator)
			authorized.GET("/reports", reportHandler.Get)
			authorized.GET("/reports/export", reportHandler.Export)
		}
	}

	return r
}

// servePage 返回嵌入的页面
func servePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := fs.ReadFile(web.StaticFS, name)
		if err != nil {
			c.String(http.StatusInternalServerError, "加载页面失败")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	}
}
