package api

import (
	"net/http"

	"moneytrack/config"
	"moneytrack/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	db   *gorm.DB
	mode string
}

// HealthError 数据库不可用时的响应，detail 仅在非 release 模式下返回
type HealthError struct {
	Error  string `json:"error" example:"Database unavailable"`
	Detail string `json:"detail,omitempty"`
}

// NewHealthHandler 创建健康检查处理器，mode 为 gin 运行模式
func NewHealthHandler(db *gorm.DB, mode string) *HealthHandler {
	return &HealthHandler{db: db, mode: mode}
}

// Live 存活检查
// @Summary 存活检查
// @Tags 健康检查
// @Produce json
// @Success 200 {object} map[string]string "ok"
// @Router /health [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Database 数据库连通性检查
// @Summary 数据库连通性检查
// @Tags 健康检查
// @Produce json
// @Success 200 {object} map[string]string "数据库可用"
// @Failure 503 {object} HealthError "数据库不可用"
// @Router /api/health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthError{
			Error:  "Database unavailable",
			Detail: config.SafeErrorMessage(h.mode, err, ""),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
