package api

import (
	"moneytrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler 首页汇总处理器
type DashboardHandler struct {
	db  *gorm.DB
	agg *service.Aggregator
}

// NewDashboardHandler 创建首页汇总处理器
func NewDashboardHandler(db *gorm.DB, agg *service.Aggregator) *DashboardHandler {
	return &DashboardHandler{db: db, agg: agg}
}

// Get 首页汇总：总收入、总支出、当前余额和最近交易
// @Summary 首页汇总
// @Tags 汇总
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardSummary "汇总数据"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	summary, err := h.agg.Dashboard(user.ID)
	if err != nil {
		InternalError(c, "计算首页汇总", err)
		return
	}
	OK(c, summary)
}
