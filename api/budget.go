package api

import (
	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler 预算处理器
type BudgetHandler struct {
	db *gorm.DB
}

// NewBudgetHandler 创建预算处理器
func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{db: db}
}

// CreateBudgetRequest 创建预算请求
type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required" example:"Food"`
	Amount   float64 `json:"amount" binding:"required,gt=0" example:"500"`
}

// List 预算列表
// @Summary 预算列表
// @Tags 预算
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Budget "预算列表"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/budget [get]
func (h *BudgetHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	budgets := []models.Budget{}
	if err := h.db.Where("user_id = ?", user.ID).Find(&budgets).Error; err != nil {
		InternalError(c, "查询预算", err)
		return
	}
	OK(c, budgets)
}

// Create 创建预算
// @Summary 创建预算
// @Tags 预算
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBudgetRequest true "预算信息"
// @Success 201 {object} models.Budget "创建成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/budget [post]
func (h *BudgetHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req CreateBudgetRequest
	if errs, _ := bindJSON(c, &req); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	budget := models.Budget{
		UserID:   user.ID,
		Category: req.Category,
		Amount:   req.Amount,
	}
	if err := h.db.Create(&budget).Error; err != nil {
		InternalError(c, "创建预算", err)
		return
	}
	Created(c, budget)
}
