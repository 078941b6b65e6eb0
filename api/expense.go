package api

import (
	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler 支出处理器
type ExpenseHandler struct {
	db *gorm.DB
}

// NewExpenseHandler 创建支出处理器
func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// CreateExpenseRequest 创建支出请求
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"42.5"`
	Description string  `json:"description" binding:"required" example:"Lunch"`
	Category    string  `json:"category" binding:"required" example:"Food"`
	Date        string  `json:"date" example:"2024-01-15"`
}

// List 获取当前用户的支出，按日期倒序
// @Summary 支出列表
// @Tags 支出
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Expense "支出列表"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	expenses := []models.Expense{}
	if err := h.db.Where("user_id = ?", user.ID).Order("date DESC").Find(&expenses).Error; err != nil {
		InternalError(c, "查询支出", err)
		return
	}
	OK(c, expenses)
}

// Create 创建支出
// @Summary 创建支出
// @Tags 支出
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 201 {object} models.Expense "创建成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req CreateExpenseRequest
	errs, ok := bindJSON(c, &req)
	if !ok {
		ValidationFailed(c, errs)
		return
	}
	date, errs := requireDate(errs, "date", req.Date)
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	expense := models.Expense{
		UserID:      user.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}
	if err := h.db.Create(&expense).Error; err != nil {
		InternalError(c, "创建支出", err)
		return
	}
	Created(c, expense)
}
