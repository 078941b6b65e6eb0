package api

import (
	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IncomeHandler 收入处理器
type IncomeHandler struct {
	db *gorm.DB
}

// NewIncomeHandler 创建收入处理器
func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{db: db}
}

// CreateIncomeRequest 创建收入请求
type CreateIncomeRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"3000"`
	Description string  `json:"description" binding:"required" example:"January salary"`
	Source      string  `json:"source" binding:"required" example:"Salary"`
	Date        string  `json:"date" example:"2024-01-15"`
}

// List 获取当前用户的收入，按日期倒序
// @Summary 收入列表
// @Tags 收入
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Income "收入列表"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	incomes := []models.Income{}
	if err := h.db.Where("user_id = ?", user.ID).Order("date DESC").Find(&incomes).Error; err != nil {
		InternalError(c, "查询收入", err)
		return
	}
	OK(c, incomes)
}

// Create 创建收入
// @Summary 创建收入
// @Tags 收入
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 201 {object} models.Income "创建成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "用户不存在"
// @Router /api/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req CreateIncomeRequest
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

	income := models.Income{
		UserID:      user.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Source:      req.Source,
		Date:        date,
	}
	if err := h.db.Create(&income).Error; err != nil {
		InternalError(c, "创建收入", err)
		return
	}
	Created(c, income)
}
