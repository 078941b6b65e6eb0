package api

import (
	"errors"

	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler 储蓄目标处理器
type GoalHandler struct {
	db *gorm.DB
}

// NewGoalHandler 创建储蓄目标处理器
func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{db: db}
}

// CreateGoalRequest 创建目标请求
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required" example:"Emergency fund"`
	Category     string  `json:"category" binding:"required" example:"Savings"`
	TargetAmount float64 `json:"targetAmount" binding:"required,gt=0" example:"1000"`
	Deadline     string  `json:"deadline" example:"2024-12-31"`
}

// UpdateGoalProgressRequest 更新目标进度请求
type UpdateGoalProgressRequest struct {
	ID            uint     `json:"id" binding:"required" example:"1"`
	CurrentAmount *float64 `json:"currentAmount" binding:"required,gte=0" example:"250"`
}

// List 目标列表
// @Summary 储蓄目标列表
// @Tags 目标
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Goal "目标列表"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	goals := []models.Goal{}
	if err := h.db.Where("user_id = ?", user.ID).Order("deadline ASC").Find(&goals).Error; err != nil {
		InternalError(c, "查询目标", err)
		return
	}
	OK(c, goals)
}

// Create 创建目标，当前金额从 0 开始
// @Summary 创建储蓄目标
// @Tags 目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateGoalRequest true "目标信息"
// @Success 201 {object} models.Goal "创建成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req CreateGoalRequest
	errs, ok := bindJSON(c, &req)
	if !ok {
		ValidationFailed(c, errs)
		return
	}
	deadline, errs := requireDate(errs, "deadline", req.Deadline)
	if len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	goal := models.Goal{
		UserID:        user.ID,
		Name:          req.Name,
		Category:      req.Category,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: 0,
		Deadline:      deadline,
	}
	if err := h.db.Create(&goal).Error; err != nil {
		InternalError(c, "创建目标", err)
		return
	}
	Created(c, goal)
}

// UpdateProgress 更新目标当前金额，允许超过目标金额
// @Summary 更新目标进度
// @Tags 目标
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateGoalProgressRequest true "进度信息"
// @Success 200 {object} models.Goal "更新成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 401 {object} ErrorResponse "未登录"
// @Failure 404 {object} ErrorResponse "目标不存在"
// @Router /api/goals [put]
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	user, ok := currentUser(c, h.db)
	if !ok {
		return
	}

	var req UpdateGoalProgressRequest
	if errs, _ := bindJSON(c, &req); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}

	// 只能修改自己的目标
	var goal models.Goal
	if err := h.db.Where("id = ? AND user_id = ?", req.ID, user.ID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Goal not found")
			return
		}
		InternalError(c, "查询目标", err)
		return
	}

	if err := h.db.Model(&goal).Update("current_amount", *req.CurrentAmount).Error; err != nil {
		InternalError(c, "更新目标进度", err)
		return
	}
	goal.CurrentAmount = *req.CurrentAmount
	OK(c, goal)
}
