package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"moneytrack/middleware"
	"moneytrack/models"
	"moneytrack/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WelcomeMailer 注册成功后发送欢迎邮件
type WelcomeMailer interface {
	Enabled() bool
	SendWelcomeEmail(toEmail, name string) error
}

// AuthHandler 认证处理器
type AuthHandler struct {
	db       *gorm.DB
	auth     *service.Authenticator
	sessions *middleware.SessionIssuer
	mailer   WelcomeMailer
}

// NewAuthHandler 创建认证处理器，mailer 可为 nil
func NewAuthHandler(db *gorm.DB, sessions *middleware.SessionIssuer, mailer WelcomeMailer) *AuthHandler {
	return &AuthHandler{
		db:       db,
		auth:     service.NewAuthenticator(db),
		sessions: sessions,
		mailer:   mailer,
	}
}

// SignupRequest 注册请求
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2" example:"Alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// SignupResponse 注册响应
type SignupResponse struct {
	Message string            `json:"message" example:"User created successfully"`
	User    models.PublicUser `json:"user"`
}

// SigninRequest 登录请求
type SigninRequest struct {
	Email      string `json:"email" example:"alice@example.com"`
	Password   string `json:"password" example:"password123"`
	RememberMe bool   `json:"rememberMe"`
}

// SigninResponse 登录响应，token 也写入 HttpOnly Cookie
type SigninResponse struct {
	User    models.PublicUser `json:"user"`
	Expires time.Time         `json:"expires"`
	Token   string            `json:"token"`
}

// SessionResponse 当前会话
type SessionResponse struct {
	User    models.Identity `json:"user"`
	Expires *time.Time      `json:"expires,omitempty"`
}

// Signup 用户注册
// @Summary 用户注册
// @Description 使用姓名、邮箱和密码创建账号，邮箱不可重复
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body SignupRequest true "注册信息"
// @Success 201 {object} SignupResponse "注册成功"
// @Failure 400 {object} MessageResponse "参数错误"
// @Failure 409 {object} MessageResponse "邮箱已被注册"
// @Failure 500 {object} ErrorResponse "服务器错误"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if errs, _ := bindJSON(c, &req); len(errs) > 0 {
		ValidationFailed(c, errs)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	// 检查邮箱是否已存在
	var existing models.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		Conflict(c, "User with this email already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		InternalError(c, "检查邮箱", err)
		return
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		InternalError(c, "密码加密", err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}
	if err := h.db.Create(&user).Error; err != nil {
		// 并发注册同一邮箱时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueConstraintError(err) {
			Conflict(c, "User with this email already exists")
			return
		}
		InternalError(c, "创建用户", err)
		return
	}

	if h.mailer != nil && h.mailer.Enabled() {
		go h.sendWelcome(user.Email, user.Name)
	}

	Created(c, SignupResponse{
		Message: "User created successfully",
		User:    user.Public(),
	})
}

func (h *AuthHandler) sendWelcome(email, name string) {
	if err := h.mailer.SendWelcomeEmail(email, name); err != nil {
		log.Printf("发送欢迎邮件失败 %s: %v", email, err)
	}
}

// Signin 用户登录
// @Summary 用户登录
// @Description 校验邮箱和密码，成功后签发会话令牌并写入 Cookie；rememberMe 为 true 时有效期 30 天
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body SigninRequest true "登录信息"
// @Success 200 {object} SigninResponse "登录成功"
// @Failure 400 {object} MessageResponse "请求体无法解析"
// @Failure 401 {object} ErrorResponse "邮箱或密码错误"
// @Failure 429 {object} ErrorResponse "尝试次数过多"
// @Router /api/auth/signin [post]
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if errs, ok := bindJSON(c, &req); !ok {
		ValidationFailed(c, errs)
		return
	}

	identity := h.auth.Authorize(service.Credentials{
		Email:      strings.TrimSpace(req.Email),
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if identity == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, expiresAt, err := h.sessions.Issue(*identity)
	if err != nil {
		InternalError(c, "签发会话令牌", err)
		return
	}
	h.sessions.SetCookie(c, token, expiresAt)

	OK(c, SigninResponse{
		User: models.PublicUser{
			ID:    identity.UserID,
			Name:  identity.Name,
			Email: identity.Email,
		},
		Expires: expiresAt,
		Token:   token,
	})
}

// Signout 退出登录
// @Summary 退出登录
// @Tags 认证
// @Produce json
// @Success 200 {object} MessageResponse "已退出"
// @Router /api/auth/signout [post]
func (h *AuthHandler) Signout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	OK(c, MessageResponse{Message: "Signed out"})
}

// Session 当前会话信息
// @Summary 获取当前会话
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse "会话信息"
// @Failure 401 {object} ErrorResponse "未登录"
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		Unauthorized(c)
		return
	}
	resp := SessionResponse{User: identity}
	if exp, ok := middleware.GetSessionExpiry(c); ok {
		resp.Expires = &exp
	}
	OK(c, resp)
}

// isUniqueConstraintError 驱动未翻译的唯一约束冲突
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "Duplicate entry") || strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
