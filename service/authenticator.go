package service

import (
	"errors"
	"log"

	"moneytrack/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Credentials 登录凭证
type Credentials struct {
	Email      string `validate:"required,email"`
	Password   string `validate:"required"`
	RememberMe bool
}

// Authenticator 校验邮箱密码并生成身份声明
type Authenticator struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewAuthenticator 创建认证器
func NewAuthenticator(db *gorm.DB) *Authenticator {
	return &Authenticator{db: db, validate: validator.New()}
}

// Authorize 验证凭证，任何失败（参数不合法、用户不存在、密码错误、查询出错）都返回 nil
func (a *Authenticator) Authorize(cred Credentials) *models.Identity {
	if err := a.validate.Struct(cred); err != nil {
		log.Printf("登录拒绝: 凭证格式不合法")
		return nil
	}

	var user models.User
	if err := a.db.Where("email = ?", cred.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("登录拒绝: 用户不存在 %s", cred.Email)
		} else {
			log.Printf("登录拒绝: 查询用户失败: %v", err)
		}
		return nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(cred.Password)); err != nil {
		log.Printf("登录拒绝: 密码错误 %s", cred.Email)
		return nil
	}

	return &models.Identity{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		RememberMe: cred.RememberMe,
	}
}

// HashPassword 生成 bcrypt 密码哈希
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
