package models

// Identity 登录成功后的身份声明，写入会话令牌
type Identity struct {
	UserID     uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	RememberMe bool   `json:"rememberMe"`
}
