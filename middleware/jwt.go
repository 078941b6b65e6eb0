package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moneytrack/config"
	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// identityKey gin.Context 中保存身份声明的键
const identityKey = "identity"

// expiresKey gin.Context 中保存会话过期时间的键
const expiresKey = "session_expires"

// Claims 会话令牌声明
type Claims struct {
	UserID     uint   `json:"uid"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	RememberMe bool   `json:"remember_me"`
	jwt.RegisteredClaims
}

// Identity 转换为身份声明
func (c *Claims) Identity() models.Identity {
	return models.Identity{
		UserID:     c.UserID,
		Email:      c.Email,
		Name:       c.Name,
		RememberMe: c.RememberMe,
	}
}

// SessionIssuer 签发与解析会话令牌（HS256），令牌通过 HttpOnly Cookie 或 Bearer 头传递
type SessionIssuer struct {
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
	cookieName  string
	secure      bool
	now         func() time.Time
}

// NewSessionIssuer 根据配置创建会话签发器
func NewSessionIssuer(cfg *config.Config) *SessionIssuer {
	ttl := cfg.JWT.ExpireTime
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	rememberTTL := cfg.JWT.RememberTime
	if rememberTTL <= 0 {
		rememberTTL = 30 * 24 * time.Hour
	}
	cookieName := cfg.JWT.CookieName
	if cookieName == "" {
		cookieName = "session_token"
	}
	return &SessionIssuer{
		secret:      []byte(cfg.JWT.Secret),
		ttl:         ttl,
		rememberTTL: rememberTTL,
		cookieName:  cookieName,
		// release 模式下 Cookie 仅通过 HTTPS 传输
		secure: cfg.Server.Mode == "release",
		now:    time.Now,
	}
}

// Lifetime 会话有效期：记住我 30 天，否则 1 天（可配置）
func (s *SessionIssuer) Lifetime(rememberMe bool) time.Duration {
	if rememberMe {
		return s.rememberTTL
	}
	return s.ttl
}

// Issue 为身份声明签发令牌
func (s *SessionIssuer) Issue(id models.Identity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.Lifetime(id.RememberMe))
	claims := Claims{
		UserID:     id.UserID,
		Email:      id.Email,
		Name:       id.Name,
		RememberMe: id.RememberMe,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(id.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Parse 校验并解析令牌
func (s *SessionIssuer) Parse(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("empty token")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Email == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SetCookie 写入会话 Cookie
func (s *SessionIssuer) SetCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(expiresAt.Sub(s.now()).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, maxAge, "/", "", s.secure, true)
}

// ClearCookie 清除会话 Cookie
func (s *SessionIssuer) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}

// tokenFromRequest 优先读取 Authorization: Bearer，其次读取会话 Cookie
func (s *SessionIssuer) tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	token, err := c.Cookie(s.cookieName)
	if err != nil {
		return ""
	}
	return token
}

// authenticate 解析请求中的会话，成功时写入身份声明
func (s *SessionIssuer) authenticate(c *gin.Context) bool {
	claims, err := s.Parse(s.tokenFromRequest(c))
	if err != nil {
		return false
	}
	c.Set(identityKey, claims.Identity())
	if claims.ExpiresAt != nil {
		c.Set(expiresKey, claims.ExpiresAt.Time)
	}
	return true
}

// RequireSession API 鉴权中间件，无有效会话返回 401
func (s *SessionIssuer) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authenticate(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequirePageSession 页面鉴权中间件，无有效会话时重定向到登录页
func (s *SessionIssuer) RequirePageSession(signinPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authenticate(c) {
			target := signinPath + "?callbackUrl=" + url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity 获取当前请求的身份声明
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

// SetIdentity 写入身份声明（测试与内部调用）
func SetIdentity(c *gin.Context, id models.Identity) {
	c.Set(identityKey, id)
}

// GetSessionExpiry 获取当前会话的过期时间
func GetSessionExpiry(c *gin.Context) (time.Time, bool) {
	v, ok := c.Get(expiresKey)
	if !ok {
		return time.Time{}, false
	}
	t, ok := v.(time.Time)
	return t, ok
}
