package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moneytrack/config"
	"moneytrack/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer() *SessionIssuer {
	return NewSessionIssuer(&config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT: config.JWTConfig{
			Secret:       "test-jwt-secret-key",
			ExpireTime:   24 * time.Hour,
			RememberTime: 30 * 24 * time.Hour,
			CookieName:   "session_token",
		},
	})
}

var testIdentity = models.Identity{UserID: 42, Email: "user42@example.com", Name: "User 42"}

func TestSessionIssuer_IssueAndParse(t *testing.T) {
	s := newTestIssuer()

	token, expiresAt, err := s.Issue(testIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, claims.Identity())
	assert.Equal(t, "42", claims.Subject)
}

func TestSessionIssuer_RememberMeLifetime(t *testing.T) {
	s := newTestIssuer()
	assert.Equal(t, 24*time.Hour, s.Lifetime(false))
	assert.Equal(t, 30*24*time.Hour, s.Lifetime(true))

	id := testIdentity
	id.RememberMe = true
	token, expiresAt, err := s.Issue(id)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, time.Minute)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.RememberMe)
}

func TestSessionIssuer_ParseRejects(t *testing.T) {
	s := newTestIssuer()

	_, err := s.Parse("")
	assert.Error(t, err)
	_, err = s.Parse("not.a.valid.jwt")
	assert.Error(t, err)

	// 其他密钥签发
	other := NewSessionIssuer(&config.Config{JWT: config.JWTConfig{Secret: "other-secret"}})
	token, _, err := other.Issue(testIdentity)
	require.NoError(t, err)
	_, err = s.Parse(token)
	assert.Error(t, err)

	// 已过期
	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, _, err := s.Issue(testIdentity)
	require.NoError(t, err)
	s.now = time.Now
	_, err = s.Parse(expired)
	assert.Error(t, err)

	// 非 HS256 算法
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "x@example.com"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.Parse(none)
	assert.Error(t, err)
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestIssuer()

	router := gin.New()
	router.Use(s.RequireSession())
	router.GET("/api/protected", func(c *gin.Context) {
		id, _ := GetIdentity(c)
		c.String(200, "id:%d", id.UserID)
	})

	// 无 token
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	// 非 Bearer
	req2 := httptest.NewRequest("GET", "/api/protected", nil)
	req2.Header.Set("Authorization", "Basic xyz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	token, _, _ := s.Issue(testIdentity)

	// Bearer 头
	req3 := httptest.NewRequest("GET", "/api/protected", nil)
	req3.Header.Set("Authorization", "Bearer "+token)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, 200, w3.Code)
	assert.Equal(t, "id:42", w3.Body.String())

	// Cookie
	req4 := httptest.NewRequest("GET", "/api/protected", nil)
	req4.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req4)
	assert.Equal(t, 200, w4.Code)

	// 篡改的 Cookie
	req5 := httptest.NewRequest("GET", "/api/protected", nil)
	req5.AddCookie(&http.Cookie{Name: "session_token", Value: token + "x"})
	w5 := httptest.NewRecorder()
	router.ServeHTTP(w5, req5)
	assert.Equal(t, http.StatusUnauthorized, w5.Code)
}

func TestRequirePageSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestIssuer()

	router := gin.New()
	router.GET("/dashboard", s.RequirePageSession("/auth/signin"), func(c *gin.Context) {
		c.String(200, "dashboard")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/signin?callbackUrl=%2Fdashboard", w.Header().Get("Location"))

	token, _, _ := s.Issue(testIdentity)
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: token})
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, "dashboard", w2.Body.String())
}

func TestSetCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestIssuer()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/auth/signin", nil)
	s.SetCookie(c, "tok", time.Now().Add(time.Hour))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.InDelta(t, 3600, cookies[0].MaxAge, 5)
}

func TestGetIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetIdentity(c)
	assert.False(t, ok)

	SetIdentity(c, testIdentity)
	id, ok := GetIdentity(c)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id.UserID)
}

func TestGetSessionExpiry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestIssuer()
	token, expiresAt, err := s.Issue(testIdentity)
	require.NoError(t, err)

	router := gin.New()
	router.Use(s.RequireSession())
	router.GET("/api/session", func(c *gin.Context) {
		exp, ok := GetSessionExpiry(c)
		require.True(t, ok)
		c.String(200, "%d", exp.Unix())
	})

	req := httptest.NewRequest("GET", "/api/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, fmt.Sprintf("%d", expiresAt.Unix()), w.Body.String())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := GetSessionExpiry(c)
	assert.False(t, ok)
}
