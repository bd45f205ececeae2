package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/VasifPeerji/sweet-shop-management-system/database"
	"github.com/VasifPeerji/sweet-shop-management-system/models"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	issuer := NewTokenIssuer("test-secret", time.Hour)

	r := gin.New()
	r.POST("/register", RegisterHandler(db, issuer))
	r.POST("/login", LoginHandler(db, issuer))
	r.POST("/social-login", SocialLoginHandler(db, issuer))
	return r, db
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	r, db := setupAuthRouter(t)

	w := postJSON(r, "/register", RegisterRequest{
		Name:     "Priya",
		Email:    "Priya@Example.com",
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotNil(t, resp.User)
	assert.Equal(t, "priya@example.com", resp.User.Email)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	// the password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "secret123")
	assert.NotContains(t, w.Body.String(), "password")

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "priya@example.com").Error)
	assert.True(t, CheckPassword(stored.Password, "secret123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := setupAuthRouter(t)

	req := RegisterRequest{Name: "Priya", Email: "priya@example.com", Password: "secret123"}
	w := postJSON(r, "/register", req)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/register", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestRegisterValidation(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(r, "/register", RegisterRequest{Name: "Priya", Email: "not-an-email", Password: "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/register", RegisterRequest{Name: "Priya", Email: "priya@example.com", Password: "tiny"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(r, "/register", RegisterRequest{Name: "Priya", Email: "priya@example.com", Password: "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/login", LoginRequest{Email: "PRIYA@example.com", Password: "secret123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/login", LoginRequest{Email: "priya@example.com", Password: "wrongpass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/login", LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSocialLoginUpsert(t *testing.T) {
	r, db := setupAuthRouter(t)

	w := postJSON(r, "/social-login", SocialLoginRequest{
		Provider: "google",
		Name:     "Priya",
		Email:    "priya@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.User
	require.NoError(t, db.First(&created, "email = ?", "priya@example.com").Error)
	assert.Equal(t, "google", created.Provider)
	assert.Empty(t, created.Password)

	// a repeat login refreshes the profile instead of creating a second row
	w = postJSON(r, "/social-login", SocialLoginRequest{
		Provider: "google",
		Name:     "Priya S",
		Email:    "priya@example.com",
		Avatar:   "https://example.com/p.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "priya@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, db.First(&created, "email = ?", "priya@example.com").Error)
	assert.Equal(t, "Priya S", created.Name)
}

func TestSocialAccountCannotPasswordLogin(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := postJSON(r, "/social-login", SocialLoginRequest{
		Provider: "google",
		Name:     "Priya",
		Email:    "priya@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// empty stored hash must not match an empty supplied password either
	w = postJSON(r, "/login", LoginRequest{Email: "priya@example.com", Password: "anything"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
