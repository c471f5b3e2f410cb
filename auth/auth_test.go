package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/middleware"
	"github.com/UltraNerdDev/GPUStore/models"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db, testSecret))

	// A protected probe to exercise the token end to end.
	r.GET("/whoami", middleware.ValidateToken(testSecret), func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": middleware.CurrentRole(c)})
	})
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginAndUseToken(t *testing.T) {
	db := newTestDB(t)
	r := setupRouter(db)

	w := postJSON(r, "/auth/register", gin.H{"email": "Gamer@Example.com", "password": "hunter22"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.Equal(t, "gamer@example.com", user.Email, "email is stored lowercased")
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	w = postJSON(r, "/auth/login", gin.H{"email": "gamer@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	token := loginResp["token"]
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	probe := httptest.NewRecorder()
	r.ServeHTTP(probe, req)
	require.Equal(t, http.StatusOK, probe.Code)

	var who map[string]string
	require.NoError(t, json.Unmarshal(probe.Body.Bytes(), &who))
	assert.Equal(t, user.ID, who["user_id"])
	assert.Equal(t, string(models.RoleCustomer), who["role"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r := setupRouter(db)

	w := postJSON(r, "/auth/register", gin.H{"email": "gamer@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/auth/register", gin.H{"email": "GAMER@example.com", "password": "another1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	r := setupRouter(db)

	w := postJSON(r, "/auth/register", gin.H{"email": "gamer@example.com", "password": "hunter22"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/auth/login", gin.H{"email": "gamer@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	db := newTestDB(t)
	r := setupRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing header is also refused")
}
