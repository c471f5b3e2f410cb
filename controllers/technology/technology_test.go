package technology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/UltraNerdDev/GPUStore/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Manufacturer{}, &models.Technology{},
		&models.VideoCard{}, &models.CardTechnology{},
	))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/admin/technologies")
	grp.GET("", GetAll(db))
	grp.POST("", Create(db))
	grp.PUT("/:id", Update(db))
	grp.DELETE("/:id", Delete(db))
	return r
}

func send(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var b []byte
	if body != nil {
		b, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	r := setupRouter(db)

	w := send(r, http.MethodPost, "/admin/technologies", gin.H{"name": "Ray Tracing"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = send(r, http.MethodPost, "/admin/technologies", gin.H{"name": "ray tracing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Technology{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateAllowsOwnName(t *testing.T) {
	db := newTestDB(t)
	tech := models.Technology{Name: "DLSS 3.0"}
	require.NoError(t, db.Create(&tech).Error)

	r := setupRouter(db)
	w := send(r, http.MethodPut, fmt.Sprintf("/admin/technologies/%d", tech.ID), gin.H{"name": "DLSS 3.0"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteDropsCardLinks(t *testing.T) {
	db := newTestDB(t)
	m := models.Manufacturer{Name: "NVIDIA"}
	require.NoError(t, db.Create(&m).Error)
	card := models.VideoCard{
		ModelName: "GeForce RTX 4090", Price: decimal.RequireFromString("3800.00"), ManufacturerID: m.ID,
	}
	require.NoError(t, db.Create(&card).Error)
	tech := models.Technology{Name: "Ray Tracing"}
	require.NoError(t, db.Create(&tech).Error)
	require.NoError(t, db.Create(&models.CardTechnology{VideoCardID: card.ID, TechnologyID: tech.ID}).Error)

	r := setupRouter(db)
	w := send(r, http.MethodDelete, fmt.Sprintf("/admin/technologies/%d", tech.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var links, cards int64
	require.NoError(t, db.Model(&models.CardTechnology{}).Count(&links).Error)
	require.NoError(t, db.Model(&models.VideoCard{}).Count(&cards).Error)
	assert.EqualValues(t, 0, links)
	assert.EqualValues(t, 1, cards, "the card itself stays")
}
