package order

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

	"github.com/UltraNerdDev/GPUStore/middleware"
	"github.com/UltraNerdDev/GPUStore/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Manufacturer{}, &models.Technology{},
		&models.VideoCard{}, &models.CardTechnology{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Comment{},
	))
	return db
}

func stubAuth(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, user.ID)
		c.Set(middleware.ContextRole, string(user.Role))
		c.Next()
	}
}

func setupUserRouter(db *gorm.DB, user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/user", stubAuth(user), middleware.CustomerOnly())
	grp.GET("/checkout", Checkout(db))
	grp.POST("/orders", ConfirmOrder(db))
	grp.GET("/orders", MyOrders(db))
	return r
}

func setupAdminRouter(db *gorm.DB, admin models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/admin", stubAuth(admin), middleware.RequireAdmin())
	grp.GET("/orders", GetAllOrders(db))
	grp.GET("/orders/:id", GetOrderByID(db))
	grp.PUT("/orders/:id/status", UpdateOrderStatus(db))
	return r
}

func seedCustomer(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	u := models.User{ID: "u1", Email: "a@b.c", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedCard(t *testing.T, db *gorm.DB, model, price string) models.VideoCard {
	t.Helper()
	m := models.Manufacturer{Name: "NVIDIA"}
	require.NoError(t, db.Where("name = ?", m.Name).FirstOrCreate(&m).Error)
	card := models.VideoCard{
		ModelName:      model,
		Price:          decimal.RequireFromString(price),
		ManufacturerID: m.ID,
	}
	require.NoError(t, db.Create(&card).Error)
	return card
}

func TestConfirmFreezesPricesAndClearsCart(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)
	cardA := seedCard(t, db, "GeForce RTX 4090", "100.00")
	cardB := seedCard(t, db, "GeForce RTX 4070 Ti", "50.00")
	require.NoError(t, db.Create(&models.CartItem{UserID: customer.ID, VideoCardID: cardA.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: customer.ID, VideoCardID: cardB.ID, Quantity: 1}).Error)

	ord, err := Confirm(db, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, ord.Status)
	assert.Equal(t, "250.00", ord.TotalPrice.StringFixed(2))
	require.Len(t, ord.Items, 2)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", customer.ID).Count(&cartCount).Error)
	assert.EqualValues(t, 0, cartCount, "cart must be emptied by the same transaction")

	// A later price change must not touch the recorded prices.
	require.NoError(t, db.Model(&models.VideoCard{}).
		Where("id = ?", cardA.ID).
		Update("price", decimal.RequireFromString("999.99")).Error)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", ord.ID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, "100.00", items[0].PriceAtPurchase.StringFixed(2))
	assert.Equal(t, "50.00", items[1].PriceAtPurchase.StringFixed(2))

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, ord.ID).Error)
	assert.Equal(t, "250.00", reloaded.TotalPrice.StringFixed(2))
}

func TestConfirmOrderEmptyCartRedirects(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)

	r := setupUserRouter(db, customer)
	req := httptest.NewRequest(http.MethodPost, "/user/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/cart", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)

	r := setupUserRouter(db, customer)
	req := httptest.NewRequest(http.MethodGet, "/user/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/user/cart", w.Header().Get("Location"))
}

func TestCheckoutShowsTotal(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)
	card := seedCard(t, db, "Radeon RX 7900 XTX", "3600.00")
	require.NoError(t, db.Create(&models.CartItem{UserID: customer.ID, VideoCardID: card.ID, Quantity: 2}).Error)

	r := setupUserRouter(db, customer)
	req := httptest.NewRequest(http.MethodGet, "/user/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "7200.00", resp["total_price"])
}

func TestAdminIsRedirectedFromCheckout(t *testing.T) {
	db := newTestDB(t)
	admin := models.User{ID: "a1", Email: "admin@b.c", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	r := setupUserRouter(db, admin)
	req := httptest.NewRequest(http.MethodGet, "/user/checkout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func putStatus(r *gin.Engine, orderID uint, status string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(gin.H{"status": status})
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/admin/orders/%d/status", orderID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)
	admin := models.User{ID: "a1", Email: "admin@b.c", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	ord := models.Order{UserID: customer.ID, Status: models.OrderStatusPending, TotalPrice: decimal.RequireFromString("100.00")}
	require.NoError(t, db.Create(&ord).Error)

	r := setupAdminRouter(db, admin)

	// pending -> shipped skips a step and is refused
	w := putStatus(r, ord.ID, "shipped")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = putStatus(r, ord.ID, "processed")
	assert.Equal(t, http.StatusOK, w.Code)

	w = putStatus(r, ord.ID, "shipped")
	assert.Equal(t, http.StatusOK, w.Code)

	// shipped is terminal
	w = putStatus(r, ord.ID, "cancelled")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, ord.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, reloaded.Status)
}

func TestUpdateOrderStatusUnknownValue(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)
	admin := models.User{ID: "a1", Email: "admin@b.c", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)

	ord := models.Order{UserID: customer.ID, Status: models.OrderStatusPending, TotalPrice: decimal.RequireFromString("100.00")}
	require.NoError(t, db.Create(&ord).Error)

	r := setupAdminRouter(db, admin)
	w := putStatus(r, ord.ID, "teleported")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, ord.ID).Error)
	assert.Equal(t, models.OrderStatusPending, reloaded.Status)
}

func TestRequireAdminRejectsCustomer(t *testing.T) {
	db := newTestDB(t)
	customer := seedCustomer(t, db)

	r := setupAdminRouter(db, customer)
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
