package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Thuanphan093164/Qly-NhaHang/database"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/router"
	"github.com/Thuanphan093164/Qly-NhaHang/services"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return router.SetupRouter(db, services.NewPreparedStore(services.DefaultPreparedTTL))
}

func request(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// TestRestaurantWorkflow walks the whole service front to back: staff
// sign-up and login, table and menu setup, a customer booking, an order
// placed from the table, the kitchen picking it up, and the dashboard
// reflecting every step.
func TestRestaurantWorkflow(t *testing.T) {
	r := setupApp(t)

	// staff account
	w, _ := request(t, r, "POST", "/register", "", gin.H{
		"name":     "Phạm Quản Lý",
		"email":    "quanly@example.com",
		"password": "matkhau123",
		"role":     models.RoleAdmin,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := request(t, r, "POST", "/login", "", gin.H{
		"email":    "quanly@example.com",
		"password": "matkhau123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := resp["data"].(map[string]interface{})["token"].(string)
	require.NotEmpty(t, token)

	// auth is enforced on the admin surface
	w, _ = request(t, r, "GET", "/admin/tables", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// set up two tables and a small menu
	w, resp = request(t, r, "POST", "/admin/tables", token, gin.H{"name": "Bàn 01", "capacity": 4})
	require.Equal(t, http.StatusCreated, w.Code)
	table1 := uint(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = request(t, r, "POST", "/admin/tables", token, gin.H{"name": "Bàn 02", "capacity": 6})
	require.Equal(t, http.StatusCreated, w.Code)
	table2 := uint(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = request(t, r, "POST", "/admin/categories", token, gin.H{"name": "Món ăn"})
	require.Equal(t, http.StatusCreated, w.Code)
	catID := uint(resp["data"].(map[string]interface{})["id"].(float64))

	w, resp = request(t, r, "POST", "/admin/menu-items", token, gin.H{
		"name": "Phở bò", "price": 55000, "category_id": catID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(resp["data"].(map[string]interface{})["id"].(float64))

	// a customer books table 2 remotely
	w, resp = request(t, r, "POST", "/bookings", "", gin.H{
		"customer_name": "Nguyễn Văn An",
		"phone_number":  "0901234567",
		"booking_time":  "2030-01-01T19:00:00Z",
		"guest_count":   4,
		"table_id":      table2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reference := resp["data"].(map[string]interface{})["reference"].(string)

	w, _ = request(t, r, "GET", "/bookings/"+reference, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// a second booking for the same table loses
	w, _ = request(t, r, "POST", "/bookings", "", gin.H{
		"customer_name": "Trần Thị Hoa",
		"phone_number":  "0907654321",
		"booking_time":  "2030-01-01T19:30:00Z",
		"guest_count":   2,
		"table_id":      table2,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// guests at table 1 order two phở
	w, resp = request(t, r, "POST", "/orders", "", gin.H{
		"table_id": table1,
		"items":    []gin.H{{"menu_item_id": itemID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	orderData := resp["data"].(map[string]interface{})
	orderID := uint(orderData["id"].(float64))
	assert.Equal(t, 110000.0, orderData["total_amount"])

	// the kitchen sees the table with its order
	w, resp = request(t, r, "GET", "/admin/kitchen/display", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	display := resp["data"].([]interface{})
	require.Len(t, display, 1)
	assert.Equal(t, "Bàn 01", display[0].(map[string]interface{})["table_name"])

	// cook and serve it
	w, _ = request(t, r, "POST", fmt.Sprintf("/admin/orders/%d/start", orderID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = request(t, r, "POST", fmt.Sprintf("/admin/orders/%d/complete", orderID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// served orders drop off the display; the table stays occupied
	w, resp = request(t, r, "GET", "/admin/kitchen/display", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"].([]interface{}), 0)

	// dashboard: table 1 occupied (4 seats), table 2 reserved
	w, resp = request(t, r, "GET", "/admin/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := resp["data"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total_tables"])
	assert.Equal(t, 1.0, stats["occupied_tables"])
	assert.Equal(t, 1.0, stats["reserved_tables"])
	assert.Equal(t, 4.0, stats["occupied_guest_estimate"])

	// staff free table 1 manually after checkout
	w, _ = request(t, r, "POST", fmt.Sprintf("/admin/orders/%d/pay", orderID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = request(t, r, "POST", "/admin/tables/status", token, gin.H{
		"tableId": table1, "newStatus": int(models.TableFree),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = request(t, r, "GET", "/admin/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats = resp["data"].(map[string]interface{})
	assert.Equal(t, 0.0, stats["occupied_tables"])
	assert.Equal(t, 0.0, stats["occupied_guest_estimate"])
}
