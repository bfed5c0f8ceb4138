package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/controllers"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	tableCtrl := controllers.NewTableController(db)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.POST("/tables", tableCtrl.CreateTable)
	r.POST("/tables/status", tableCtrl.UpdateTableStatus)
	r.PATCH("/tables/:table_id", tableCtrl.UpdateTable)
	r.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
	return r
}

func TestCreateTableValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	// capacity outside 1..20
	w, resp := doJSON(t, r, "POST", "/tables", gin.H{"name": "Bàn 01", "capacity": 30})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])

	w, _ = doJSON(t, r, "POST", "/tables", gin.H{"name": "Bàn 01", "capacity": 4})
	assert.Equal(t, http.StatusCreated, w.Code)

	// duplicate name
	w, resp = doJSON(t, r, "POST", "/tables", gin.H{"name": "Bàn 01", "capacity": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestUpdateTableStatus(t *testing.T) {
	db := setupTestDB(t)
	table := models.Table{Name: "Bàn 01", Capacity: 4, Status: models.TableFree}
	db.Create(&table)

	r := setupTableRouter(db)

	w, resp := doJSON(t, r, "POST", "/tables/status", gin.H{"tableId": table.ID, "newStatus": int(models.TableOccupied)})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	var got models.Table
	db.First(&got, table.ID)
	assert.Equal(t, models.TableOccupied, got.Status)
}

func TestUpdateTableStatusRejectsInvalidValue(t *testing.T) {
	db := setupTestDB(t)
	table := models.Table{Name: "Bàn 01", Capacity: 4, Status: models.TableReserved}
	db.Create(&table)

	r := setupTableRouter(db)

	// 7 is outside the enum; the table must not change
	w, resp := doJSON(t, r, "POST", "/tables/status", gin.H{"tableId": table.ID, "newStatus": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])

	var got models.Table
	db.First(&got, table.ID)
	assert.Equal(t, models.TableReserved, got.Status)
}

func TestUpdateTableStatusUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	w, resp := doJSON(t, r, "POST", "/tables/status", gin.H{"tableId": 999, "newStatus": int(models.TableFree)})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
}

func TestGetAllTablesSortedByPriorityThenNumber(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Table{Name: "Table 3", Capacity: 4, Status: models.TableFree})
	db.Create(&models.Table{Name: "Table 1", Capacity: 4, Status: models.TableReserved})
	db.Create(&models.Table{Name: "Table 2", Capacity: 4, Status: models.TableOccupied})
	db.Create(&models.Table{Name: "Table 10", Capacity: 4, Status: models.TableFree})

	r := setupTableRouter(db)
	w, resp := doJSON(t, r, "GET", "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].([]interface{})
	var names []string
	for _, item := range data {
		names = append(names, item.(map[string]interface{})["name"].(string))
	}
	// Reserved, then occupied, then free by table number
	assert.Equal(t, []string{"Table 1", "Table 2", "Table 3", "Table 10"}, names)
}

func TestDeleteTableRestrictedByOrders(t *testing.T) {
	db := setupTestDB(t)
	table := models.Table{Name: "Bàn 01", Capacity: 4, Status: models.TableOccupied}
	db.Create(&table)
	db.Create(&models.Order{TableID: table.ID, Status: models.OrderNew})

	r := setupTableRouter(db)

	w, resp := doJSON(t, r, "DELETE", "/tables/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, resp["success"])

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
