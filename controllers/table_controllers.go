package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/kds"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable adds a new table. Names are unique, capacity is 1..20 and
// the status defaults to free.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Name     string             `json:"name" binding:"required"`
		Capacity int                `json:"capacity" binding:"required"`
		Status   models.TableStatus `json:"status"`
		Hidden   bool               `json:"hidden"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !req.Status.Valid() {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: "invalid table status"})
		return
	}

	table := models.Table{
		Name:     req.Name,
		Capacity: req.Capacity,
		Status:   req.Status,
		Hidden:   req.Hidden,
	}
	if err := table.ValidateCapacity(); err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	var count int64
	tc.DB.Model(&models.Table{}).Where("name = ?", table.Name).Count(&count)
	if count > 0 {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: fmt.Sprintf("table name %q already exists", table.Name)})
		return
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	kds.BroadcastMessage(kds.Message{
		Event: kds.EventTableCreate,
		Data: map[string]interface{}{
			"table": table,
			"stats": tc.dashboardStats(),
		},
	})

	utils.InfoLogger.Printf("New table created: %s (capacity=%d, status=%s)", table.Name, table.Capacity, table.Status)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetAllTables lists every table sorted for the management screen:
// reserved first, then occupied, then free, by table number within a
// status.
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Find(&tables).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	models.SortTablesForDisplay(tables)
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID returns one table.
func (tc *TableController) GetTableByID(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "table not found"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTableStatus is the staff AJAX endpoint for manually flipping a
// table's status. The override is unconditional once the value passes
// enum validation; this is the only way a table ever returns to free.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var req struct {
		TableID   uint               `json:"tableId" binding:"required"`
		NewStatus models.TableStatus `json:"newStatus"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !req.NewStatus.Valid() {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: "invalid table status"})
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, req.TableID).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "table not found"})
		return
	}

	table.Status = req.NewStatus
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	kds.BroadcastTableUpdate(table)

	utils.InfoLogger.Printf("Table %d status changed to %s", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// UpdateTable edits name, capacity and visibility. A stale write (row
// gone between read and update) is reported instead of silently lost.
func (tc *TableController) UpdateTable(c *gin.Context) {
	var req struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
		Hidden   *bool   `json:"hidden"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "table not found"})
		return
	}

	prevUpdatedAt := table.UpdatedAt

	if req.Name != nil {
		var count int64
		tc.DB.Model(&models.Table{}).Where("name = ? AND id <> ?", *req.Name, table.ID).Count(&count)
		if count > 0 {
			utils.RespondDomainError(c, &utils.ValidationError{Msg: fmt.Sprintf("table name %q already exists", *req.Name)})
			return
		}
		table.Name = *req.Name
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
		if err := table.ValidateCapacity(); err != nil {
			utils.RespondDomainError(c, err)
			return
		}
	}
	if req.Hidden != nil {
		table.Hidden = *req.Hidden
	}

	res := tc.DB.Model(&models.Table{}).
		Where("id = ? AND updated_at = ?", table.ID, prevUpdatedAt).
		Updates(map[string]interface{}{
			"name":     table.Name,
			"capacity": table.Capacity,
			"hidden":   table.Hidden,
		})
	if res.Error != nil {
		utils.RespondDomainError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		var exists int64
		tc.DB.Model(&models.Table{}).Where("id = ?", table.ID).Count(&exists)
		if exists == 0 {
			utils.RespondDomainError(c, &utils.NotFoundError{Msg: "table no longer exists"})
			return
		}
		utils.RespondDomainError(c, &utils.ConcurrencyError{Msg: "table was modified by another request, please retry"})
		return
	}

	utils.InfoLogger.Printf("Table %d updated", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable removes a table unless orders reference it.
func (tc *TableController) DeleteTable(c *gin.Context) {
	var table models.Table
	if err := tc.DB.First(&table, c.Param("table_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "table not found"})
		return
	}

	var orderCount int64
	tc.DB.Model(&models.Order{}).Where("table_id = ?", table.ID).Count(&orderCount)
	if orderCount > 0 {
		utils.RespondDomainError(c, &utils.ConflictError{Msg: fmt.Sprintf("table %s has orders and cannot be deleted", table.Name)})
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	kds.BroadcastMessage(kds.Message{
		Event: kds.EventTableDelete,
		Data: map[string]interface{}{
			"table_id": table.ID,
			"stats":    tc.dashboardStats(),
		},
	})

	utils.InfoLogger.Printf("Table %d (%s) deleted", table.ID, table.Name)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}

// dashboardStats recomputes the table counts bundled into broadcast
// payloads.
func (tc *TableController) dashboardStats() map[string]interface{} {
	var total, free, occupied, reserved int64

	tc.DB.Model(&models.Table{}).Count(&total)
	tc.DB.Model(&models.Table{}).Where("status = ?", models.TableFree).Count(&free)
	tc.DB.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&occupied)
	tc.DB.Model(&models.Table{}).Where("status = ?", models.TableReserved).Count(&reserved)

	return map[string]interface{}{
		"total":    total,
		"free":     free,
		"occupied": occupied,
		"reserved": reserved,
	}
}
