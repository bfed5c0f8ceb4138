package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/monitoring"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// DashboardStats is the management dashboard payload. The guest
// estimate sums capacity over occupied tables, not actual headcount.
type DashboardStats struct {
	TotalTables           int64 `json:"total_tables"`
	FreeTables            int64 `json:"free_tables"`
	OccupiedTables        int64 `json:"occupied_tables"`
	ReservedTables        int64 `json:"reserved_tables"`
	OccupiedGuestEstimate int64 `json:"occupied_guest_estimate"`
}

// GetDashboardStats recomputes the counts from the database on every
// call; nothing is cached, so the numbers are never stale.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	stats, err := ac.collectStats()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard statistics", stats)
}

func (ac *AdminController) collectStats() (DashboardStats, error) {
	var stats DashboardStats

	if err := ac.DB.Model(&models.Table{}).Count(&stats.TotalTables).Error; err != nil {
		return stats, err
	}
	if err := ac.DB.Model(&models.Table{}).Where("status = ?", models.TableFree).Count(&stats.FreeTables).Error; err != nil {
		return stats, err
	}
	if err := ac.DB.Model(&models.Table{}).Where("status = ?", models.TableOccupied).Count(&stats.OccupiedTables).Error; err != nil {
		return stats, err
	}
	if err := ac.DB.Model(&models.Table{}).Where("status = ?", models.TableReserved).Count(&stats.ReservedTables).Error; err != nil {
		return stats, err
	}

	err := ac.DB.Model(&models.Table{}).
		Where("status = ?", models.TableOccupied).
		Select("COALESCE(SUM(capacity), 0)").
		Scan(&stats.OccupiedGuestEstimate).Error
	if err != nil {
		return stats, err
	}

	monitoring.SetTableCount(models.TableFree.String(), stats.FreeTables)
	monitoring.SetTableCount(models.TableOccupied.String(), stats.OccupiedTables)
	monitoring.SetTableCount(models.TableReserved.String(), stats.ReservedTables)

	return stats, nil
}
