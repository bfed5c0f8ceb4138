// Package database holds schema migration helpers and the initial data
// set loaded on first boot.
package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Category{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Booking{},
	)
}

// Seed loads the initial tables, categories and menu when the database
// is empty. Running it twice is a no-op.
func Seed(db *gorm.DB) error {
	var tableCount int64
	if err := db.Model(&models.Table{}).Count(&tableCount).Error; err != nil {
		return err
	}
	if tableCount > 0 {
		return nil
	}

	for i := 1; i <= 12; i++ {
		capacity := 4
		if i > 8 {
			capacity = 8 // larger tables at the back
		}
		table := models.Table{
			Name:     fmt.Sprintf("Bàn %02d", i),
			Capacity: capacity,
			Status:   models.TableFree,
		}
		if err := db.Create(&table).Error; err != nil {
			return err
		}
	}

	monAn := models.Category{Name: "Món ăn", Active: true}
	thucUong := models.Category{Name: "Thức uống", Active: true}
	ruou := models.Category{Name: "Rượu", Active: true}
	for _, cat := range []*models.Category{&monAn, &thucUong, &ruou} {
		if err := db.Create(cat).Error; err != nil {
			return err
		}
	}

	items := []models.MenuItem{
		{Name: "Phở bò", Description: "Phở bò tái chín", Price: 65000, Unit: "tô", CategoryID: monAn.ID, Active: true},
		{Name: "Cơm gà xối mỡ", Price: 70000, Unit: models.DefaultUnit, CategoryID: monAn.ID, Active: true},
		{Name: "Lẩu thái hải sản", Description: "Cho 4 người", Price: 350000, Unit: "nồi", CategoryID: monAn.ID, Active: true},
		{Name: "Trà đá", Price: 5000, Unit: "ly", CategoryID: thucUong.ID, Active: true},
		{Name: "Nước cam ép", Price: 35000, Unit: "ly", CategoryID: thucUong.ID, Active: true},
		{Name: "Rượu vang đỏ", Price: 450000, Unit: "chai", CategoryID: ruou.ID, Active: true},
	}
	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	utils.InfoLogger.Printf("Seeded %d tables, 3 categories, %d menu items", 12, len(items))
	return nil
}
