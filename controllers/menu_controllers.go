package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems lists menu items for customers: active items only,
// optionally filtered by category, ordered by category then name.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	query := mc.DB.Preload("Category").
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("menu_items.active = ?", true).
		Order("categories.name ASC, menu_items.name ASC")

	if catID := c.Query("category_id"); catID != "" {
		query = query.Where("menu_items.category_id = ?", catID)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemsAdmin lists every item including inactive ones.
func (mc *MenuController) GetMenuItemsAdmin(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Preload("Category").Order("category_id ASC, name ASC").Find(&items).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID returns one menu item.
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.Preload("Category").First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "menu item not found"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

// CreateMenuItem adds a dish to the menu.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ImageURL    *string `json:"image_url"`
		Unit        string  `json:"unit"`
		CategoryID  uint    `json:"category_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Price < 0 {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: "price must not be negative"})
		return
	}

	var category models.Category
	if err := mc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "category not found"})
		return
	}

	if req.Unit == "" {
		req.Unit = models.DefaultUnit
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Unit:        req.Unit,
		CategoryID:  category.ID,
		Active:      true,
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created: %s (%s)", item.Name, utils.FormatVND(item.Price))
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem edits a dish. Existing order lines keep their
// snapshotted price regardless of what changes here.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "menu item not found"})
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		ImageURL    *string  `json:"image_url"`
		Unit        *string  `json:"unit"`
		CategoryID  *uint    `json:"category_id"`
		Active      *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondDomainError(c, &utils.ValidationError{Msg: "price must not be negative"})
			return
		}
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.Unit != nil && *req.Unit != "" {
		item.Unit = *req.Unit
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := mc.DB.First(&category, *req.CategoryID).Error; err != nil {
			utils.RespondDomainError(c, &utils.NotFoundError{Msg: "category not found"})
			return
		}
		item.CategoryID = category.ID
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem removes a dish. An item referenced by order lines is
// only deactivated so old orders keep a valid reference; an unused one
// is removed outright.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "menu item not found"})
		return
	}

	var refs int64
	mc.DB.Model(&models.OrderDetail{}).Where("menu_item_id = ?", item.ID).Count(&refs)

	if refs > 0 {
		if err := mc.DB.Model(&item).Update("active", false).Error; err != nil {
			utils.RespondDomainError(c, err)
			return
		}
		utils.InfoLogger.Printf("Menu item %d (%s) deactivated, %d order lines reference it", item.ID, item.Name, refs)
		utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Menu item %s is referenced by orders and was deactivated", item.Name), item)
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item %d (%s) deleted", item.ID, item.Name)
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": item.ID})
}
