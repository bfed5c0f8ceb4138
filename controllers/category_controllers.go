package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// GetAllCategories
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := cc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", categories)
}

// CreateCategory adds a category; names are unique.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	cc.DB.Model(&models.Category{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: fmt.Sprintf("category %q already exists", req.Name)})
		return
	}

	category := models.Category{Name: req.Name, Active: true}
	if err := cc.DB.Create(&category).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory renames or toggles a category.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := cc.DB.First(&category, c.Param("cat_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "category not found"})
		return
	}

	var req struct {
		Name   *string `json:"name"`
		Active *bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil && *req.Name != "" {
		var count int64
		cc.DB.Model(&models.Category{}).Where("name = ? AND id <> ?", *req.Name, category.ID).Count(&count)
		if count > 0 {
			utils.RespondDomainError(c, &utils.ValidationError{Msg: fmt.Sprintf("category %q already exists", *req.Name)})
			return
		}
		category.Name = *req.Name
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := cc.DB.Save(&category).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// DeleteCategory removes a category unless menu items still reference
// it.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := cc.DB.First(&category, c.Param("cat_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "category not found"})
		return
	}

	var refs int64
	cc.DB.Model(&models.MenuItem{}).Where("category_id = ?", category.ID).Count(&refs)
	if refs > 0 {
		utils.RespondDomainError(c, &utils.ConflictError{Msg: fmt.Sprintf("category %s still has %d menu items", category.Name, refs)})
		return
	}

	if err := cc.DB.Delete(&category).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": category.ID})
}
