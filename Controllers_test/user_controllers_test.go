package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/controllers"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	userCtrl := controllers.NewUserController(db)
	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w, _ := doJSON(t, r, "POST", "/register", gin.H{
		"name":     "Trần Thị Hoa",
		"email":    "Hoa@Example.com",
		"password": "matkhau123",
		"role":     models.RoleStaff,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// email is stored lowercased and matched case-insensitively
	w, resp := doJSON(t, r, "POST", "/login", gin.H{
		"email":    "hoa@example.com",
		"password": "matkhau123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	token := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleStaff, data["role"])

	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleStaff, claims.Role)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	w, _ := doJSON(t, r, "POST", "/register", gin.H{
		"name": "A", "email": "a@example.com", "password": "short", "role": models.RoleStaff,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, "POST", "/register", gin.H{
		"name": "A", "email": "a@example.com", "password": "matkhau123", "role": "janitor",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := setupUserRouter(db)

	doJSON(t, r, "POST", "/register", gin.H{
		"name": "A", "email": "a@example.com", "password": "matkhau123", "role": models.RoleStaff,
	})

	w, _ := doJSON(t, r, "POST", "/login", gin.H{
		"email": "a@example.com", "password": "saimatkhau",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
