package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/kds"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/monitoring"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// bookableTable is a table as shown on the table-selection page.
type bookableTable struct {
	ID       uint               `json:"id"`
	Name     string             `json:"name"`
	Capacity int                `json:"capacity"`
	Status   models.TableStatus `json:"status"`
	Bookable bool               `json:"bookable"`
}

// ListTables serves the table-selection page: visible tables, optional
// status filter (all/free/occupied/reserved), ascending by table
// number. Only free tables are bookable.
func (bc *BookingController) ListTables(c *gin.Context) {
	query := bc.DB.Where("hidden = ?", false)

	switch filter := c.DefaultQuery("filter", "all"); filter {
	case "all":
	case "free":
		query = query.Where("status = ?", models.TableFree)
	case "occupied":
		query = query.Where("status = ?", models.TableOccupied)
	case "reserved":
		query = query.Where("status = ?", models.TableReserved)
	default:
		utils.RespondDomainError(c, &utils.ValidationError{Msg: fmt.Sprintf("unknown filter %q", filter)})
		return
	}

	var tables []models.Table
	if err := query.Find(&tables).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	models.SortTablesByNumber(tables)

	out := make([]bookableTable, 0, len(tables))
	for _, t := range tables {
		out = append(out, bookableTable{
			ID:       t.ID,
			Name:     t.Name,
			Capacity: t.Capacity,
			Status:   t.Status,
			Bookable: t.Status == models.TableFree,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Tables for booking", out)
}

// CreateBooking handles the remote reservation form. When a table is
// chosen it must still be free; the free-to-reserved flip runs as a
// conditional update inside the transaction so two racing bookings
// cannot both win the same table.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		CustomerName string    `json:"customer_name" binding:"required"`
		PhoneNumber  string    `json:"phone_number" binding:"required"`
		BookingTime  time.Time `json:"booking_time" binding:"required"`
		GuestCount   int       `json:"guest_count" binding:"required"`
		Note         string    `json:"note"`
		TableID      *uint     `json:"table_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	booking := models.Booking{
		Reference:    uuid.NewString(),
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		BookingTime:  req.BookingTime,
		GuestCount:   req.GuestCount,
		Note:         req.Note,
		Status:       models.BookingPending,
		TableID:      req.TableID,
	}

	if err := booking.Validate(time.Now()); err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	var reservedTable *models.Table
	err := bc.DB.Transaction(func(tx *gorm.DB) error {
		if req.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *req.TableID).Error; err != nil {
				return &utils.NotFoundError{Msg: "the selected table does not exist"}
			}

			res := tx.Model(&models.Table{}).
				Where("id = ? AND status = ?", table.ID, models.TableFree).
				Update("status", models.TableReserved)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &utils.ConflictError{Msg: fmt.Sprintf("table %s is no longer free, please choose another table", table.Name)}
			}

			table.Status = models.TableReserved
			reservedTable = &table
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	monitoring.BookingsCreated.Inc()
	kds.BroadcastBookingCreate(booking)
	if reservedTable != nil {
		kds.BroadcastTableUpdate(*reservedTable)
		utils.InfoLogger.Printf("Table %s reserved by booking %s", reservedTable.Name, booking.Reference)
	}

	utils.InfoLogger.Printf("Booking created: %s - %s - %s", booking.CustomerName, booking.PhoneNumber, booking.BookingTime.Format(time.RFC3339))
	utils.RespondJSON(c, http.StatusCreated,
		fmt.Sprintf("Booking received. We will call %s to confirm.", booking.PhoneNumber),
		booking)
}

// GetAllBookings lists bookings for staff, newest first.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// GetBookingByReference lets a customer look up their reservation.
func (bc *BookingController) GetBookingByReference(c *gin.Context) {
	var booking models.Booking
	if err := bc.DB.Where("reference = ?", c.Param("reference")).First(&booking).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "booking not found"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Booking detail", booking)
}
