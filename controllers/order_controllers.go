package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/kds"
	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/monitoring"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder places an order for a table. Each line snapshots the
// current menu price; the order and its lines are written in one
// transaction, and the table flips to occupied (free and reserved
// both do, occupied stays put).
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		MenuItemID uint `json:"menu_item_id"`
		Quantity   int  `json:"quantity"`
	}
	var req struct {
		TableID uint      `json:"table_id" binding:"required"`
		Items   []itemReq `json:"items"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if len(req.Items) == 0 {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: "order must contain at least one item"})
		return
	}
	for _, item := range req.Items {
		if item.MenuItemID == 0 {
			utils.RespondDomainError(c, &utils.ValidationError{Msg: "invalid menu item id"})
			return
		}
		if item.Quantity < 1 {
			utils.RespondDomainError(c, &utils.ValidationError{Msg: fmt.Sprintf("invalid quantity %d for item %d", item.Quantity, item.MenuItemID)})
			return
		}
	}

	var (
		order models.Order
		table models.Table
	)
	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&table, req.TableID).Error; err != nil {
			return &utils.NotFoundError{Msg: "table not found"}
		}

		order = models.Order{
			TableID:   table.ID,
			OrderDate: time.Now(),
			Status:    models.OrderNew,
		}

		var total float64
		for _, item := range req.Items {
			var menuItem models.MenuItem
			if err := tx.First(&menuItem, item.MenuItemID).Error; err != nil {
				return &utils.NotFoundError{Msg: fmt.Sprintf("menu item %d not found", item.MenuItemID)}
			}

			total += menuItem.Price * float64(item.Quantity)
			order.OrderItems = append(order.OrderItems, models.OrderDetail{
				MenuItemID: menuItem.ID,
				Quantity:   item.Quantity,
				Price:      menuItem.Price, // price at order time, never recomputed
			})
		}
		order.TotalAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Conditional update keeps the transition race free; zero rows
		// just means the table was already occupied.
		res := tx.Model(&models.Table{}).
			Where("id = ? AND status IN ?", table.ID, []models.TableStatus{models.TableFree, models.TableReserved}).
			Update("status", models.TableOccupied)
		if res.Error != nil {
			return res.Error
		}
		table.Status = models.TableOccupied
		return nil
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	monitoring.OrdersCreated.Inc()
	kds.BroadcastOrderUpdate(order)
	kds.BroadcastTableUpdate(table)
	kds.BroadcastStaffNotification(fmt.Sprintf("Table %s placed an order - %s", table.Name, utils.FormatVND(order.TotalAmount)))

	utils.InfoLogger.Printf("Order %d created for table %s, total %s", order.ID, table.Name, utils.FormatVND(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", order)
}

// GetAllOrders lists orders with their lines, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Order("order_date DESC").Find(&orders).Error; err != nil {
		utils.RespondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID returns one order with its lines.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "order not found"})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// StartOrder moves an order from new to processing when the kitchen
// picks it up.
func (oc *OrderController) StartOrder(c *gin.Context) {
	oc.advanceOrder(c, models.OrderProcessing, "Order is being prepared")
}

// CompleteOrder marks an order served. The table's status is left
// alone: staff free the table manually at checkout, never implicitly.
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	oc.advanceOrder(c, models.OrderServed, "Order served")
}

// PayOrder settles a served order.
func (oc *OrderController) PayOrder(c *gin.Context) {
	oc.advanceOrder(c, models.OrderPaid, "Order paid")
}

// advanceOrder applies one forward step of the order lifecycle. Any
// backward move is a conflict, and the row is guarded against a
// concurrent advance with a conditional update.
func (oc *OrderController) advanceOrder(c *gin.Context, target models.OrderStatus, message string) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "order not found"})
		return
	}

	if !order.Status.CanAdvanceTo(target) {
		utils.RespondDomainError(c, &utils.ConflictError{
			Msg: fmt.Sprintf("order %d is %s and cannot move to %s", order.ID, order.Status, target),
		})
		return
	}

	res := oc.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, order.Status).
		Update("status", target)
	if res.Error != nil {
		utils.RespondDomainError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondDomainError(c, &utils.ConcurrencyError{Msg: "order status changed concurrently, please retry"})
		return
	}
	order.Status = target

	if target == models.OrderServed {
		monitoring.OrdersCompleted.Inc()
	}
	kds.BroadcastOrderUpdate(order)

	utils.InfoLogger.Printf("Order %d moved to %s", order.ID, target)
	utils.RespondJSON(c, http.StatusOK, message, order)
}

// DeleteOrder removes an order and its lines.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "order not found"})
		return
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d deleted", order.ID)
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}
