package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
)

// TableOrderSummary is one table on the kitchen/bar display: its active
// orders and the dates that drive urgency.
type TableOrderSummary struct {
	TableID         uint           `json:"table_id"`
	TableName       string         `json:"table_name"`
	OrderCount      int            `json:"order_count"`
	Orders          []models.Order `json:"orders"`
	OldestOrderDate time.Time      `json:"oldest_order_date"`
	LatestOrderDate time.Time      `json:"latest_order_date"`
	TotalAmount     float64        `json:"total_amount"`
}

// KitchenService aggregates active orders for the kitchen display.
type KitchenService struct {
	DB *gorm.DB
}

func NewKitchenService(db *gorm.DB) *KitchenService {
	return &KitchenService{DB: db}
}

// ActiveTableSummaries groups new and processing orders by table.
// Served and paid orders are excluded entirely: a table whose only
// order is served does not appear. Within a group orders are oldest
// first, and groups are ordered by their oldest order so the longest
// waiting table tops the display, ties broken by table name.
func (s *KitchenService) ActiveTableSummaries() ([]TableOrderSummary, error) {
	var orders []models.Order
	err := s.DB.
		Preload("OrderItems").
		Preload("OrderItems.MenuItem").
		Preload("Table").
		Where("status IN ?", []models.OrderStatus{models.OrderNew, models.OrderProcessing}).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	groups := make(map[uint]*TableOrderSummary)
	for _, order := range orders {
		g, ok := groups[order.TableID]
		if !ok {
			g = &TableOrderSummary{
				TableID:         order.TableID,
				TableName:       order.Table.Name,
				OldestOrderDate: order.OrderDate,
				LatestOrderDate: order.OrderDate,
			}
			groups[order.TableID] = g
		}
		g.Orders = append(g.Orders, order)
		g.OrderCount++
		g.TotalAmount += order.TotalAmount
		if order.OrderDate.Before(g.OldestOrderDate) {
			g.OldestOrderDate = order.OrderDate
		}
		if order.OrderDate.After(g.LatestOrderDate) {
			g.LatestOrderDate = order.OrderDate
		}
	}

	summaries := make([]TableOrderSummary, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Orders, func(i, j int) bool {
			return g.Orders[i].OrderDate.Before(g.Orders[j].OrderDate)
		})
		summaries = append(summaries, *g)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].OldestOrderDate.Equal(summaries[j].OldestOrderDate) {
			return summaries[i].OldestOrderDate.Before(summaries[j].OldestOrderDate)
		}
		return summaries[i].TableName < summaries[j].TableName
	})

	return summaries, nil
}
