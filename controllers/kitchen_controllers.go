package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Thuanphan093164/Qly-NhaHang/models"
	"github.com/Thuanphan093164/Qly-NhaHang/services"
	"github.com/Thuanphan093164/Qly-NhaHang/utils"
)

type KitchenController struct {
	DB       *gorm.DB
	Kitchen  *services.KitchenService
	Prepared *services.PreparedStore
}

func NewKitchenController(db *gorm.DB, prepared *services.PreparedStore) *KitchenController {
	return &KitchenController{
		DB:       db,
		Kitchen:  services.NewKitchenService(db),
		Prepared: prepared,
	}
}

// GetKitchenDisplay returns the per-table view of active orders,
// longest-waiting table first, with the transient prepared flag
// attached to every line.
func (kc *KitchenController) GetKitchenDisplay(c *gin.Context) {
	summaries, err := kc.Kitchen.ActiveTableSummaries()
	if err != nil {
		utils.RespondDomainError(c, err)
		return
	}

	var detailIDs []uint
	for _, s := range summaries {
		for _, o := range s.Orders {
			for _, d := range o.OrderItems {
				detailIDs = append(detailIDs, d.ID)
			}
		}
	}
	flags := kc.Prepared.Flags(detailIDs)

	type lineView struct {
		models.OrderDetail
		Prepared bool `json:"prepared"`
	}
	type orderView struct {
		models.Order
		Items []lineView `json:"order_items"`
	}
	type tableView struct {
		services.TableOrderSummary
		Orders []orderView `json:"orders"`
	}

	out := make([]tableView, 0, len(summaries))
	for _, s := range summaries {
		tv := tableView{TableOrderSummary: s}
		for _, o := range s.Orders {
			ov := orderView{Order: o}
			for _, d := range o.OrderItems {
				ov.Items = append(ov.Items, lineView{OrderDetail: d, Prepared: flags[d.ID]})
			}
			tv.Orders = append(tv.Orders, ov)
		}
		tv.TableOrderSummary.Orders = nil
		out = append(out, tv)
	}

	utils.RespondJSON(c, http.StatusOK, "Kitchen display", out)
}

// MarkItemPrepared toggles the ephemeral prepared tick for one order
// line. The flag lives in memory only and expires on its own.
func (kc *KitchenController) MarkItemPrepared(c *gin.Context) {
	detailID, err := strconv.ParseUint(c.Param("detail_id"), 10, 32)
	if err != nil {
		utils.RespondDomainError(c, &utils.ValidationError{Msg: "invalid order detail id"})
		return
	}

	var req struct {
		Prepared bool `json:"prepared"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var detail models.OrderDetail
	if err := kc.DB.First(&detail, uint(detailID)).Error; err != nil {
		utils.RespondDomainError(c, &utils.NotFoundError{Msg: "order detail not found"})
		return
	}

	kc.Prepared.SetPrepared(detail.ID, req.Prepared)
	utils.RespondJSON(c, http.StatusOK, "Item prepared flag updated", gin.H{
		"order_detail_id": detail.ID,
		"prepared":        req.Prepared,
	})
}
