package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/models"
	"github.com/prameswara/restofoh/utils"
)

// Status order
const (
	OrderStatusOpen      = "open"
	OrderStatusInKitchen = "in_kitchen"
	OrderStatusReady     = "ready"
	OrderStatusServed    = "served"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// nextOrderStatus memetakan perpindahan status order yang diizinkan.
var nextOrderStatus = map[string]map[string]bool{
	OrderStatusOpen:      {OrderStatusInKitchen: true, OrderStatusCancelled: true},
	OrderStatusInKitchen: {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusServed: true},
	OrderStatusServed:    {OrderStatusPaid: true},
}

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> seluruh order, bisa difilter ?status=
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Items.MenuItem")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> order baru; total dihitung dari harga menu saat ini
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		TableID    string `json:"table_id"`
		ServerName string `json:"server_name"`
		Items      []struct {
			MenuItemID uint   `json:"menu_item_id" binding:"required"`
			Quantity   int    `json:"quantity" binding:"required"`
			Notes      string `json:"notes"`
		} `json:"items" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		TableID:    body.TableID,
		ServerName: body.ServerName,
		Status:     OrderStatusOpen,
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		for _, reqItem := range body.Items {
			if reqItem.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive for menu item %d", reqItem.MenuItemID)
			}

			var menuItem models.MenuItem
			if err := tx.First(&menuItem, reqItem.MenuItemID).Error; err != nil {
				return fmt.Errorf("menu item %d not found", reqItem.MenuItemID)
			}
			if !menuItem.Available {
				return fmt.Errorf("menu item %s is not available", menuItem.Name)
			}

			order.Items = append(order.Items, models.OrderItem{
				MenuItemID: menuItem.ID,
				Quantity:   reqItem.Quantity,
				UnitPrice:  menuItem.Price,
				Notes:      reqItem.Notes,
			})
			order.Total += menuItem.Price * float64(reqItem.Quantity)
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("Order %d created (table=%s, total=%.2f)", order.ID, order.TableID, order.Total)
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))
	var order models.Order
	if err := oc.DB.Preload("Items.MenuItem").First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> maju ke status berikutnya sesuai alur dapur
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !nextOrderStatus[order.Status][body.Status] {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cannot move order from %s to %s", order.Status, body.Status))
		return
	}

	order.Status = body.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %d status changed to %s", order.ID, order.Status)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if err := oc.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}

// GetKitchenQueue -> antrian dapur: order in_kitchen/ready, paling lama duluan.
// Layar dapur mem-poll endpoint ini.
func (oc *OrderController) GetKitchenQueue(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("Items.MenuItem").
		Where("status IN ?", []string{OrderStatusInKitchen, OrderStatusReady}).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Kitchen queue", orders)
}
