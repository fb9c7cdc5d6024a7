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

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

// GetAllItems
func (ic *InventoryController) GetAllItems(c *gin.Context) {
	var items []models.InventoryItem
	if err := ic.DB.Order("name ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", items)
}

// GetLowStock -> item dengan stok di bawah ambang reorder
func (ic *InventoryController) GetLowStock(c *gin.Context) {
	var items []models.InventoryItem
	if err := ic.DB.Where("quantity <= reorder_level").Order("name ASC").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Low stock items", items)
}

// GetItemByID
func (ic *InventoryController) GetItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))
	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item detail", item)
}

// CreateItem
func (ic *InventoryController) CreateItem(c *gin.Context) {
	var body struct {
		Name         string  `json:"name" binding:"required"`
		Unit         string  `json:"unit" binding:"required"`
		Quantity     float64 `json:"quantity"`
		ReorderLevel float64 `json:"reorder_level"`
		UnitCost     float64 `json:"unit_cost"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.InventoryItem{
		Name:         body.Name,
		Unit:         body.Unit,
		Quantity:     body.Quantity,
		ReorderLevel: body.ReorderLevel,
		UnitCost:     body.UnitCost,
	}
	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created", item)
}

// UpdateItem
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var body struct {
		Name         *string  `json:"name"`
		Unit         *string  `json:"unit"`
		ReorderLevel *float64 `json:"reorder_level"`
		UnitCost     *float64 `json:"unit_cost"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Name != nil {
		item.Name = *body.Name
	}
	if body.Unit != nil {
		item.Unit = *body.Unit
	}
	if body.ReorderLevel != nil {
		item.ReorderLevel = *body.ReorderLevel
	}
	if body.UnitCost != nil {
		item.UnitCost = *body.UnitCost
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item updated", item)
}

// AdjustStock -> tambah/kurangi stok dengan delta; stok tidak boleh negatif
func (ic *InventoryController) AdjustStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var body struct {
		Delta float64 `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	newQuantity := item.Quantity + body.Delta
	if newQuantity < 0 {
		utils.RespondError(c, http.StatusUnprocessableEntity,
			fmt.Errorf("stock cannot go negative (current %.2f, delta %.2f)", item.Quantity, body.Delta))
		return
	}

	item.Quantity = newQuantity
	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if item.Quantity <= item.ReorderLevel {
		utils.InfoLogger.Printf("Inventory low: %s at %.2f %s (reorder at %.2f)",
			item.Name, item.Quantity, item.Unit, item.ReorderLevel)
	}
	utils.RespondJSON(c, http.StatusOK, "Stock adjusted", item)
}

// DeleteItem
func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))
	if err := ic.DB.Delete(&models.InventoryItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted", gin.H{"item_id": id})
}
