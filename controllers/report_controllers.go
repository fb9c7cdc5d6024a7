package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prameswara/restofoh/models"
	"github.com/prameswara/restofoh/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type dailySales struct {
	Day     string  `json:"day"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type topItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

// parseReportRange membaca ?start_date=&end_date= (YYYY-MM-DD),
// default 7 hari terakhir.
func parseReportRange(c *gin.Context) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -7)

	if s := c.Query("start_date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q", s)
		}
		start = parsed
	}
	if e := c.Query("end_date"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q", e)
		}
		// inklusif sampai akhir hari
		end = parsed.AddDate(0, 0, 1)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date is before start_date")
	}
	return start, end, nil
}

// GetSalesReport -> omzet dan jumlah order per hari plus item terlaris.
// Hanya order served/paid yang dihitung.
func (rc *ReportController) GetSalesReport(c *gin.Context) {
	start, end, err := parseReportRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	billable := []string{OrderStatusServed, OrderStatusPaid}

	var daily []dailySales
	if err := rc.DB.Model(&models.Order{}).
		Select("DATE(created_at) AS day, COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("status IN ? AND created_at >= ? AND created_at < ?", billable, start, end).
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&daily).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totals struct {
		Orders  int64   `json:"orders"`
		Revenue float64 `json:"revenue"`
	}
	if err := rc.DB.Model(&models.Order{}).
		Select("COUNT(*) AS orders, COALESCE(SUM(total), 0) AS revenue").
		Where("status IN ? AND created_at >= ? AND created_at < ?", billable, start, end).
		Scan(&totals).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var top []topItem
	if err := rc.DB.Table("order_items").
		Select("order_items.menu_item_id, menu_items.name, SUM(order_items.quantity) AS quantity, SUM(order_items.quantity * order_items.unit_price) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("orders.status IN ? AND orders.created_at >= ? AND orders.created_at < ?", billable, start, end).
		Group("order_items.menu_item_id, menu_items.name").
		Order("quantity DESC").
		Limit(10).
		Scan(&top).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sales report", gin.H{
		"start_date": start.Format("2006-01-02"),
		"end_date":   end.AddDate(0, 0, -1).Format("2006-01-02"),
		"totals":     totals,
		"daily":      daily,
		"top_items":  top,
	})
}

// GetInventoryReport -> valuasi stok dan daftar item di bawah ambang reorder
func (rc *ReportController) GetInventoryReport(c *gin.Context) {
	var valuation struct {
		Items float64 `json:"items"`
		Value float64 `json:"value"`
	}
	if err := rc.DB.Model(&models.InventoryItem{}).
		Select("COUNT(*) AS items, COALESCE(SUM(quantity * unit_cost), 0) AS value").
		Scan(&valuation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var lowStock []models.InventoryItem
	if err := rc.DB.Where("quantity <= reorder_level").Order("name ASC").Find(&lowStock).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory report", gin.H{
		"valuation": valuation,
		"low_stock": lowStock,
	})
}

type roleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// GetStaffReport -> jumlah staff per role dan total aktif
func (rc *ReportController) GetStaffReport(c *gin.Context) {
	var byRole []roleCount
	if err := rc.DB.Model(&models.Staff{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role ASC").
		Scan(&byRole).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var active int64
	if err := rc.DB.Model(&models.Staff{}).Where("active = ?", true).Count(&active).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Staff report", gin.H{
		"by_role": byRole,
		"active":  active,
	})
}
