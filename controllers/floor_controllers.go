package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/metrics"
	"github.com/prameswara/restofoh/utils"
)

type FloorController struct {
	Coord *floor.Coordinator
}

func NewFloorController(coord *floor.Coordinator) *FloorController {
	return &FloorController{Coord: coord}
}

// respondFloorError memetakan error koordinator ke status HTTP.
func respondFloorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, floor.ErrNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, floor.ErrInvalidTransition):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, floor.ErrDuplicateTableNumber):
		utils.RespondError(c, http.StatusConflict, err)
	case errors.Is(err, floor.ErrCapacityExceeded):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, floor.ErrValidation):
		utils.RespondError(c, http.StatusBadRequest, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// GetFloor -> denah lengkap: sections, meja, dan statistik status
func (fc *FloorController) GetFloor(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Floor plan", gin.H{
		"sections": fc.Coord.Sections(),
		"tables":   fc.Coord.Tables(),
		"stats":    fc.Coord.Stats(),
	})
}

// GetDashboardStats -> jumlah meja per status
func (fc *FloorController) GetDashboardStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Floor stats", fc.Coord.Stats())
}

// GetAllTables -> menampilkan seluruh meja
func (fc *FloorController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", fc.Coord.Tables())
}

// GetTableByID -> detail satu meja plus sisa waktu makan
func (fc *FloorController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")
	table, err := fc.Coord.TableByID(tableID)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	remaining, _ := fc.Coord.TimeRemaining(tableID)
	utils.RespondJSON(c, http.StatusOK, "Table detail", gin.H{
		"table":             table,
		"remaining_minutes": int(remaining.Minutes()),
	})
}

// CreateTable -> menambahkan meja baru
func (fc *FloorController) CreateTable(c *gin.Context) {
	var spec floor.TableSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := fc.Coord.AddTable(spec)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("add_table")
	metrics.ObserveFloor(fc.Coord.Stats())
	utils.InfoLogger.Printf("New table created: #%d (capacity=%d)", table.Number, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> edit nomor/kapasitas/bentuk/section meja
func (fc *FloorController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var upd floor.TableUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := fc.Coord.UpdateTable(tableID, upd)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("update_table")
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// MoveTable -> geser posisi meja di denah
func (fc *FloorController) MoveTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		PosX float64 `json:"pos_x"`
		PosY float64 `json:"pos_y"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := fc.Coord.MoveTable(tableID, body.PosX, body.PosY)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table moved", table)
}

// UpdateTableStatus -> transisi status meja (seat/reserve/clear/finish-cleaning)
func (fc *FloorController) UpdateTableStatus(c *gin.Context) {
	tableID := c.Param("table_id")
	var body struct {
		Status string             `json:"status" binding:"required"`
		Attrs  *floor.StatusAttrs `json:"attrs"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := fc.Coord.SetTableStatus(tableID, body.Status, body.Attrs)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("set_table_status")
	metrics.ObserveFloor(fc.Coord.Stats())
	utils.InfoLogger.Printf("Table #%d status changed to %s", table.Number, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// DeleteTable -> menghapus meja (reservasi aktifnya ikut dibatalkan)
func (fc *FloorController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	if err := fc.Coord.DeleteTable(tableID); err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("delete_table")
	metrics.ObserveFloor(fc.Coord.Stats())
	utils.InfoLogger.Printf("Table %s deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": tableID,
	})
}
