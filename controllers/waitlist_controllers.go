package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/metrics"
	"github.com/prameswara/restofoh/utils"
)

type WaitlistController struct {
	Coord *floor.Coordinator
}

func NewWaitlistController(coord *floor.Coordinator) *WaitlistController {
	return &WaitlistController{Coord: coord}
}

// GetWaitlist -> antrian walk-in urut waktu masuk
func (wc *WaitlistController) GetWaitlist(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Waitlist", wc.Coord.Waitlist())
}

// GetWaitlistEntryByID -> detail satu entry
func (wc *WaitlistController) GetWaitlistEntryByID(c *gin.Context) {
	entry, err := wc.Coord.WaitlistEntryByID(c.Param("entry_id"))
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Waitlist entry detail", entry)
}

// AddToWaitlist -> daftarkan rombongan walk-in, estimasi dihitung sekali
func (wc *WaitlistController) AddToWaitlist(c *gin.Context) {
	var spec floor.WaitlistSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := wc.Coord.AddToWaitlist(spec)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("add_to_waitlist")
	utils.InfoLogger.Printf("Waitlist entry for %s (party of %d), estimate %d min",
		entry.CustomerName, entry.PartySize, entry.EstimatedWaitMinutes)
	utils.RespondJSON(c, http.StatusCreated, "Added to waitlist", entry)
}

// UpdateWaitlistEntry -> edit entry selama masih menunggu
func (wc *WaitlistController) UpdateWaitlistEntry(c *gin.Context) {
	var upd floor.WaitlistUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := wc.Coord.UpdateWaitlistEntry(c.Param("entry_id"), upd)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Waitlist entry updated", entry)
}

// NotifyCustomer -> tandai rombongan sudah dipanggil (idempoten)
func (wc *WaitlistController) NotifyCustomer(c *gin.Context) {
	entry, err := wc.Coord.NotifyCustomer(c.Param("entry_id"))
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("notify_customer")
	utils.RespondJSON(c, http.StatusOK, "Customer notified", entry)
}

// RemoveFromWaitlist -> tutup entry (seated atau cancelled sesuai alasan)
func (wc *WaitlistController) RemoveFromWaitlist(c *gin.Context) {
	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := wc.Coord.RemoveFromWaitlist(c.Param("entry_id"), body.Reason)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("remove_from_waitlist")
	utils.InfoLogger.Printf("Waitlist entry %s closed (%s)", entry.ID, entry.Status)
	utils.RespondJSON(c, http.StatusOK, "Removed from waitlist", entry)
}

// SeatFromWaitlist -> dudukkan rombongan waitlist ke meja dalam satu operasi
func (wc *WaitlistController) SeatFromWaitlist(c *gin.Context) {
	var body struct {
		TableID string             `json:"table_id" binding:"required"`
		Attrs   *floor.StatusAttrs `json:"attrs"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := wc.Coord.SeatFromWaitlist(c.Param("entry_id"), body.TableID, body.Attrs)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("seat_from_waitlist")
	metrics.ObserveFloor(wc.Coord.Stats())
	utils.InfoLogger.Printf("Waitlist party seated at table #%d", table.Number)
	utils.RespondJSON(c, http.StatusOK, "Party seated", table)
}
