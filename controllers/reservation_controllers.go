package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/metrics"
	"github.com/prameswara/restofoh/utils"
)

type ReservationController struct {
	Coord *floor.Coordinator
}

func NewReservationController(coord *floor.Coordinator) *ReservationController {
	return &ReservationController{Coord: coord}
}

// GetAllReservations -> daftar reservasi diurutkan berdasarkan jam
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of reservations", rc.Coord.Reservations())
}

// GetReservationByID -> detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	res, err := rc.Coord.ReservationByID(c.Param("reservation_id"))
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", res)
}

// CreateReservation -> membuat reservasi baru
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var spec floor.ReservationSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Coord.AddReservation(spec)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("add_reservation")
	metrics.ObserveFloor(rc.Coord.Stats())
	utils.InfoLogger.Printf("Reservation created for %s (party of %d)", res.CustomerName, res.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", res)
}

// UpdateReservation -> edit reservasi; shadow meja ikut tersinkron bila masih reserved
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var upd floor.ReservationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Coord.UpdateReservation(c.Param("reservation_id"), upd)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("update_reservation")
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", res)
}

// CancelReservation -> batalkan reservasi dengan alasan
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	res, err := rc.Coord.CancelReservation(c.Param("reservation_id"), body.Reason)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	metrics.IncOp("cancel_reservation")
	metrics.ObserveFloor(rc.Coord.Stats())
	utils.InfoLogger.Printf("Reservation %s cancelled: %s", res.ID, body.Reason)
	utils.RespondJSON(c, http.StatusOK, "Reservation cancelled", res)
}
