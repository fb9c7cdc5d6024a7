package services

import (
	"time"

	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/metrics"
	"github.com/prameswara/restofoh/utils"
)

// ReservationSweeper secara periodik mengunci meja 'available' yang reservasi
// confirmed-nya sudah masuk jendela 24 jam. AddReservation hanya mengunci meja
// saat reservasi dibuat; reservasi yang dibuat jauh-jauh hari jatuh tempo
// lewat sweeper ini.
type ReservationSweeper struct {
	Coord    *floor.Coordinator
	StopChan chan struct{}
	Interval time.Duration
}

func NewReservationSweeper(coord *floor.Coordinator) *ReservationSweeper {
	return &ReservationSweeper{
		Coord:    coord,
		StopChan: make(chan struct{}),
		Interval: 1 * time.Minute,
	}
}

func (rs *ReservationSweeper) Start() {
	go func() {
		ticker := time.NewTicker(rs.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				rs.sweep()
			case <-rs.StopChan:
				return
			}
		}
	}()
}

func (rs *ReservationSweeper) Stop() {
	close(rs.StopChan)
}

func (rs *ReservationSweeper) sweep() {
	promoted := rs.Coord.ReconcileUpcoming()
	if promoted > 0 {
		utils.InfoLogger.Printf("Reserved %d table(s) for upcoming reservations", promoted)
	}
	metrics.ObserveFloor(rs.Coord.Stats())
}
