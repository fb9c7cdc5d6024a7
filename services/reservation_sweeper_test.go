package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prameswara/restofoh/config"
	"github.com/prameswara/restofoh/floor"
	"github.com/prameswara/restofoh/services"
	"github.com/prameswara/restofoh/utils"
)

func init() {
	utils.InitLogger()
}

// steppingClock adalah jam yang bisa dimajukan dari goroutine test sementara
// sweeper membacanya.
type steppingClock struct {
	mu sync.Mutex
	t  time.Time
}

func (s *steppingClock) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t
}

func (s *steppingClock) Advance(d time.Duration) {
	s.mu.Lock()
	s.t = s.t.Add(d)
	s.mu.Unlock()
}

func TestSweeperPromotesDueReservations(t *testing.T) {
	clock := &steppingClock{t: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)}
	coord := floor.NewCoordinator(
		config.DefaultSections(),
		floor.WithClock(clock.Now),
	)

	table, err := coord.AddTable(floor.TableSpec{Number: 1, Capacity: 4})
	require.NoError(t, err)

	_, err = coord.AddReservation(floor.ReservationSpec{
		TableID:         table.ID,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	sweeper := services.NewReservationSweeper(coord)
	sweeper.Interval = 5 * time.Millisecond
	sweeper.Start()
	defer sweeper.Stop()

	// belum jatuh tempo: meja tetap available
	time.Sleep(25 * time.Millisecond)
	got, err := coord.TableByID(table.ID)
	require.NoError(t, err)
	assert.Equal(t, floor.StatusAvailable, got.Status)

	// majukan jam sampai reservasi masuk jendela 24 jam
	clock.Advance(50 * time.Hour)

	require.Eventually(t, func() bool {
		got, err := coord.TableByID(table.ID)
		return err == nil && got.Status == floor.StatusReserved
	}, time.Second, 5*time.Millisecond)
}

func TestSweeperStop(t *testing.T) {
	coord := floor.NewCoordinator(config.DefaultSections())
	sweeper := services.NewReservationSweeper(coord)
	sweeper.Interval = time.Millisecond
	sweeper.Start()
	sweeper.Stop()
	// Stop harus kembali tanpa hang; ticker goroutine ikut berhenti
}
