package floor_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prameswara/restofoh/config"
	"github.com/prameswara/restofoh/floor"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestCoordinator() (*floor.Coordinator, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)}
	seq := 0
	coord := floor.NewCoordinator(
		config.DefaultSections(),
		floor.WithClock(clock.Now),
		floor.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
	return coord, clock
}

func strPtr(s string) *string        { return &s }
func intPtr(n int) *int              { return &n }
func timePtr(t time.Time) *time.Time { return &t }

func addTable(t *testing.T, coord *floor.Coordinator, number, capacity int) string {
	t.Helper()
	table, err := coord.AddTable(floor.TableSpec{Number: number, Capacity: capacity})
	require.NoError(t, err)
	return table.ID
}

func TestAddTableDefaults(t *testing.T) {
	coord, clock := newTestCoordinator()

	table, err := coord.AddTable(floor.TableSpec{Number: 7, Capacity: 4, SectionID: "main"})
	require.NoError(t, err)

	assert.Equal(t, floor.StatusAvailable, table.Status)
	assert.Equal(t, floor.ShapeRectangle, table.Shape)
	assert.Equal(t, 7, table.Number)
	assert.Equal(t, clock.Now(), table.CreatedAt)
	assert.Nil(t, table.Customer)
	assert.Nil(t, table.ReservationTime)
}

func TestAddTableValidation(t *testing.T) {
	coord, _ := newTestCoordinator()

	tests := []struct {
		name string
		spec floor.TableSpec
		want error
	}{
		{"zero number", floor.TableSpec{Number: 0, Capacity: 4}, floor.ErrValidation},
		{"negative capacity", floor.TableSpec{Number: 1, Capacity: -2}, floor.ErrValidation},
		{"bad shape", floor.TableSpec{Number: 1, Capacity: 4, Shape: "hexagon"}, floor.ErrValidation},
		{"unknown section", floor.TableSpec{Number: 1, Capacity: 4, SectionID: "rooftop"}, floor.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coord.AddTable(tc.spec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTableNumberUniqueness(t *testing.T) {
	coord, _ := newTestCoordinator()
	addTable(t, coord, 1, 4)
	otherID := addTable(t, coord, 2, 4)

	_, err := coord.AddTable(floor.TableSpec{Number: 1, Capacity: 2})
	assert.ErrorIs(t, err, floor.ErrDuplicateTableNumber)

	_, err = coord.UpdateTable(otherID, floor.TableUpdate{Number: intPtr(1)})
	assert.ErrorIs(t, err, floor.ErrDuplicateTableNumber)

	// nomor sendiri boleh ditulis ulang
	_, err = coord.UpdateTable(otherID, floor.TableUpdate{Number: intPtr(2)})
	assert.NoError(t, err)
}

func TestSeatClearCleanCycle(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 4, 4)

	seated := clock.Now()
	table, err := coord.SetTableStatus(id, floor.StatusOccupied, &floor.StatusAttrs{
		Customer:   strPtr("Smith"),
		TimeSeated: timePtr(seated),
		Server:     strPtr("Ana"),
	})
	require.NoError(t, err)
	assert.Equal(t, floor.StatusOccupied, table.Status)
	require.NotNil(t, table.Customer)
	assert.Equal(t, "Smith", *table.Customer)
	assert.Equal(t, seated, *table.TimeSeated)

	// clear -> cleaning menghapus semua shadow
	table, err = coord.SetTableStatus(id, floor.StatusCleaning, nil)
	require.NoError(t, err)
	assert.Equal(t, floor.StatusCleaning, table.Status)
	assert.Nil(t, table.Customer)
	assert.Nil(t, table.TimeSeated)
	assert.Nil(t, table.Server)

	table, err = coord.SetTableStatus(id, floor.StatusAvailable, nil)
	require.NoError(t, err)
	assert.Equal(t, floor.StatusAvailable, table.Status)
	assert.Nil(t, table.Customer)
}

func TestSetTableStatusRejectsIllegalEdges(t *testing.T) {
	coord, _ := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	// available -> cleaning tidak ada di diagram
	_, err := coord.SetTableStatus(id, floor.StatusCleaning, nil)
	assert.ErrorIs(t, err, floor.ErrInvalidTransition)

	_, err = coord.SetTableStatus(id, floor.StatusOccupied, nil)
	require.NoError(t, err)

	// occupied -> reserved juga ilegal
	_, err = coord.SetTableStatus(id, floor.StatusReserved, nil)
	assert.ErrorIs(t, err, floor.ErrInvalidTransition)

	_, err = coord.SetTableStatus(id, "broken", nil)
	assert.ErrorIs(t, err, floor.ErrValidation)
}

func TestSetTableStatusMergeKeepsUnsuppliedFields(t *testing.T) {
	coord, _ := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	_, err := coord.SetTableStatus(id, floor.StatusOccupied, &floor.StatusAttrs{
		Customer: strPtr("Smith"),
		Server:   strPtr("Ana"),
	})
	require.NoError(t, err)

	// self-edge occupied -> occupied hanya merge field yang disuplai
	table, err := coord.SetTableStatus(id, floor.StatusOccupied, &floor.StatusAttrs{
		Server: strPtr("Budi"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Smith", *table.Customer)
	assert.Equal(t, "Budi", *table.Server)
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	coord, _ := newTestCoordinator()

	_, err := coord.TableByID("nope")
	assert.ErrorIs(t, err, floor.ErrNotFound)
	_, err = coord.SetTableStatus("nope", floor.StatusOccupied, nil)
	assert.ErrorIs(t, err, floor.ErrNotFound)
	assert.ErrorIs(t, coord.DeleteTable("nope"), floor.ErrNotFound)
	_, err = coord.UpdateReservation("nope", floor.ReservationUpdate{})
	assert.ErrorIs(t, err, floor.ErrNotFound)
	_, err = coord.NotifyCustomer("nope")
	assert.ErrorIs(t, err, floor.ErrNotFound)
	_, err = coord.RemoveFromWaitlist("nope", "left")
	assert.ErrorIs(t, err, floor.ErrNotFound)
}

func TestAddReservationWithin24HoursReservesTable(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	resTime := clock.Now().Add(3 * time.Hour)
	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PhoneNumber:     "0812-000-111",
		PartySize:       3,
		ReservationTime: resTime,
	})
	require.NoError(t, err)
	assert.Equal(t, floor.ReservationConfirmed, res.Status)

	table, err := coord.TableByID(id)
	require.NoError(t, err)
	assert.Equal(t, floor.StatusReserved, table.Status)
	require.NotNil(t, table.CustomerName)
	assert.Equal(t, "Wijaya", *table.CustomerName)
	assert.Equal(t, "0812-000-111", *table.PhoneNumber)
	assert.Equal(t, resTime, *table.ReservationTime)
}

func TestAddReservationBeyond24HoursLeavesTableAvailable(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	_, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)

	table, _ := coord.TableByID(id)
	assert.Equal(t, floor.StatusAvailable, table.Status)
	assert.Nil(t, table.CustomerName)
}

func TestAddReservationDoesNotTouchOccupiedTable(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	_, err := coord.SetTableStatus(id, floor.StatusOccupied, &floor.StatusAttrs{Customer: strPtr("Smith")})
	require.NoError(t, err)

	_, err = coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	table, _ := coord.TableByID(id)
	assert.Equal(t, floor.StatusOccupied, table.Status)
	assert.Equal(t, "Smith", *table.Customer)
}

func TestAddReservationCapacityExceeded(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	_, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Big Group",
		PartySize:       6,
		ReservationTime: clock.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, floor.ErrCapacityExceeded)
}

func TestUpdateReservationPropagatesToReservedTable(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	newTime := clock.Now().Add(2 * time.Hour)
	_, err = coord.UpdateReservation(res.ID, floor.ReservationUpdate{
		CustomerName:    strPtr("Wijaya-Halim"),
		ReservationTime: timePtr(newTime),
	})
	require.NoError(t, err)

	table, _ := coord.TableByID(id)
	assert.Equal(t, "Wijaya-Halim", *table.CustomerName)
	assert.Equal(t, newTime, *table.ReservationTime)
}

func TestUpdateReservationRoundTripOnlyBumpsUpdatedAt(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PhoneNumber:     "0812",
		PartySize:       2,
		ReservationTime: clock.Now().Add(time.Hour),
		Notes:           "window seat",
	})
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	updated, err := coord.UpdateReservation(res.ID, floor.ReservationUpdate{
		CustomerName:    strPtr(res.CustomerName),
		PhoneNumber:     strPtr(res.PhoneNumber),
		PartySize:       intPtr(res.PartySize),
		ReservationTime: timePtr(res.ReservationTime),
		Notes:           strPtr(res.Notes),
	})
	require.NoError(t, err)

	assert.Equal(t, res.CustomerName, updated.CustomerName)
	assert.Equal(t, res.PhoneNumber, updated.PhoneNumber)
	assert.Equal(t, res.PartySize, updated.PartySize)
	assert.Equal(t, res.ReservationTime, updated.ReservationTime)
	assert.Equal(t, res.Notes, updated.Notes)
	assert.Equal(t, res.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(res.UpdatedAt))
}

func TestCancelReservationRevertsReservedTable(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	cancelled, err := coord.CancelReservation(res.ID, "customer called off")
	require.NoError(t, err)
	assert.Equal(t, floor.ReservationCancelled, cancelled.Status)
	assert.Equal(t, "customer called off", cancelled.CancelReason)
	require.NotNil(t, cancelled.CancelledAt)

	table, _ := coord.TableByID(id)
	assert.Equal(t, floor.StatusAvailable, table.Status)
	assert.Nil(t, table.CustomerName)
	assert.Nil(t, table.ReservationTime)

	// pembatalan kedua ditolak, status terminal
	_, err = coord.CancelReservation(res.ID, "again")
	assert.ErrorIs(t, err, floor.ErrInvalidTransition)
}

func TestCancelReservationLeavesOccupiedTableAlone(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	// tamu datang, meja diduduki
	_, err = coord.SetTableStatus(id, floor.StatusOccupied, &floor.StatusAttrs{Customer: strPtr("Wijaya")})
	require.NoError(t, err)

	_, err = coord.CancelReservation(res.ID, "no-show cleanup")
	require.NoError(t, err)

	table, _ := coord.TableByID(id)
	assert.Equal(t, floor.StatusOccupied, table.Status)
}

func TestDeleteTableCascadesReservations(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, coord.DeleteTable(id))

	_, err = coord.TableByID(id)
	assert.ErrorIs(t, err, floor.ErrNotFound)

	got, err := coord.ReservationByID(res.ID)
	require.NoError(t, err)
	assert.Equal(t, floor.ReservationCancelled, got.Status)
	assert.Equal(t, "table removed", got.CancelReason)
}

func TestWaitlistLifecycle(t *testing.T) {
	coord, clock := newTestCoordinator()
	addTable(t, coord, 1, 4)

	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Putri", PartySize: 2})
	require.NoError(t, err)
	assert.Equal(t, floor.WaitlistWaiting, entry.Status)
	assert.False(t, entry.Notified)
	assert.Equal(t, clock.Now(), entry.TimeAdded)

	updated, err := coord.UpdateWaitlistEntry(entry.ID, floor.WaitlistUpdate{Notes: strPtr("stroller")})
	require.NoError(t, err)
	assert.Equal(t, "stroller", updated.Notes)
	// estimasi tidak dihitung ulang saat update
	assert.Equal(t, entry.EstimatedWaitMinutes, updated.EstimatedWaitMinutes)

	closed, err := coord.RemoveFromWaitlist(entry.ID, "left the restaurant")
	require.NoError(t, err)
	assert.Equal(t, floor.WaitlistCancelled, closed.Status)
	assert.Equal(t, "left the restaurant", closed.CancelReason)
	require.NotNil(t, closed.CancelledAt)

	// entry terminal tidak bisa diedit atau ditutup lagi
	_, err = coord.UpdateWaitlistEntry(entry.ID, floor.WaitlistUpdate{Notes: strPtr("x")})
	assert.ErrorIs(t, err, floor.ErrInvalidTransition)
	_, err = coord.RemoveFromWaitlist(entry.ID, floor.WaitlistSeated)
	assert.ErrorIs(t, err, floor.ErrInvalidTransition)
}

func TestRemoveFromWaitlistSeatedReason(t *testing.T) {
	coord, _ := newTestCoordinator()
	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Putri", PartySize: 2})
	require.NoError(t, err)

	closed, err := coord.RemoveFromWaitlist(entry.ID, floor.WaitlistSeated)
	require.NoError(t, err)
	assert.Equal(t, floor.WaitlistSeated, closed.Status)
	require.NotNil(t, closed.SeatedAt)
	assert.Nil(t, closed.CancelledAt)
}

func TestNotifyCustomerIdempotent(t *testing.T) {
	coord, clock := newTestCoordinator()
	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Putri", PartySize: 2})
	require.NoError(t, err)

	first, err := coord.NotifyCustomer(entry.ID)
	require.NoError(t, err)
	assert.True(t, first.Notified)
	require.NotNil(t, first.NotifiedAt)

	clock.Advance(10 * time.Minute)
	second, err := coord.NotifyCustomer(entry.ID)
	require.NoError(t, err)
	assert.True(t, second.Notified)
	// timestamp pertama dipertahankan
	assert.Equal(t, *first.NotifiedAt, *second.NotifiedAt)
}

func TestSeatFromWaitlist(t *testing.T) {
	coord, clock := newTestCoordinator()
	tableID := addTable(t, coord, 1, 4)

	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{
		CustomerName: "Putri",
		PhoneNumber:  "0813",
		PartySize:    3,
	})
	require.NoError(t, err)

	table, err := coord.SeatFromWaitlist(entry.ID, tableID, nil)
	require.NoError(t, err)
	assert.Equal(t, floor.StatusOccupied, table.Status)
	assert.Equal(t, "Putri", *table.Customer)
	assert.Equal(t, "0813", *table.PhoneNumber)
	assert.Equal(t, clock.Now(), *table.TimeSeated)

	closed, err := coord.WaitlistEntryByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, floor.WaitlistSeated, closed.Status)
}

func TestSeatFromWaitlistCapacityExceeded(t *testing.T) {
	coord, _ := newTestCoordinator()
	tableID := addTable(t, coord, 1, 2)

	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Big Group", PartySize: 6})
	require.NoError(t, err)

	_, err = coord.SeatFromWaitlist(entry.ID, tableID, nil)
	assert.ErrorIs(t, err, floor.ErrCapacityExceeded)

	// entry tetap menunggu kalau seating gagal
	got, _ := coord.WaitlistEntryByID(entry.ID)
	assert.Equal(t, floor.WaitlistWaiting, got.Status)
}

func TestTimeRemainingComputedOnRead(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	end := clock.Now().Add(45 * time.Minute)
	_, err := coord.SetTableStatus(id, floor.StatusOccupied, &floor.StatusAttrs{
		Customer:         strPtr("Smith"),
		EstimatedEndTime: timePtr(end),
	})
	require.NoError(t, err)

	remaining, err := coord.TimeRemaining(id)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, remaining)

	// tidak ada timer yang jalan; nilai murni turunan jam baca
	clock.Advance(30 * time.Minute)
	remaining, err = coord.TimeRemaining(id)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, remaining)

	clock.Advance(time.Hour)
	remaining, err = coord.TimeRemaining(id)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), remaining)
}

func TestStats(t *testing.T) {
	coord, _ := newTestCoordinator()
	a := addTable(t, coord, 1, 4)
	addTable(t, coord, 2, 2)

	_, err := coord.SetTableStatus(a, floor.StatusOccupied, nil)
	require.NoError(t, err)

	stats := coord.Stats()
	assert.Equal(t, 1, stats[floor.StatusOccupied])
	assert.Equal(t, 1, stats[floor.StatusAvailable])
	assert.Equal(t, 0, stats[floor.StatusReserved])
	assert.Equal(t, 2, stats["total"])
}

func TestReconcileUpcoming(t *testing.T) {
	coord, clock := newTestCoordinator()
	id := addTable(t, coord, 1, 4)

	// reservasi dibuat 3 hari sebelumnya: meja belum dikunci
	res, err := coord.AddReservation(floor.ReservationSpec{
		TableID:         id,
		CustomerName:    "Wijaya",
		PartySize:       2,
		ReservationTime: clock.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	table, _ := coord.TableByID(id)
	require.Equal(t, floor.StatusAvailable, table.Status)

	assert.Equal(t, 0, coord.ReconcileUpcoming())

	// dua hari kemudian reservasi masuk jendela 24 jam
	clock.Advance(50 * time.Hour)
	assert.Equal(t, 1, coord.ReconcileUpcoming())

	table, _ = coord.TableByID(id)
	assert.Equal(t, floor.StatusReserved, table.Status)
	assert.Equal(t, res.CustomerName, *table.CustomerName)

	// idempoten: sapuan berikutnya tidak mengubah apa-apa
	assert.Equal(t, 0, coord.ReconcileUpcoming())
}
