package floor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prameswara/restofoh/floor"
)

func TestEstimateBaseCase(t *testing.T) {
	coord, _ := newTestCoordinator()
	addTable(t, coord, 1, 4)

	// rombongan kecil, antrian kosong, meja tersedia: murni basis
	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Putri", PartySize: 2})
	require.NoError(t, err)
	assert.Equal(t, 15, entry.EstimatedWaitMinutes)
}

func TestEstimatePartySizeSurcharges(t *testing.T) {
	coord, _ := newTestCoordinator()
	addTable(t, coord, 1, 8)

	large, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Big Group", PartySize: 5})
	require.NoError(t, err)
	assert.Equal(t, 25, large.EstimatedWaitMinutes)

	// entry kedua kena surcharge antrian (+5) di atas surcharge rombongan 3-4
	medium, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "Halim", PartySize: 4})
	require.NoError(t, err)
	assert.Equal(t, 25, medium.EstimatedWaitMinutes)
}

func TestEstimateQueueAndNoTableSurcharges(t *testing.T) {
	coord, _ := newTestCoordinator()
	small := addTable(t, coord, 1, 2)

	_, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "A", PartySize: 2})
	require.NoError(t, err)
	_, err = coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "B", PartySize: 2})
	require.NoError(t, err)

	// rombongan 3 tidak muat di meja kapasitas 2:
	// 15 basis + 5 rombongan 3-4 + 10 antrian (2x5) + 15 tanpa meja = 45
	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "C", PartySize: 3})
	require.NoError(t, err)
	assert.Equal(t, 45, entry.EstimatedWaitMinutes)

	// meja occupied tidak dihitung sebagai tersedia
	_, err = coord.SetTableStatus(small, floor.StatusOccupied, nil)
	require.NoError(t, err)
	blocked, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "D", PartySize: 2})
	require.NoError(t, err)
	// 15 basis + 15 antrian (3x5) + 15 tanpa meja
	assert.Equal(t, 45, blocked.EstimatedWaitMinutes)
}

func TestEstimateIgnoresClosedEntries(t *testing.T) {
	coord, _ := newTestCoordinator()
	addTable(t, coord, 1, 4)

	first, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "A", PartySize: 2})
	require.NoError(t, err)
	_, err = coord.RemoveFromWaitlist(first.ID, "left")
	require.NoError(t, err)

	// entry cancelled tidak menambah surcharge antrian
	entry, err := coord.AddToWaitlist(floor.WaitlistSpec{CustomerName: "B", PartySize: 2})
	require.NoError(t, err)
	assert.Equal(t, 15, entry.EstimatedWaitMinutes)
}
