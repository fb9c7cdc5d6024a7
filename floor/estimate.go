package floor

// Parameter estimasi waktu tunggu waitlist (menit).
const (
	baseWaitMinutes      = 15
	largePartySurcharge  = 10 // rombongan > 4
	mediumPartySurcharge = 5  // rombongan 3-4
	perWaitingSurcharge  = 5  // per entry yang masih menunggu
	noTableSurcharge     = 15 // tidak ada meja available yang muat
)

// estimateWaitLocked menghitung estimasi tunggu untuk rombongan baru:
// basis 15 menit, ditambah ukuran rombongan, panjang antrian saat ini, dan
// ketersediaan meja yang kapasitasnya cukup. Caller harus memegang c.mu.
func (c *Coordinator) estimateWaitLocked(partySize int) int {
	estimate := baseWaitMinutes

	switch {
	case partySize > 4:
		estimate += largePartySurcharge
	case partySize > 2:
		estimate += mediumPartySurcharge
	}

	for _, entry := range c.waitlist {
		if entry.Status == WaitlistWaiting {
			estimate += perWaitingSurcharge
		}
	}

	if !c.hasSuitableTableLocked(partySize) {
		estimate += noTableSurcharge
	}
	return estimate
}

func (c *Coordinator) hasSuitableTableLocked(partySize int) bool {
	for _, t := range c.tables {
		if t.Status == StatusAvailable && t.Capacity >= partySize {
			return true
		}
	}
	return false
}

func (c *Coordinator) sectionExistsLocked(id string) bool {
	for _, s := range c.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
