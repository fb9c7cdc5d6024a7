package floor

// Status meja
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusReserved  = "reserved"
	StatusCleaning  = "cleaning"
)

// Status reservasi
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// Status waitlist
const (
	WaitlistWaiting   = "waiting"
	WaitlistSeated    = "seated"
	WaitlistCancelled = "cancelled"
)

// Bentuk meja (display only)
const (
	ShapeCircle    = "circle"
	ShapeRectangle = "rectangle"
)

// legalEdges adalah diagram transisi status meja:
//
//	available -> occupied  (seat)
//	available -> reserved  (reserve)
//	reserved  -> occupied  (seat)
//	reserved  -> available (cancel reservation)
//	occupied  -> cleaning  (clear)
//	cleaning  -> available (finish cleaning)
//
// Self-edge untuk occupied/reserved diizinkan supaya atribut shadow bisa
// di-merge ulang tanpa pindah status.
var legalEdges = map[string]map[string]bool{
	StatusAvailable: {
		StatusOccupied: true,
		StatusReserved: true,
	},
	StatusReserved: {
		StatusOccupied:  true,
		StatusAvailable: true,
		StatusReserved:  true,
	},
	StatusOccupied: {
		StatusCleaning: true,
		StatusOccupied: true,
	},
	StatusCleaning: {
		StatusAvailable: true,
	},
}

// ValidTableStatus melaporkan apakah s termasuk enum status meja.
func ValidTableStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusCleaning:
		return true
	}
	return false
}

// CanTransition melaporkan apakah perpindahan from -> to legal.
func CanTransition(from, to string) bool {
	return legalEdges[from][to]
}

// ValidShape melaporkan apakah s termasuk enum bentuk meja.
func ValidShape(s string) bool {
	return s == ShapeCircle || s == ShapeRectangle
}
