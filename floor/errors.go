package floor

import "errors"

var (
	// ErrNotFound dikembalikan jika id meja/reservasi/waitlist tidak dikenal.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition dikembalikan untuk perpindahan status yang tidak
	// ada di diagram transisi, termasuk operasi pada entity yang sudah terminal.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrCapacityExceeded dikembalikan jika ukuran rombongan melebihi kapasitas meja.
	ErrCapacityExceeded = errors.New("party size exceeds table capacity")
	// ErrDuplicateTableNumber dikembalikan jika nomor meja sudah dipakai meja lain.
	ErrDuplicateTableNumber = errors.New("table number already in use")
	// ErrValidation dikembalikan untuk input yang tidak lengkap atau tidak valid.
	ErrValidation = errors.New("validation failed")
)
