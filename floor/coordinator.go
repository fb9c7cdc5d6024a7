package floor

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prameswara/restofoh/models"
	"github.com/prameswara/restofoh/repository"
	"github.com/prameswara/restofoh/utils"
)

// reservationWindow adalah jendela waktu sebelum jam reservasi di mana meja
// 'available' langsung dikunci menjadi 'reserved'.
const reservationWindow = 24 * time.Hour

// Coordinator memegang state lantai: meja, reservasi, dan waitlist, plus
// aturan konsistensi antar ketiganya. Semua operasi mutasi bersifat atomik
// dari sisi pemanggil (satu lock, tanpa partial failure).
//
// Clock dan generator id di-inject supaya estimasi tunggu dan logika transisi
// bisa dites tanpa menyentuh waktu nyata.
type Coordinator struct {
	mu           sync.Mutex
	tables       map[string]*models.FloorTable
	reservations map[string]*models.Reservation
	waitlist     map[string]*models.WaitlistEntry
	sections     []models.FloorSection

	now   func() time.Time
	newID func() string
	store repository.Store
}

type Option func(*Coordinator)

// WithClock mengganti sumber waktu (default time.Now).
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithIDGenerator mengganti generator id (default uuid).
func WithIDGenerator(gen func() string) Option {
	return func(c *Coordinator) { c.newID = gen }
}

// WithStore memasang record-store untuk persist snapshot setelah tiap mutasi.
func WithStore(store repository.Store) Option {
	return func(c *Coordinator) { c.store = store }
}

func NewCoordinator(sections []models.FloorSection, opts ...Option) *Coordinator {
	c := &Coordinator{
		tables:       make(map[string]*models.FloorTable),
		reservations: make(map[string]*models.Reservation),
		waitlist:     make(map[string]*models.WaitlistEntry),
		sections:     sections,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load mengisi state dari record-store (dipanggil sekali saat boot).
func (c *Coordinator) Load() error {
	if c.store == nil {
		return nil
	}
	snap, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("load floor snapshot: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range snap.Tables {
		t := snap.Tables[i]
		c.tables[t.ID] = &t
	}
	for i := range snap.Reservations {
		r := snap.Reservations[i]
		c.reservations[r.ID] = &r
	}
	for i := range snap.Waitlist {
		w := snap.Waitlist[i]
		c.waitlist[w.ID] = &w
	}
	return nil
}

// persistLocked menulis snapshot ke store (best effort). Caller harus
// memegang c.mu.
func (c *Coordinator) persistLocked() {
	if c.store == nil {
		return
	}
	snap := repository.Snapshot{
		Tables:       make([]models.FloorTable, 0, len(c.tables)),
		Reservations: make([]models.Reservation, 0, len(c.reservations)),
		Waitlist:     make([]models.WaitlistEntry, 0, len(c.waitlist)),
	}
	for _, t := range c.tables {
		snap.Tables = append(snap.Tables, *t)
	}
	for _, r := range c.reservations {
		snap.Reservations = append(snap.Reservations, *r)
	}
	for _, w := range c.waitlist {
		snap.Waitlist = append(snap.Waitlist, *w)
	}
	if err := c.store.Save(snap); err != nil && utils.ErrorLogger != nil {
		utils.ErrorLogger.Printf("Failed to persist floor snapshot: %v", err)
	}
}

// ---------------------------------------------------------------
//                            TABLES
// ---------------------------------------------------------------

type TableSpec struct {
	Number    int     `json:"number"`
	Capacity  int     `json:"capacity"`
	Shape     string  `json:"shape"`
	SectionID string  `json:"section_id"`
	PosX      float64 `json:"pos_x"`
	PosY      float64 `json:"pos_y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

type TableUpdate struct {
	Number    *int     `json:"number"`
	Capacity  *int     `json:"capacity"`
	Shape     *string  `json:"shape"`
	SectionID *string  `json:"section_id"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
}

// StatusAttrs adalah atribut shadow yang boleh di-merge saat meja pindah ke
// occupied/reserved. Field nil dibiarkan apa adanya.
type StatusAttrs struct {
	Customer         *string    `json:"customer"`
	TimeSeated       *time.Time `json:"time_seated"`
	EstimatedEndTime *time.Time `json:"estimated_end_time"`
	Server           *string    `json:"server"`
	PhoneNumber      *string    `json:"phone_number"`
	CustomerName     *string    `json:"customer_name"`
	ReservationTime  *time.Time `json:"reservation_time"`
}

// AddTable membuat meja baru dengan status 'available'.
func (c *Coordinator) AddTable(spec TableSpec) (models.FloorTable, error) {
	if spec.Number <= 0 {
		return models.FloorTable{}, fmt.Errorf("%w: table number must be a positive integer", ErrValidation)
	}
	if spec.Capacity <= 0 {
		return models.FloorTable{}, fmt.Errorf("%w: capacity must be a positive integer", ErrValidation)
	}
	if spec.Shape == "" {
		spec.Shape = ShapeRectangle
	}
	if !ValidShape(spec.Shape) {
		return models.FloorTable{}, fmt.Errorf("%w: unknown shape %q", ErrValidation, spec.Shape)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if spec.SectionID != "" && !c.sectionExistsLocked(spec.SectionID) {
		return models.FloorTable{}, fmt.Errorf("%w: unknown section %q", ErrValidation, spec.SectionID)
	}
	for _, t := range c.tables {
		if t.Number == spec.Number {
			return models.FloorTable{}, fmt.Errorf("%w: %d", ErrDuplicateTableNumber, spec.Number)
		}
	}

	now := c.now()
	table := &models.FloorTable{
		ID:        c.newID(),
		Number:    spec.Number,
		Capacity:  spec.Capacity,
		Shape:     spec.Shape,
		SectionID: spec.SectionID,
		PosX:      spec.PosX,
		PosY:      spec.PosY,
		Width:     spec.Width,
		Height:    spec.Height,
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.tables[table.ID] = table
	c.persistLocked()
	return *table, nil
}

// UpdateTable melakukan merge parsial atribut meja (nomor/kapasitas/bentuk/
// section/ukuran). Kapasitas boleh diturunkan di bawah rombongan yang sedang
// duduk; edit langsung memang permisif.
func (c *Coordinator) UpdateTable(id string, upd TableUpdate) (models.FloorTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.tables[id]
	if !ok {
		return models.FloorTable{}, fmt.Errorf("%w: table %s", ErrNotFound, id)
	}

	if upd.Number != nil {
		if *upd.Number <= 0 {
			return models.FloorTable{}, fmt.Errorf("%w: table number must be a positive integer", ErrValidation)
		}
		for _, other := range c.tables {
			if other.ID != id && other.Number == *upd.Number {
				return models.FloorTable{}, fmt.Errorf("%w: %d", ErrDuplicateTableNumber, *upd.Number)
			}
		}
		table.Number = *upd.Number
	}
	if upd.Capacity != nil {
		if *upd.Capacity <= 0 {
			return models.FloorTable{}, fmt.Errorf("%w: capacity must be a positive integer", ErrValidation)
		}
		table.Capacity = *upd.Capacity
	}
	if upd.Shape != nil {
		if !ValidShape(*upd.Shape) {
			return models.FloorTable{}, fmt.Errorf("%w: unknown shape %q", ErrValidation, *upd.Shape)
		}
		table.Shape = *upd.Shape
	}
	if upd.SectionID != nil {
		if *upd.SectionID != "" && !c.sectionExistsLocked(*upd.SectionID) {
			return models.FloorTable{}, fmt.Errorf("%w: unknown section %q", ErrValidation, *upd.SectionID)
		}
		table.SectionID = *upd.SectionID
	}
	if upd.Width != nil {
		table.Width = *upd.Width
	}
	if upd.Height != nil {
		table.Height = *upd.Height
	}

	table.UpdatedAt = c.now()
	c.persistLocked()
	return *table, nil
}

// DeleteTable menghapus meja dan membatalkan reservasi aktif yang menunjuk
// ke meja tersebut (reason "table removed") supaya tidak ada referensi yatim.
func (c *Coordinator) DeleteTable(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[id]; !ok {
		return fmt.Errorf("%w: table %s", ErrNotFound, id)
	}
	delete(c.tables, id)

	now := c.now()
	for _, res := range c.reservations {
		if res.TableID == id && res.Status == ReservationConfirmed {
			res.Status = ReservationCancelled
			res.CancelledAt = &now
			res.CancelReason = "table removed"
			res.UpdatedAt = now
		}
	}
	c.persistLocked()
	return nil
}

// MoveTable memperbarui koordinat denah saja.
func (c *Coordinator) MoveTable(id string, x, y float64) (models.FloorTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.tables[id]
	if !ok {
		return models.FloorTable{}, fmt.Errorf("%w: table %s", ErrNotFound, id)
	}
	table.PosX = x
	table.PosY = y
	table.UpdatedAt = c.now()
	c.persistLocked()
	return *table, nil
}

// SetTableStatus adalah operasi transisi sentral. Pindah ke available/cleaning
// mengosongkan seluruh field shadow tanpa syarat; pindah ke occupied/reserved
// me-merge atribut yang disuplai. Edge di luar diagram ditolak.
func (c *Coordinator) SetTableStatus(id, status string, attrs *StatusAttrs) (models.FloorTable, error) {
	if !ValidTableStatus(status) {
		return models.FloorTable{}, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.tables[id]
	if !ok {
		return models.FloorTable{}, fmt.Errorf("%w: table %s", ErrNotFound, id)
	}
	if !CanTransition(table.Status, status) {
		return models.FloorTable{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, table.Status, status)
	}

	table.Status = status
	switch status {
	case StatusAvailable, StatusCleaning:
		clearShadow(table)
	default:
		mergeStatusAttrs(table, attrs)
	}
	table.UpdatedAt = c.now()
	c.persistLocked()
	return *table, nil
}

func clearShadow(t *models.FloorTable) {
	t.Customer = nil
	t.TimeSeated = nil
	t.EstimatedEndTime = nil
	t.Server = nil
	t.PhoneNumber = nil
	t.CustomerName = nil
	t.ReservationTime = nil
}

func mergeStatusAttrs(t *models.FloorTable, attrs *StatusAttrs) {
	if attrs == nil {
		return
	}
	if attrs.Customer != nil {
		t.Customer = attrs.Customer
	}
	if attrs.TimeSeated != nil {
		t.TimeSeated = attrs.TimeSeated
	}
	if attrs.EstimatedEndTime != nil {
		t.EstimatedEndTime = attrs.EstimatedEndTime
	}
	if attrs.Server != nil {
		t.Server = attrs.Server
	}
	if attrs.PhoneNumber != nil {
		t.PhoneNumber = attrs.PhoneNumber
	}
	if attrs.CustomerName != nil {
		t.CustomerName = attrs.CustomerName
	}
	if attrs.ReservationTime != nil {
		t.ReservationTime = attrs.ReservationTime
	}
}

// ---------------------------------------------------------------
//                         RESERVATIONS
// ---------------------------------------------------------------

type ReservationSpec struct {
	TableID         string    `json:"table_id"`
	CustomerName    string    `json:"customer_name"`
	PhoneNumber     string    `json:"phone_number"`
	PartySize       int       `json:"party_size"`
	ReservationTime time.Time `json:"reservation_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

type ReservationUpdate struct {
	CustomerName    *string    `json:"customer_name"`
	PhoneNumber     *string    `json:"phone_number"`
	PartySize       *int       `json:"party_size"`
	ReservationTime *time.Time `json:"reservation_time"`
	DurationMinutes *int       `json:"duration_minutes"`
	Notes           *string    `json:"notes"`
}

// AddReservation membuat reservasi 'confirmed'. Jika jam reservasi jatuh dalam
// 24 jam ke depan dan mejanya masih 'available', meja langsung dikunci menjadi
// 'reserved' dan data customer disalin ke shadow meja. Meja yang sudah
// occupied/reserved tidak disentuh.
func (c *Coordinator) AddReservation(spec ReservationSpec) (models.Reservation, error) {
	if spec.CustomerName == "" {
		return models.Reservation{}, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if spec.ReservationTime.IsZero() {
		return models.Reservation{}, fmt.Errorf("%w: reservation time is required", ErrValidation)
	}
	if spec.PartySize <= 0 {
		return models.Reservation{}, fmt.Errorf("%w: party size must be a positive integer", ErrValidation)
	}
	if spec.DurationMinutes <= 0 {
		spec.DurationMinutes = 90
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.tables[spec.TableID]
	if !ok {
		return models.Reservation{}, fmt.Errorf("%w: table %s", ErrNotFound, spec.TableID)
	}
	if spec.PartySize > table.Capacity {
		return models.Reservation{}, fmt.Errorf("%w: party of %d, capacity %d", ErrCapacityExceeded, spec.PartySize, table.Capacity)
	}

	now := c.now()
	res := &models.Reservation{
		ID:              c.newID(),
		TableID:         spec.TableID,
		CustomerName:    spec.CustomerName,
		PhoneNumber:     spec.PhoneNumber,
		PartySize:       spec.PartySize,
		ReservationTime: spec.ReservationTime,
		DurationMinutes: spec.DurationMinutes,
		Notes:           spec.Notes,
		Status:          ReservationConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	c.reservations[res.ID] = res

	if table.Status == StatusAvailable && res.ReservationTime.Sub(now) <= reservationWindow {
		c.reserveTableLocked(table, res, now)
	}

	c.persistLocked()
	return *res, nil
}

// reserveTableLocked mengunci meja untuk reservasi dan menyalin shadow.
func (c *Coordinator) reserveTableLocked(table *models.FloorTable, res *models.Reservation, now time.Time) {
	table.Status = StatusReserved
	name := res.CustomerName
	phone := res.PhoneNumber
	resTime := res.ReservationTime
	table.CustomerName = &name
	table.PhoneNumber = &phone
	table.ReservationTime = &resTime
	table.UpdatedAt = now
}

// UpdateReservation me-merge field ke reservasi 'confirmed'. Jika meja terkait
// masih 'reserved', perubahan customer/telepon/jam ikut disalin ke shadow meja;
// kalau status meja sudah berubah, shadow dibiarkan.
func (c *Coordinator) UpdateReservation(id string, upd ReservationUpdate) (models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, ok := c.reservations[id]
	if !ok {
		return models.Reservation{}, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	if res.Status != ReservationConfirmed {
		return models.Reservation{}, fmt.Errorf("%w: reservation is %s", ErrInvalidTransition, res.Status)
	}

	table := c.tables[res.TableID]

	if upd.PartySize != nil {
		if *upd.PartySize <= 0 {
			return models.Reservation{}, fmt.Errorf("%w: party size must be a positive integer", ErrValidation)
		}
		if table != nil && *upd.PartySize > table.Capacity {
			return models.Reservation{}, fmt.Errorf("%w: party of %d, capacity %d", ErrCapacityExceeded, *upd.PartySize, table.Capacity)
		}
		res.PartySize = *upd.PartySize
	}
	if upd.CustomerName != nil {
		res.CustomerName = *upd.CustomerName
	}
	if upd.PhoneNumber != nil {
		res.PhoneNumber = *upd.PhoneNumber
	}
	if upd.ReservationTime != nil {
		res.ReservationTime = *upd.ReservationTime
	}
	if upd.DurationMinutes != nil {
		res.DurationMinutes = *upd.DurationMinutes
	}
	if upd.Notes != nil {
		res.Notes = *upd.Notes
	}

	now := c.now()
	res.UpdatedAt = now

	if table != nil && table.Status == StatusReserved {
		c.reserveTableLocked(table, res, now)
	}

	c.persistLocked()
	return *res, nil
}

// CancelReservation membatalkan reservasi dengan alasan. Jika meja terkait
// masih 'reserved', meja kembali 'available' (bukan 'cleaning' -- tamunya
// tidak pernah datang).
func (c *Coordinator) CancelReservation(id, reason string) (models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, ok := c.reservations[id]
	if !ok {
		return models.Reservation{}, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	if res.Status == ReservationCancelled {
		return models.Reservation{}, fmt.Errorf("%w: reservation already cancelled", ErrInvalidTransition)
	}

	now := c.now()
	res.Status = ReservationCancelled
	res.CancelledAt = &now
	res.CancelReason = reason
	res.UpdatedAt = now

	if table, ok := c.tables[res.TableID]; ok && table.Status == StatusReserved {
		table.Status = StatusAvailable
		clearShadow(table)
		table.UpdatedAt = now
	}

	c.persistLocked()
	return *res, nil
}

// ---------------------------------------------------------------
//                           WAITLIST
// ---------------------------------------------------------------

type WaitlistSpec struct {
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	PartySize    int    `json:"party_size"`
	Notes        string `json:"notes"`
}

type WaitlistUpdate struct {
	CustomerName *string `json:"customer_name"`
	PhoneNumber  *string `json:"phone_number"`
	PartySize    *int    `json:"party_size"`
	Notes        *string `json:"notes"`
}

// AddToWaitlist mendaftarkan rombongan walk-in. Estimasi tunggu dihitung
// sekali di sini dan tidak pernah direvisi.
func (c *Coordinator) AddToWaitlist(spec WaitlistSpec) (models.WaitlistEntry, error) {
	if spec.CustomerName == "" {
		return models.WaitlistEntry{}, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if spec.PartySize <= 0 {
		return models.WaitlistEntry{}, fmt.Errorf("%w: party size must be a positive integer", ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	entry := &models.WaitlistEntry{
		ID:                   c.newID(),
		CustomerName:         spec.CustomerName,
		PhoneNumber:          spec.PhoneNumber,
		PartySize:            spec.PartySize,
		Notes:                spec.Notes,
		TimeAdded:            now,
		EstimatedWaitMinutes: c.estimateWaitLocked(spec.PartySize),
		Status:               WaitlistWaiting,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	c.waitlist[entry.ID] = entry
	c.persistLocked()
	return *entry, nil
}

// UpdateWaitlistEntry me-merge field selama entry masih 'waiting'. Estimasi
// tunggu tidak dihitung ulang.
func (c *Coordinator) UpdateWaitlistEntry(id string, upd WaitlistUpdate) (models.WaitlistEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.waitlist[id]
	if !ok {
		return models.WaitlistEntry{}, fmt.Errorf("%w: waitlist entry %s", ErrNotFound, id)
	}
	if entry.Status != WaitlistWaiting {
		return models.WaitlistEntry{}, fmt.Errorf("%w: waitlist entry is %s", ErrInvalidTransition, entry.Status)
	}

	if upd.CustomerName != nil {
		entry.CustomerName = *upd.CustomerName
	}
	if upd.PhoneNumber != nil {
		entry.PhoneNumber = *upd.PhoneNumber
	}
	if upd.PartySize != nil {
		if *upd.PartySize <= 0 {
			return models.WaitlistEntry{}, fmt.Errorf("%w: party size must be a positive integer", ErrValidation)
		}
		entry.PartySize = *upd.PartySize
	}
	if upd.Notes != nil {
		entry.Notes = *upd.Notes
	}
	entry.UpdatedAt = c.now()
	c.persistLocked()
	return *entry, nil
}

// NotifyCustomer menandai entry sudah dipanggil. Flag notified satu arah:
// panggilan kedua tidak mengubah apa pun dan bukan error.
func (c *Coordinator) NotifyCustomer(id string) (models.WaitlistEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.waitlist[id]
	if !ok {
		return models.WaitlistEntry{}, fmt.Errorf("%w: waitlist entry %s", ErrNotFound, id)
	}
	if entry.Notified {
		return *entry, nil
	}

	now := c.now()
	entry.Notified = true
	entry.NotifiedAt = &now
	entry.UpdatedAt = now
	c.persistLocked()
	return *entry, nil
}

// RemoveFromWaitlist menutup entry: reason "seated" menjadi status 'seated',
// alasan lain menjadi 'cancelled'. Meja tidak disentuh; untuk mendudukkan
// sekaligus, pakai SeatFromWaitlist.
func (c *Coordinator) RemoveFromWaitlist(id, reason string) (models.WaitlistEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, err := c.closeWaitlistEntryLocked(id, reason)
	if err != nil {
		return models.WaitlistEntry{}, err
	}
	c.persistLocked()
	return *entry, nil
}

func (c *Coordinator) closeWaitlistEntryLocked(id, reason string) (*models.WaitlistEntry, error) {
	entry, ok := c.waitlist[id]
	if !ok {
		return nil, fmt.Errorf("%w: waitlist entry %s", ErrNotFound, id)
	}
	if entry.Status != WaitlistWaiting {
		return nil, fmt.Errorf("%w: waitlist entry is %s", ErrInvalidTransition, entry.Status)
	}

	now := c.now()
	if reason == WaitlistSeated {
		entry.Status = WaitlistSeated
		entry.SeatedAt = &now
	} else {
		entry.Status = WaitlistCancelled
		entry.CancelledAt = &now
		entry.CancelReason = reason
	}
	entry.UpdatedAt = now
	return entry, nil
}

// SeatFromWaitlist mendudukkan rombongan waitlist ke meja tertentu dalam satu
// operasi atomik: meja menjadi 'occupied', entry menjadi 'seated'. Nama dan
// telepon entry dipakai sebagai default kalau attrs tidak menyuplai.
func (c *Coordinator) SeatFromWaitlist(entryID, tableID string, attrs *StatusAttrs) (models.FloorTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.waitlist[entryID]
	if !ok {
		return models.FloorTable{}, fmt.Errorf("%w: waitlist entry %s", ErrNotFound, entryID)
	}
	if entry.Status != WaitlistWaiting {
		return models.FloorTable{}, fmt.Errorf("%w: waitlist entry is %s", ErrInvalidTransition, entry.Status)
	}
	table, ok := c.tables[tableID]
	if !ok {
		return models.FloorTable{}, fmt.Errorf("%w: table %s", ErrNotFound, tableID)
	}
	if entry.PartySize > table.Capacity {
		return models.FloorTable{}, fmt.Errorf("%w: party of %d, capacity %d", ErrCapacityExceeded, entry.PartySize, table.Capacity)
	}
	if !CanTransition(table.Status, StatusOccupied) {
		return models.FloorTable{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, table.Status, StatusOccupied)
	}

	now := c.now()
	table.Status = StatusOccupied
	mergeStatusAttrs(table, attrs)
	if table.Customer == nil {
		name := entry.CustomerName
		table.Customer = &name
	}
	if table.PhoneNumber == nil {
		phone := entry.PhoneNumber
		table.PhoneNumber = &phone
	}
	if table.TimeSeated == nil {
		seated := now
		table.TimeSeated = &seated
	}
	table.UpdatedAt = now

	if _, err := c.closeWaitlistEntryLocked(entryID, WaitlistSeated); err != nil {
		return models.FloorTable{}, err
	}
	c.persistLocked()
	return *table, nil
}

// ---------------------------------------------------------------
//                            READS
// ---------------------------------------------------------------

func (c *Coordinator) Sections() []models.FloorSection {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.FloorSection, len(c.sections))
	copy(out, c.sections)
	return out
}

func (c *Coordinator) Tables() []models.FloorTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.FloorTable, 0, len(c.tables))
	for _, t := range c.tables {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (c *Coordinator) TableByID(id string) (models.FloorTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	table, ok := c.tables[id]
	if !ok {
		return models.FloorTable{}, fmt.Errorf("%w: table %s", ErrNotFound, id)
	}
	return *table, nil
}

func (c *Coordinator) Reservations() []models.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Reservation, 0, len(c.reservations))
	for _, r := range c.reservations {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReservationTime.Before(out[j].ReservationTime) })
	return out
}

func (c *Coordinator) ReservationByID(id string) (models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.reservations[id]
	if !ok {
		return models.Reservation{}, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	return *res, nil
}

func (c *Coordinator) Waitlist() []models.WaitlistEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.WaitlistEntry, 0, len(c.waitlist))
	for _, w := range c.waitlist {
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimeAdded.Before(out[j].TimeAdded) })
	return out
}

func (c *Coordinator) WaitlistEntryByID(id string) (models.WaitlistEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.waitlist[id]
	if !ok {
		return models.WaitlistEntry{}, fmt.Errorf("%w: waitlist entry %s", ErrNotFound, id)
	}
	return *entry, nil
}

// AvailableTablesFor mengembalikan meja 'available' yang muat untuk rombongan.
func (c *Coordinator) AvailableTablesFor(partySize int) []models.FloorTable {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.FloorTable, 0)
	for _, t := range c.tables {
		if t.Status == StatusAvailable && t.Capacity >= partySize {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// TimeRemaining menghitung sisa waktu makan dari EstimatedEndTime terhadap jam
// sekarang. Tidak ada timer yang mendekrement counter; nilainya selalu turunan
// dari timestamp absolut, jadi bebas drift.
func (c *Coordinator) TimeRemaining(id string) (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	table, ok := c.tables[id]
	if !ok {
		return 0, fmt.Errorf("%w: table %s", ErrNotFound, id)
	}
	if table.EstimatedEndTime == nil {
		return 0, nil
	}
	remaining := table.EstimatedEndTime.Sub(c.now())
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// Stats menghitung jumlah meja per status untuk dashboard.
func (c *Coordinator) Stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := map[string]int{
		StatusAvailable: 0,
		StatusOccupied:  0,
		StatusReserved:  0,
		StatusCleaning:  0,
	}
	for _, t := range c.tables {
		stats[t.Status]++
	}
	stats["total"] = len(c.tables)
	return stats
}

// ReconcileUpcoming mengunci meja 'available' yang reservasi confirmed-nya
// sudah masuk jendela 24 jam (reservasi dibuat jauh hari lalu jatuh tempo).
// Mengembalikan jumlah meja yang dipromosikan.
func (c *Coordinator) ReconcileUpcoming() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	promoted := 0
	for _, res := range c.reservations {
		if res.Status != ReservationConfirmed {
			continue
		}
		if res.ReservationTime.Sub(now) > reservationWindow {
			continue
		}
		table, ok := c.tables[res.TableID]
		if !ok || table.Status != StatusAvailable {
			continue
		}
		c.reserveTableLocked(table, res, now)
		promoted++
	}
	if promoted > 0 {
		c.persistLocked()
	}
	return promoted
}
