// Package booking implements reservation admission for trailers: the
// owner check, the overlapping-dates conflict check, and the insert,
// serialized so that concurrent requests cannot double-book a window.
package booking

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"trailer-rental-api/models"

	"gorm.io/gorm"
)

var (
	// ErrOwnTrailer rejects a renter booking their own trailer.
	ErrOwnTrailer = errors.New("you cannot reserve your own trailer")
	// ErrConflict rejects a window overlapping an active reservation.
	ErrConflict = errors.New("a reservation already exists at the dates specified")
	// ErrTrailerLookup wraps a failure to fetch the trailer's owner.
	ErrTrailerLookup = errors.New("failed to fetch trailer info")
	// ErrConflictCheck wraps a failure of the overlap query.
	ErrConflictCheck = errors.New("conflict check failed")
)

// Request is a proposed reservation to be admitted.
type Request struct {
	TrailerID string
	RenterID  string
	StartDate time.Time
	EndDate   time.Time
	TotalCost float64
}

// Engine admits reservations. A per-trailer mutex is held across the
// conflict check and the insert so two overlapping requests for the
// same trailer cannot both observe "no conflict": the check-then-insert
// sequence is two store round-trips and is not atomic on its own.
type Engine struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine() *Engine {
	return &Engine{locks: make(map[string]*sync.Mutex)}
}

func (e *Engine) trailerLock(trailerID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[trailerID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[trailerID] = l
	}
	return l
}

// Reserve admits req or returns why it is not legal. The returned
// errors match ErrOwnTrailer, ErrConflict, ErrTrailerLookup and
// ErrConflictCheck via errors.Is; the new reservation starts pending.
func (e *Engine) Reserve(db *gorm.DB, req Request) (*models.Reservation, error) {
	l := e.trailerLock(req.TrailerID)
	l.Lock()
	defer l.Unlock()

	var created *models.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		var trailer models.Trailer
		if err := tx.Select("id, user_id").First(&trailer, "id = ?", req.TrailerID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrTrailerLookup, err)
		}
		if trailer.UserID == req.RenterID {
			return ErrOwnTrailer
		}

		// Inclusive interval overlap: an existing booking blocks the
		// request iff existing.start <= req.end AND existing.end >= req.start.
		var conflicts int64
		err := tx.Model(&models.Reservation{}).
			Where("trailer_id = ?", req.TrailerID).
			Where("status IN ?", models.ActiveStatuses).
			Where("start_date <= ? AND end_date >= ?", req.EndDate, req.StartDate).
			Count(&conflicts).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrConflictCheck, err)
		}
		if conflicts > 0 {
			return ErrConflict
		}

		reservation := &models.Reservation{
			TrailerID: req.TrailerID,
			UserID:    req.RenterID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			TotalCost: req.TotalCost,
			Status:    models.StatusPending,
		}
		if err := tx.Create(reservation).Error; err != nil {
			return fmt.Errorf("create reservation: %w", err)
		}
		created = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

var defaultEngine = NewEngine()

// Reserve admits req through the process-wide engine.
func Reserve(db *gorm.DB, req Request) (*models.Reservation, error) {
	return defaultEngine.Reserve(db, req)
}
