package inventory

import (
	"errors"
	"fmt"
)

// Reservation rejection reasons. All of them leave the store untouched.
var (
	ErrInvalidItem       = errors.New("invalid item")
	ErrUnknownProduct    = errors.New("unknown product")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ErrSnapshotCorrupt marks a snapshot file that exists but cannot be
// parsed. It is fatal for the load: the store never re-seeds over a file
// it cannot read, since that could destroy real stock data.
var ErrSnapshotCorrupt = errors.New("variant snapshot corrupt")

var errNotLoaded = errors.New("variant store not loaded")

// ItemError is a reservation rejection tied to one line item.
type ItemError struct {
	Err       error
	ProductID string
	Color     string
	Size      string
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: productId=%q color=%q size=%q", e.Err, e.ProductID, e.Color, e.Size)
}

func (e *ItemError) Unwrap() error { return e.Err }
