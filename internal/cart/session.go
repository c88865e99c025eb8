package cart

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sciencekitconnect/storefront/internal/database"
	"github.com/sciencekitconnect/storefront/internal/models"
)

// Session owns one browsing session's cart. Every transition is applied to the
// in-memory state and the result is persisted to device storage immediately.
// A session is single-owner; it is never shared between goroutines.
type Session struct {
	db     *database.DB
	logger *slog.Logger
	state  models.Cart
}

// NewSession restores the cart persisted under the application key, falling
// back to an empty cart when nothing is stored or the payload does not parse.
// A corrupt payload is logged and discarded; it is not fatal.
func NewSession(db *database.DB, logger *slog.Logger) (*Session, error) {
	s := &Session{
		db:     db,
		logger: logger,
		state:  models.EmptyCart(),
	}

	payload, ok, err := db.LoadSnapshot(models.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}
	if ok {
		var snapshot models.Cart
		if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
			logger.Warn("discarding unparsable cart snapshot", "key", models.StorageKey, "error", err)
		} else {
			s.state = Reload(snapshot)
		}
	}

	return s, nil
}

// Cart returns the current state.
func (s *Session) Cart() models.Cart {
	return s.state
}

// Add applies the add transition and persists the result.
func (s *Session) Add(item AddItem) (models.Cart, error) {
	return s.apply(Add(s.state, item))
}

// Remove applies the remove transition and persists the result.
func (s *Session) Remove(productID string) (models.Cart, error) {
	return s.apply(Remove(s.state, productID))
}

// SetQuantity applies the set-quantity transition and persists the result.
func (s *Session) SetQuantity(productID string, quantity int) (models.Cart, error) {
	return s.apply(SetQuantity(s.state, productID, quantity))
}

// Clear empties the cart and persists the result.
func (s *Session) Clear() (models.Cart, error) {
	return s.apply(Clear())
}

func (s *Session) apply(next models.Cart) (models.Cart, error) {
	payload, err := json.Marshal(next)
	if err != nil {
		return s.state, fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.db.SaveSnapshot(models.StorageKey, string(payload)); err != nil {
		return s.state, fmt.Errorf("failed to persist cart: %w", err)
	}
	s.state = next
	return s.state, nil
}
