package services

import (
	"context"

	apperrors "restaurant-backend/errors"
	"restaurant-backend/models"
)

// ReservationStore persists reservations keyed by phone.
type ReservationStore interface {
	Save(ctx context.Context, reservation *models.Reservation) error
}

type ReservationService struct {
	store ReservationStore
}

func NewReservationService(store ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

// Upsert writes the reservation, fully replacing any previous one for
// the same phone.
func (s *ReservationService) Upsert(ctx context.Context, reservation *models.Reservation) error {
	if err := s.store.Save(ctx, reservation); err != nil {
		return apperrors.Store(err)
	}
	return nil
}
