package database

import (
	"context"

	"cloud.google.com/go/firestore"

	"restaurant-backend/models"
)

const reservationsCollection = "reservations"

type ReservationRepository struct {
	reservations *firestore.CollectionRef
}

func NewReservationRepository(client *firestore.Client) *ReservationRepository {
	return &ReservationRepository{reservations: client.Collection(reservationsCollection)}
}

// Save fully replaces the reservation document for the phone. There is
// deliberately no merge: a new reservation supersedes the old one.
func (r *ReservationRepository) Save(ctx context.Context, reservation *models.Reservation) error {
	_, err := r.reservations.Doc(reservation.Phone).Set(ctx, reservation)
	return err
}
