package database

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"restaurant-backend/models"
)

const usersCollection = "users"

type UserRepository struct {
	users *firestore.CollectionRef
}

func NewUserRepository(client *firestore.Client) *UserRepository {
	return &UserRepository{users: client.Collection(usersCollection)}
}

// Get returns the stored user, or nil when no document exists.
func (r *UserRepository) Get(ctx context.Context, phone string) (*models.User, error) {
	doc, err := r.users.Doc(phone).Get(ctx)
	if status.Code(err) == codes.NotFound {
		// No user found
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	// Stored arrays may come back nil; callers and responses expect [].
	if user.Cart == nil {
		user.Cart = []models.LineItem{}
	}
	if user.Orders == nil {
		user.Orders = []models.Order{}
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.users.Doc(user.Phone).Set(ctx, user)
	return err
}

// UpdateProfile overwrites the mutable profile fields. Phone is the
// document id and never changes; orders are untouched.
func (r *UserRepository) UpdateProfile(ctx context.Context, phone, name, address string, cart []models.LineItem) error {
	_, err := r.users.Doc(phone).Update(ctx, []firestore.Update{
		{Path: "name", Value: name},
		{Path: "address", Value: address},
		{Path: "cart", Value: cart},
	})
	return err
}

// AppendOrderAndClearCart issues both mutations in one document update
// so concurrent placements for the same user never drop an appended
// order record.
func (r *UserRepository) AppendOrderAndClearCart(ctx context.Context, phone string, order models.Order) error {
	_, err := r.users.Doc(phone).Update(ctx, []firestore.Update{
		{Path: "orders", Value: firestore.ArrayUnion(order)},
		{Path: "cart", Value: []models.LineItem{}},
	})
	return err
}
