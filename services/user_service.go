package services

import (
	"context"
	"fmt"

	apperrors "restaurant-backend/errors"
	"restaurant-backend/models"
)

// UserStore is the slice of the document store the user flows need.
// database.UserRepository implements it; tests substitute a fake.
type UserStore interface {
	Get(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, phone, name, address string, cart []models.LineItem) error
	AppendOrderAndClearCart(ctx context.Context, phone string, order models.Order) error
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{store: store}
}

// SignIn returns the stored profile for an existing phone without
// writing anything. For an unseen phone it creates the user with an
// empty cart and no orders, and reports created=true.
func (s *UserService) SignIn(ctx context.Context, name, phone, address string) (*models.User, bool, error) {
	existing, err := s.store.Get(ctx, phone)
	if err != nil {
		return nil, false, apperrors.Store(err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user := &models.User{
		Name:    name,
		Phone:   phone,
		Address: address,
		Cart:    []models.LineItem{},
		Orders:  []models.Order{},
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, false, apperrors.Store(err)
	}
	return user, true, nil
}

// Upsert creates the user with the given cart and no orders, or, when
// the user already exists, merges the incoming cart into the stored
// one and overwrites name and address.
func (s *UserService) Upsert(ctx context.Context, name, phone, address string, cart []models.LineItem) error {
	existing, err := s.store.Get(ctx, phone)
	if err != nil {
		return apperrors.Store(err)
	}

	if existing == nil {
		user := &models.User{
			Name:    name,
			Phone:   phone,
			Address: address,
			Cart:    cart,
			Orders:  []models.Order{},
		}
		if err := s.store.Create(ctx, user); err != nil {
			return apperrors.Store(err)
		}
		return nil
	}

	merged := MergeCarts(existing.Cart, cart)
	if err := s.store.UpdateProfile(ctx, phone, name, address, merged); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// PlaceOrder appends one order record snapshotting the submitted items
// and empties the user's cart, as a single document update.
func (s *UserService) PlaceOrder(ctx context.Context, phone string, items []models.LineItem) error {
	existing, err := s.store.Get(ctx, phone)
	if err != nil {
		return apperrors.Store(err)
	}
	if existing == nil {
		return apperrors.NotFound(fmt.Sprintf("User with phone '%s' not found", phone))
	}

	if err := s.store.AppendOrderAndClearCart(ctx, phone, models.Order{Items: items}); err != nil {
		return apperrors.Store(err)
	}
	return nil
}

// Get is a read-only lookup of the full stored document.
func (s *UserService) Get(ctx context.Context, phone string) (*models.User, error) {
	user, err := s.store.Get(ctx, phone)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}
	return user, nil
}
