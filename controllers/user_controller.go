package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "restaurant-backend/errors"
	"restaurant-backend/models"
)

// UserService is what the user endpoints need from the service layer.
type UserService interface {
	SignIn(ctx context.Context, name, phone, address string) (*models.User, bool, error)
	Upsert(ctx context.Context, name, phone, address string, cart []models.LineItem) error
	PlaceOrder(ctx context.Context, phone string, items []models.LineItem) error
	Get(ctx context.Context, phone string) (*models.User, error)
}

type UserController struct {
	service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{service: service}
}

// Request bodies use pointer fields so that a present-but-empty value
// binds fine while a missing or null field fails `required`. Field
// presence is the contract; only phones must also be non-empty.

type PlaceOrderRequest struct {
	Phone *string            `json:"phone" binding:"required"`
	Cart  *[]models.LineItem `json:"cart" binding:"required"`
}

type UpsertUserRequest struct {
	Name    *string            `json:"name" binding:"required"`
	Phone   *string            `json:"phone" binding:"required"`
	Address *string            `json:"address" binding:"required"`
	Cart    *[]models.LineItem `json:"cart" binding:"required"`
}

type SignInRequest struct {
	Phone   *string `json:"phone" binding:"required"`
	Name    *string `json:"name" binding:"required"`
	Address *string `json:"address" binding:"required"`
}

// PlaceOrder appends an order record snapshotting the submitted cart
// and clears the user's stored cart.
func (uc *UserController) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing phone or cart items"})
		return
	}

	phone := strings.TrimSpace(*req.Phone)
	items := *req.Cart
	if phone == "" || len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing phone or cart items"})
		return
	}

	if err := uc.service.PlaceOrder(c.Request.Context(), phone, items); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully"})
}

// UpsertUser creates the user or merges the incoming cart into the
// stored one, overwriting name and address.
func (uc *UserController) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	phone := strings.TrimSpace(*req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required and cannot be empty"})
		return
	}

	if err := uc.service.Upsert(c.Request.Context(), *req.Name, phone, *req.Address, *req.Cart); err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User data updated", "user_id": phone})
}

// SignIn returns the stored profile, creating the user with an empty
// cart on first sign-in.
func (uc *UserController) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	phone := strings.TrimSpace(*req.Phone)
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number is required and cannot be empty"})
		return
	}

	user, created, err := uc.service.SignIn(c.Request.Context(), *req.Name, phone, *req.Address)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"name":    user.Name,
		"phone":   user.Phone,
		"address": user.Address,
		"cart":    user.Cart,
	})
}

// GetUser returns the full stored document for a phone.
func (uc *UserController) GetUser(c *gin.Context) {
	phone := strings.TrimSpace(c.Param("phone"))
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number required"})
		return
	}

	user, err := uc.service.Get(c.Request.Context(), phone)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
