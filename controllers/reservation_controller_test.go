package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restaurant-backend/models"
)

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Upsert(ctx context.Context, reservation *models.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func newReservationRouter(service *MockReservationService) *gin.Engine {
	router := gin.New()
	router.POST("/api/reservations", NewReservationController(service).UpsertReservation)
	return router
}

func TestUpsertReservationEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 201 Created", func(t *testing.T) {
		mockService := new(MockReservationService)
		want := &models.Reservation{Name: "A", Phone: "555", Date: "2026-09-01", Time: "19:00", Guests: 4}
		mockService.On("Upsert", mock.Anything, want).Return(nil).Once()

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-01", "time": "19:00", "guests": 4}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - guests as numeric string", func(t *testing.T) {
		mockService := new(MockReservationService)
		want := &models.Reservation{Name: "A", Phone: "555", Date: "2026-09-01", Time: "19:00", Guests: 6}
		mockService.On("Upsert", mock.Anything, want).Return(nil).Once()

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-01", "time": "19:00", "guests": "6"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - fractional guests truncated", func(t *testing.T) {
		mockService := new(MockReservationService)
		want := &models.Reservation{Name: "A", Phone: "555", Date: "2026-09-01", Time: "19:00", Guests: 4}
		mockService.On("Upsert", mock.Anything, want).Return(nil).Once()

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-01", "time": "19:00", "guests": 4.9}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Second reservation replaces the first - full document each time", func(t *testing.T) {
		mockService := new(MockReservationService)
		first := &models.Reservation{Name: "A", Phone: "555", Date: "2026-09-01", Time: "19:00", Guests: 2}
		second := &models.Reservation{Name: "A", Phone: "555", Date: "2026-09-02", Time: "20:30", Guests: 5}
		mockService.On("Upsert", mock.Anything, first).Return(nil).Once()
		mockService.On("Upsert", mock.Anything, second).Return(nil).Once()

		router := newReservationRouter(mockService)
		r1 := postJSON(router, "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-01", "time": "19:00", "guests": 2}`)
		r2 := postJSON(router, "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-02", "time": "20:30", "guests": 5}`)

		assert.Equal(t, http.StatusCreated, r1.Code)
		assert.Equal(t, http.StatusCreated, r2.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - non-integer guests - 400", func(t *testing.T) {
		mockService := new(MockReservationService)

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-01", "time": "19:00", "guests": "four"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Upsert")
	})

	t.Run("Failure - missing guests - 400", func(t *testing.T) {
		mockService := new(MockReservationService)

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": "555", "date": "2026-09-01", "time": "19:00"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Upsert")
	})

	t.Run("Failure - missing field - 400", func(t *testing.T) {
		mockService := new(MockReservationService)

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": "555", "guests": 4}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Upsert")
	})

	t.Run("Failure - empty phone - 400", func(t *testing.T) {
		mockService := new(MockReservationService)

		recorder := postJSON(newReservationRouter(mockService), "/api/reservations",
			`{"name": "A", "phone": " ", "date": "2026-09-01", "time": "19:00", "guests": 4}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Upsert")
	})
}
