package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"time"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, int, error)
	UpdateBooking(ctx context.Context, booking *models.Booking) error
	FindAcceptedEndedBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
	CountBookings(ctx context.Context) (int64, error)
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error)
	FindAll(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Booking, int, error)
	UpdateBookingStatus(ctx context.Context, sessionData, bookingID string, request *requests.UpdateBookingStatus) (*responses.Booking, error)
}
