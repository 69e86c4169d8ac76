package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	Search(ctx context.Context, request *requests.SearchDoctors) ([]models.Doctor, int, error)
	FindUnverified(ctx context.Context, page, pageSize int) ([]models.Doctor, int, error)
	UpdateTimeSlots(ctx context.Context, doctorID string, slots []models.TimeSlot) error
	CountDoctors(ctx context.Context, verifiedOnly bool) (int64, error)
}

type DoctorUsecase interface {
	GetProfileBySession(ctx context.Context, sessionData string) (*responses.DoctorProfile, error)
	UpdateProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error)
	UploadProfilePicture(ctx context.Context, sessionData string, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error)
	AddTimeSlot(ctx context.Context, sessionData string, request *requests.AddTimeSlot) ([]models.TimeSlot, error)
	ListTimeSlots(ctx context.Context, sessionData string) ([]models.TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, sessionData string, request *requests.DeleteTimeSlot) ([]models.TimeSlot, error)
	Search(ctx context.Context, request *requests.SearchDoctors) ([]responses.DoctorSummary, int, error)
	GetPublicProfile(ctx context.Context, sessionData, doctorID string) (*responses.DoctorProfile, error)
}
