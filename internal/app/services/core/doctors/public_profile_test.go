package doctors

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeDoctorRepository struct {
	doctor *models.Doctor
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	return "", nil
}

func (f *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctor, nil
}

func (f *fakeDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return f.doctor, nil
}

func (f *fakeDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return nil
}

func (f *fakeDoctorRepository) Search(ctx context.Context, request *requests.SearchDoctors) ([]models.Doctor, int, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepository) FindUnverified(ctx context.Context, page, pageSize int) ([]models.Doctor, int, error) {
	return nil, 0, nil
}

func (f *fakeDoctorRepository) UpdateTimeSlots(ctx context.Context, doctorID string, slots []models.TimeSlot) error {
	return nil
}

func (f *fakeDoctorRepository) CountDoctors(ctx context.Context, verifiedOnly bool) (int64, error) {
	return 0, nil
}

type fakeSessionService struct {
	session *models.Session
}

func (f *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	return "", nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return f.session, nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func TestGetPublicProfile(t *testing.T) {
	newUsecase := func(doctor *models.Doctor, session *models.Session) *doctorUsecase {
		return &doctorUsecase{
			DoctorRepository: &fakeDoctorRepository{doctor: doctor},
			SessionService:   &fakeSessionService{session: session},
		}
	}

	assertNotFound := func(t *testing.T, err error) {
		t.Helper()
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok, "expected a CustomError, got %T", err)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	}

	t.Run("Verified Doctor Resolves Anonymously", func(t *testing.T) {
		usecase := newUsecase(&models.Doctor{ID: "doctor-1", Name: "Dr. Gray", Verified: true}, nil)

		profile, err := usecase.GetPublicProfile(context.Background(), "", "doctor-1")

		assert.NoError(t, err)
		assert.Equal(t, "Dr. Gray", profile.Name)
	})

	t.Run("Unverified Doctor Hidden From Anonymous Callers", func(t *testing.T) {
		usecase := newUsecase(&models.Doctor{ID: "doctor-1", Verified: false}, nil)

		_, err := usecase.GetPublicProfile(context.Background(), "", "doctor-1")

		assertNotFound(t, err)
	})

	t.Run("Unverified Doctor Hidden From Patients", func(t *testing.T) {
		usecase := newUsecase(
			&models.Doctor{ID: "doctor-1", Verified: false},
			&models.Session{Role: constvars.MedxbayRolePatient, PatientID: "patient-1"},
		)

		_, err := usecase.GetPublicProfile(context.Background(), "patient-session", "doctor-1")

		assertNotFound(t, err)
	})

	t.Run("Unverified Doctor Resolves For Admins", func(t *testing.T) {
		usecase := newUsecase(
			&models.Doctor{ID: "doctor-1", Name: "Dr. New", Verified: false},
			&models.Session{Role: constvars.MedxbayRoleAdmin},
		)

		profile, err := usecase.GetPublicProfile(context.Background(), "admin-session", "doctor-1")

		assert.NoError(t, err)
		assert.Equal(t, "Dr. New", profile.Name)
		assert.False(t, profile.Verified)
	})

	t.Run("Public View Omits Booked Slots", func(t *testing.T) {
		usecase := newUsecase(&models.Doctor{
			ID:       "doctor-1",
			Verified: true,
			TimeSlots: []models.TimeSlot{
				{Date: "2026-09-01", StartTime: "09:00", EndTime: "09:30", Status: constvars.TimeSlotStatusFree},
				{Date: "2026-09-01", StartTime: "10:00", EndTime: "10:30", Status: constvars.TimeSlotStatusBooked},
			},
		}, nil)

		profile, err := usecase.GetPublicProfile(context.Background(), "", "doctor-1")

		assert.NoError(t, err)
		assert.Len(t, profile.TimeSlots, 1)
		assert.Equal(t, "09:00", profile.TimeSlots[0].StartTime)
	})
}
