package admin

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

type adminUsecase struct {
	DoctorRepository    contracts.DoctorRepository
	PatientRepository   contracts.PatientRepository
	BookingRepository   contracts.BookingRepository
	BlogRepository      contracts.BlogRepository
	SessionService      contracts.SessionService
	MailerService       contracts.MailerService
	NotificationService contracts.NotificationService
	Log                 *zap.Logger
}

var (
	adminUsecaseInstance contracts.AdminUsecase
	onceAdminUsecase     sync.Once
)

func NewAdminUsecase(
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	bookingRepository contracts.BookingRepository,
	blogRepository contracts.BlogRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.AdminUsecase {
	onceAdminUsecase.Do(func() {
		adminUsecaseInstance = &adminUsecase{
			DoctorRepository:    doctorRepository,
			PatientRepository:   patientRepository,
			BookingRepository:   bookingRepository,
			BlogRepository:      blogRepository,
			SessionService:      sessionService,
			MailerService:       mailerService,
			NotificationService: notificationService,
			Log:                 logger,
		}
	})
	return adminUsecaseInstance
}

func (uc *adminUsecase) ListUnverifiedDoctors(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.DoctorProfile, int, error) {
	if err := uc.requireAdmin(ctx, sessionData); err != nil {
		return nil, 0, err
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = constvars.AppDefaultPageSize
	}

	doctors, total, err := uc.DoctorRepository.FindUnverified(ctx, params.Page, params.PageSize)
	if err != nil {
		return nil, 0, err
	}

	profiles := make([]responses.DoctorProfile, 0, len(doctors))
	for i := range doctors {
		profiles = append(profiles, buildReviewProfile(&doctors[i]))
	}
	return profiles, total, nil
}

func (uc *adminUsecase) VerifyDoctor(ctx context.Context, sessionData, doctorID string, request *requests.VerifyDoctor) error {
	if err := uc.requireAdmin(ctx, sessionData); err != nil {
		return err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotExist(nil)
	}

	doctor.Verified = request.Verified
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return err
	}

	uc.notifyDecision(ctx, doctor, request)
	return nil
}

func (uc *adminUsecase) DashboardCounts(ctx context.Context, sessionData string) (*responses.DashboardCounts, error) {
	if err := uc.requireAdmin(ctx, sessionData); err != nil {
		return nil, err
	}

	doctors, err := uc.DoctorRepository.CountDoctors(ctx, false)
	if err != nil {
		return nil, err
	}
	verifiedDoctors, err := uc.DoctorRepository.CountDoctors(ctx, true)
	if err != nil {
		return nil, err
	}
	patients, err := uc.PatientRepository.CountPatients(ctx)
	if err != nil {
		return nil, err
	}
	bookingTotal, err := uc.BookingRepository.CountBookings(ctx)
	if err != nil {
		return nil, err
	}
	pendingBlogs, err := uc.BlogRepository.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardCounts{
		Doctors:         doctors,
		VerifiedDoctors: verifiedDoctors,
		Patients:        patients,
		Bookings:        bookingTotal,
		PendingBlogs:    pendingBlogs,
	}, nil
}

func (uc *adminUsecase) requireAdmin(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if !session.IsAdmin() {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	return nil
}

func (uc *adminUsecase) notifyDecision(ctx context.Context, doctor *models.Doctor, request *requests.VerifyDoctor) {
	subject := constvars.EmailSubjectDoctorRejected
	message := "Your profile could not be verified"
	if request.Verified {
		subject = constvars.EmailSubjectDoctorVerified
		message = "Your profile has been verified and is now visible to patients"
	}

	body := message + "."
	if request.Reason != "" {
		body = message + ": " + request.Reason
	}
	email := &requests.EmailPayload{
		To:      doctor.Email,
		Subject: subject,
		Body:    "Hi " + doctor.Name + ",\r\n\r\n" + body + "\r\n\r\nMedxBay",
	}
	if err := uc.MailerService.SendEmail(ctx, email); err != nil {
		uc.Log.Warn("adminUsecase.notifyDecision failed to queue email",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.String(constvars.LoggingEmailToKey, doctor.Email),
			zap.Error(err),
		)
	}

	if err := uc.NotificationService.Notify(ctx, doctor.UserID, constvars.NotificationTypeVerification, message); err != nil {
		uc.Log.Warn("adminUsecase.notifyDecision failed to create notification",
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
	}
}

// buildReviewProfile skips presigned picture URLs; the review screen only
// needs the registration details.
func buildReviewProfile(doctor *models.Doctor) responses.DoctorProfile {
	return responses.DoctorProfile{
		DoctorSummary: responses.DoctorSummary{
			ID:               doctor.ID,
			Name:             doctor.Name,
			Title:            doctor.Title,
			Specialties:      doctor.Specialties,
			SubscriptionTier: doctor.SubscriptionTier,
		},
		Email:    doctor.Email,
		Gender:   doctor.Gender,
		AboutMe:  doctor.AboutMe,
		Clinic:   doctor.Clinic,
		Verified: doctor.Verified,
	}
}
