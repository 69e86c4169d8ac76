package prescriptions

import (
	"context"
	"fmt"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	BookingRepository      contracts.BookingRepository
	DoctorRepository       contracts.DoctorRepository
	PatientRepository      contracts.PatientRepository
	SessionService         contracts.SessionService
	MailerService          contracts.MailerService
	NotificationService    contracts.NotificationService
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	bookingRepository contracts.BookingRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			BookingRepository:      bookingRepository,
			DoctorRepository:       doctorRepository,
			PatientRepository:      patientRepository,
			SessionService:         sessionService,
			MailerService:          mailerService,
			NotificationService:    notificationService,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) CreatePrescription(ctx context.Context, sessionData string, request *requests.CreatePrescription) (*responses.Prescription, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if booking.DoctorID != session.DoctorID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if booking.Status != constvars.BookingStatusCompleted {
		return nil, exceptions.ErrPrescriptionBookingNotCompleted(nil)
	}

	medicines := make([]models.Medicine, 0, len(request.Medicines))
	for _, medicine := range request.Medicines {
		medicines = append(medicines, models.Medicine{
			Name:      medicine.Name,
			Dosage:    medicine.Dosage,
			Frequency: medicine.Frequency,
			Duration:  medicine.Duration,
			Notes:     medicine.Notes,
		})
	}

	prescription := &models.Prescription{
		BookingID: booking.ID,
		DoctorID:  booking.DoctorID,
		PatientID: booking.PatientID,
		Medicines: medicines,
		Notes:     request.Notes,
	}
	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}
	prescription.ID = prescriptionID

	uc.notifyPatient(ctx, prescription, booking.Date)
	return uc.buildResponse(ctx, prescription), nil
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Prescription, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}

	switch {
	case session.IsPatient():
		params.PatientID = session.PatientID
		params.DoctorID = ""
	case session.IsDoctor():
		params.DoctorID = session.DoctorID
		params.PatientID = ""
	default:
		return nil, 0, exceptions.ErrRoleNotAllowed(nil)
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = constvars.AppDefaultPageSize
	}

	prescriptionList, total, err := uc.PrescriptionRepository.FindAll(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Prescription, 0, len(prescriptionList))
	for i := range prescriptionList {
		result = append(result, *uc.buildResponse(ctx, &prescriptionList[i]))
	}
	return result, total, nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, sessionData, prescriptionID string) (*responses.Prescription, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrPrescriptionNotExist(nil)
	}

	allowed := (session.IsPatient() && prescription.PatientID == session.PatientID) ||
		(session.IsDoctor() && prescription.DoctorID == session.DoctorID) ||
		session.IsAdmin()
	if !allowed {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	return uc.buildResponse(ctx, prescription), nil
}

func (uc *prescriptionUsecase) notifyPatient(ctx context.Context, prescription *models.Prescription, bookingDate string) {
	patient, err := uc.PatientRepository.FindByID(ctx, prescription.PatientID)
	if err != nil || patient == nil {
		return
	}
	doctor, err := uc.DoctorRepository.FindByID(ctx, prescription.DoctorID)
	if err != nil || doctor == nil {
		return
	}

	email := &requests.EmailPayload{
		To:      patient.Email,
		Subject: constvars.EmailSubjectPrescriptionIssued,
		Body:    fmt.Sprintf(constvars.EmailBodyPrescriptionIssuedFormat, patient.Name, doctor.Name, bookingDate),
	}
	if err := uc.MailerService.SendEmail(ctx, email); err != nil {
		uc.Log.Warn("prescriptionUsecase.notifyPatient failed to queue email",
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.String(constvars.LoggingEmailToKey, patient.Email),
			zap.Error(err),
		)
	}

	if err := uc.NotificationService.Notify(ctx, patient.UserID, constvars.NotificationTypePrescription,
		fmt.Sprintf("Dr. %s issued a prescription for your appointment on %s", doctor.Name, bookingDate)); err != nil {
		uc.Log.Warn("prescriptionUsecase.notifyPatient failed to create notification",
			zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
			zap.Error(err),
		)
	}
}

func (uc *prescriptionUsecase) buildResponse(ctx context.Context, prescription *models.Prescription) *responses.Prescription {
	response := &responses.Prescription{
		ID:        prescription.ID,
		BookingID: prescription.BookingID,
		DoctorID:  prescription.DoctorID,
		PatientID: prescription.PatientID,
		Medicines: prescription.Medicines,
		Notes:     prescription.Notes,
		IssuedAt:  prescription.CreatedAt.Format(time.RFC3339),
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, prescription.DoctorID); err == nil && doctor != nil {
		response.DoctorName = doctor.Name
	}
	if patient, err := uc.PatientRepository.FindByID(ctx, prescription.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	return response
}
