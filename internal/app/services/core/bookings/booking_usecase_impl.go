package bookings

import (
	"context"
	"fmt"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const doctorLockTTL = 15 * time.Second

type bookingUsecase struct {
	BookingRepository   contracts.BookingRepository
	DoctorRepository    contracts.DoctorRepository
	PatientRepository   contracts.PatientRepository
	SessionService      contracts.SessionService
	LockerService       contracts.LockerService
	MailerService       contracts.MailerService
	CalendarService     contracts.CalendarService
	ChatUsecase         contracts.ChatUsecase
	NotificationService contracts.NotificationService
	Log                 *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	calendarService contracts.CalendarService,
	chatUsecase contracts.ChatUsecase,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingRepository:   bookingRepository,
			DoctorRepository:    doctorRepository,
			PatientRepository:   patientRepository,
			SessionService:      sessionService,
			LockerService:       lockerService,
			MailerService:       mailerService,
			CalendarService:     calendarService,
			ChatUsecase:         chatUsecase,
			NotificationService: notificationService,
			Log:                 logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, sessionData string, request *requests.CreateBooking) (*responses.Booking, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() || session.PatientID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.Verified {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	if !utils.IsSlotInFuture(request.Date, request.StartTime, time.Now()) {
		return nil, exceptions.ErrSlotNotAvailable(fmt.Errorf("slot %s %s is in the past", request.Date, request.StartTime))
	}

	slot := findSlot(doctor.TimeSlots, request.Date, request.StartTime)
	if slot == nil {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}
	if slot.Status != constvars.TimeSlotStatusFree {
		return nil, exceptions.ErrSlotBooked(nil)
	}

	booking := &models.Booking{
		PatientID:        session.PatientID,
		DoctorID:         doctor.ID,
		Date:             request.Date,
		StartTime:        request.StartTime,
		EndTime:          slot.EndTime,
		Status:           constvars.BookingStatusWaiting,
		ConsultationType: request.ConsultationType,
		Reason:           request.Reason,
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = bookingID

	if err := uc.NotificationService.Notify(ctx, doctor.UserID, constvars.NotificationTypeBooking,
		fmt.Sprintf("New appointment request for %s at %s", booking.Date, booking.StartTime)); err != nil {
		uc.Log.Warn("bookingUsecase.CreateBooking failed to notify doctor",
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	return uc.buildResponse(ctx, booking), nil
}

func (uc *bookingUsecase) FindAll(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Booking, int, error) {
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
	case session.IsAdmin():
		// Admins see everything.
	default:
		return nil, 0, exceptions.ErrRoleNotAllowed(nil)
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = constvars.AppDefaultPageSize
	}
	if params.PageSize > constvars.AppMaxPageSize {
		params.PageSize = constvars.AppMaxPageSize
	}

	bookingList, total, err := uc.BookingRepository.FindAll(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Booking, 0, len(bookingList))
	for i := range bookingList {
		result = append(result, *uc.buildResponse(ctx, &bookingList[i]))
	}
	return result, total, nil
}

// UpdateBookingStatus moves a booking through its lifecycle and keeps the
// doctor's slot state in sync. Booking and slot live in different documents,
// so the whole read-check-write runs under a per-doctor lock.
func (uc *bookingUsecase) UpdateBookingStatus(ctx context.Context, sessionData, bookingID string, request *requests.UpdateBookingStatus) (*responses.Booking, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if booking.DoctorID != session.DoctorID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	lockKey := fmt.Sprintf(constvars.RedisDoctorLockKeyFormat, booking.DoctorID)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, doctorLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrDoctorLockBusy(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.Background(), lockKey, lockValue); err != nil {
			uc.Log.Warn("bookingUsecase.UpdateBookingStatus failed to release doctor lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	// Re-read now that we hold the lock; a concurrent update may have landed
	// between the first read and the lock acquisition.
	booking, err = uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}

	if !IsValidTransition(booking.Status, request.Status) {
		return nil, exceptions.ErrBookingInvalidTransition(fmt.Errorf("cannot move booking from %s to %s", booking.Status, request.Status))
	}

	switch request.Status {
	case constvars.BookingStatusAccepted:
		return uc.acceptBooking(ctx, booking)
	case constvars.BookingStatusRejected:
		return uc.rejectBooking(ctx, booking)
	case constvars.BookingStatusCompleted:
		return uc.completeBooking(ctx, booking)
	default:
		return nil, exceptions.ErrBookingInvalidTransition(fmt.Errorf("unknown status %s", request.Status))
	}
}

func (uc *bookingUsecase) acceptBooking(ctx context.Context, booking *models.Booking) (*responses.Booking, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, booking.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	slot := findSlot(doctor.TimeSlots, booking.Date, booking.StartTime)
	switch {
	case slot == nil:
		// The doctor removed the slot after the request came in. The booking
		// still gets accepted; there is just no slot left to flip.
		uc.Log.Warn("bookingUsecase.acceptBooking slot no longer exists",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingSlotDateKey, booking.Date),
			zap.String(constvars.LoggingSlotStartKey, booking.StartTime),
		)
	case slot.Status == constvars.TimeSlotStatusBooked:
		return nil, exceptions.ErrSlotBooked(nil)
	default:
		slot.Status = constvars.TimeSlotStatusBooked
		if err := uc.DoctorRepository.UpdateTimeSlots(ctx, doctor.ID, doctor.TimeSlots); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	booking.Status = constvars.BookingStatusAccepted
	booking.AcceptedAt = &now

	if booking.ConsultationType == constvars.ConsultationTypeVideo {
		booking.MeetLink = uc.createMeetLink(ctx, booking, doctor)
	}

	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.notifyAccepted(ctx, booking, doctor)
	return uc.buildResponse(ctx, booking), nil
}

func (uc *bookingUsecase) rejectBooking(ctx context.Context, booking *models.Booking) (*responses.Booking, error) {
	booking.Status = constvars.BookingStatusRejected
	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	uc.notifyRejected(ctx, booking)
	return uc.buildResponse(ctx, booking), nil
}

func (uc *bookingUsecase) completeBooking(ctx context.Context, booking *models.Booking) (*responses.Booking, error) {
	end, err := utils.SlotEnd(booking.Date, booking.EndTime)
	if err != nil {
		return nil, err
	}
	if time.Now().Before(end) {
		return nil, exceptions.ErrBookingNotFinished(nil)
	}

	now := time.Now()
	booking.Status = constvars.BookingStatusCompleted
	booking.CompletedAt = &now
	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, booking), nil
}

// createMeetLink is best-effort; an unreachable calendar API must not block
// the acceptance.
func (uc *bookingUsecase) createMeetLink(ctx context.Context, booking *models.Booking, doctor *models.Doctor) string {
	start, err := utils.SlotStart(booking.Date, booking.StartTime)
	if err != nil {
		return ""
	}
	end, err := utils.SlotEnd(booking.Date, booking.EndTime)
	if err != nil {
		return ""
	}

	attendees := []string{doctor.Email}
	if patient, err := uc.PatientRepository.FindByID(ctx, booking.PatientID); err == nil && patient != nil {
		attendees = append(attendees, patient.Email)
	}

	meetLink, err := uc.CalendarService.CreateEvent(ctx, &contracts.CalendarEvent{
		Summary:     fmt.Sprintf("Video consultation with Dr. %s", doctor.Name),
		Description: booking.Reason,
		Start:       start,
		End:         end,
		Attendees:   attendees,
	})
	if err != nil {
		uc.Log.Warn("bookingUsecase.createMeetLink calendar event failed",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
		return ""
	}
	return meetLink
}

func (uc *bookingUsecase) notifyAccepted(ctx context.Context, booking *models.Booking, doctor *models.Doctor) {
	patient, err := uc.PatientRepository.FindByID(ctx, booking.PatientID)
	if err != nil || patient == nil {
		uc.Log.Warn("bookingUsecase.notifyAccepted could not load patient",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingPatientIDKey, booking.PatientID),
			zap.Error(err),
		)
		return
	}

	meetFragment := ""
	if booking.MeetLink != "" {
		meetFragment = fmt.Sprintf(constvars.EmailBodyMeetLinkFragmentFormat, booking.MeetLink)
	}
	email := &requests.EmailPayload{
		To:      patient.Email,
		Subject: constvars.EmailSubjectBookingAccepted,
		Body:    fmt.Sprintf(constvars.EmailBodyBookingAcceptedFormat, patient.Name, doctor.Name, booking.Date, booking.StartTime, meetFragment),
	}
	if err := uc.MailerService.SendEmail(ctx, email); err != nil {
		uc.Log.Warn("bookingUsecase.notifyAccepted failed to queue email",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingEmailToKey, patient.Email),
			zap.Error(err),
		)
	}

	text := fmt.Sprintf(constvars.ChatSystemMessageBookingAcceptedFormat, booking.Date, booking.StartTime)
	if booking.MeetLink != "" {
		text += " " + booking.MeetLink
	}
	if err := uc.ChatUsecase.AppendSystemMessage(ctx, booking.PatientID, booking.DoctorID, text); err != nil {
		uc.Log.Warn("bookingUsecase.notifyAccepted failed to append chat message",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}

	if err := uc.NotificationService.Notify(ctx, patient.UserID, constvars.NotificationTypeBooking,
		fmt.Sprintf("Your appointment on %s at %s has been confirmed", booking.Date, booking.StartTime)); err != nil {
		uc.Log.Warn("bookingUsecase.notifyAccepted failed to create notification",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) notifyRejected(ctx context.Context, booking *models.Booking) {
	patient, err := uc.PatientRepository.FindByID(ctx, booking.PatientID)
	if err != nil || patient == nil {
		return
	}
	doctor, err := uc.DoctorRepository.FindByID(ctx, booking.DoctorID)
	if err != nil || doctor == nil {
		return
	}

	email := &requests.EmailPayload{
		To:      patient.Email,
		Subject: constvars.EmailSubjectBookingRejected,
		Body:    fmt.Sprintf(constvars.EmailBodyBookingRejectedFormat, patient.Name, doctor.Name, booking.Date, booking.StartTime),
	}
	if err := uc.MailerService.SendEmail(ctx, email); err != nil {
		uc.Log.Warn("bookingUsecase.notifyRejected failed to queue email",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.String(constvars.LoggingEmailToKey, patient.Email),
			zap.Error(err),
		)
	}

	if err := uc.NotificationService.Notify(ctx, patient.UserID, constvars.NotificationTypeBooking,
		fmt.Sprintf("Your appointment request for %s at %s was declined", booking.Date, booking.StartTime)); err != nil {
		uc.Log.Warn("bookingUsecase.notifyRejected failed to create notification",
			zap.String(constvars.LoggingBookingIDKey, booking.ID),
			zap.Error(err),
		)
	}
}

func (uc *bookingUsecase) buildResponse(ctx context.Context, booking *models.Booking) *responses.Booking {
	response := &responses.Booking{
		ID:               booking.ID,
		DoctorID:         booking.DoctorID,
		PatientID:        booking.PatientID,
		Date:             booking.Date,
		StartTime:        booking.StartTime,
		EndTime:          booking.EndTime,
		Status:           booking.Status,
		ConsultationType: booking.ConsultationType,
		Reason:           booking.Reason,
		MeetLink:         booking.MeetLink,
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, booking.DoctorID); err == nil && doctor != nil {
		response.DoctorName = doctor.Name
	}
	if patient, err := uc.PatientRepository.FindByID(ctx, booking.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	return response
}

func findSlot(slots []models.TimeSlot, date, startTime string) *models.TimeSlot {
	for i := range slots {
		if slots[i].Date == date && slots[i].StartTime == startTime {
			return &slots[i]
		}
	}
	return nil
}
