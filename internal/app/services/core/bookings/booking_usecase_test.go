package bookings

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionService struct {
	session *models.Session
}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	return "", nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return s.session, nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

type fakeBookingRepository struct {
	booking *models.Booking
	updates int
}

func (f *fakeBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	return "booking-1", nil
}

func (f *fakeBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepository) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, int, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	f.updates++
	f.booking = booking
	return nil
}

func (f *fakeBookingRepository) FindAcceptedEndedBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepository) CountBookings(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeDoctorRepository struct {
	doctor      *models.Doctor
	slotUpdates int
	savedSlots  []models.TimeSlot
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
	f.slotUpdates++
	f.savedSlots = slots
	return nil
}

func (f *fakeDoctorRepository) CountDoctors(ctx context.Context, verifiedOnly bool) (int64, error) {
	return 0, nil
}

type fakePatientRepository struct {
	patient *models.Patient
}

func (f *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return "", nil
}

func (f *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return f.patient, nil
}

func (f *fakePatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	return nil
}

func (f *fakePatientRepository) CountPatients(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeLockerService struct {
	acquired bool
	unlocked bool
}

func (f *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return f.acquired, "lock-token", nil
}

func (f *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlocked = true
	return nil
}

func (f *fakeLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return nil
}

type stubMailerService struct {
	sent int
}

func (s *stubMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	s.sent++
	return nil
}

type stubCalendarService struct{}

func (s *stubCalendarService) CreateEvent(ctx context.Context, event *contracts.CalendarEvent) (string, error) {
	return "https://meet.example.com/abc", nil
}

type stubChatUsecase struct {
	systemMessages int
}

func (s *stubChatUsecase) SendMessage(ctx context.Context, sessionData string, request *requests.SendChatMessage) (*responses.ChatSummary, error) {
	return nil, nil
}

func (s *stubChatUsecase) ListChats(ctx context.Context, sessionData string) ([]responses.ChatSummary, error) {
	return nil, nil
}

func (s *stubChatUsecase) ReadChat(ctx context.Context, sessionData, chatID string) (*responses.Chat, error) {
	return nil, nil
}

func (s *stubChatUsecase) AppendSystemMessage(ctx context.Context, patientID, doctorID, text string) error {
	s.systemMessages++
	return nil
}

type stubNotificationService struct{}

func (s *stubNotificationService) Notify(ctx context.Context, userID, notificationType, message string) error {
	return nil
}

func (s *stubNotificationService) ListForSession(ctx context.Context, sessionData string) ([]responses.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) MarkRead(ctx context.Context, sessionData, notificationID string) error {
	return nil
}

type bookingFixture struct {
	usecase  *bookingUsecase
	bookings *fakeBookingRepository
	doctors  *fakeDoctorRepository
	locker   *fakeLockerService
}

func newBookingFixture(booking *models.Booking, doctor *models.Doctor) *bookingFixture {
	bookings := &fakeBookingRepository{booking: booking}
	doctors := &fakeDoctorRepository{doctor: doctor}
	locker := &fakeLockerService{acquired: true}

	usecase := &bookingUsecase{
		BookingRepository: bookings,
		DoctorRepository:  doctors,
		PatientRepository: &fakePatientRepository{patient: &models.Patient{
			ID:     "patient-1",
			UserID: "user-patient-1",
			Name:   "Pat Doe",
			Email:  "pat@example.com",
		}},
		SessionService:      &stubSessionService{session: &models.Session{Role: constvars.MedxbayRoleDoctor, DoctorID: doctor.ID}},
		LockerService:       locker,
		MailerService:       &stubMailerService{},
		CalendarService:     &stubCalendarService{},
		ChatUsecase:         &stubChatUsecase{},
		NotificationService: &stubNotificationService{},
		Log:                 zap.NewNop(),
	}
	return &bookingFixture{usecase: usecase, bookings: bookings, doctors: doctors, locker: locker}
}

func assertClientMessage(t *testing.T, err error, message string) {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok, "expected a CustomError, got %T", err)
	assert.Equal(t, message, customErr.ClientMessage)
}

func TestUpdateBookingStatus(t *testing.T) {
	doctorID := "doctor-1"
	futureDate := time.Now().Add(48 * time.Hour).Format(utils.SlotDateLayout)
	pastDate := time.Now().Add(-48 * time.Hour).Format(utils.SlotDateLayout)

	t.Run("Completion Before End Time Rejected", func(t *testing.T) {
		fixture := newBookingFixture(&models.Booking{
			ID:               "booking-1",
			PatientID:        "patient-1",
			DoctorID:         doctorID,
			Date:             futureDate,
			StartTime:        "09:00",
			EndTime:          "09:30",
			Status:           constvars.BookingStatusAccepted,
			ConsultationType: constvars.ConsultationTypeInPerson,
		}, &models.Doctor{ID: doctorID, Name: "Dr. Gray"})

		_, err := fixture.usecase.UpdateBookingStatus(context.Background(), "session", "booking-1",
			&requests.UpdateBookingStatus{Status: constvars.BookingStatusCompleted})

		assertClientMessage(t, err, constvars.ErrClientBookingNotFinishedYet)
		assert.Zero(t, fixture.bookings.updates, "booking must stay untouched")
		assert.True(t, fixture.locker.unlocked, "doctor lock must be released")
	})

	t.Run("Completion After End Time", func(t *testing.T) {
		fixture := newBookingFixture(&models.Booking{
			ID:               "booking-1",
			PatientID:        "patient-1",
			DoctorID:         doctorID,
			Date:             pastDate,
			StartTime:        "09:00",
			EndTime:          "09:30",
			Status:           constvars.BookingStatusAccepted,
			ConsultationType: constvars.ConsultationTypeInPerson,
		}, &models.Doctor{ID: doctorID, Name: "Dr. Gray"})

		response, err := fixture.usecase.UpdateBookingStatus(context.Background(), "session", "booking-1",
			&requests.UpdateBookingStatus{Status: constvars.BookingStatusCompleted})

		assert.NoError(t, err)
		assert.Equal(t, constvars.BookingStatusCompleted, response.Status)
		assert.NotNil(t, fixture.bookings.booking.CompletedAt)
	})

	t.Run("Accept Conflicts When Slot Already Booked", func(t *testing.T) {
		fixture := newBookingFixture(&models.Booking{
			ID:               "booking-2",
			PatientID:        "patient-1",
			DoctorID:         doctorID,
			Date:             futureDate,
			StartTime:        "09:00",
			EndTime:          "09:30",
			Status:           constvars.BookingStatusWaiting,
			ConsultationType: constvars.ConsultationTypeInPerson,
		}, &models.Doctor{
			ID:   doctorID,
			Name: "Dr. Gray",
			TimeSlots: []models.TimeSlot{
				{Date: futureDate, StartTime: "09:00", EndTime: "09:30", Status: constvars.TimeSlotStatusBooked},
			},
		})

		_, err := fixture.usecase.UpdateBookingStatus(context.Background(), "session", "booking-2",
			&requests.UpdateBookingStatus{Status: constvars.BookingStatusAccepted})

		assertClientMessage(t, err, constvars.ErrClientSlotCurrentlyBooked)
		assert.Zero(t, fixture.doctors.slotUpdates)
		assert.Zero(t, fixture.bookings.updates, "conflicting accept must not change the booking")
	})

	t.Run("Accept Flips Free Slot", func(t *testing.T) {
		fixture := newBookingFixture(&models.Booking{
			ID:               "booking-3",
			PatientID:        "patient-1",
			DoctorID:         doctorID,
			Date:             futureDate,
			StartTime:        "09:00",
			EndTime:          "09:30",
			Status:           constvars.BookingStatusWaiting,
			ConsultationType: constvars.ConsultationTypeInPerson,
		}, &models.Doctor{
			ID:   doctorID,
			Name: "Dr. Gray",
			TimeSlots: []models.TimeSlot{
				{Date: futureDate, StartTime: "09:00", EndTime: "09:30", Status: constvars.TimeSlotStatusFree},
			},
		})

		response, err := fixture.usecase.UpdateBookingStatus(context.Background(), "session", "booking-3",
			&requests.UpdateBookingStatus{Status: constvars.BookingStatusAccepted})

		assert.NoError(t, err)
		assert.Equal(t, constvars.BookingStatusAccepted, response.Status)
		assert.Equal(t, 1, fixture.doctors.slotUpdates)
		assert.Equal(t, constvars.TimeSlotStatusBooked, fixture.doctors.savedSlots[0].Status)
	})

	t.Run("Accept Tolerates Deleted Slot", func(t *testing.T) {
		fixture := newBookingFixture(&models.Booking{
			ID:               "booking-4",
			PatientID:        "patient-1",
			DoctorID:         doctorID,
			Date:             futureDate,
			StartTime:        "09:00",
			EndTime:          "09:30",
			Status:           constvars.BookingStatusWaiting,
			ConsultationType: constvars.ConsultationTypeInPerson,
		}, &models.Doctor{ID: doctorID, Name: "Dr. Gray"})

		response, err := fixture.usecase.UpdateBookingStatus(context.Background(), "session", "booking-4",
			&requests.UpdateBookingStatus{Status: constvars.BookingStatusAccepted})

		assert.NoError(t, err, "the acceptance survives a slot deleted after the request")
		assert.Equal(t, constvars.BookingStatusAccepted, response.Status)
		assert.Zero(t, fixture.doctors.slotUpdates, "no slot left to flip")
		assert.Equal(t, 1, fixture.bookings.updates)
	})

	t.Run("Lock Busy", func(t *testing.T) {
		fixture := newBookingFixture(&models.Booking{
			ID:        "booking-5",
			PatientID: "patient-1",
			DoctorID:  doctorID,
			Date:      futureDate,
			StartTime: "09:00",
			EndTime:   "09:30",
			Status:    constvars.BookingStatusWaiting,
		}, &models.Doctor{ID: doctorID, Name: "Dr. Gray"})
		fixture.locker.acquired = false

		_, err := fixture.usecase.UpdateBookingStatus(context.Background(), "session", "booking-5",
			&requests.UpdateBookingStatus{Status: constvars.BookingStatusAccepted})

		assertClientMessage(t, err, constvars.ErrClientBookingBusy)
		assert.Zero(t, fixture.bookings.updates)
	})
}
