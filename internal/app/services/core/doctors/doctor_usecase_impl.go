package doctors

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
)

const profilePictureURLExpiry = 24 * time.Hour

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	SessionService   contracts.SessionService
	StorageService   contracts.StorageService
	MaxUploadSizeMB  int64
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	storageService contracts.StorageService,
	maxUploadSizeMB int64,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			SessionService:   sessionService,
			StorageService:   storageService,
			MaxUploadSizeMB:  maxUploadSizeMB,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) GetProfileBySession(ctx context.Context, sessionData string) (*responses.DoctorProfile, error) {
	doctor, err := uc.doctorFromSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.buildProfile(ctx, doctor), nil
}

func (uc *doctorUsecase) UpdateProfileBySession(ctx context.Context, sessionData string, request *requests.UpdateDoctorProfile) (*responses.DoctorProfile, error) {
	doctor, err := uc.doctorFromSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	applyProfileUpdate(doctor, request)

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return uc.buildProfile(ctx, doctor), nil
}

func (uc *doctorUsecase) UploadProfilePicture(ctx context.Context, sessionData string, request *requests.UploadProfilePicture) (*responses.UploadProfilePicture, error) {
	doctor, err := uc.doctorFromSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	data, ext, err := utils.DecodeBase64Image(request.Picture)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(ext, constvars.ImageAllowedProfilePictureFormats); err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, uc.MaxUploadSizeMB); err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	objectKey := fmt.Sprintf("profile-pictures/%s.%s", doctor.ID, ext)
	if err := uc.StorageService.UploadObject(ctx, objectKey, data, "image/"+ext); err != nil {
		return nil, err
	}

	doctor.ProfilePictureKey = objectKey
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	url, err := uc.StorageService.GetPresignedURL(ctx, objectKey, profilePictureURLExpiry)
	if err != nil {
		return nil, err
	}
	return &responses.UploadProfilePicture{URL: url}, nil
}

func (uc *doctorUsecase) AddTimeSlot(ctx context.Context, sessionData string, request *requests.AddTimeSlot) ([]models.TimeSlot, error) {
	doctor, err := uc.doctorFromSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	start, err := utils.SlotStart(request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.SlotEnd(request.Date, request.EndTime)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("end time %s is not after start time %s", request.EndTime, request.StartTime))
	}
	if !start.After(time.Now()) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("slot %s %s is in the past", request.Date, request.StartTime))
	}

	for _, slot := range doctor.TimeSlots {
		if slot.Date == request.Date && slot.StartTime == request.StartTime {
			return nil, exceptions.ErrSlotNotAvailable(fmt.Errorf("slot %s %s already exists", request.Date, request.StartTime))
		}
	}

	doctor.TimeSlots = append(doctor.TimeSlots, models.TimeSlot{
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Status:    constvars.TimeSlotStatusFree,
	})

	if err := uc.DoctorRepository.UpdateTimeSlots(ctx, doctor.ID, doctor.TimeSlots); err != nil {
		return nil, err
	}
	return doctor.TimeSlots, nil
}

func (uc *doctorUsecase) ListTimeSlots(ctx context.Context, sessionData string) ([]models.TimeSlot, error) {
	doctor, err := uc.doctorFromSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return doctor.TimeSlots, nil
}

func (uc *doctorUsecase) DeleteTimeSlot(ctx context.Context, sessionData string, request *requests.DeleteTimeSlot) ([]models.TimeSlot, error) {
	doctor, err := uc.doctorFromSession(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	kept := make([]models.TimeSlot, 0, len(doctor.TimeSlots))
	found := false
	for _, slot := range doctor.TimeSlots {
		if slot.Date == request.Date && slot.StartTime == request.StartTime {
			if slot.Status == constvars.TimeSlotStatusBooked {
				return nil, exceptions.ErrSlotBooked(fmt.Errorf("slot %s %s has an active booking", request.Date, request.StartTime))
			}
			found = true
			continue
		}
		kept = append(kept, slot)
	}
	if !found {
		return nil, exceptions.ErrSlotNotAvailable(fmt.Errorf("slot %s %s does not exist", request.Date, request.StartTime))
	}

	doctor.TimeSlots = kept
	if err := uc.DoctorRepository.UpdateTimeSlots(ctx, doctor.ID, doctor.TimeSlots); err != nil {
		return nil, err
	}
	return doctor.TimeSlots, nil
}

func (uc *doctorUsecase) Search(ctx context.Context, request *requests.SearchDoctors) ([]responses.DoctorSummary, int, error) {
	if request.Page < 1 {
		request.Page = 1
	}
	if request.PageSize < 1 {
		request.PageSize = constvars.AppDefaultPageSize
	}
	if request.PageSize > constvars.AppMaxPageSize {
		request.PageSize = constvars.AppMaxPageSize
	}

	doctors, total, err := uc.DoctorRepository.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]responses.DoctorSummary, 0, len(doctors))
	for i := range doctors {
		summaries = append(summaries, uc.buildSummary(ctx, &doctors[i]))
	}
	return summaries, total, nil
}

func (uc *doctorUsecase) GetPublicProfile(ctx context.Context, sessionData, doctorID string) (*responses.DoctorProfile, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	// Unverified profiles look like a 404 to everyone except admins.
	if !doctor.Verified && !uc.isAdminSession(ctx, sessionData) {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	profile := uc.buildProfile(ctx, doctor)
	// Public view only exposes bookable slots.
	freeSlots := make([]models.TimeSlot, 0, len(doctor.TimeSlots))
	for _, slot := range doctor.TimeSlots {
		if slot.Status == constvars.TimeSlotStatusFree {
			freeSlots = append(freeSlots, slot)
		}
	}
	profile.TimeSlots = freeSlots
	return profile, nil
}

func (uc *doctorUsecase) isAdminSession(ctx context.Context, sessionData string) bool {
	if sessionData == "" {
		return false
	}
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	return err == nil && session.IsAdmin()
}

func (uc *doctorUsecase) doctorFromSession(ctx context.Context, sessionData string) (*models.Doctor, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsDoctor() || session.DoctorID == "" {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}
	return doctor, nil
}

func (uc *doctorUsecase) buildSummary(ctx context.Context, doctor *models.Doctor) responses.DoctorSummary {
	summary := responses.DoctorSummary{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Title:             doctor.Title,
		Specialties:       doctor.Specialties,
		Languages:         doctor.Languages,
		ConsultationTypes: doctor.ConsultationTypes,
		ConsultationFee:   doctor.ConsultationFee,
		Currency:          doctor.Currency,
		City:              doctor.Clinic.City,
		Country:           doctor.Clinic.Country,
		Rating:            doctor.Rating,
		SubscriptionTier:  doctor.SubscriptionTier,
	}
	if doctor.ProfilePictureKey != "" {
		// Listing stays usable when presigning fails; the URL is just omitted.
		if url, err := uc.StorageService.GetPresignedURL(ctx, doctor.ProfilePictureKey, profilePictureURLExpiry); err == nil {
			summary.ProfilePictureURL = url
		}
	}
	return summary
}

func (uc *doctorUsecase) buildProfile(ctx context.Context, doctor *models.Doctor) *responses.DoctorProfile {
	return &responses.DoctorProfile{
		DoctorSummary: uc.buildSummary(ctx, doctor),
		Email:         doctor.Email,
		Gender:        doctor.Gender,
		AboutMe:       doctor.AboutMe,
		Conditions:    doctor.Conditions,
		Clinic:        doctor.Clinic,
		Verified:      doctor.Verified,
		TimeSlots:     doctor.TimeSlots,
	}
}

func applyProfileUpdate(doctor *models.Doctor, request *requests.UpdateDoctorProfile) {
	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Gender != "" {
		doctor.Gender = request.Gender
	}
	if request.Title != "" {
		doctor.Title = request.Title
	}
	if request.AboutMe != "" {
		doctor.AboutMe = request.AboutMe
	}
	if request.Specialties != nil {
		doctor.Specialties = request.Specialties
	}
	if request.Conditions != nil {
		doctor.Conditions = request.Conditions
	}
	if request.Languages != nil {
		doctor.Languages = request.Languages
	}
	if request.ConsultationTypes != nil {
		doctor.ConsultationTypes = request.ConsultationTypes
	}
	if request.ConsultationFee > 0 {
		doctor.ConsultationFee = request.ConsultationFee
	}
	if request.Currency != "" {
		doctor.Currency = request.Currency
	}
	if request.ClinicName != "" {
		doctor.Clinic.Name = request.ClinicName
	}
	if request.ClinicAddress != "" {
		doctor.Clinic.Address = request.ClinicAddress
	}
	if request.City != "" {
		doctor.Clinic.City = request.City
	}
	if request.State != "" {
		doctor.Clinic.State = request.State
	}
	if request.Country != "" {
		doctor.Clinic.Country = request.Country
	}
}
