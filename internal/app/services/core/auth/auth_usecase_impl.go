package auth

import (
	"context"
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

type authUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	SessionService    contracts.SessionService
	JWTSecret         string
	JWTExpiresIn      time.Duration
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	jwtSecret string,
	jwtExpTimeInHour int,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			PatientRepository: patientRepository,
			DoctorRepository:  doctorRepository,
			SessionService:    sessionService,
			JWTSecret:         jwtSecret,
			JWTExpiresIn:      time.Duration(jwtExpTimeInHour) * time.Hour,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Register, error) {
	if err := uc.ensureIdentityAvailable(ctx, request.Email, request.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, &models.Patient{
		Name:  request.Name,
		Email: request.Email,
	})
	if err != nil {
		return nil, err
	}

	userID, err := uc.UserRepository.CreateUser(ctx, &models.User{
		Role:      constvars.MedxbayRolePatient,
		Email:     request.Email,
		Username:  request.Username,
		Password:  hashedPassword,
		PatientID: patientID,
	})
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient != nil {
		patient.UserID = userID
		if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
			return nil, err
		}
	}

	return &responses.Register{
		UserID:    userID,
		PatientID: patientID,
	}, nil
}

func (uc *authUsecase) RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Register, error) {
	if err := uc.ensureIdentityAvailable(ctx, request.Email, request.Username); err != nil {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	// New doctors start unverified on the free tier and stay out of search
	// until an admin reviews them.
	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, &models.Doctor{
		Name:              request.Name,
		Email:             request.Email,
		Title:             request.Title,
		Specialties:       request.Specialties,
		Verified:          false,
		SubscriptionTier:  constvars.SubscriptionTierFree,
		ConsultationTypes: []string{constvars.ConsultationTypeInPerson},
	})
	if err != nil {
		return nil, err
	}

	userID, err := uc.UserRepository.CreateUser(ctx, &models.User{
		Role:     constvars.MedxbayRoleDoctor,
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		DoctorID: doctorID,
	})
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor != nil {
		doctor.UserID = userID
		if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
			return nil, err
		}
	}

	return &responses.Register{
		UserID:   userID,
		DoctorID: doctorID,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID, err := uc.SessionService.CreateSession(ctx, &models.Session{
		UserID:    user.ID,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
		PatientID: user.PatientID,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.JWTSecret, uc.JWTExpiresIn)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) ensureIdentityAvailable(ctx context.Context, email, username string) error {
	existing, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrEmailAlreadyExist(nil)
	}

	existing, err = uc.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrUsernameAlreadyExist(nil)
	}
	return nil
}
