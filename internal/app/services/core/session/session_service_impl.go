package session

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository  contracts.RedisRepository
	SessionExpiresIn time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionExpTimeInHour int) contracts.SessionService {
	return &sessionService{
		RedisRepository:  redisRepository,
		SessionExpiresIn: time.Duration(sessionExpTimeInHour) * time.Hour,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	sessionID := utils.GenerateSessionID()
	session.SessionID = sessionID
	session.ExpiresAt = time.Now().Add(svc.SessionExpiresIn)

	err := svc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+sessionID, session, svc.SessionExpiresIn)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
