package notifications

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/responses"
	"sync"
	"time"
)

const listLimit = 50

type notificationService struct {
	NotificationRepository contracts.NotificationRepository
	SessionService         contracts.SessionService
}

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

func NewNotificationService(
	notificationRepository contracts.NotificationRepository,
	sessionService contracts.SessionService,
) contracts.NotificationService {
	onceNotificationService.Do(func() {
		notificationServiceInstance = &notificationService{
			NotificationRepository: notificationRepository,
			SessionService:         sessionService,
		}
	})
	return notificationServiceInstance
}

func (svc *notificationService) Notify(ctx context.Context, userID, notificationType, message string) error {
	if userID == "" {
		return nil
	}
	_, err := svc.NotificationRepository.CreateNotification(ctx, &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
	})
	return err
}

func (svc *notificationService) ListForSession(ctx context.Context, sessionData string) ([]responses.Notification, error) {
	session, err := svc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	notificationList, err := svc.NotificationRepository.FindByUserID(ctx, session.UserID, listLimit)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Notification, 0, len(notificationList))
	for _, notification := range notificationList {
		result = append(result, responses.Notification{
			ID:        notification.ID,
			Type:      notification.Type,
			Message:   notification.Message,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (svc *notificationService) MarkRead(ctx context.Context, sessionData, notificationID string) error {
	session, err := svc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return svc.NotificationRepository.MarkRead(ctx, notificationID, session.UserID)
}
