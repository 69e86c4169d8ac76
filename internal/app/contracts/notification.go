package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/responses"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByUserID(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
}

type NotificationService interface {
	Notify(ctx context.Context, userID, notificationType, message string) error
	ListForSession(ctx context.Context, sessionData string) ([]responses.Notification, error)
	MarkRead(ctx context.Context, sessionData, notificationID string) error
}
