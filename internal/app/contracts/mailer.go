package contracts

import (
	"context"
	"medxbay-service/internal/pkg/dto/requests"
)

// MailerService publishes email payloads to the mailer queue; the consumer
// worker drains the queue and delivers over SMTP.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}
