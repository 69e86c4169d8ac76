package contracts

import (
	"context"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
)

type ChatRepository interface {
	FindByID(ctx context.Context, chatID string) (*models.Chat, error)
	FindByParticipants(ctx context.Context, patientID, doctorID string) (*models.Chat, error)
	FindAllForPatient(ctx context.Context, patientID string) ([]models.Chat, error)
	FindAllForDoctor(ctx context.Context, doctorID string) ([]models.Chat, error)
	CreateChat(ctx context.Context, chat *models.Chat) (string, error)
	AppendMessage(ctx context.Context, chatID string, message models.ChatMessage) error
	MarkMessagesRead(ctx context.Context, chatID, readerSenderType string) error
}

type ChatUsecase interface {
	SendMessage(ctx context.Context, sessionData string, request *requests.SendChatMessage) (*responses.ChatSummary, error)
	ListChats(ctx context.Context, sessionData string) ([]responses.ChatSummary, error)
	ReadChat(ctx context.Context, sessionData, chatID string) (*responses.Chat, error)
	// AppendSystemMessage is used by the booking usecase on accept.
	AppendSystemMessage(ctx context.Context, patientID, doctorID, text string) error
}
