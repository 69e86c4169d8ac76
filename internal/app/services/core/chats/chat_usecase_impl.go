package chats

import (
	"context"
	"errors"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/dto/responses"
	"medxbay-service/internal/pkg/exceptions"
	"sync"
	"time"
)

var (
	errChatIDRequired   = errors.New("chat_id is required")
	errDoctorIDRequired = errors.New("doctor_id is required to start a conversation")
)

type chatUsecase struct {
	ChatRepository    contracts.ChatRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
}

var (
	chatUsecaseInstance contracts.ChatUsecase
	onceChatUsecase     sync.Once
)

func NewChatUsecase(
	chatRepository contracts.ChatRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
) contracts.ChatUsecase {
	onceChatUsecase.Do(func() {
		chatUsecaseInstance = &chatUsecase{
			ChatRepository:    chatRepository,
			DoctorRepository:  doctorRepository,
			PatientRepository: patientRepository,
			SessionService:    sessionService,
		}
	})
	return chatUsecaseInstance
}

func (uc *chatUsecase) SendMessage(ctx context.Context, sessionData string, request *requests.SendChatMessage) (*responses.ChatSummary, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var chat *models.Chat
	var senderType, senderID string

	switch {
	case session.IsPatient():
		senderType = constvars.ChatSenderTypePatient
		senderID = session.PatientID
		chat, err = uc.resolvePatientChat(ctx, session.PatientID, request)
	case session.IsDoctor():
		senderType = constvars.ChatSenderTypeDoctor
		senderID = session.DoctorID
		// Doctors reply within an existing conversation.
		if request.ChatID == "" {
			return nil, exceptions.ErrInputValidation(errChatIDRequired)
		}
		chat, err = uc.ChatRepository.FindByID(ctx, request.ChatID)
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, exceptions.ErrChatNotExist(nil)
	}
	if !isParticipant(chat, session.PatientID, session.DoctorID) {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	message := models.ChatMessage{
		SenderType: senderType,
		SenderID:   senderID,
		Text:       request.Text,
		SentAt:     time.Now(),
	}
	if err := uc.ChatRepository.AppendMessage(ctx, chat.ID, message); err != nil {
		return nil, err
	}
	chat.Messages = append(chat.Messages, message)

	summary := uc.buildSummary(ctx, chat, senderType)
	return &summary, nil
}

func (uc *chatUsecase) ListChats(ctx context.Context, sessionData string) ([]responses.ChatSummary, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var chatList []models.Chat
	var viewerType string
	switch {
	case session.IsPatient():
		viewerType = constvars.ChatSenderTypePatient
		chatList, err = uc.ChatRepository.FindAllForPatient(ctx, session.PatientID)
	case session.IsDoctor():
		viewerType = constvars.ChatSenderTypeDoctor
		chatList, err = uc.ChatRepository.FindAllForDoctor(ctx, session.DoctorID)
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, err
	}

	summaries := make([]responses.ChatSummary, 0, len(chatList))
	for i := range chatList {
		summaries = append(summaries, uc.buildSummary(ctx, &chatList[i], viewerType))
	}
	return summaries, nil
}

func (uc *chatUsecase) ReadChat(ctx context.Context, sessionData, chatID string) (*responses.Chat, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var viewerType string
	switch {
	case session.IsPatient():
		viewerType = constvars.ChatSenderTypePatient
	case session.IsDoctor():
		viewerType = constvars.ChatSenderTypeDoctor
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	chat, err := uc.ChatRepository.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, exceptions.ErrChatNotExist(nil)
	}
	if !isParticipant(chat, session.PatientID, session.DoctorID) {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	if err := uc.ChatRepository.MarkMessagesRead(ctx, chat.ID, viewerType); err != nil {
		return nil, err
	}
	for i := range chat.Messages {
		if chat.Messages[i].SenderType != viewerType {
			chat.Messages[i].Read = true
		}
	}

	return &responses.Chat{
		ChatSummary: uc.buildSummary(ctx, chat, viewerType),
		Messages:    chat.Messages,
	}, nil
}

// AppendSystemMessage drops an automated line into the patient-doctor
// conversation, creating it when the pair never chatted before.
func (uc *chatUsecase) AppendSystemMessage(ctx context.Context, patientID, doctorID, text string) error {
	chat, err := uc.ChatRepository.FindByParticipants(ctx, patientID, doctorID)
	if err != nil {
		return err
	}
	if chat == nil {
		chatID, err := uc.ChatRepository.CreateChat(ctx, &models.Chat{
			PatientID: patientID,
			DoctorID:  doctorID,
		})
		if err != nil {
			return err
		}
		chat = &models.Chat{ID: chatID, PatientID: patientID, DoctorID: doctorID}
	}

	return uc.ChatRepository.AppendMessage(ctx, chat.ID, models.ChatMessage{
		SenderType: constvars.ChatSenderTypeSystem,
		Text:       text,
		SentAt:     time.Now(),
	})
}

func (uc *chatUsecase) resolvePatientChat(ctx context.Context, patientID string, request *requests.SendChatMessage) (*models.Chat, error) {
	if request.ChatID != "" {
		return uc.ChatRepository.FindByID(ctx, request.ChatID)
	}
	if request.DoctorID == "" {
		return nil, exceptions.ErrInputValidation(errDoctorIDRequired)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	chat, err := uc.ChatRepository.FindByParticipants(ctx, patientID, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if chat != nil {
		return chat, nil
	}

	newChat := &models.Chat{PatientID: patientID, DoctorID: request.DoctorID}
	chatID, err := uc.ChatRepository.CreateChat(ctx, newChat)
	if err != nil {
		return nil, err
	}
	newChat.ID = chatID
	return newChat, nil
}

func (uc *chatUsecase) buildSummary(ctx context.Context, chat *models.Chat, viewerType string) responses.ChatSummary {
	summary := responses.ChatSummary{
		ID:        chat.ID,
		DoctorID:  chat.DoctorID,
		PatientID: chat.PatientID,
	}
	if len(chat.Messages) > 0 {
		summary.LastMessage = chat.Messages[len(chat.Messages)-1].Text
	}
	for _, message := range chat.Messages {
		if !message.Read && message.SenderType != viewerType {
			summary.UnreadCount++
		}
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, chat.DoctorID); err == nil && doctor != nil {
		summary.DoctorName = doctor.Name
	}
	if patient, err := uc.PatientRepository.FindByID(ctx, chat.PatientID); err == nil && patient != nil {
		summary.PatientName = patient.Name
	}
	return summary
}

func isParticipant(chat *models.Chat, patientID, doctorID string) bool {
	if patientID != "" && chat.PatientID == patientID {
		return true
	}
	if doctorID != "" && chat.DoctorID == doctorID {
		return true
	}
	return false
}
