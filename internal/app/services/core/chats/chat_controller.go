package chats

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"medxbay-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type ChatController struct {
	ChatUsecase contracts.ChatUsecase
}

func NewChatController(chatUsecase contracts.ChatUsecase) *ChatController {
	return &ChatController{
		ChatUsecase: chatUsecase,
	}
}

func (ctrl *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	request := new(requests.SendChatMessage)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSendChatMessageRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.SendMessage(ctx, sessionData, request)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SendMessageSuccessMessage, response)
}

func (ctrl *ChatController) ListChats(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.ListChats(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListChatsSuccessMessage, response)
}

func (ctrl *ChatController) ReadChat(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(w, exceptions.ErrSessionInvalid(nil))
		return
	}

	chatID := chi.URLParam(r, "chatID")
	if chatID == "" {
		utils.BuildErrorResponse(w, exceptions.ErrURLParamIDValidation(nil, "chatID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChatUsecase.ReadChat(ctx, sessionData, chatID)
	if err != nil {
		utils.BuildErrorResponse(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReadChatSuccessMessage, response)
}
