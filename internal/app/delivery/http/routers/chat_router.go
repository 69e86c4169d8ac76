package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/chats"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *chats.ChatController) {
	router.With(middlewares.Authenticate).Get("/", chatController.ListChats)
	router.With(middlewares.Authenticate).Post("/messages", chatController.SendMessage)
	router.With(middlewares.Authenticate).Post("/{chatID}/read", chatController.ReadChat)
}
