package routers

import (
	"medxbay-service/internal/app/delivery/http/middlewares"
	"medxbay-service/internal/app/services/core/blogs"

	"github.com/go-chi/chi/v5"
)

func attachBlogRoutes(router chi.Router, middlewares *middlewares.Middlewares, blogController *blogs.BlogController) {
	router.Get("/", blogController.ListPublic)

	router.With(middlewares.Authenticate).Post("/", blogController.CreateBlog)
	router.With(middlewares.Authenticate).Get("/mine", blogController.ListOwn)
	router.With(middlewares.Authenticate).Get("/pending", blogController.ListPending)
	router.With(middlewares.Authenticate).Put("/{blogID}", blogController.UpdateBlog)
	router.With(middlewares.Authenticate).Post("/{blogID}/moderate", blogController.Moderate)

	router.Get("/{blogID}", blogController.GetPublic)
}
