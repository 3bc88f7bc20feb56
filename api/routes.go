package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// setupRoutes sets up the public pages API, the admin API and the upload relay
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/posts", handlers.blogPostHandler.listPublishedPosts())
		r.Get("/posts/search", handlers.blogPostHandler.searchPosts())
		r.Get("/posts/{slug}", handlers.blogPostHandler.getPostBySlug())

		r.Get("/landing-images", handlers.galleryHandler.listPublicLandingImages())
		r.Get("/home-images", handlers.galleryHandler.listPublicHomeImages())

		r.Get("/settings/{key}", handlers.settingsHandler.getSetting())
		r.Get("/pages/{pageID}", handlers.pageContentHandler.getPageContent())

		r.Post("/admin/login", handlers.authHandler.login())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/admin/logout", handlers.authHandler.logout())

		r.Get("/admin/posts", handlers.blogPostHandler.listAllPosts())
		r.Post("/admin/posts", handlers.blogPostHandler.createPost())
		r.Put("/admin/posts/{postID}", handlers.blogPostHandler.updatePost())
		r.Delete("/admin/posts/{postID}", handlers.blogPostHandler.deletePost())

		r.Get("/admin/landing-images", handlers.galleryHandler.listLandingImages())
		r.Post("/admin/landing-images", handlers.galleryHandler.createLandingImage())
		r.Put("/admin/landing-images/{imageID}", handlers.galleryHandler.updateLandingImage())
		r.Delete("/admin/landing-images/{imageID}", handlers.galleryHandler.deleteLandingImage())

		r.Get("/admin/home-images", handlers.galleryHandler.listHomeImages())
		r.Post("/admin/home-images", handlers.galleryHandler.createHomeImage())
		r.Put("/admin/home-images/{imageID}", handlers.galleryHandler.updateHomeImage())
		r.Delete("/admin/home-images/{imageID}", handlers.galleryHandler.deleteHomeImage())
		r.Post("/admin/home-images/bulk-delete", handlers.galleryHandler.bulkDeleteHomeImages())
		r.Post("/admin/home-images/bulk-update", handlers.galleryHandler.bulkUpdateHomeImages())

		r.Get("/admin/library-images", handlers.libraryHandler.listImages())
		r.Post("/admin/library-images", handlers.libraryHandler.addImage())
		r.Delete("/admin/library-images/{imageID}", handlers.libraryHandler.deleteImage())

		r.Put("/admin/settings/{key}", handlers.settingsHandler.upsertSetting())

		r.Get("/admin/pages", handlers.pageContentHandler.listPageContent())
		r.Put("/admin/pages/{pageID}", handlers.pageContentHandler.savePageContent())
	})

	// Upload relay: fully open CORS, gated by its own bearer credential
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		}))
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/functions/v1/upload-to-s3", handlers.uploadHandler.relay())
	})
}
