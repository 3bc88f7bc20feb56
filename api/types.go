package api

import (
	"github.com/brothersphoto/site-backend/auth"
	"github.com/brothersphoto/site-backend/content"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogPostHandler    blogPostHandler
	galleryHandler     galleryHandler
	libraryHandler     libraryHandler
	settingsHandler    settingsHandler
	pageContentHandler pageContentHandler
	uploadHandler      uploadHandler
	authHandler        authHandler
}

func initializeHandlers(svc *content.Service, sessions *auth.Sessions, objectStore ObjectStore, relayCredential string) *routeHandlers {
	return &routeHandlers{
		blogPostHandler:    newBlogPostHandler(svc),
		galleryHandler:     newGalleryHandler(svc),
		libraryHandler:     newLibraryHandler(svc),
		settingsHandler:    newSettingsHandler(svc),
		pageContentHandler: newPageContentHandler(svc),
		uploadHandler:      newUploadHandler(objectStore, relayCredential),
		authHandler:        newAuthHandler(sessions),
	}
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}
