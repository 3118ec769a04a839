package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nezeon/legal-doc-backend/internal/auth"
	"github.com/Nezeon/legal-doc-backend/internal/http/middleware"
	"github.com/Nezeon/legal-doc-backend/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay free of business logic; protected routes share one auth middleware
// instance.
func RegisterRoutes(app *fiber.App, svc service.DocumentService, verifier auth.Verifier, backendMode string) {
	app.Get("/", Status(backendMode))
	app.Get("/api/status", Status(backendMode))

	protected := middleware.RequireAuth(verifier)

	app.Post("/api/upload", protected, UploadDocument(svc))
	app.Get("/api/documents", protected, ListDocuments(svc))
	app.Get("/api/documents/:id", protected, GetDocument(svc))
	app.Patch("/api/documents/:id/status", protected, UpdateDocumentStatus(svc))
	app.Delete("/api/documents/:id", protected, DeleteDocument(svc))
	app.Get("/api/user/profile", protected, UserProfile())
}
