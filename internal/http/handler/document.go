package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Nezeon/legal-doc-backend/internal/http/middleware"
	"github.com/Nezeon/legal-doc-backend/internal/model"
	"github.com/Nezeon/legal-doc-backend/internal/service"
)

// Status reports liveness and which metadata backend the process selected
// at startup ("firestore" or "local"). Public, no auth.
func Status(backendMode string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"backend": backendMode,
		})
	}
}

// UploadDocument handles multipart uploads on the "file" field.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		// Reject oversized uploads on the declared size before opening the
		// part; the service re-checks the actual byte count.
		if fh.Size > service.MaxUploadSize {
			return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the 10 MiB limit")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), p, f, fh.Filename, fh.Header.Get("Content-Type"), fh.Size)
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":   doc.ID,
			"data": doc,
		})
	}
}

// ListDocuments returns the caller's documents, newest first.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}

		docs, err := svc.List(c.UserContext(), p)
		if err != nil {
			return mapServiceError(c, err)
		}
		if docs == nil {
			docs = []model.Document{}
		}
		return c.JSON(fiber.Map{"documents": docs})
	}
}

// GetDocument returns one document owned by the caller.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}

		doc, err := svc.Get(c.UserContext(), p, c.Params("id"))
		if err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"id":   doc.ID,
			"data": doc,
		})
	}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateDocumentStatus patches the status field of a document owned by
// the caller.
func UpdateDocumentStatus(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}

		var req statusUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "STATUS_REQUIRED", "status is required")
		}

		id := c.Params("id")
		if err := svc.UpdateStatus(c.UserContext(), p, id, req.Status); err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"id":     id,
			"status": req.Status,
		})
	}
}

// DeleteDocument removes a document and its file.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}

		id := c.Params("id")
		if err := svc.Delete(c.UserContext(), p, id); err != nil {
			return mapServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"id":      id,
			"deleted": true,
		})
	}
}

// UserProfile echoes the verified principal back to the caller.
func UserProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := middleware.PrincipalFromCtx(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "NO_TOKEN", "authentication required")
		}
		return c.JSON(p)
	}
}
