package server

import (
	"quill/internal/models"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ListComments handles GET /api/posts/:id/comments
func (s *Server) ListComments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	// Listing comments of a missing post is a 404, not an empty list.
	if _, err := s.postRepo.GetByID(c.Context(), uint(id)); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	comments, err := s.commentRepo.ListByPost(c.Context(), uint(id))
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{
		"comments": comments,
		"count":    len(comments),
	})
}

// CreateComment handles POST /api/posts/:id/comments. Any authenticated user
// may comment; anonymous callers are asked to log in.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	identity := identityFromCtx(c)
	author, ok := identity.User()
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("You need to login or register to comment."))
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateCommentInput(req.Text); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if _, err := s.postRepo.GetByID(c.Context(), uint(id)); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	comment := &models.Comment{
		Text:     req.Text,
		AuthorID: author.ID,
		PostID:   uint(id),
	}
	if err := s.commentRepo.Create(c.Context(), comment); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	created, err := s.commentRepo.GetByID(c.Context(), comment.ID)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": created,
	})
}
