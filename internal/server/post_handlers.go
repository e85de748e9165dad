package server

import (
	"time"

	"quill/internal/authz"
	"quill/internal/models"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

// ListPosts handles GET /api/posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"count": len(posts),
	})
}

// GetPost handles GET /api/posts/:id and includes the post's comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	post, err := s.postRepo.GetByIDWithComments(c.Context(), uint(id))
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{
		"post": post,
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	identity := identityFromCtx(c)
	if err := s.gate.Authorize(identity, authz.ActionCreatePost); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidatePostInput(req.Title, req.Subtitle, req.Body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	author, _ := identity.User()
	post := &models.Post{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Date:     time.Now().Format(models.DateLayout),
		Body:     req.Body,
		ImageURL: req.ImageURL,
		AuthorID: author.ID,
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	created, err := s.postRepo.GetByID(c.Context(), post.ID)
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post": created,
	})
}

// UpdatePost handles PUT /api/posts/:id. The display date is fixed at creation
// and never changed by edits.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	identity := identityFromCtx(c)
	if err := s.gate.Authorize(identity, authz.ActionEditPost); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidatePostInput(req.Title, req.Subtitle, req.Body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	post, err := s.postRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	post.Title = req.Title
	post.Subtitle = req.Subtitle
	post.Body = req.Body
	post.ImageURL = req.ImageURL

	if err := s.postRepo.Update(c.Context(), post); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.JSON(fiber.Map{
		"post": post,
	})
}

// DeletePost handles DELETE /api/posts/:id. Comments on the post are removed
// with it.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	identity := identityFromCtx(c)
	if err := s.gate.Authorize(identity, authz.ActionDeletePost); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	// Existence check so a delete of a missing post reports 404 rather than
	// silently succeeding.
	if _, err := s.postRepo.GetByID(c.Context(), uint(id)); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	if err := s.postRepo.Delete(c.Context(), uint(id)); err != nil {
		return models.RespondWithError(c, models.StatusFor(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
