package server

import (
	"time"

	"quill/internal/auth"
	"quill/internal/models"
	"quill/internal/observability"
	"quill/internal/session"
	"quill/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// setSessionCookie attaches the session token to the response.
func (s *Server) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  time.Now().Add(s.sessions.TTL()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validate input
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and password are required"))
	}
	if err := validation.ValidateName(req.Name); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Check if user already exists
	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("You've already signed up with this email. Log in instead."))
	}

	// Hash password
	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: digest,
	}

	// The unique index is the authority on duplicates; the lookup above only
	// narrows the race window.
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, models.StatusFor(createErr), createErr)
	}

	token, err := s.sessions.Establish(c.Context(), user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)
	observability.SessionsEstablished.WithLabelValues("register").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": user,
	})
}

// Login handles POST /api/auth/login. Unknown accounts and wrong passwords
// produce the same response so the endpoint cannot be used to enumerate
// registered emails.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewAuthenticationError())
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		observability.LoginAttempts.WithLabelValues("failure").Inc()
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewAuthenticationError())
	}

	token, err := s.sessions.Establish(c.Context(), user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setSessionCookie(c, token)
	observability.LoginAttempts.WithLabelValues("success").Inc()
	observability.SessionsEstablished.WithLabelValues("login").Inc()

	return c.JSON(fiber.Map{
		"user": user,
	})
}

// Logout handles POST /api/auth/logout. It terminates unconditionally: logging
// out an anonymous caller is a successful no-op.
func (s *Server) Logout(c *fiber.Ctx) error {
	s.sessions.Terminate(c.Context(), c.Cookies(session.CookieName))
	s.clearSessionCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
