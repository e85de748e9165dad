package server

import (
	"github.com/gofiber/fiber/v2"
)

// AboutPage handles GET /api/pages/about
func (s *Server) AboutPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "About Me",
		"body":  "Quill is a small personal blog. Posts are written by the site owner; readers can register and join the conversation in the comments.",
	})
}

// ContactPage handles GET /api/pages/contact
func (s *Server) ContactPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Contact Me",
		"email": "hello@quill.local",
		"body":  "Have a question or a story tip? Send an email and I'll get back to you.",
	})
}
