package controllers

import "github.com/gofiber/fiber/v2"

// DefaultProfile is the storage namespace used when a request does not
// name one. It plays the role of the single browser profile.
const DefaultProfile = "local"

// profileFrom resolves the storage namespace for a request. There are no
// user accounts; the X-Profile header alone scopes state.
func profileFrom(c *fiber.Ctx) string {
	if p := c.Get("X-Profile"); p != "" {
		return p
	}
	return DefaultProfile
}
