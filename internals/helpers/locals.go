package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetUserRole membaca role principal dari context.
func GetUserRole(c *fiber.Ctx) string {
	if role, ok := c.Locals("userRole").(string); ok {
		return role
	}
	return ""
}

// GetSchoolIDFromToken membaca school_id principal (boleh kosong untuk
// role global seperti MASTERADMIN/DINKES).
func GetSchoolIDFromToken(c *fiber.Ctx) *uuid.UUID {
	s, ok := c.Locals("school_id").(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// GetSchoolIDFromAPIKey membaca school hasil resolve X-API-KEY.
// Hanya terisi oleh middleware VerifyAPIKey; payload request tidak pernah
// boleh menentukan school untuk jalur device.
func GetSchoolIDFromAPIKey(c *fiber.Ctx) (uuid.UUID, error) {
	s, ok := c.Locals("api_school_id").(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "API key belum diverifikasi")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "API key belum diverifikasi")
	}
	return id, nil
}
