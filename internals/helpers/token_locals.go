package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// localUUID reads a uuid claim stored on the request by the auth middleware.
func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" not found in token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" is empty in token")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, key+" in token is not valid")
	}
	return id, nil
}

// GetUserIDFromToken returns 401 when not logged in, 400 on a malformed id.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, "user_id")
}

// GetEduCenterIDFromToken: tenant scope for EDU_CENTER owners.
func GetEduCenterIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, "edu_center_id")
}

// GetBranchIDFromToken: tenant scope for BRANCH admins.
func GetBranchIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, "branch_id")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("user_role").(string); ok {
		return role
	}
	return ""
}
