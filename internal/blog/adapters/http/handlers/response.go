package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

func blogIDParam(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(ErrorInvalidBlogID)
	}
	return id, nil
}
