package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"panditji-api/configs"
	"panditji-api/responses"
)

// AdminLogin verifies the configured admin credentials and issues a
// 24h admin token. This replaces the old client-side credential check;
// credentials still come from the environment, so it stays a
// development stub until a user store exists.
func AdminLogin(c *fiber.Ctx) error {
	var reqBody struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
			Result:  nil,
		})
	}

	if reqBody.Username != configs.C.AdminUsername || configs.C.AdminPasswordHash == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid username or password",
			Result:  nil,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(configs.C.AdminPasswordHash), []byte(reqBody.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid username or password",
			Result:  nil,
		})
	}

	claims := jwt.MapClaims{
		"sub":  reqBody.Username,
		"role": "admin",
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.C.JWTSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating token",
			Result:  nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Result: &fiber.Map{
			"token": token,
		},
	})
}
