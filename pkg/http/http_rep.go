// Copyright 2026 Campus Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the success envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ResponseErr is the failure envelope. Authentication and authorization
// failures share this exact shape so clients can distinguish them by HTTP
// status alone.
type ResponseErr struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WithRepJSON returns 200 with data.
func WithRepJSON(c *fiber.Ctx, data any) error {
	return c.JSON(Response{
		Success: true,
		Data:    data,
	})
}

// WithRepMsg returns 200 with a message only.
func WithRepMsg(c *fiber.Ctx, msg string) error {
	return c.JSON(Response{
		Success: true,
		Message: msg,
	})
}

// WithRepDetail returns 200 with a message and data.
func WithRepDetail(c *fiber.Ctx, msg string, data any) error {
	return c.JSON(Response{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// WithRepErr returns the failure envelope with the given HTTP status.
func WithRepErr(c *fiber.Ctx, status int, errTitle, msg string) error {
	return c.Status(status).JSON(ResponseErr{
		Success: false,
		Error:   errTitle,
		Message: msg,
	})
}

// Canned failures. Status codes follow the API contract: 401 authentication,
// 403 authorization, 404 missing resource, 400 invalid input, 500 fault.

func Unauthorized(c *fiber.Ctx, msg string) error {
	return WithRepErr(c, fiber.StatusUnauthorized, "Authentication required", msg)
}

func InvalidToken(c *fiber.Ctx, msg string) error {
	return WithRepErr(c, fiber.StatusUnauthorized, "Invalid token", msg)
}

func TokenExpired(c *fiber.Ctx) error {
	return WithRepErr(c, fiber.StatusUnauthorized, "Token expired", "session token has expired, sign in again")
}

func Forbidden(c *fiber.Ctx) error {
	return WithRepErr(c, fiber.StatusForbidden, "Forbidden", "you do not have permission to perform this action")
}

func NotFound(c *fiber.Ctx, msg string) error {
	return WithRepErr(c, fiber.StatusNotFound, "Not found", msg)
}

func BadRequest(c *fiber.Ctx, msg string) error {
	return WithRepErr(c, fiber.StatusBadRequest, "Validation failed", msg)
}

func InternalError(c *fiber.Ctx) error {
	return WithRepErr(c, fiber.StatusInternalServerError, "Internal error", "something went wrong, please contact the administrator")
}
