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

package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/http"
	"github.com/go-campus/campus/pkg/http/middleware"
)

// ListPayments GET /payments
func (h *Handler) ListPayments(c *fiber.Ctx) error {
	var page model.PageQuery
	if err := c.QueryParser(&page); err != nil {
		return http.BadRequest(c, "invalid query parameters")
	}
	result, err := h.svc.Payment.List(page, c.Query("studentId"), c.Query("month"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, result)
}

// GetPayment GET /payments/:paymentId
func (h *Handler) GetPayment(c *fiber.Ctx) error {
	payment, err := h.svc.Payment.Get(c.Params("paymentId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, payment)
}

// CreatePayment POST /payments
// The operator identity comes from the verified claims, not from the body.
func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return http.Unauthorized(c, "missing authorization header")
	}
	var req model.CreatePaymentReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	payment, err := h.svc.Payment.Create(&req, claims.UserId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, payment)
}

// UpdatePayment PUT /payments/:paymentId
func (h *Handler) UpdatePayment(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return http.Unauthorized(c, "missing authorization header")
	}
	var req model.UpdatePaymentReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	payment, err := h.svc.Payment.Update(c.Params("paymentId"), &req, claims.UserId)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, payment)
}

// DeletePayment DELETE /payments/:paymentId
func (h *Handler) DeletePayment(c *fiber.Ctx) error {
	if err := h.svc.Payment.Delete(c.Params("paymentId")); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "payment deleted")
}
