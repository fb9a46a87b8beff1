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
)

// ListStudents GET /students
func (h *Handler) ListStudents(c *fiber.Ctx) error {
	var page model.PageQuery
	if err := c.QueryParser(&page); err != nil {
		return http.BadRequest(c, "invalid query parameters")
	}
	result, err := h.svc.Student.List(page, c.Query("classId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, result)
}

// GetStudent GET /students/:studentId
func (h *Handler) GetStudent(c *fiber.Ctx) error {
	student, err := h.svc.Student.Get(c.Params("studentId"))
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, student)
}

// CreateStudent POST /students
func (h *Handler) CreateStudent(c *fiber.Ctx) error {
	var req model.CreateStudentReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	student, err := h.svc.Student.Create(&req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, student)
}

// UpdateStudent PUT /students/:studentId
func (h *Handler) UpdateStudent(c *fiber.Ctx) error {
	var req model.UpdateStudentReq
	if err := parseBody(c, &req); err != nil {
		return err
	}
	student, err := h.svc.Student.Update(c.Params("studentId"), &req)
	if err != nil {
		return replyErr(c, err)
	}
	return http.WithRepJSON(c, student)
}

// DeleteStudent DELETE /students/:studentId
func (h *Handler) DeleteStudent(c *fiber.Ctx) error {
	if err := h.svc.Student.Delete(c.Params("studentId")); err != nil {
		return replyErr(c, err)
	}
	return http.WithRepMsg(c, "student deleted")
}
