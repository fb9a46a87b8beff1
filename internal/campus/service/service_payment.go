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

package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/id"
)

// ErrStudentNotFound is returned when a payment references a missing student.
var ErrStudentNotFound = errors.New("student not found")

// PaymentService manages monthly tuition payments.
type PaymentService struct {
	paymentRepo repo.IPaymentRepository
	studentRepo repo.IStudentRepository
}

func NewPaymentService(paymentRepo repo.IPaymentRepository, studentRepo repo.IStudentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

func (s *PaymentService) List(page model.PageQuery, studentId, month string) (*model.PageResult[model.Payment], error) {
	page.Normalize()
	payments, total, err := s.paymentRepo.ListPayments(page, studentId, month)
	if err != nil {
		return nil, err
	}
	return &model.PageResult[model.Payment]{
		Items: payments,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	}, nil
}

func (s *PaymentService) Get(paymentId string) (*model.Payment, error) {
	return s.paymentRepo.GetPayment(paymentId)
}

// Create records one month of tuition for a student. Re-submitting the same
// (student, month) pair updates the existing row instead of duplicating it.
// recordedBy is the user id of the operator, taken from the request
// principal, never from the request body.
func (s *PaymentService) Create(req *model.CreatePaymentReq, recordedBy string) (*model.Payment, error) {
	if _, err := s.studentRepo.GetStudent(req.StudentId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.PaymentUnpaid
	}

	payment := &model.Payment{
		PaymentId:  id.GetUUID(),
		StudentId:  req.StudentId,
		Month:      req.Month,
		Amount:     req.Amount,
		Status:     status,
		RecordedBy: recordedBy,
	}
	if status == model.PaymentPaid {
		now := time.Now()
		payment.PaidAt = &now
	}
	if err := s.paymentRepo.UpsertPayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Update(paymentId string, req *model.UpdatePaymentReq, recordedBy string) (*model.Payment, error) {
	payment, err := s.paymentRepo.GetPayment(paymentId)
	if err != nil {
		return nil, err
	}
	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Status != nil {
		payment.Status = *req.Status
		if payment.Status == model.PaymentPaid && payment.PaidAt == nil {
			now := time.Now()
			payment.PaidAt = &now
		}
		if payment.Status == model.PaymentUnpaid {
			payment.PaidAt = nil
		}
	}
	payment.RecordedBy = recordedBy
	if err := s.paymentRepo.UpsertPayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Delete(paymentId string) error {
	if _, err := s.paymentRepo.GetPayment(paymentId); err != nil {
		return err
	}
	return s.paymentRepo.DeletePayment(paymentId)
}
