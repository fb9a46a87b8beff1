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

package repo

import (
	"gorm.io/gorm/clause"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/database"
)

type IPaymentRepository interface {
	GetPayment(paymentId string) (*model.Payment, error)
	ListPayments(page model.PageQuery, studentId, month string) ([]model.Payment, int64, error)
	UpsertPayment(payment *model.Payment) error
	DeletePayment(paymentId string) error
}

type PaymentRepo struct {
	database.IDatabase
}

func NewPaymentRepo(db database.IDatabase) IPaymentRepository {
	return &PaymentRepo{IDatabase: db}
}

func (r *PaymentRepo) GetPayment(paymentId string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.Database().Where("payment_id = ?", paymentId).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepo) ListPayments(page model.PageQuery, studentId, month string) ([]model.Payment, int64, error) {
	var (
		payments []model.Payment
		count    int64
	)
	query := r.Database().Model(&model.Payment{})
	if studentId != "" {
		query = query.Where("student_id = ?", studentId)
	}
	if month != "" {
		query = query.Where("month = ?", month)
	}
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("month DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&payments).Error
	return payments, count, err
}

// UpsertPayment records one month of tuition for a student. The unique index
// on (student_id, month) makes repeated submissions update the existing row.
func (r *PaymentRepo) UpsertPayment(payment *model.Payment) error {
	return r.Database().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "status", "paid_at", "recorded_by", "updated_at"}),
	}).Create(payment).Error
}

func (r *PaymentRepo) DeletePayment(paymentId string) error {
	return r.Database().Where("payment_id = ?", paymentId).Delete(&model.Payment{}).Error
}
