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

package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/service"
)

func TestPaymentSameStudentMonthUpserts(t *testing.T) {
	env := newTestEnv(t)
	student, err := env.svc.Student.Create(&model.CreateStudentReq{Nis: "1001", Name: "Budi"})
	require.NoError(t, err)

	_, err = env.svc.Payment.Create(&model.CreatePaymentReq{
		StudentId: student.StudentId, Month: "2026-08", Amount: 150000,
	}, "operator-1")
	require.NoError(t, err)

	p2, err := env.svc.Payment.Create(&model.CreatePaymentReq{
		StudentId: student.StudentId, Month: "2026-08", Amount: 175000, Status: model.PaymentPaid,
	}, "operator-2")
	require.NoError(t, err)

	var count int64
	require.NoError(t, env.db.Model(&model.Payment{}).
		Where("student_id = ? AND month = ?", student.StudentId, "2026-08").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, model.PaymentPaid, p2.Status)
	assert.NotNil(t, p2.PaidAt)
	assert.Equal(t, "operator-2", p2.RecordedBy)
}

func TestPaymentRequiresExistingStudent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Payment.Create(&model.CreatePaymentReq{
		StudentId: "ghost", Month: "2026-08", Amount: 150000,
	}, "operator-1")
	assert.ErrorIs(t, err, service.ErrStudentNotFound)
}
