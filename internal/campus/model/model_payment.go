package model

import "time"

// Payment statuses.
const (
	PaymentPaid   = "paid"
	PaymentUnpaid = "unpaid"
)

// Payment is one month of tuition for one student. RecordedBy is the user id
// of the operator who entered it, taken from the request principal.
type Payment struct {
	BaseModel
	PaymentId  string     `gorm:"column:payment_id;not null;uniqueIndex" json:"paymentId"`
	StudentId  string     `gorm:"column:student_id;not null;uniqueIndex:idx_student_month" json:"studentId"`
	Month      string     `gorm:"column:month;not null;uniqueIndex:idx_student_month" json:"month"` // e.g. 2026-01
	Amount     int64      `gorm:"column:amount;not null" json:"amount"`
	Status     string     `gorm:"column:status;not null;default:unpaid" json:"status"`
	PaidAt     *time.Time `gorm:"column:paid_at" json:"paidAt,omitempty"`
	RecordedBy string     `gorm:"column:recorded_by" json:"recordedBy"`
}

func (Payment) TableName() string {
	return "t_payment"
}

// CreatePaymentReq request for recording a payment.
type CreatePaymentReq struct {
	StudentId string `json:"studentId" validate:"required"`
	Month     string `json:"month" validate:"required,len=7"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Status    string `json:"status" validate:"omitempty,oneof=paid unpaid"`
}

// UpdatePaymentReq request for updating a payment.
type UpdatePaymentReq struct {
	Amount *int64  `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=paid unpaid"`
}
