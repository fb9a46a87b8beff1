package model

// Student record. Nis is the student registration number.
type Student struct {
	BaseModel
	StudentId string `gorm:"column:student_id;not null;uniqueIndex" json:"studentId"`
	Nis       string `gorm:"column:nis;not null;uniqueIndex" json:"nis"`
	Name      string `gorm:"column:name;not null" json:"name"`
	Gender    string `gorm:"column:gender" json:"gender"`
	ClassId   string `gorm:"column:class_id;index" json:"classId"`
	Address   string `gorm:"column:address" json:"address"`
	Phone     string `gorm:"column:phone" json:"phone"`
}

func (Student) TableName() string {
	return "t_student"
}

// CreateStudentReq request for creating a student.
type CreateStudentReq struct {
	Nis     string `json:"nis" validate:"required,max=30"`
	Name    string `json:"name" validate:"required,max=100"`
	Gender  string `json:"gender" validate:"omitempty,oneof=male female"`
	ClassId string `json:"classId"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateStudentReq request for updating a student.
type UpdateStudentReq struct {
	Nis     *string `json:"nis,omitempty"`
	Name    *string `json:"name,omitempty"`
	Gender  *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	ClassId *string `json:"classId,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}
