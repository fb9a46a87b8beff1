package model

// Class is a homeroom group. HomeroomUserId is the account of the teacher
// responsible for it; non-admin class listings are scoped to it.
type Class struct {
	BaseModel
	ClassId        string `gorm:"column:class_id;not null;uniqueIndex" json:"classId"`
	Name           string `gorm:"column:name;not null;uniqueIndex" json:"name"`
	Grade          string `gorm:"column:grade" json:"grade"`
	HomeroomUserId string `gorm:"column:homeroom_user_id;index" json:"homeroomUserId"`
}

func (Class) TableName() string {
	return "t_class"
}

// CreateClassReq request for creating a class.
type CreateClassReq struct {
	Name           string `json:"name" validate:"required,max=50"`
	Grade          string `json:"grade"`
	HomeroomUserId string `json:"homeroomUserId"`
}

// UpdateClassReq request for updating a class.
type UpdateClassReq struct {
	Name           *string `json:"name,omitempty"`
	Grade          *string `json:"grade,omitempty"`
	HomeroomUserId *string `json:"homeroomUserId,omitempty"`
}
