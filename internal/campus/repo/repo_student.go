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
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/pkg/database"
)

type IStudentRepository interface {
	GetStudent(studentId string) (*model.Student, error)
	GetStudentByNis(nis string) (*model.Student, error)
	ListStudents(page model.PageQuery, classId string) ([]model.Student, int64, error)
	CreateStudent(student *model.Student) error
	UpdateStudent(student *model.Student) error
	DeleteStudent(studentId string) error
}

type StudentRepo struct {
	database.IDatabase
}

func NewStudentRepo(db database.IDatabase) IStudentRepository {
	return &StudentRepo{IDatabase: db}
}

func (r *StudentRepo) GetStudent(studentId string) (*model.Student, error) {
	var student model.Student
	if err := r.Database().Where("student_id = ?", studentId).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepo) GetStudentByNis(nis string) (*model.Student, error) {
	var student model.Student
	if err := r.Database().Where("nis = ?", nis).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepo) ListStudents(page model.PageQuery, classId string) ([]model.Student, int64, error) {
	var (
		students []model.Student
		count    int64
	)
	query := r.Database().Model(&model.Student{})
	if classId != "" {
		query = query.Where("class_id = ?", classId)
	}
	if page.Search != "" {
		like := "%" + page.Search + "%"
		query = query.Where("name LIKE ? OR nis LIKE ?", like, like)
	}
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("name ASC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&students).Error
	return students, count, err
}

func (r *StudentRepo) CreateStudent(student *model.Student) error {
	return r.Database().Create(student).Error
}

func (r *StudentRepo) UpdateStudent(student *model.Student) error {
	return r.Database().Save(student).Error
}

func (r *StudentRepo) DeleteStudent(studentId string) error {
	return r.Database().Where("student_id = ?", studentId).Delete(&model.Student{}).Error
}
