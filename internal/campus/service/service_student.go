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
	"github.com/go-campus/campus/internal/campus/model"
	"github.com/go-campus/campus/internal/campus/repo"
	"github.com/go-campus/campus/pkg/id"
)

// StudentService manages student records.
type StudentService struct {
	studentRepo repo.IStudentRepository
}

func NewStudentService(studentRepo repo.IStudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) List(page model.PageQuery, classId string) (*model.PageResult[model.Student], error) {
	page.Normalize()
	students, total, err := s.studentRepo.ListStudents(page, classId)
	if err != nil {
		return nil, err
	}
	return &model.PageResult[model.Student]{
		Items: students,
		Page:  page.Page,
		Limit: page.Limit,
		Total: total,
	}, nil
}

func (s *StudentService) Get(studentId string) (*model.Student, error) {
	return s.studentRepo.GetStudent(studentId)
}

func (s *StudentService) Create(req *model.CreateStudentReq) (*model.Student, error) {
	student := &model.Student{
		StudentId: id.GetUUID(),
		Nis:       req.Nis,
		Name:      req.Name,
		Gender:    req.Gender,
		ClassId:   req.ClassId,
		Address:   req.Address,
		Phone:     req.Phone,
	}
	if err := s.studentRepo.CreateStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Update(studentId string, req *model.UpdateStudentReq) (*model.Student, error) {
	student, err := s.studentRepo.GetStudent(studentId)
	if err != nil {
		return nil, err
	}
	if req.Nis != nil {
		student.Nis = *req.Nis
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.ClassId != nil {
		student.ClassId = *req.ClassId
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if err := s.studentRepo.UpdateStudent(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(studentId string) error {
	if _, err := s.studentRepo.GetStudent(studentId); err != nil {
		return err
	}
	return s.studentRepo.DeleteStudent(studentId)
}
