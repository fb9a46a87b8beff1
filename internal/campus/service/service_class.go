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

// ClassService manages homeroom classes.
type ClassService struct {
	classRepo repo.IClassRepository
	roleRepo  repo.IRoleRepository
}

func NewClassService(classRepo repo.IClassRepository, roleRepo repo.IRoleRepository) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		roleRepo:  roleRepo,
	}
}

// List returns classes visible to the caller. Administrators see all
// classes; everyone else sees only classes they are homeroom teacher of.
// This is row scoping on top of, not instead of, the grant check that
// already admitted the request.
func (s *ClassService) List(callerUserId, callerRoleId string) ([]model.Class, error) {
	role, err := s.roleRepo.GetRole(callerRoleId)
	if err != nil {
		return nil, err
	}
	if role.IsAdmin {
		return s.classRepo.ListClasses("")
	}
	return s.classRepo.ListClasses(callerUserId)
}

func (s *ClassService) Get(classId string) (*model.Class, error) {
	return s.classRepo.GetClass(classId)
}

func (s *ClassService) Create(req *model.CreateClassReq) (*model.Class, error) {
	class := &model.Class{
		ClassId:        id.GetUUID(),
		Name:           req.Name,
		Grade:          req.Grade,
		HomeroomUserId: req.HomeroomUserId,
	}
	if err := s.classRepo.CreateClass(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Update(classId string, req *model.UpdateClassReq) (*model.Class, error) {
	class, err := s.classRepo.GetClass(classId)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Grade != nil {
		class.Grade = *req.Grade
	}
	if req.HomeroomUserId != nil {
		class.HomeroomUserId = *req.HomeroomUserId
	}
	if err := s.classRepo.UpdateClass(class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Delete(classId string) error {
	if _, err := s.classRepo.GetClass(classId); err != nil {
		return err
	}
	return s.classRepo.DeleteClass(classId)
}
