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

type IClassRepository interface {
	GetClass(classId string) (*model.Class, error)
	ListClasses(homeroomUserId string) ([]model.Class, error)
	CreateClass(class *model.Class) error
	UpdateClass(class *model.Class) error
	DeleteClass(classId string) error
}

type ClassRepo struct {
	database.IDatabase
}

func NewClassRepo(db database.IDatabase) IClassRepository {
	return &ClassRepo{IDatabase: db}
}

func (r *ClassRepo) GetClass(classId string) (*model.Class, error) {
	var class model.Class
	if err := r.Database().Where("class_id = ?", classId).First(&class).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// ListClasses returns all classes, or only the classes whose homeroom teacher
// matches homeroomUserId when it is non-empty.
func (r *ClassRepo) ListClasses(homeroomUserId string) ([]model.Class, error) {
	var classes []model.Class
	query := r.Database().Model(&model.Class{})
	if homeroomUserId != "" {
		query = query.Where("homeroom_user_id = ?", homeroomUserId)
	}
	err := query.Order("name ASC").Find(&classes).Error
	return classes, err
}

func (r *ClassRepo) CreateClass(class *model.Class) error {
	return r.Database().Create(class).Error
}

func (r *ClassRepo) UpdateClass(class *model.Class) error {
	return r.Database().Save(class).Error
}

func (r *ClassRepo) DeleteClass(classId string) error {
	return r.Database().Where("class_id = ?", classId).Delete(&model.Class{}).Error
}
