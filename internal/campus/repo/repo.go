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
	"github.com/go-campus/campus/pkg/database"
)

// Repositories aggregates every repository for injection.
type Repositories struct {
	User     IUserRepository
	Role     IRoleRepository
	Menu     IMenuRepository
	RoleMenu IRoleMenuRepository
	Student  IStudentRepository
	Class    IClassRepository
	Payment  IPaymentRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db database.IDatabase) *Repositories {
	return &Repositories{
		User:     NewUserRepo(db),
		Role:     NewRoleRepo(db),
		Menu:     NewMenuRepo(db),
		RoleMenu: NewRoleMenuRepo(db),
		Student:  NewStudentRepo(db),
		Class:    NewClassRepo(db),
		Payment:  NewPaymentRepo(db),
	}
}
