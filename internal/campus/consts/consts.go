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

package consts

// Redis key prefixes.
const (
	// GrantSetKeyPrefix caches the evaluated grant set per role id.
	GrantSetKeyPrefix = "campus:grants:role:"
)

// Canonical resource paths used as authorization keys. Every protected route
// is pinned to exactly one of these; matching is by string equality, never
// by prefix.
const (
	ResourceUsers       = "/users"
	ResourceRoles       = "/roles"
	ResourceMenus       = "/menus"
	ResourcePermissions = "/permissions"
	ResourceStudents    = "/students"
	ResourceClasses     = "/classes"
	ResourcePayments    = "/payments"
)
