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

// Package authz holds the grant evaluation core. It is pure and
// side-effect free so the request middleware and the UI guard payload share
// one implementation of the allow/deny decision.
package authz

import "net/http"

// Capability is one of the four independently grantable actions.
type Capability string

const (
	CapRead   Capability = "read"
	CapWrite  Capability = "write" // create
	CapUpdate Capability = "update"
	CapDelete Capability = "delete"
)

// CapabilityForMethod maps an HTTP method to its default capability.
// The second return is false for methods outside the CRUD set.
func CapabilityForMethod(method string) (Capability, bool) {
	switch method {
	case http.MethodGet, http.MethodHead:
		return CapRead, true
	case http.MethodPost:
		return CapWrite, true
	case http.MethodPut, http.MethodPatch:
		return CapUpdate, true
	case http.MethodDelete:
		return CapDelete, true
	default:
		return "", false
	}
}

// Grant is the four capability bits of one (role, resource) binding.
// The zero value denies everything, which makes a missing row and an
// explicit all-false row indistinguishable to callers.
type Grant struct {
	CanRead   bool `json:"canRead"`
	CanWrite  bool `json:"canWrite"`
	CanUpdate bool `json:"canUpdate"`
	CanDelete bool `json:"canDelete"`
}

// Allows reports whether the grant carries the given capability.
// There is no capability hierarchy: each bit stands alone.
func (g Grant) Allows(cap Capability) bool {
	switch cap {
	case CapRead:
		return g.CanRead
	case CapWrite:
		return g.CanWrite
	case CapUpdate:
		return g.CanUpdate
	case CapDelete:
		return g.CanDelete
	default:
		return false
	}
}

// GrantSet is the complete authorization state of one role: the admin flag
// plus every grant keyed by the resource path.
type GrantSet struct {
	IsAdmin bool             `json:"isAdmin"`
	Grants  map[string]Grant `json:"grants"`
}

// Allows decides access for a resource path and capability.
// Administrators bypass grants entirely. Lookup is by exact path equality;
// a grant on "/classes" says nothing about "/classes/5/students".
func (s GrantSet) Allows(path string, cap Capability) bool {
	if s.IsAdmin {
		return true
	}
	return s.Grants[path].Allows(cap)
}
