package authz

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allCaps = []Capability{CapRead, CapWrite, CapUpdate, CapDelete}

func TestAdminBypassesAllGrants(t *testing.T) {
	// no grants at all, still everything is allowed
	set := GrantSet{IsAdmin: true}

	for _, path := range []string{"/students", "/classes", "/payments", "/never-declared"} {
		for _, cap := range allCaps {
			assert.True(t, set.Allows(path, cap), "admin should pass %s %s", path, cap)
		}
	}
}

func TestMissingGrantDeniesEverything(t *testing.T) {
	set := GrantSet{Grants: map[string]Grant{
		"/students": {CanRead: true},
	}}

	for _, cap := range allCaps {
		assert.False(t, set.Allows("/classes", cap))
	}
}

func TestNilGrantMapDenies(t *testing.T) {
	var set GrantSet
	assert.False(t, set.Allows("/students", CapRead))
}

func TestSingleCapabilityBit(t *testing.T) {
	cases := []struct {
		name  string
		grant Grant
		allow Capability
	}{
		{"read only", Grant{CanRead: true}, CapRead},
		{"write only", Grant{CanWrite: true}, CapWrite},
		{"update only", Grant{CanUpdate: true}, CapUpdate},
		{"delete only", Grant{CanDelete: true}, CapDelete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := GrantSet{Grants: map[string]Grant{"/students": tc.grant}}
			for _, cap := range allCaps {
				got := set.Allows("/students", cap)
				assert.Equal(t, cap == tc.allow, got, "capability %s", cap)
			}
		})
	}
}

func TestExplicitAllFalseEqualsAbsence(t *testing.T) {
	explicit := GrantSet{Grants: map[string]Grant{"/roles": {}}}
	absent := GrantSet{Grants: map[string]Grant{}}

	for _, cap := range allCaps {
		assert.Equal(t, absent.Allows("/roles", cap), explicit.Allows("/roles", cap))
		assert.False(t, explicit.Allows("/roles", cap))
	}
}

func TestNoPrefixMatching(t *testing.T) {
	set := GrantSet{Grants: map[string]Grant{
		"/classes": {CanRead: true, CanWrite: true, CanUpdate: true, CanDelete: true},
	}}

	assert.True(t, set.Allows("/classes", CapRead))
	assert.False(t, set.Allows("/classes/5/students", CapRead))
}

func TestCapabilityForMethod(t *testing.T) {
	cases := map[string]Capability{
		http.MethodGet:    CapRead,
		http.MethodHead:   CapRead,
		http.MethodPost:   CapWrite,
		http.MethodPut:    CapUpdate,
		http.MethodPatch:  CapUpdate,
		http.MethodDelete: CapDelete,
	}
	for method, want := range cases {
		got, ok := CapabilityForMethod(method)
		assert.True(t, ok, method)
		assert.Equal(t, want, got, method)
	}

	_, ok := CapabilityForMethod(http.MethodOptions)
	assert.False(t, ok)
}
