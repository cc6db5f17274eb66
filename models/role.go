// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Role is a named authority controlling endpoint access.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// AllRoles lists every role known to the application, in privilege order.
var AllRoles = []Role{RoleAdmin, RoleManager, RoleUser}

// IsValid reports whether r is one of [AllRoles].
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}

// RolesToStrings converts roles to their plain names, e.g. for token claims.
func RolesToStrings(roles []Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return names
}

// RolesFromStrings maps role names 1:1 onto [Role] values. Names are kept
// verbatim; callers that need only known roles should check [Role.IsValid].
func RolesFromStrings(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		roles = append(roles, Role(name))
	}
	return roles
}
