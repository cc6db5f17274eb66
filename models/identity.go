// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Identity is the authenticated principal attached to a request after its
// access token has been verified. Authorities are the role names carried by
// the token, mapped one to one.
type Identity struct {
	Username string
	Roles    []Role
}

// HasRole reports whether the identity was granted role. Roles are matched
// exactly; there is no role hierarchy.
func (i Identity) HasRole(role Role) bool {
	return slices.Contains(i.Roles, role)
}
