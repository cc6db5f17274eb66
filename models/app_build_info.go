// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the version, date and commit linked into a binary with
// -ldflags "-X main.buildVersion=...". It is served by GET /version.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// BuildVersion is empty when the binary was built without linker flags.
func (a AppBuildInfo) BuildVersion() string {
	return a.version
}

func (a AppBuildInfo) BuildDate() string {
	return a.date
}

func (a AppBuildInfo) BuildCommit() string {
	return a.commit
}

// Response returns the body of GET /version.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{Version: a.version, Date: a.date, Commit: a.commit}
}

// WithDefaults replaces unset values with "N/A".
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	return AppBuildInfo{version: orUnknown(a.version), date: orUnknown(a.date), commit: orUnknown(a.commit)}
}

// String renders the startup banner. Unset values are shown as "N/A".
func (a AppBuildInfo) String() string {
	d := a.WithDefaults()
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", d.version, d.date, d.commit)
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
