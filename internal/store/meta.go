package store

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/mod/semver"
)

// SchemaVersion is the layout version of the persisted state.
const SchemaVersion = 2

// ErrNewerData is returned when the database was written by a build with
// a newer persisted layout than this one understands.
var ErrNewerData = errors.New("data written by a newer version")

// Meta records which build last wrote the database.
type Meta struct {
	SchemaVersion int    `json:"schemaVersion"`
	AppVersion    string `json:"appVersion,omitempty"`
}

// CheckMeta compares the stored meta against this build and records the
// current versions. A missing or malformed meta is treated as version 1,
// the layout written before meta existed. The stored app version is only
// advanced, never rolled back.
func CheckMeta(ctx context.Context, kv KV, appVersion string) (Meta, error) {
	stored := Meta{SchemaVersion: 1}
	if _, err := LoadJSON(ctx, kv, KeyMeta, &stored); err != nil && !errors.Is(err, ErrMalformed) {
		return Meta{}, err
	}

	if stored.SchemaVersion > SchemaVersion {
		return stored, fmt.Errorf("%w: schema %d, supported %d", ErrNewerData, stored.SchemaVersion, SchemaVersion)
	}

	next := Meta{SchemaVersion: SchemaVersion, AppVersion: stored.AppVersion}
	if NewerVersion(appVersion, stored.AppVersion) {
		next.AppVersion = canonical(appVersion)
	}
	if next != stored {
		if err := SaveJSON(ctx, kv, KeyMeta, next); err != nil {
			return stored, err
		}
	}
	return stored, nil
}

// NewerVersion reports whether a is a valid semantic version greater than
// b. An invalid b is treated as older than any valid a.
func NewerVersion(a, b string) bool {
	a, b = canonical(a), canonical(b)
	if !semver.IsValid(a) {
		return false
	}
	if !semver.IsValid(b) {
		return true
	}
	return semver.Compare(a, b) > 0
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return semver.Canonical(v)
}
