// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads against the video-blog's
// field rules before any store is touched.
//
// A Validator accepts a model value (or pointer) and an optional list of
// field names that narrows which rules run. All failing fields are reported
// together as ValidationErrors; unsupported values yield ErrUnsupportedType
// and unknown field names yield ErrUnknownField.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
