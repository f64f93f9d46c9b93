// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidColumnParam is returned when the {column} path segment is not a
// number.
var ErrInvalidColumnParam = errors.New("column must be a number")
