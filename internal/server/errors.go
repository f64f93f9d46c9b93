// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoColumnListener = errors.New("TCP column listener is not configured")
)
