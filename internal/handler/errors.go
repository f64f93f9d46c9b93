// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no column protocol
// address is configured. The HTTP and gRPC transports are optional extras and
// cannot run on their own.
var errNoHandlersAreCreated = errors.New("no handlers are created")
