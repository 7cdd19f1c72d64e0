// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// the service layer. This is a wiring bug and fails the application at startup.
var errNoServicesProvided = errors.New("no services are provided")
