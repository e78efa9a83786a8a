// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when it is called without the
// service layer. This is a wiring bug and causes the application to fail at
// startup.
var errNoServices = errors.New("no services are provided to handlers")
