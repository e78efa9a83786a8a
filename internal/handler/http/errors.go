// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidPathID is returned when an {id} path segment matched the route
// pattern but does not fit into an int64.
var errInvalidPathID = errors.New("invalid id path parameter")

// Response texts that are not tied to an entity.
const (
	msgNotFound            = "Not found"
	msgMethodNotAllowed    = "Method not allowed"
	msgInternalServerError = "Internal Server Error"
	msgInvalidID           = "Invalid id"
)
