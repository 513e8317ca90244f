// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors classifying outbound node call failures. Callers match
// against them with [errors.Is]; the HTTP layer maps each to a stable status.
var (
	// ErrNodeUnreachable is returned when a connection to the node cannot be
	// established at all (refused, DNS failure, reset).
	ErrNodeUnreachable = errors.New("swarm node unreachable")

	// ErrNodeTimeout is returned when the node does not respond within the
	// configured request timeout.
	ErrNodeTimeout = errors.New("swarm node request timed out")

	// ErrNodeStatus is returned when the node answers with a non-2xx HTTP
	// status. The wrapping error message carries the original status code.
	ErrNodeStatus = errors.New("swarm node rejected the request")

	// ErrMalformedResponse is returned when the node's response body is not
	// parseable JSON or its envelope shape is not recognized.
	ErrMalformedResponse = errors.New("malformed swarm node response")
)
