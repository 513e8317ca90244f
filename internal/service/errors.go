// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrStampNotFound is returned by [StampService.GetStamp] when the node's
	// batch listing contains no record with the requested batch ID.
	ErrStampNotFound = errors.New("stamp not found")
)
