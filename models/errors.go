// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrMissingBatchID is returned by [BuildStampDetails] when the raw upstream
// record is not a JSON object or its batchID field is absent, empty, or not
// a string. It is the only hard validation failure when building a stamp
// record; every other field is coerced best-effort.
var ErrMissingBatchID = errors.New("stamp record is missing a batch ID")
