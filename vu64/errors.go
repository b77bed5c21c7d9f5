// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package vu64

import "errors"

// ErrTruncated is returned when the input ends before the length implied
// by the first byte is satisfied.
var ErrTruncated = errors.New("truncated vu64 value")

// ErrRedundant is returned when an encoding is syntactically valid but
// spends more bytes than the decoded value needs. Only the shortest
// encoding of a value is accepted.
var ErrRedundant = errors.New("redundant vu64 encoding (unnecessary leading ones)")
