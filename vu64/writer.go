// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package vu64

import "io"

// WriteUint64 encodes value and writes the encoded bytes to w. Any
// partial-write or sink failure propagates from w.Write.
func WriteUint64(w io.Writer, value uint64) error {
	enc := Encode(value)
	_, err := w.Write(enc.Bytes())
	return err
}

// WriteInt64 zigzag-transforms value and writes its encoding to w.
func WriteInt64(w io.Writer, value int64) error {
	return WriteUint64(w, Zigzag(value))
}
