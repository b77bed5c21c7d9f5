// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package vu64

import "io"

// ReadUint64 reads one encoded value from r. It reads the first byte,
// computes the total length, then reads exactly the follow bytes, so it
// never consumes past the end of the encoded value.
//
// Transport failures surface as io errors: io.EOF if the source is
// exhausted before the first byte, io.ErrUnexpectedEOF if it dries up
// mid-value. Codec failures surface as ErrRedundant. The two channels
// stay distinguishable with errors.Is.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [MaxBytes]byte
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}
	length := DecodedLen(buf[0])
	if length > 1 {
		if _, err := io.ReadFull(r, buf[1:length]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
	}
	return DecodeSplit(buf[0], buf[1:length])
}

// ReadInt64 reads one encoded value from r and undoes the zigzag
// transform. Error behavior matches ReadUint64.
func ReadInt64(r io.Reader) (int64, error) {
	u, err := ReadUint64(r)
	if err != nil {
		return 0, err
	}
	return Unzigzag(u), nil
}
