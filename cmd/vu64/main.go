// Copyright (C) vu64 Authors 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Command vu64 encodes and decodes vu64 byte streams for inspection.
//
// Usage:
//
//	vu64 -d file_path    hex-dump the file in 8-byte chunks and decode each chunk
//	vu64 -e file_path    read 8 little-endian bytes from the file and encode them
package main

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/aki-akaguma/vu64/vu64"
)

const (
	programName    = "vu64"
	programVersion = "0.9.0"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(programName + ": ")

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	switch opt := args[0]; opt {
	case "-d":
		if len(args) < 2 {
			log.Fatalf("option %s requires a file path", opt)
		}
		if err := runDecoder(args[1]); err != nil {
			log.Fatal(err)
		}
	case "-e":
		if len(args) < 2 {
			log.Fatalf("option %s requires a file path", opt)
		}
		if err := runEncoder(args[1]); err != nil {
			log.Fatal(err)
		}
	case "--help", "-h", "-H", "help":
		printUsage()
	case "--version", "-V", "-v":
		fmt.Printf("%s %s\n", programName, programVersion)
	default:
		log.Fatalf("unknown option: %s", opt)
	}
}

func printUsage() {
	fmt.Printf("[usage] %s { -d | -e } file_path\n", programName)
}

// runDecoder reads the file in 8-byte chunks, printing each chunk as a
// hex list before decoding it.
func runDecoder(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	chunk := make([]byte, 0, 8)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		chunk = append(chunk, b)
		if len(chunk) >= 8 {
			fmt.Println(formatChunk(chunk))
			if _, err := vu64.Decode(chunk); err != nil {
				return err
			}
			chunk = chunk[:0]
		}
	}
	return nil
}

// runEncoder reads exactly 8 little-endian bytes from the file and
// encodes the value into an in-memory buffer.
func runEncoder(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()

	var raw [8]byte
	if _, err := io.ReadFull(bufio.NewReader(f), raw[:]); err != nil {
		return errors.Wrapf(err, "read 8 bytes from %q", path)
	}
	value := binary.LittleEndian.Uint64(raw[:])

	var buf bytes.Buffer
	return vu64.WriteUint64(&buf, value)
}

func formatChunk(chunk []byte) string {
	parts := make([]string, len(chunk))
	for i, b := range chunk {
		parts[i] = fmt.Sprintf("0x%02x", b)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
