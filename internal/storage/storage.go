// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package storage implements the platform-independent binary form of a date.
package storage

import (
	"encoding/binary"
	"errors"
)

const (
	// Size is the size of a serialized date
	Size = 16

	storageHeader = "LAITHEAN"
	headerSize    = 8
	extraByte     = 0xFF
	storageFooter = 0x70

	maxMonth = 11
	maxDay   = 30
)

// ErrFormat is returned when a buffer does not hold a serialized date
var ErrFormat = errors.New("storage: invalid date format")

// Storage is the serialized date format. The contents are platform-independent.
type Storage [Size]byte

// Data is the content of a serialized date: the year, the 0-based month
// and the 0-based day index within the month
type Data struct {
	Year  uint32
	Month uint8
	Day   uint8
}

// Store serializes d into storage
func Store(d Data, storage *Storage) {
	pos := 0

	// Header
	copy(storage[pos:], storageHeader)
	pos += headerSize

	// Year
	binary.LittleEndian.PutUint32(storage[pos:], d.Year)
	pos += 4

	// Month and day
	storage[pos] = d.Month
	pos++
	storage[pos] = d.Day
	pos++

	// Extra byte
	storage[pos] = extraByte
	pos++

	// Footer
	storage[pos] = storageFooter
}

// Load deserializes the date held in storage. Only the layout and the
// field ranges are checked; whether the day exists in its month is left
// to the caller.
func Load(storage *Storage) (Data, error) {
	var d Data
	pos := 0

	// Check header
	if string(storage[pos:pos+headerSize]) != storageHeader {
		return Data{}, ErrFormat
	}
	pos += headerSize

	// Load year
	d.Year = binary.LittleEndian.Uint32(storage[pos:])
	pos += 4

	// Load month and day
	d.Month = storage[pos]
	pos++
	d.Day = storage[pos]
	pos++
	if d.Month > maxMonth || d.Day > maxDay {
		return Data{}, ErrFormat
	}

	// Check extra byte
	if storage[pos] != extraByte {
		return Data{}, ErrFormat
	}
	pos++

	// Check footer
	if storage[pos] != storageFooter {
		return Data{}, ErrFormat
	}

	return d, nil
}
