// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package laithean

import (
	"errors"

	"github.com/complex-gh/laithean_go/internal/storage"
)

// StorageSize is the size of a serialized date
const StorageSize = storage.Size

// Storage is the serialized date format. The contents are platform-independent.
type Storage = storage.Storage

// Store serializes d in a platform-independent way
func (d Date) Store(s *Storage) {
	storage.Store(storage.Data{
		Year:  d.year,
		Month: uint8(d.month.Ordinal()),
		Day:   d.day,
	}, s)
}

// Load deserializes a date from storage format
func Load(s *Storage) (Date, error) {
	data, err := storage.Load(s)
	if err != nil {
		if errors.Is(err, storage.ErrFormat) {
			return Date{}, StatusErrFormat
		}
		return Date{}, err
	}
	return Make(data.Year, MonthFromOrdinal(int(data.Month)), data.Day)
}

// MarshalBinary implements encoding.BinaryMarshaler
func (d Date) MarshalBinary() ([]byte, error) {
	var s Storage
	d.Store(&s)
	return s[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
func (d *Date) UnmarshalBinary(b []byte) error {
	if len(b) != StorageSize {
		return StatusErrFormat
	}
	var s Storage
	copy(s[:], b)
	date, err := Load(&s)
	if err != nil {
		return err
	}
	*d = date
	return nil
}
