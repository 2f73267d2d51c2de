package models

import (
	"bytes"
	"encoding/json"
)

// RecordSet distinguishes "never initialized" from "deliberately empty".
// The legacy document encodes the former as a missing/null field and the
// latter as []; derivation may seed an unpopulated set but must never touch
// a populated one, even when it is empty.
type RecordSet[T any] struct {
	populated bool
	records   []T
}

// PopulatedSet returns a populated set holding records (never nil).
func PopulatedSet[T any](records []T) RecordSet[T] {
	if records == nil {
		records = []T{}
	}
	return RecordSet[T]{populated: true, records: records}
}

// Populated reports whether the set has ever been initialized.
func (s RecordSet[T]) Populated() bool { return s.populated }

// Records returns the backing slice. Nil when unpopulated.
func (s RecordSet[T]) Records() []T { return s.records }

func (s RecordSet[T]) Len() int { return len(s.records) }

func (s RecordSet[T]) MarshalJSON() ([]byte, error) {
	if !s.populated {
		return []byte("null"), nil
	}
	if s.records == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.records)
}

func (s *RecordSet[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = RecordSet[T]{}
		return nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	if records == nil {
		records = []T{}
	}
	*s = RecordSet[T]{populated: true, records: records}
	return nil
}
