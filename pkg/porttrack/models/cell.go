// Package models defines data structures for port statistics extraction.
package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// ISOLayout is the zone-less ISO-8601 layout used when serializing
// DateTime cells to JSON.
const ISOLayout = "2006-01-02T15:04:05"

// CellKind identifies the variant held by a CellValue.
type CellKind int

const (
	// KindEmpty is an empty or missing cell.
	KindEmpty CellKind = iota
	// KindNumber is a numeric cell.
	KindNumber
	// KindText is a textual cell.
	KindText
	// KindDateTime is a calendar date-time cell.
	KindDateTime
)

// CellValue is a loosely-typed spreadsheet cell value.
// The zero value is the empty cell.
type CellValue struct {
	kind CellKind
	num  float64
	text string
	ts   time.Time
}

// Empty returns the empty cell value.
func Empty() CellValue {
	return CellValue{}
}

// Number returns a numeric cell value.
func Number(f float64) CellValue {
	return CellValue{kind: KindNumber, num: f}
}

// Text returns a textual cell value.
func Text(s string) CellValue {
	return CellValue{kind: KindText, text: s}
}

// DateTime returns a date-time cell value.
func DateTime(t time.Time) CellValue {
	return CellValue{kind: KindDateTime, ts: t}
}

// Kind returns the variant held by the cell.
func (v CellValue) Kind() CellKind {
	return v.kind
}

// IsEmpty reports whether the cell is empty.
func (v CellValue) IsEmpty() bool {
	return v.kind == KindEmpty
}

// Float returns the numeric value, or 0 for non-numeric cells.
func (v CellValue) Float() float64 {
	return v.num
}

// Time returns the date-time value, or the zero time for other kinds.
func (v CellValue) Time() time.Time {
	return v.ts
}

// String returns a textual rendering of the cell.
func (v CellValue) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindDateTime:
		return v.ts.Format(ISOLayout)
	default:
		return ""
	}
}

// Equal reports whether two cell values hold the same variant and value.
func (v CellValue) Equal(o CellValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindText:
		return v.text == o.text
	case KindDateTime:
		return v.ts.Equal(o.ts)
	default:
		return true
	}
}

// MarshalJSON serializes the cell as null, a number, a string, or an
// ISO-8601 date-time string.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindText:
		return json.Marshal(v.text)
	case KindDateTime:
		return json.Marshal(v.ts.Format(ISOLayout))
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON. Strings matching the
// ISO-8601 layout are restored as DateTime cells.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Empty()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if t, err := time.Parse(ISOLayout, s); err == nil {
			*v = DateTime(t)
		} else {
			*v = Text(s)
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Number(f)
	return nil
}
