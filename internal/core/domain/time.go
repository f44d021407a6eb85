package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Time wraps time.Time and accepts the timestamp shapes the dashboard API
// emits: RFC 3339, naive date-times and date-only values. Naive values are
// read as UTC.
type Time struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func NewTime(t time.Time) Time { return Time{Time: t} }

// ParseTime parses s with the first matching layout.
func ParseTime(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Time{Time: t}, nil
		}
	}
	return Time{}, fmt.Errorf("parse time %q: unsupported layout", s)
}

// MustTime is ParseTime for fixtures; it panics on malformed input.
func MustTime(s string) Time {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns a pointer to a copy of t.
func (t Time) Ptr() *Time { return &t }

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode time: %w", err)
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Time) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if t.IsZero() {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(t.Time.UTC())
}

func (t *Time) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	if typ == bson.TypeNull || typ == bson.TypeUndefined {
		*t = Time{}
		return nil
	}
	dt, ok := bson.RawValue{Type: typ, Value: data}.TimeOK()
	if !ok {
		return fmt.Errorf("decode time: unexpected bson type %s", typ)
	}
	*t = Time{Time: dt.UTC()}
	return nil
}
