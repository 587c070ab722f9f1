package reports

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Timestamp is a creation time read back from the record store. Stored
// data has accumulated several shapes over the life of the collection:
// a native Mongo timestamp, a datetime, a string, or nothing at all.
// Each shape gets exactly one conversion arm; anything unparseable
// becomes an unknown timestamp instead of a decode error, and unknown
// timestamps render as a placeholder downstream.
type Timestamp struct {
	Time  time.Time
	Known bool
}

// At returns a known timestamp for the given instant.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC(), Known: true}
}

// Unknown returns the unknown timestamp.
func Unknown() Timestamp {
	return Timestamp{}
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. It never fails:
// a malformed or absent value yields an unknown timestamp.
func (ts *Timestamp) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*ts = Timestamp{}
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Timestamp:
		if secs, _, ok := raw.TimestampOK(); ok {
			*ts = At(time.Unix(int64(secs), 0))
		}
	case bsontype.DateTime:
		if v, ok := raw.TimeOK(); ok {
			*ts = At(v)
		}
	case bsontype.String:
		if s, ok := raw.StringValueOK(); ok {
			if v, err := time.Parse(time.RFC3339Nano, s); err == nil {
				*ts = At(v)
			}
		}
	}

	return nil
}

// MarshalBSONValue implements bson.ValueMarshaler. Known timestamps are
// written as datetimes, unknown ones as null.
func (ts Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !ts.Known {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(ts.Time)
}

// MarshalJSON renders a known timestamp as RFC 3339, unknown as null.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if !ts.Known {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Time.Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}

	var s *string
	if err := json.Unmarshal(data, &s); err != nil || s == nil {
		return nil
	}
	if v, err := time.Parse(time.RFC3339Nano, *s); err == nil {
		*ts = At(v)
	}
	return nil
}
