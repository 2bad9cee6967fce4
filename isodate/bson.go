package isodate

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// DateTime returns t as a BSON UTC datetime.
func (t Instant) DateTime() primitive.DateTime {
	return primitive.DateTime(t)
}

// FromDateTime returns the instant of a BSON UTC datetime.
func FromDateTime(dt primitive.DateTime) (Instant, error) {
	t := Instant(dt)
	if err := t.check(); err != nil {
		return 0, err
	}
	return t, nil
}

// MarshalBSONValue implements bson.ValueMarshaler.
// Instants are encoded as BSON UTC datetime values.
func (t Instant) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if err := t.check(); err != nil {
		return 0, nil, err
	}
	return bsontype.DateTime, bsoncore.AppendDateTime(nil, int64(t)), nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
// Both BSON UTC datetime values and strings accepted by Parse are decoded.
func (t *Instant) UnmarshalBSONValue(typ bsontype.Type, data []byte) error {
	switch typ {
	case bsontype.DateTime:
		ms, _, ok := bsoncore.ReadDateTime(data)
		if !ok {
			return fmt.Errorf("isodate: read datetime: insufficient bytes")
		}
		v, err := FromDateTime(primitive.DateTime(ms))
		if err != nil {
			return fmt.Errorf("isodate: %w", err)
		}
		*t = v
		return nil

	case bsontype.String:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("isodate: read string: insufficient bytes")
		}
		return t.UnmarshalText([]byte(s))

	default:
		return fmt.Errorf("isodate: cannot decode BSON %s into Instant", typ)
	}
}
