package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Number is a numeric field that older documents may hold as int32, int64,
// double, decimal, numeric text or null. It is always written back as a double.
type Number float64

func (n Number) Float() float64 { return float64(n) }

func (n *Number) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}
	switch rv.Type {
	case bson.TypeDouble:
		*n = Number(rv.Double())
	case bson.TypeInt32:
		*n = Number(rv.Int32())
	case bson.TypeInt64:
		*n = Number(rv.Int64())
	case bson.TypeDecimal128:
		f, err := strconv.ParseFloat(rv.Decimal128().String(), 64)
		if err != nil {
			return fmt.Errorf("models: decimal %s: %w", rv.Decimal128(), err)
		}
		*n = Number(f)
	case bson.TypeString:
		s := strings.TrimSpace(rv.StringValue())
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("models: cannot decode %q into Number", s)
		}
		*n = Number(f)
	case bson.TypeNull, bson.TypeUndefined:
		*n = 0
	default:
		return fmt.Errorf("models: cannot decode %s into Number", rv.Type)
	}
	return nil
}

// Text is a free-form string field that older documents may hold as a number,
// boolean or date.
type Text string

func (t *Text) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}
	switch rv.Type {
	case bson.TypeString:
		*t = Text(rv.StringValue())
	case bson.TypeInt32:
		*t = Text(strconv.FormatInt(int64(rv.Int32()), 10))
	case bson.TypeInt64:
		*t = Text(strconv.FormatInt(rv.Int64(), 10))
	case bson.TypeDouble:
		*t = Text(strconv.FormatFloat(rv.Double(), 'f', -1, 64))
	case bson.TypeDecimal128:
		*t = Text(rv.Decimal128().String())
	case bson.TypeBoolean:
		*t = Text(strconv.FormatBool(rv.Boolean()))
	case bson.TypeDateTime:
		*t = Text(time.UnixMilli(rv.DateTime()).UTC().Format(time.RFC3339))
	case bson.TypeNull, bson.TypeUndefined:
		*t = ""
	default:
		return fmt.Errorf("models: cannot decode %s into Text", rv.Type)
	}
	return nil
}
