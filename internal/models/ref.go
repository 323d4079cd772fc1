package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Ref is a reference to another document by id. It is written as hex text but
// also decodes documents where the reference was stored as a native ObjectID.
type Ref string

func (r *Ref) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}
	switch rv.Type {
	case bson.TypeString:
		*r = Ref(rv.StringValue())
	case bson.TypeObjectID:
		*r = Ref(rv.ObjectID().Hex())
	case bson.TypeNull, bson.TypeUndefined:
		*r = ""
	default:
		return fmt.Errorf("models: cannot decode %s into Ref", rv.Type)
	}
	return nil
}
