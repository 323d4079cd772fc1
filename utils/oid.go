package utils

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(strings.TrimSpace(hex))
}

// CanonicalRef returns the form a cross-collection reference is stored in:
// trimmed, and lowercase hex when the value names an ObjectID.
func CanonicalRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if oid, err := bson.ObjectIDFromHex(ref); err == nil {
		return oid.Hex()
	}
	return ref
}
