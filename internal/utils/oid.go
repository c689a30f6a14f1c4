package utils

import (
	"fmt"

	"absss-backend/internal/errs"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Oid parses a hex id. A malformed id can never match a stored document, so
// it is reported as not found.
func Oid(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("id %q: %w", hex, errs.ErrNotFound)
	}
	return id, nil
}
