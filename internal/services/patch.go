package services

import (
	"time"

	"absss-backend/internal/errs"
	"absss-backend/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// patch collects the $set document of a partial update. Only fields the
// caller actually sent are written; updatedAt is always refreshed.
type patch struct {
	set    bson.M
	fields []errs.FieldError
}

func newPatch(now time.Time) *patch {
	return &patch{set: bson.M{"updatedAt": now}}
}

func setIf[T any](p *patch, key string, v *T) {
	if v != nil {
		p.set[key] = *v
	}
}

// date parses a client supplied date into key, recording a field error
// on failure.
func (p *patch) date(key string, v *string) {
	if v == nil {
		return
	}
	t, ok := utils.ParseTime(*v)
	if !ok {
		p.fields = append(p.fields, errs.Field(key, "must be a valid date"))
		return
	}
	p.set[key] = t
}

func (p *patch) err() error {
	if len(p.fields) > 0 {
		return errs.NewValidationError(p.fields...)
	}
	return nil
}

// parseDate is the create-path counterpart of patch.date.
func parseDate(field, v string) (time.Time, error) {
	t, ok := utils.ParseTime(v)
	if !ok {
		return time.Time{}, errs.NewValidationError(errs.Field(field, "must be a valid date"))
	}
	return t, nil
}

// optionalURL normalises an optional URL field: blank means absent.
func optionalURL(v *string) *string {
	if v == nil {
		return nil
	}
	s := utils.Trim(*v)
	if s == "" {
		return nil
	}
	return &s
}
