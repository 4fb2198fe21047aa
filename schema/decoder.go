package schema

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jmgilman/dappreg/errors"
)

// Decode validates data against the definition for kind and decodes the
// result into target, which must be a non-nil pointer to a struct or map.
// Fields are matched using json tags.
//
// Returns CodeSchemaDecodeFailed if target is unsuitable or decoding fails,
// in addition to the errors returned by Validate.
func (v *Validator) Decode(ctx context.Context, kind Kind, filename string, data []byte, target interface{}) error {
	if target == nil {
		return errors.New(errors.CodeSchemaDecodeFailed, "decode target cannot be nil")
	}

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.IsNil() {
		return errors.New(
			errors.CodeSchemaDecodeFailed,
			fmt.Sprintf("decode target must be a non-nil pointer, got %s", targetValue.Kind()),
		)
	}

	targetElem := targetValue.Elem()
	if k := targetElem.Kind(); k != reflect.Struct && k != reflect.Map {
		return errors.New(
			errors.CodeSchemaDecodeFailed,
			fmt.Sprintf("decode target must point to a struct or map, got pointer to %s", k),
		)
	}

	value, err := v.Validate(ctx, kind, filename, data)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err := value.Decode(target); err != nil {
		targetType := targetElem.Type().Name()
		if targetType == "" {
			targetType = targetElem.Type().String()
		}

		return wrapDecodeErrorWithContext(
			err,
			"failed to decode document",
			makeContext(
				"filename", filename,
				"target_type", targetType,
			),
		)
	}

	return nil
}
