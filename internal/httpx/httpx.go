package httpx

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"

	"nvlaw-backend/internal/transport"
)

func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// FieldErrors flattens validator violations into the response envelope shape.
// The JSON tag name is reported when present so callers see wire-level fields.
func FieldErrors(errs validator.ValidationErrors) []transport.FieldError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]transport.FieldError, 0, len(errs))
	for _, err := range errs {
		out = append(out, transport.FieldError{
			Field: err.Field(),
			Rule:  err.Tag(),
		})
	}
	return out
}
