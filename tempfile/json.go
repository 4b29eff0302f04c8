package tempfile

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

// WriteJSON serializes a structured value with indented formatting and writes
// it to a temporary file with the .json extension. Nil and primitive values
// are rejected with ErrInvalidArgument.
func (m *Manager) WriteJSON(ctx context.Context, value interface{}, opt *Options) (string, error) {
	if err := validateJSONValue(value); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", errors.Wrap(ErrInvalidArgument, err.Error())
	}

	return m.Write(ctx, data, ".json", opt)
}

func validateJSONValue(value interface{}) error {
	if value == nil {
		return errors.Wrap(ErrInvalidArgument, "value is required")
	}

	switch value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return errors.Wrapf(ErrInvalidArgument, "value must be a structured type, got %T", value)
	}

	return nil
}
