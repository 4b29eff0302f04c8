package tempfile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmpkeep/tmpkeep/internal/testlogging"
	"github.com/tmpkeep/tmpkeep/internal/testutil"
	"github.com/tmpkeep/tmpkeep/tempfile"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	ctx := testlogging.Context(t)

	tf := tempfile.New()

	value := map[string]interface{}{
		"a": float64(1),
		"b": []interface{}{"x", "y"},
	}

	path, err := tf.WriteJSON(ctx, value, &tempfile.Options{Dir: testutil.TempDirectory(t)})
	require.NoError(t, err)
	require.Equal(t, ".json", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]interface{}

	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Equal(t, value, parsed)
}

func TestWriteJSONIsIndented(t *testing.T) {
	ctx := testlogging.Context(t)

	tf := tempfile.New()

	path, err := tf.WriteJSON(ctx, map[string]interface{}{"a": 1}, &tempfile.Options{Dir: testutil.TempDirectory(t)})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestWriteJSONStruct(t *testing.T) {
	ctx := testlogging.Context(t)

	tf := tempfile.New()

	type doc struct {
		Name string `json:"name"`
	}

	path, err := tf.WriteJSON(ctx, doc{Name: "x"}, &tempfile.Options{Dir: testutil.TempDirectory(t)})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `"name": "x"`))
}

func TestWriteJSONInvalidArgument(t *testing.T) {
	ctx := testlogging.Context(t)

	tf := tempfile.New()

	for _, value := range []interface{}{
		nil,
		"string",
		true,
		42,
		int64(42),
		3.14,
	} {
		_, err := tf.WriteJSON(ctx, value, nil)
		require.ErrorIs(t, err, tempfile.ErrInvalidArgument, "%v", value)
	}
}

func TestWriteJSONUnmarshalableValue(t *testing.T) {
	ctx := testlogging.Context(t)

	tf := tempfile.New()

	_, err := tf.WriteJSON(ctx, map[string]interface{}{"ch": make(chan int)}, nil)
	require.ErrorIs(t, err, tempfile.ErrInvalidArgument)
}
