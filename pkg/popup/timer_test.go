package popup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptions_JSONTimerIsMilliseconds(t *testing.T) {
	var opts Options
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Saved","timer":1500}`), &opts))

	require.NotNil(t, opts.Timer)
	assert.Equal(t, 1500*time.Millisecond, opts.Timer.Duration())
	assert.Equal(t, int64(1500), *Project(opts).Timer)

	assert.JSONEq(t, `{"title":"Saved","timer":1500}`, mustJSON(t, opts))
}

func TestOptions_DecodesProjectedRecord(t *testing.T) {
	rec := Project(Options{Title: "Saved", Timer: Duration(2 * time.Second)})

	var opts Options
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, rec)), &opts))

	require.NotNil(t, opts.Timer)
	assert.Equal(t, 2*time.Second, opts.Timer.Duration())
}

func TestMillis_Decode(t *testing.T) {
	tests := []struct {
		name string
		json string
		want time.Duration
	}{
		{"integer", `250`, 250 * time.Millisecond},
		{"fraction", `1.5`, 1500 * time.Microsecond},
		{"numeric string", `"750"`, 750 * time.Millisecond},
		{"duration string", `"3s"`, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromJSON Millis
			require.NoError(t, json.Unmarshal([]byte(tt.json), &fromJSON))
			assert.Equal(t, tt.want, fromJSON.Duration())

			var fromYAML Millis
			require.NoError(t, yaml.Unmarshal([]byte(tt.json), &fromYAML))
			assert.Equal(t, tt.want, fromYAML.Duration())
		})
	}
}

func TestMillis_DecodeInvalid(t *testing.T) {
	for _, in := range []string{`"soon"`, `true`, `"NaN"`} {
		var m Millis
		assert.Error(t, json.Unmarshal([]byte(in), &m), in)
	}

	var opts Options
	assert.Error(t, yaml.Unmarshal([]byte("timer: [1, 2]\n"), &opts))
}

func TestMillis_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(Options{Timer: Duration(1500 * time.Millisecond)})
	require.NoError(t, err)
	assert.Equal(t, "timer: 1.5s\n", string(out))

	var opts Options
	require.NoError(t, yaml.Unmarshal(out, &opts))
	require.NotNil(t, opts.Timer)
	assert.Equal(t, 1500*time.Millisecond, opts.Timer.Duration())
}
