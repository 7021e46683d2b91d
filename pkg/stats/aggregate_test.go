package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByKey(t *testing.T) {
	items := []string{"police", "robbery", "police", "other", "police", ""}
	kc := CountByKey(items, func(s string) string { return s })

	assert.Equal(t, []string{"police", "robbery", "other", ""}, kc.Keys())
	assert.Equal(t, 3, kc.Get("police"))
	assert.Equal(t, 1, kc.Get("robbery"))
	assert.Equal(t, 1, kc.Get(""))
	assert.Equal(t, 0, kc.Get("missing"))
	assert.Equal(t, 4, kc.Len())
}

func TestCountByKeyShuffleInvariantCounts(t *testing.T) {
	a := []string{"x", "y", "x", "z", "y", "x"}
	b := []string{"z", "x", "x", "y", "x", "y"}
	ka := CountByKey(a, func(s string) string { return s })
	kb := CountByKey(b, func(s string) string { return s })
	for _, k := range []string{"x", "y", "z"} {
		assert.Equal(t, ka.Get(k), kb.Get(k), "key %s", k)
	}
	// Iteration order follows each input's first occurrences.
	assert.Equal(t, []string{"x", "y", "z"}, ka.Keys())
	assert.Equal(t, []string{"z", "x", "y"}, kb.Keys())
}

func TestKeyCountsMarshalPreservesOrder(t *testing.T) {
	items := []string{"zebra", "alpha", "zebra"}
	kc := CountByKey(items, func(s string) string { return s })
	raw, err := json.Marshal(kc)
	require.NoError(t, err)
	// "zebra" first despite sorting after "alpha".
	assert.Equal(t, `{"zebra":2,"alpha":1}`, string(raw))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]int{"zebra": 2, "alpha": 1}, decoded)
}

func TestKeyCountsMarshalEmpty(t *testing.T) {
	kc := CountByKey(nil, func(s string) string { return s })
	raw, err := json.Marshal(kc)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestSafetyLevel(t *testing.T) {
	cases := []struct {
		count int
		want  string
	}{
		{0, SafetySafe},
		{1, SafetyModerate},
		{2, SafetyModerate},
		{3, SafetyCaution},
		{5, SafetyCaution},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, SafetyLevel(c.count), "count %d", c.count)
	}
}
