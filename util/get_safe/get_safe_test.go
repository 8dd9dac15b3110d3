package getsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	payload := map[string]any{"vendor_name": "Acme Steel", "total": float64(12500), "date": nil}

	assert.Equal(t, "Acme Steel", String(payload, "vendor_name"))
	assert.Equal(t, "", String(payload, "total"))
	assert.Equal(t, "", String(payload, "date"))
	assert.Equal(t, "", String(payload, "missing"))
}

func TestFloat(t *testing.T) {
	payload := map[string]any{
		"a": float64(1.5),
		"b": float32(2.5),
		"c": int(3),
		"d": int64(4),
		"e": "not a number",
		"f": nil,
	}

	for key, expected := range map[string]float64{"a": 1.5, "b": 2.5, "c": 3, "d": 4} {
		got, ok := Float(payload, key)
		assert.True(t, ok, "key %s", key)
		assert.Equal(t, expected, got, "key %s", key)
	}

	for _, key := range []string{"e", "f", "missing"} {
		_, ok := Float(payload, key)
		assert.False(t, ok, "key %s", key)
	}
}

func TestInt(t *testing.T) {
	payload := map[string]any{"delivery_weeks": float64(4.9), "terms": "net 30"}

	n, ok := Int(payload, "delivery_weeks")
	assert.True(t, ok)
	assert.Equal(t, int64(4), n)

	_, ok = Int(payload, "terms")
	assert.False(t, ok)
}

func TestMetadata(t *testing.T) {
	payload := map[string]any{
		"metadata": map[string]any{"vendor": "Acme Steel"},
		"scalar":   "x",
	}

	meta := Metadata(payload, "metadata")
	assert.Equal(t, "Acme Steel", meta["vendor"])

	assert.Nil(t, Metadata(payload, "scalar"))
	assert.Nil(t, Metadata(payload, "missing"))
}
