package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelOfRecordsKind(t *testing.T) {
	tests := []struct {
		name  string
		label ClassLabel
		kind  LabelType
		want  float64
	}{
		{"uint8", LabelOf[uint8](200), LabelUint8, 200},
		{"uint16", LabelOf[uint16](60000), LabelUint16, 60000},
		{"uint32", LabelOf[uint32](1 << 20), LabelUint32, 1 << 20},
		{"uint64", LabelOf[uint64](1 << 40), LabelUint64, 1 << 40},
		{"int8", LabelOf[int8](-7), LabelInt8, -7},
		{"int16", LabelOf[int16](-300), LabelInt16, -300},
		{"int32", LabelOf[int32](-70000), LabelInt32, -70000},
		{"int64", LabelOf[int64](-1 << 33), LabelInt64, -float64(int64(1) << 33)},
		{"float32", LabelOf[float32](1.5), LabelFloat32, 1.5},
		{"float64", LabelOf(2.25), LabelFloat64, 2.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.label.Kind())
			assert.Equal(t, tt.want, tt.label.Float64())
		})
	}
}

func TestLabelAsConversions(t *testing.T) {
	l := LabelOf[int32](42)

	assert.Equal(t, uint8(42), LabelAs[uint8](l))
	assert.Equal(t, int64(42), LabelAs[int64](l))
	assert.Equal(t, float32(42), LabelAs[float32](l))
	assert.Equal(t, 42.0, LabelAs[float64](l))

	// Narrowing follows Go conversion rules; out of range is the caller's
	// responsibility.
	wide := LabelOf[int32](300)
	assert.Equal(t, uint8(44), LabelAs[uint8](wide))
}

func TestLabelEquality(t *testing.T) {
	assert.Equal(t, LabelOf[int32](5), LabelOf[int32](5))
	assert.NotEqual(t, LabelOf[int32](5), LabelOf[int64](5), "kind participates in equality")
	assert.NotEqual(t, LabelOf[int32](5), LabelOf[int32](6))
}

func TestLabelFromFloat64(t *testing.T) {
	t.Run("exact integers round-trip", func(t *testing.T) {
		orig := LabelOf[int16](-123)
		rebuilt := labelFromFloat64(LabelInt16, orig.Float64())
		assert.Equal(t, orig, rebuilt)
	})

	t.Run("large uint64 loses precision through float64", func(t *testing.T) {
		v := uint64(1<<63 + 1)
		orig := LabelOf(v)
		rebuilt := labelFromFloat64(LabelUint64, orig.Float64())
		assert.Equal(t, LabelUint64, rebuilt.Kind())
		assert.NotEqual(t, orig, rebuilt)
	})

	t.Run("unknown kind keeps the persisted value", func(t *testing.T) {
		rebuilt := labelFromFloat64(LabelUnknown, 3.5)
		assert.Equal(t, LabelUnknown, rebuilt.Kind())
		assert.Equal(t, 3.5, rebuilt.Float64())
	})
}
