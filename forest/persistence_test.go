package forest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadModel(t *testing.T) {
	opts := NewOptions().
		TreeCount(100).
		MinSplitNodeSize(5).
		SamplesPerTreeFraction(0.8)
	spec := NewProblemSpec().
		ColumnCount(4).
		RowCount(120).
		Classes(LabelsOf[int32](0, 1, 2)).
		ClassWeights([]float64{0.1, 0.3, 0.6})
	spec.ActualMtry = 2
	spec.ActualMSample = 96

	path := filepath.Join(t.TempDir(), "forest.gob")
	require.NoError(t, SaveModel(&Model{Options: opts, Spec: spec}, path))

	var loaded Model
	require.NoError(t, LoadModel(&loaded, path))

	require.NotNil(t, loaded.Options)
	require.NotNil(t, loaded.Spec)
	assert.True(t, loaded.Options.Equal(opts))
	assert.True(t, loaded.Spec.Equal(spec))
}

func TestSaveLoadModelDropsFunctions(t *testing.T) {
	opts := NewOptions().SamplesPerTreeFunc(func(n int) int { return n / 2 })
	spec := NewProblemSpec().ColumnCount(1).Classes(LabelsOf[uint8](0, 1))

	path := filepath.Join(t.TempDir(), "forest.gob")
	require.NoError(t, SaveModel(&Model{Options: opts, Spec: spec}, path))

	var loaded Model
	require.NoError(t, LoadModel(&loaded, path))

	// The flat encoding only tracks function presence; the value is gone.
	assert.Nil(t, loaded.Options.SampleFn)
	assert.Equal(t, TagFunction, loaded.Options.SampleMode)
	assert.True(t, loaded.Options.Equal(opts))
}

func TestLoadModelMissingFile(t *testing.T) {
	var m Model
	err := LoadModel(&m, filepath.Join(t.TempDir(), "absent.gob"))
	require.Error(t, err)
}
