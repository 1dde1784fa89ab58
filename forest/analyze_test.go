package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	gerrors "github.com/groveml/grove/pkg/errors"
)

func TestResolveMtry(t *testing.T) {
	tests := []struct {
		name    string
		config  func(*Options)
		columns int
		want    int
	}{
		{"log", func(o *Options) { o.MtryMode = TagLog }, 8, 4},
		{"log non power of two", func(o *Options) { o.MtryMode = TagLog }, 10, 4},
		{"sqrt", func(o *Options) { o.MtryMode = TagSqrt }, 9, 3},
		{"sqrt rounds", func(o *Options) { o.MtryMode = TagSqrt }, 8, 3},
		{"all", func(o *Options) { o.MtryMode = TagAll }, 12, 12},
		{"const", func(o *Options) { o.FeaturesPerNodeCount(5) }, 12, 5},
		{"function", func(o *Options) { o.FeaturesPerNodeFunc(func(n int) int { return n / 3 }) }, 12, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptions()
			tt.config(o)
			got, err := o.ResolveMtry(tt.columns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("errors", func(t *testing.T) {
		var paramErr *gerrors.InvalidParameterError

		_, err := NewOptions().ResolveMtry(0)
		require.Error(t, err)
		assert.True(t, gerrors.As(err, &paramErr))

		o := NewOptions()
		o.MtryMode = TagFunction // no function attached
		_, err = o.ResolveMtry(4)
		require.Error(t, err)
		assert.True(t, gerrors.As(err, &paramErr))

		o = NewOptions()
		o.MtryMode = TagEqual // stratification tag in the mtry group
		_, err = o.ResolveMtry(4)
		require.Error(t, err)
		assert.True(t, gerrors.As(err, &paramErr))
	})
}

func TestResolveSampleCount(t *testing.T) {
	tests := []struct {
		name   string
		config func(*Options)
		rows   int
		want   int
	}{
		{"proportional full set", func(o *Options) {}, 150, 150},
		{"proportional half", func(o *Options) { o.SamplesPerTreeFraction(0.5) }, 151, 76},
		{"const", func(o *Options) { o.SamplesPerTreeCount(64) }, 150, 64},
		{"function", func(o *Options) { o.SamplesPerTreeFunc(func(n int) int { return n - 10 }) }, 150, 140},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOptions()
			tt.config(o)
			got, err := o.ResolveSampleCount(tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("nil function", func(t *testing.T) {
		o := NewOptions()
		o.SampleMode = TagFunction
		_, err := o.ResolveSampleCount(10)
		require.Error(t, err)

		var paramErr *gerrors.InvalidParameterError
		assert.True(t, gerrors.As(err, &paramErr))
	})
}

func TestAnalyzeProblem(t *testing.T) {
	t.Run("computes the spec from the label column", func(t *testing.T) {
		y := mat.NewVecDense(8, []float64{2, 0, 1, 1, 2, 0, 0, 1})
		spec := NewProblemSpec().ColumnCount(9)

		require.NoError(t, AnalyzeProblem(NewOptions(), y, spec))

		assert.Equal(t, 8, spec.NumRows)
		assert.Equal(t, 3, spec.NumClasses)
		assert.Equal(t, ProblemClassification, spec.Problem)
		assert.Equal(t, LabelFloat64, spec.LabelKind)
		assert.Equal(t, 3, spec.ActualMtry)    // sqrt(9)
		assert.Equal(t, 8, spec.ActualMSample) // full set

		// Catalog is sorted ascending.
		var first, last float64
		require.NoError(t, ToClassLabel(spec, 0, &first))
		require.NoError(t, ToClassLabel(spec, 2, &last))
		assert.Equal(t, 0.0, first)
		assert.Equal(t, 2.0, last)
	})

	t.Run("honors caller-supplied classes", func(t *testing.T) {
		y := mat.NewVecDense(4, []float64{0, 1, 0, 1})
		spec := NewProblemSpec().
			ColumnCount(4).
			Classes(LabelsOf[int32](0, 1, 2)) // caller says three classes

		require.NoError(t, AnalyzeProblem(NewOptions(), y, spec))

		assert.Equal(t, 3, spec.NumClasses)
		assert.Equal(t, LabelInt32, spec.LabelKind)
		assert.Equal(t, 4, spec.NumRows)
	})

	t.Run("warns on a degenerate label column", func(t *testing.T) {
		var captured error
		gerrors.SetWarningHandler(func(w error) { captured = w })
		defer gerrors.SetWarningHandler(func(w error) {})

		y := mat.NewVecDense(5, []float64{1, 1, 1, 1, 1})
		spec := NewProblemSpec().ColumnCount(2)

		require.NoError(t, AnalyzeProblem(NewOptions(), y, spec))
		require.NotNil(t, captured)

		var warn *gerrors.DegenerateLabelsWarning
		assert.True(t, gerrors.As(captured, &warn))
		assert.Equal(t, 1, warn.ClassCount)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		spec := NewProblemSpec().ColumnCount(2)
		err := AnalyzeProblem(NewOptions(), nil, spec)
		require.Error(t, err)
		assert.True(t, gerrors.Is(err, gerrors.ErrEmptyData))
	})
}

func TestNormalizeWeights(t *testing.T) {
	ws := []float64{1, 1, 2}
	require.NoError(t, NormalizeWeights(ws))
	assert.InDelta(t, 0.25, ws[0], 1e-12)
	assert.InDelta(t, 0.25, ws[1], 1e-12)
	assert.InDelta(t, 0.5, ws[2], 1e-12)

	err := NormalizeWeights([]float64{0, 0})
	require.Error(t, err)

	var paramErr *gerrors.InvalidParameterError
	assert.True(t, gerrors.As(err, &paramErr))
}
