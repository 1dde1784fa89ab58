package forest

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	gerrors "github.com/groveml/grove/pkg/errors"
	glog "github.com/groveml/grove/pkg/log"
)

// ResolveMtry expands the mtry mode group against a known column count:
// TagLog yields floor(log2(n))+1, TagSqrt the rounded square root, TagAll n,
// TagConst the configured constant and TagFunction the configured function
// applied to n. It fails with an InvalidParameterError on a non-positive
// column count, a nil function in Function mode, or a tag that is not an
// mtry tag.
func (o *Options) ResolveMtry(columnCount int) (int, error) {
	if columnCount <= 0 {
		return 0, gerrors.NewInvalidParameterError(
			"Options.ResolveMtry", "columnCount", columnCount, "")
	}
	switch o.MtryMode {
	case TagLog:
		return int(math.Floor(math.Log2(float64(columnCount)))) + 1, nil
	case TagSqrt:
		return int(math.Floor(math.Sqrt(float64(columnCount)) + 0.5)), nil
	case TagAll:
		return columnCount, nil
	case TagConst:
		return o.Mtry, nil
	case TagFunction:
		if o.MtryFn == nil {
			return 0, gerrors.NewInvalidParameterError(
				"Options.ResolveMtry", "MtryFn", nil, "non-nil function")
		}
		return o.MtryFn(columnCount), nil
	default:
		return 0, gerrors.NewInvalidParameterError(
			"Options.ResolveMtry", "MtryMode", o.MtryMode.String(),
			"Log, Sqrt, All, Const, Function")
	}
}

// ResolveSampleCount expands the sampling mode group against a known row
// count: TagProportional yields round(fraction*n), TagConst the configured
// count and TagFunction the configured function applied to n.
func (o *Options) ResolveSampleCount(rowCount int) (int, error) {
	if rowCount <= 0 {
		return 0, gerrors.NewInvalidParameterError(
			"Options.ResolveSampleCount", "rowCount", rowCount, "")
	}
	switch o.SampleMode {
	case TagProportional:
		return int(math.Round(o.SampleFraction * float64(rowCount))), nil
	case TagConst:
		return o.SampleCount, nil
	case TagFunction:
		if o.SampleFn == nil {
			return 0, gerrors.NewInvalidParameterError(
				"Options.ResolveSampleCount", "SampleFn", nil, "non-nil function")
		}
		return o.SampleFn(rowCount), nil
	default:
		return 0, gerrors.NewInvalidParameterError(
			"Options.ResolveSampleCount", "SampleMode", o.SampleMode.String(),
			"Proportional, Const, Function")
	}
}

// ResolveActuals fills spec.ActualMtry and spec.ActualMSample from the mode
// groups once the spec's shape counts are known.
func (o *Options) ResolveActuals(spec *ProblemSpec) error {
	mtry, err := o.ResolveMtry(spec.NumColumns)
	if err != nil {
		return err
	}
	msample, err := o.ResolveSampleCount(spec.NumRows)
	if err != nil {
		return err
	}
	spec.ActualMtry = mtry
	spec.ActualMSample = msample
	return nil
}

// AnalyzeProblem performs the problem-analysis phase: it derives everything
// ProblemSpec must know from the label column and the configured Options.
//
// The row count is taken from y. When the spec was populated by the caller
// its explicit class catalog is honored and only the resolved parameters are
// computed; otherwise the catalog is built from the distinct label values in
// ascending order, tagged float64, and the problem is marked a
// classification. A label column with fewer than two distinct values raises
// a DegenerateLabelsWarning through the package warning handler.
//
// The column count must have been set on the spec beforehand.
func AnalyzeProblem(opts *Options, y mat.Vector, spec *ProblemSpec) error {
	if y == nil || y.Len() == 0 {
		return gerrors.Wrap(gerrors.ErrEmptyData, "AnalyzeProblem")
	}
	n := y.Len()
	spec.NumRows = n

	if !spec.Used() {
		seen := make(map[float64]struct{}, 8)
		for i := 0; i < n; i++ {
			seen[y.AtVec(i)] = struct{}{}
		}
		distinct := make([]float64, 0, len(seen))
		for v := range seen {
			distinct = append(distinct, v)
		}
		sort.Float64s(distinct)
		spec.Classes(LabelsOf(distinct...))
	}
	if spec.NumClasses < 2 {
		gerrors.Warn(gerrors.NewDegenerateLabelsWarning(
			n, spec.NumClasses, "label column has no class structure"))
	}

	if err := opts.ResolveActuals(spec); err != nil {
		return err
	}

	slog.Debug("problem analysis complete",
		slog.String(glog.RecordKey, "ProblemSpec"),
		slog.String(glog.OperationKey, "analyze"),
		slog.Int(glog.RowsKey, spec.NumRows),
		slog.Int(glog.ColumnsKey, spec.NumColumns),
		slog.Int(glog.ClassesKey, spec.NumClasses),
		slog.String(glog.LabelTypeKey, spec.LabelKind.String()),
		slog.Int(glog.MtryKey, spec.ActualMtry),
		slog.Int(glog.MSampleKey, spec.ActualMSample),
	)
	return nil
}

// NormalizeWeights scales ws in place so it sums to one. It fails with an
// InvalidParameterError when the sum is not positive.
func NormalizeWeights(ws []float64) error {
	sum := floats.Sum(ws)
	if sum <= 0 || math.IsNaN(sum) {
		return gerrors.NewInvalidParameterError(
			"NormalizeWeights", "weights", sum, "positive sum")
	}
	floats.Scale(1/sum, ws)
	return nil
}
