package forest

import (
	gerrors "github.com/groveml/grove/pkg/errors"
)

// specScalarCount is the number of scalar slots at the head of a ProblemSpec's
// flat encoding.
const specScalarCount = 8

// ProblemSpec describes the label space of one training problem so the
// learner needs no compile-time knowledge of the label's native type.
// Supplying one is optional: every field can be computed during the
// problem-analysis phase if the caller does not.
//
// A fresh ProblemSpec is empty and reports Used() == false. It is populated
// either incrementally through the fluent builders (ColumnCount, Classes,
// ClassWeights) or in bulk by Deserialize/FromMap. Clear returns it to the
// empty state.
type ProblemSpec struct {
	NumColumns int
	NumClasses int
	NumRows    int

	// ActualMtry and ActualMSample are the Options-level mode fields resolved
	// against the data shape; see Options.ResolveActuals.
	ActualMtry    int
	ActualMSample int

	Problem   ProblemType
	LabelKind LabelType

	// Labels is the class catalog: one tagged value per class, served in any
	// supported numeric type through ToClassLabel.
	Labels []ClassLabel

	// Weights holds one float64 per class; meaningful only when Weighted.
	Weights  []float64
	Weighted bool

	used bool
}

// NewProblemSpec returns an empty, unused ProblemSpec.
func NewProblemSpec() *ProblemSpec {
	return &ProblemSpec{
		Problem:   ProblemUnresolved,
		LabelKind: LabelUnknown,
	}
}

// ColumnCount sets the number of feature columns.
func (p *ProblemSpec) ColumnCount(in int) *ProblemSpec {
	p.NumColumns = in
	return p
}

// RowCount sets the number of training rows.
func (p *ProblemSpec) RowCount(in int) *ProblemSpec {
	p.NumRows = in
	return p
}

// Classes supplies the class labels; the problem-analysis phase will not
// recompute them in that case. The native element type is recorded from the
// first label and the class count from the input length. Build the argument
// with LabelsOf:
//
//	spec.Classes(forest.LabelsOf[int32](0, 1, 2))
//
// An empty input leaves the spec untouched.
func (p *ProblemSpec) Classes(labels []ClassLabel) *ProblemSpec {
	if len(labels) == 0 {
		return p
	}
	p.Labels = append(p.Labels, labels...)
	p.LabelKind = labels[0].Kind()
	p.NumClasses = len(labels)
	p.Problem = ProblemClassification
	p.used = true
	return p
}

// ClassWeights supplies one weight per class and marks the spec weighted.
// The length is expected to equal the class count; this is not enforced here
// (caller's responsibility) but a mismatch fails the next Serialize.
func (p *ProblemSpec) ClassWeights(ws []float64) *ProblemSpec {
	p.Weights = append(p.Weights, ws...)
	p.Weighted = true
	p.used = true
	return p
}

// Clear resets every field to its default-constructed value, including the
// class catalog and weights.
func (p *ProblemSpec) Clear() {
	*p = *NewProblemSpec()
}

// Used reports whether the spec has been populated. An unused spec tells the
// learner to compute everything itself during problem analysis.
func (p *ProblemSpec) Used() bool {
	return p.used
}

// SerializedSize returns the number of float64 slots Serialize writes:
// 8 scalars, one catalog slot per class, and one weight slot per class when
// weighted.
func (p *ProblemSpec) SerializedSize() int {
	n := specScalarCount + p.NumClasses
	if p.Weighted {
		n += p.NumClasses
	}
	return n
}

// Serialize writes the record into buf in fixed order: the 8 scalars, the
// weight sequence when weighted, then the float64 class catalog. It fails
// with a BufferSizeError, writing nothing, when len(buf) does not equal
// SerializedSize() or when the catalog or weight lengths disagree with the
// class count.
func (p *ProblemSpec) Serialize(buf []float64) error {
	if len(buf) != p.SerializedSize() {
		return gerrors.NewBufferSizeError("ProblemSpec.Serialize", p.SerializedSize(), len(buf))
	}
	if len(p.Labels) != p.NumClasses {
		return gerrors.NewBufferSizeError("ProblemSpec.Serialize", p.NumClasses, len(p.Labels))
	}
	if p.Weighted && len(p.Weights) != p.NumClasses {
		return gerrors.NewBufferSizeError("ProblemSpec.Serialize", p.NumClasses, len(p.Weights))
	}
	buf[0] = float64(p.NumColumns)
	buf[1] = float64(p.NumClasses)
	buf[2] = float64(p.NumRows)
	buf[3] = float64(p.ActualMtry)
	buf[4] = float64(p.ActualMSample)
	buf[5] = float64(p.Problem)
	buf[6] = float64(p.LabelKind)
	buf[7] = boolToFloat(p.Weighted)
	iter := buf[specScalarCount:]
	if p.Weighted {
		copy(iter, p.Weights)
		iter = iter[p.NumClasses:]
	}
	for i, l := range p.Labels {
		iter[i] = l.Float64()
	}
	return nil
}

// Deserialize reconstructs the record from a buffer produced by Serialize.
// After the 8 scalars are read, the remaining length is re-validated against
// the recovered class count (doubled when weighted) before anything is
// consumed. The catalog is rebuilt from float64 values by converting into the
// recovered native type, which is lossy for labels the float64 round-trip
// cannot represent exactly.
//
// On any length mismatch it fails with a BufferSizeError and the receiver is
// left unmodified.
func (p *ProblemSpec) Deserialize(buf []float64) error {
	if len(buf) < specScalarCount {
		return gerrors.NewBufferSizeError("ProblemSpec.Deserialize", specScalarCount, len(buf))
	}
	var s ProblemSpec
	s.NumColumns = int(buf[0])
	s.NumClasses = int(buf[1])
	s.NumRows = int(buf[2])
	s.ActualMtry = int(buf[3])
	s.ActualMSample = int(buf[4])
	s.Problem = ProblemType(buf[5])
	s.LabelKind = LabelType(buf[6])
	s.Weighted = buf[7] != 0

	want := specScalarCount + s.NumClasses
	if s.Weighted {
		want += s.NumClasses
	}
	if len(buf) != want {
		return gerrors.NewBufferSizeError("ProblemSpec.Deserialize", want, len(buf))
	}
	iter := buf[specScalarCount:]
	if s.Weighted {
		s.Weights = append(s.Weights, iter[:s.NumClasses]...)
		iter = iter[s.NumClasses:]
	}
	if s.NumClasses > 0 {
		s.Labels = make([]ClassLabel, s.NumClasses)
		for i, v := range iter {
			s.Labels[i] = labelFromFloat64(s.LabelKind, v)
		}
	}
	s.used = true
	*p = s
	return nil
}

// Equal reports structural equality over every field, catalog and weights
// included.
func (p *ProblemSpec) Equal(other *ProblemSpec) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.NumColumns != other.NumColumns ||
		p.NumClasses != other.NumClasses ||
		p.NumRows != other.NumRows ||
		p.ActualMtry != other.ActualMtry ||
		p.ActualMSample != other.ActualMSample ||
		p.Problem != other.Problem ||
		p.LabelKind != other.LabelKind ||
		p.Weighted != other.Weighted {
		return false
	}
	if len(p.Labels) != len(other.Labels) || len(p.Weights) != len(other.Weights) {
		return false
	}
	for i := range p.Labels {
		if p.Labels[i] != other.Labels[i] {
			return false
		}
	}
	for i := range p.Weights {
		if p.Weights[i] != other.Weights[i] {
			return false
		}
	}
	return true
}
