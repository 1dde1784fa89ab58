package forest

import (
	gerrors "github.com/groveml/grove/pkg/errors"
)

// OptionsSerializedSize is the fixed number of numeric slots in the flat
// encoding of an Options record.
const OptionsSerializedSize = 11

// Options carries every hyperparameter a tree-ensemble learner needs that is
// independent of the training dataset. Problem-dependent values (class
// weights, resolved mtry and sample counts) live in ProblemSpec.
//
// Construct with NewOptions and configure through the fluent setters:
//
//	opts := forest.NewOptions().
//	    SampleWithReplacement(false).
//	    TreeCount(100)
//
// For each of the two grouped settings (bootstrap sample sizing, features per
// node) the mode tag is the single source of truth for which field is
// authoritative; every setter updates the field and its tag together. An
// Options handed to a learner must not be mutated afterwards.
type Options struct {
	// Bootstrap sample sizing. SampleMode selects which of the three fields
	// is authoritative: TagProportional, TagConst or TagFunction.
	SampleFraction float64
	SampleCount    int
	SampleFn       func(rowCount int) int
	SampleMode     OptionTag

	// WithReplacement selects sampling with or without replacement. When
	// false, SampleFraction is expected in (0, 1]; this is not enforced.
	WithReplacement bool

	// Stratification is one of TagEqual, TagProportional, TagExternal or
	// TagNone.
	Stratification OptionTag

	// Features considered per split. MtryMode selects the authoritative
	// field: TagLog, TagSqrt, TagAll, TagConst or TagFunction.
	MtryMode OptionTag
	Mtry     int
	MtryFn   func(columnCount int) int

	// NumTrees is the ensemble size.
	NumTrees int

	// MinSplitSize is the number of samples below which a node is not split
	// even if class separation is imperfect.
	MinSplitSize int
}

// NewOptions returns an Options record with the documented defaults:
// proportional sampling of the full training set with replacement, no
// stratification, sqrt mtry, 256 trees and complete growing (min split
// node size 1).
func NewOptions() *Options {
	return &Options{
		SampleFraction:  1.0,
		SampleMode:      TagProportional,
		WithReplacement: true,
		Stratification:  TagNone,
		MtryMode:        TagSqrt,
		NumTrees:        256,
		MinSplitSize:    1,
	}
}

// UseStratification selects the stratification strategy. Accepted tags are
// TagEqual, TagProportional, TagExternal and TagNone; any other tag fails
// with an InvalidParameterError and leaves the setting unchanged.
func (o *Options) UseStratification(tag OptionTag) (*Options, error) {
	switch tag {
	case TagEqual, TagProportional, TagExternal, TagNone:
		o.Stratification = tag
		return o, nil
	default:
		return o, gerrors.NewInvalidParameterError(
			"Options.UseStratification", "tag", tag.String(),
			"Equal, Proportional, External, None")
	}
}

// SampleWithReplacement selects sampling with or without replacement.
// Default: true.
func (o *Options) SampleWithReplacement(in bool) *Options {
	o.WithReplacement = in
	return o
}

// SamplesPerTreeFraction sizes each tree's bootstrap sample as a fraction of
// the training set. The value should be in (0, 1] when sampling without
// replacement; this is the caller's responsibility. Default: 1.0.
func (o *Options) SamplesPerTreeFraction(in float64) *Options {
	o.SampleFraction = in
	o.SampleMode = TagProportional
	return o
}

// SamplesPerTreeCount sets the bootstrap sample size per tree directly.
func (o *Options) SamplesPerTreeCount(in int) *Options {
	o.SampleCount = in
	o.SampleMode = TagConst
	return o
}

// SamplesPerTreeFunc derives the bootstrap sample size per tree from the row
// count through the supplied function.
func (o *Options) SamplesPerTreeFunc(in func(rowCount int) int) *Options {
	o.SampleFn = in
	o.SampleMode = TagFunction
	return o
}

// FeaturesPerNodeTag selects a built-in mapping from column count to mtry.
// Accepted tags are TagLog, TagSqrt and TagAll; any other tag fails with an
// InvalidParameterError and leaves the setting unchanged. Default: TagSqrt.
func (o *Options) FeaturesPerNodeTag(tag OptionTag) (*Options, error) {
	switch tag {
	case TagLog, TagSqrt, TagAll:
		o.MtryMode = tag
		return o, nil
	default:
		return o, gerrors.NewInvalidParameterError(
			"Options.FeaturesPerNodeTag", "tag", tag.String(),
			"Log, Sqrt, All")
	}
}

// FeaturesPerNodeCount sets mtry, the number of features randomly chosen to
// select the best split from, to a constant.
func (o *Options) FeaturesPerNodeCount(in int) *Options {
	o.Mtry = in
	o.MtryMode = TagConst
	return o
}

// FeaturesPerNodeFunc derives mtry from the column count through the supplied
// function.
func (o *Options) FeaturesPerNodeFunc(in func(columnCount int) int) *Options {
	o.MtryFn = in
	o.MtryMode = TagFunction
	return o
}

// TreeCount sets the ensemble size. Default: 256.
func (o *Options) TreeCount(in int) *Options {
	o.NumTrees = in
	return o
}

// MinSplitNodeSize sets the number of samples required for a node to be
// split. Below it the node becomes a leaf returning class proportions.
// Default: 1 (complete growing).
func (o *Options) MinSplitNodeSize(in int) *Options {
	o.MinSplitSize = in
	return o
}

// SerializedSize returns the number of float64 slots Serialize writes.
func (o *Options) SerializedSize() int {
	return OptionsSerializedSize
}

// Serialize writes the record into buf as exactly 11 float64 values in fixed
// field order. Enums encode as their ordinals, booleans as 0/1 and the two
// function fields as presence flags. It fails with a BufferSizeError, writing
// nothing, when len(buf) != 11.
func (o *Options) Serialize(buf []float64) error {
	if len(buf) != OptionsSerializedSize {
		return gerrors.NewBufferSizeError("Options.Serialize", OptionsSerializedSize, len(buf))
	}
	buf[0] = o.SampleFraction
	buf[1] = float64(o.SampleCount)
	buf[2] = boolToFloat(o.SampleFn != nil)
	buf[3] = float64(o.SampleMode)
	buf[4] = boolToFloat(o.WithReplacement)
	buf[5] = float64(o.Stratification)
	buf[6] = float64(o.MtryMode)
	buf[7] = float64(o.Mtry)
	buf[8] = boolToFloat(o.MtryFn != nil)
	buf[9] = float64(o.NumTrees)
	buf[10] = float64(o.MinSplitSize)
	return nil
}

// Deserialize reconstructs the record from a buffer produced by Serialize.
// The function fields cannot be recovered from a flat numeric encoding and
// are left untouched. It fails with a BufferSizeError, mutating nothing, when
// len(buf) != 11.
func (o *Options) Deserialize(buf []float64) error {
	if len(buf) != OptionsSerializedSize {
		return gerrors.NewBufferSizeError("Options.Deserialize", OptionsSerializedSize, len(buf))
	}
	o.SampleFraction = buf[0]
	o.SampleCount = int(buf[1])
	// buf[2] is the SampleFn presence flag; the function itself is gone.
	o.SampleMode = OptionTag(buf[3])
	o.WithReplacement = buf[4] != 0
	o.Stratification = OptionTag(buf[5])
	o.MtryMode = OptionTag(buf[6])
	o.Mtry = int(buf[7])
	// buf[8] is the MtryFn presence flag.
	o.NumTrees = int(buf[9])
	o.MinSplitSize = int(buf[10])
	return nil
}

// Equal reports structural equality over every field except the two function
// fields, whose identity the flat encoding only tracks as presence flags.
func (o *Options) Equal(other *Options) bool {
	if o == nil || other == nil {
		return o == other
	}
	return o.SampleFraction == other.SampleFraction &&
		o.SampleCount == other.SampleCount &&
		o.SampleMode == other.SampleMode &&
		o.WithReplacement == other.WithReplacement &&
		o.Stratification == other.Stratification &&
		o.MtryMode == other.MtryMode &&
		o.Mtry == other.Mtry &&
		o.NumTrees == other.NumTrees &&
		o.MinSplitSize == other.MinSplitSize
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
