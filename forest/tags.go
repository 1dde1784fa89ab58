// Package forest provides the configuration and problem-metadata subsystem of
// a random-forest learner: the Options hyperparameter record, the ProblemSpec
// label-space record, and the Slot explicit-or-default argument carrier.
//
// Both records serialize to a flat float64 sequence whose field order and
// ordinal encodings are fixed, so persisted models remain readable across
// versions. ProblemSpec additionally offers a named-map encoding for
// attribute-store interchange.
package forest

// OptionTag selects one strategy inside a grouped Options field. The sampling
// group accepts Proportional, Const and Function; the stratification group
// accepts Equal, Proportional, External and None; the mtry group accepts Log,
// Sqrt, Const, Function and All.
//
// The ordinal values are part of the serialized format and must not be
// reordered.
type OptionTag int

const (
	// TagEqual draws an equal number of samples per class.
	TagEqual OptionTag = iota
	// TagProportional sizes per class proportionally to its population share,
	// or, in the sampling group, sizes the bootstrap sample as a fraction of
	// the row count.
	TagProportional
	// TagExternal uses externally supplied strata weights.
	TagExternal
	// TagNone disables stratification.
	TagNone
	// TagFunction delegates the group's value to a user-supplied function.
	TagFunction
	// TagLog sets mtry to floor(log2(columnCount)) + 1.
	TagLog
	// TagSqrt sets mtry to the rounded square root of the column count.
	TagSqrt
	// TagConst uses the group's constant field directly.
	TagConst
	// TagAll uses every feature at each split.
	TagAll
)

func (t OptionTag) String() string {
	switch t {
	case TagEqual:
		return "Equal"
	case TagProportional:
		return "Proportional"
	case TagExternal:
		return "External"
	case TagNone:
		return "None"
	case TagFunction:
		return "Function"
	case TagLog:
		return "Log"
	case TagSqrt:
		return "Sqrt"
	case TagConst:
		return "Const"
	case TagAll:
		return "All"
	default:
		return "Unknown"
	}
}

// ProblemType classifies the learning problem a ProblemSpec describes.
type ProblemType int

const (
	// ProblemRegression marks a continuous-target problem.
	ProblemRegression ProblemType = iota
	// ProblemClassification marks a discrete-label problem.
	ProblemClassification
	// ProblemUnresolved defers the decision to the problem-analysis phase.
	ProblemUnresolved
)

func (p ProblemType) String() string {
	switch p {
	case ProblemRegression:
		return "Regression"
	case ProblemClassification:
		return "Classification"
	case ProblemUnresolved:
		return "Unresolved"
	default:
		return "Unknown"
	}
}

// LabelType records the native element type of the class labels handed to a
// ProblemSpec. The ordinals are part of the serialized format.
type LabelType int

const (
	LabelUint8 LabelType = iota
	LabelUint16
	LabelUint32
	LabelUint64
	LabelInt8
	LabelInt16
	LabelInt32
	LabelInt64
	LabelFloat64
	LabelFloat32
	LabelUnknown
)

func (t LabelType) String() string {
	switch t {
	case LabelUint8:
		return "uint8"
	case LabelUint16:
		return "uint16"
	case LabelUint32:
		return "uint32"
	case LabelUint64:
		return "uint64"
	case LabelInt8:
		return "int8"
	case LabelInt16:
		return "int16"
	case LabelInt32:
		return "int32"
	case LabelInt64:
		return "int64"
	case LabelFloat64:
		return "float64"
	case LabelFloat32:
		return "float32"
	default:
		return "unknown"
	}
}

func (t LabelType) unsigned() bool {
	return t >= LabelUint8 && t <= LabelUint64
}

func (t LabelType) signed() bool {
	return t >= LabelInt8 && t <= LabelInt64
}
