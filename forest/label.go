package forest

import (
	gerrors "github.com/groveml/grove/pkg/errors"
)

// Numeric is the set of element types a class label may natively have.
type Numeric interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64
}

// ClassLabel is one class label stored together with its native element type.
// A label is written once and served in any supported numeric type through
// LabelAs, so downstream consumers never need a type parameter of their own.
//
// ClassLabel is comparable; two labels are equal when both the native type and
// the value match.
type ClassLabel struct {
	kind LabelType
	uval uint64
	ival int64
	fval float64
}

// Kind returns the native element type the label was created with.
func (l ClassLabel) Kind() LabelType { return l.kind }

// Float64 returns the label converted to float64. This is the representation
// the flat codec persists.
func (l ClassLabel) Float64() float64 {
	switch {
	case l.kind.unsigned():
		return float64(l.uval)
	case l.kind.signed():
		return float64(l.ival)
	default:
		return l.fval
	}
}

// LabelOf wraps a single numeric value as a ClassLabel, recording its type.
func LabelOf[T Numeric](v T) ClassLabel {
	switch x := any(v).(type) {
	case uint8:
		return ClassLabel{kind: LabelUint8, uval: uint64(x)}
	case uint16:
		return ClassLabel{kind: LabelUint16, uval: uint64(x)}
	case uint32:
		return ClassLabel{kind: LabelUint32, uval: uint64(x)}
	case uint64:
		return ClassLabel{kind: LabelUint64, uval: x}
	case int8:
		return ClassLabel{kind: LabelInt8, ival: int64(x)}
	case int16:
		return ClassLabel{kind: LabelInt16, ival: int64(x)}
	case int32:
		return ClassLabel{kind: LabelInt32, ival: int64(x)}
	case int64:
		return ClassLabel{kind: LabelInt64, ival: x}
	case float32:
		return ClassLabel{kind: LabelFloat32, fval: float64(x)}
	default:
		return ClassLabel{kind: LabelFloat64, fval: any(v).(float64)}
	}
}

// LabelsOf wraps a sequence of numeric values as ClassLabels. It is the usual
// argument builder for ProblemSpec.Classes.
func LabelsOf[T Numeric](vals ...T) []ClassLabel {
	labels := make([]ClassLabel, len(vals))
	for i, v := range vals {
		labels[i] = LabelOf(v)
	}
	return labels
}

// LabelAs converts a label to the requested numeric type using Go's standard
// conversion rules. Out-of-range conversions are not validated; the caller is
// responsible for requesting a type the label fits in.
func LabelAs[T Numeric](l ClassLabel) T {
	switch {
	case l.kind.unsigned():
		return T(l.uval)
	case l.kind.signed():
		return T(l.ival)
	default:
		return T(l.fval)
	}
}

// ToClassLabel writes the class label at index into out, converted to the
// requested type. It fails with an IndexError when index is outside
// [0, ClassCount).
func ToClassLabel[T Numeric](p *ProblemSpec, index int, out *T) error {
	if index < 0 || index >= p.NumClasses {
		return gerrors.NewIndexError("ToClassLabel", index, p.NumClasses)
	}
	*out = LabelAs[T](p.Labels[index])
	return nil
}

// labelFromFloat64 rebuilds a label of the given native type from its
// persisted float64 form. Values that do not fit the target type follow Go's
// conversion behavior, matching the lossiness of the flat encoding.
func labelFromFloat64(kind LabelType, v float64) ClassLabel {
	switch kind {
	case LabelUint8:
		return LabelOf(uint8(v))
	case LabelUint16:
		return LabelOf(uint16(v))
	case LabelUint32:
		return LabelOf(uint32(v))
	case LabelUint64:
		return LabelOf(uint64(v))
	case LabelInt8:
		return LabelOf(int8(v))
	case LabelInt16:
		return LabelOf(int16(v))
	case LabelInt32:
		return LabelOf(int32(v))
	case LabelInt64:
		return LabelOf(int64(v))
	case LabelFloat32:
		return LabelOf(float32(v))
	case LabelFloat64:
		return LabelOf(v)
	default:
		// Unknown native type: keep the persisted representation.
		return ClassLabel{kind: LabelUnknown, fval: v}
	}
}
