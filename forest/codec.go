package forest

import (
	json "github.com/goccy/go-json"

	gerrors "github.com/groveml/grove/pkg/errors"
)

// Map-encoding keys. Scalar fields are stored as length-1 sequences under
// their historical attribute-store names; sequence fields keep their own
// keys. Unlike the attribute stores this format originated in, the class
// catalog is carried too, so both encodings round-trip the same information.
const (
	keyColumnCount   = "column_count_"
	keyClassCount    = "class_count_"
	keyRowCount      = "row_count_"
	keyActualMtry    = "actual_mtry_"
	keyActualMSample = "actual_msample_"
	keyProblemType   = "problem_type_"
	keyClassType     = "class_type_"
	keyIsWeighted    = "is_weighted_"
	keyClassWeights  = "class_weights_"
	keyClassCatalog  = "class_catalog_"
)

// ToMap renders the spec as a mapping from field-name strings to float64
// sequences, the self-describing alternative to the positional encoding.
func (p *ProblemSpec) ToMap() map[string][]float64 {
	m := map[string][]float64{
		keyColumnCount:   {float64(p.NumColumns)},
		keyClassCount:    {float64(p.NumClasses)},
		keyRowCount:      {float64(p.NumRows)},
		keyActualMtry:    {float64(p.ActualMtry)},
		keyActualMSample: {float64(p.ActualMSample)},
		keyProblemType:   {float64(p.Problem)},
		keyClassType:     {float64(p.LabelKind)},
		keyIsWeighted:    {boolToFloat(p.Weighted)},
	}
	weights := make([]float64, len(p.Weights))
	copy(weights, p.Weights)
	m[keyClassWeights] = weights

	catalog := make([]float64, len(p.Labels))
	for i, l := range p.Labels {
		catalog[i] = l.Float64()
	}
	m[keyClassCatalog] = catalog
	return m
}

// FromMap is the inverse of ToMap. Sequence lengths are validated against the
// recovered class count; on any mismatch or missing scalar the receiver is
// left unmodified.
func (p *ProblemSpec) FromMap(in map[string][]float64) error {
	scalar := func(key string) (float64, error) {
		seq, ok := in[key]
		if !ok || len(seq) == 0 {
			return 0, gerrors.Newf("grove: ProblemSpec.FromMap: missing scalar %q", key)
		}
		return seq[0], nil
	}

	var s ProblemSpec
	var err error
	var v float64
	if v, err = scalar(keyColumnCount); err != nil {
		return err
	}
	s.NumColumns = int(v)
	if v, err = scalar(keyClassCount); err != nil {
		return err
	}
	s.NumClasses = int(v)
	if v, err = scalar(keyRowCount); err != nil {
		return err
	}
	s.NumRows = int(v)
	if v, err = scalar(keyActualMtry); err != nil {
		return err
	}
	s.ActualMtry = int(v)
	if v, err = scalar(keyActualMSample); err != nil {
		return err
	}
	s.ActualMSample = int(v)
	if v, err = scalar(keyProblemType); err != nil {
		return err
	}
	s.Problem = ProblemType(v)
	if v, err = scalar(keyClassType); err != nil {
		return err
	}
	s.LabelKind = LabelType(v)
	if v, err = scalar(keyIsWeighted); err != nil {
		return err
	}
	s.Weighted = v != 0

	if s.Weighted {
		weights := in[keyClassWeights]
		if len(weights) != s.NumClasses {
			return gerrors.NewBufferSizeError("ProblemSpec.FromMap", s.NumClasses, len(weights))
		}
		s.Weights = append(s.Weights, weights...)
	}
	catalog := in[keyClassCatalog]
	if len(catalog) != s.NumClasses {
		return gerrors.NewBufferSizeError("ProblemSpec.FromMap", s.NumClasses, len(catalog))
	}
	if s.NumClasses > 0 {
		s.Labels = make([]ClassLabel, s.NumClasses)
		for i, f := range catalog {
			s.Labels[i] = labelFromFloat64(s.LabelKind, f)
		}
	}
	s.used = true
	*p = s
	return nil
}

// MarshalJSON renders the map encoding as JSON, for interchange with
// persistence formats that prefer named fields over positional ones.
func (p *ProblemSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToMap())
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *ProblemSpec) UnmarshalJSON(data []byte) error {
	var m map[string][]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return gerrors.Wrap(err, "ProblemSpec.UnmarshalJSON")
	}
	return p.FromMap(m)
}
