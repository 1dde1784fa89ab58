// Package log defines standard attribute keys for forest configuration and
// problem-analysis operations.
//
// Using these keys consistently enables filtering of structured logs by
// operation, record type, and data shape across the library.

package log

// Operation Context
// These attributes identify the record type and operation being performed.
const (
	// RecordKey identifies the record a log entry concerns.
	// Examples: "Options", "ProblemSpec"
	RecordKey = "forest.record"

	// OperationKey specifies the operation being performed.
	// Standard values: "serialize", "deserialize", "analyze", "save", "load"
	OperationKey = "forest.operation"

	// PhaseKey indicates the phase of the learning lifecycle.
	// Examples: "configuration", "problem_analysis", "persistence"
	PhaseKey = "forest.phase"
)

// Data Shape and Characteristics
// These attributes describe the training problem a record refers to.
const (
	// RowsKey indicates the number of samples (rows) in the dataset.
	RowsKey = "data.rows"

	// ColumnsKey indicates the number of features (columns) in the dataset.
	ColumnsKey = "data.columns"

	// ClassesKey indicates the number of distinct class labels.
	ClassesKey = "data.classes"

	// LabelTypeKey records the native element type of the class labels.
	// Examples: "int32", "float64"
	LabelTypeKey = "data.label_type"

	// WeightedKey records whether per-class weights are in effect.
	WeightedKey = "data.weighted"
)

// Hyperparameter Context
// These attributes capture resolved per-problem parameters.
const (
	// TreesKey records the configured ensemble size.
	TreesKey = "forest.trees"

	// MtryKey records the resolved number of features per split.
	MtryKey = "forest.mtry"

	// MSampleKey records the resolved bootstrap sample size per tree.
	MSampleKey = "forest.msample"
)
