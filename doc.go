// Package grove provides the configuration and problem-metadata layer of a
// random-forest learning pipeline for Go.
//
// Grove separates what a forest learner can be told (hyperparameters) from
// what it must know about the data (label metadata):
//
//   - forest.Options carries every dataset-independent hyperparameter:
//     bootstrap sampling strategy, stratification, feature-subset (mtry)
//     strategy, tree count and the minimum node size for splitting.
//   - forest.ProblemSpec carries the label-space metadata of one training
//     problem: class catalog, optional class weights, shape counts and the
//     resolved per-problem parameters.
//   - forest.Slot lets a learner API accept "use the library default" for any
//     collaborator argument without nullable wrappers at the call site.
//
// Both records serialize to a flat float64 sequence for model persistence and
// to a named map for attribute-store interchange.
//
// # Quick Start
//
//	opts := forest.NewOptions().
//	    TreeCount(100).
//	    MinSplitNodeSize(5).
//	    FeaturesPerNodeTag(forest.TagSqrt)
//
//	spec := forest.NewProblemSpec().
//	    ColumnCount(4).
//	    Classes(forest.LabelsOf[int32](0, 1, 2))
//
// The tree-growing algorithm itself (split selection, impurity criteria,
// stopping, out-of-bag bookkeeping) is an external collaborator consumed
// through these contracts.
package grove
