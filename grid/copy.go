// Package grid provides element-wise transfer between two-dimensional grids,
// optionally gated by a mask predicate, with value-type conversion on the
// way. The forest learner uses it to move feature and label planes between
// differently-typed buffers.
//
// Both operations visit every position of the shared rectangular domain (the
// overlap of the two grids) exactly once, in row-major order, and apply the
// conversion before writing. Ragged inner rows clip the domain per row.
package grid

// CopyRegion copies src into dst over their shared rectangular domain,
// converting each element before the write.
func CopyRegion[S, D any](src [][]S, dst [][]D, convert func(S) D) {
	rows := min(len(src), len(dst))
	for r := 0; r < rows; r++ {
		cols := min(len(src[r]), len(dst[r]))
		for c := 0; c < cols; c++ {
			dst[r][c] = convert(src[r][c])
		}
	}
}

// CopyRegionWhere copies src into dst over the shared rectangular domain of
// src, mask and dst, writing a position only where the mask value is truthy.
func CopyRegionWhere[S, M, D any](src [][]S, mask [][]M, dst [][]D, truthy func(M) bool, convert func(S) D) {
	rows := min(len(src), len(mask), len(dst))
	for r := 0; r < rows; r++ {
		cols := min(len(src[r]), len(mask[r]), len(dst[r]))
		for c := 0; c < cols; c++ {
			if truthy(mask[r][c]) {
				dst[r][c] = convert(src[r][c])
			}
		}
	}
}
