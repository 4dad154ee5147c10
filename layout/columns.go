package layout

import "github.com/samber/lo"

// ColumnChunkSize is the number of items each column receives when n items
// are distributed column-major: ceil(n/2), independent of the column count.
func ColumnChunkSize(n int) int {
	return (n + 1) / 2
}

// DistributeColumns fills columns in order, giving each one the next
// ColumnChunkSize(len(items)) items. The result always has exactly columns
// entries; columns past the last chunk are empty and items beyond the last
// column are dropped.
func DistributeColumns[T any](items []T, columns int) [][]T {
	if columns <= 0 {
		return nil
	}
	out := make([][]T, columns)
	if len(items) == 0 {
		return out
	}
	for i, chunk := range lo.Chunk(items, ColumnChunkSize(len(items))) {
		if i >= columns {
			break
		}
		out[i] = chunk
	}
	return out
}
