package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnChunkSize(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 8: 4, 9: 5, 10: 5} {
		assert.Equal(t, want, ColumnChunkSize(n), "n=%d", n)
	}
}

func TestDistributeColumns(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}

	got := DistributeColumns(items, 4)

	// nine offer fields land 5 + 4 in the first two of four columns
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}, {6, 7, 8, 9}, nil, nil}, got)
}

func TestDistributeColumnsUnevenRemainder(t *testing.T) {
	got := DistributeColumns([]string{"a", "b", "c"}, 4)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, nil, nil}, got)

	got = DistributeColumns([]string{"a"}, 4)
	assert.Equal(t, [][]string{{"a"}, nil, nil, nil}, got)
}

func TestDistributeColumnsFewerColumnsThanChunks(t *testing.T) {
	got := DistributeColumns([]int{1, 2, 3, 4}, 1)
	assert.Equal(t, [][]int{{1, 2}}, got)
}

func TestDistributeColumnsEmpty(t *testing.T) {
	assert.Equal(t, [][]int{nil, nil}, DistributeColumns([]int{}, 2))
	assert.Nil(t, DistributeColumns([]int{1}, 0))
}
