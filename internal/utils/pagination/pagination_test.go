package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 1, wantSize: 9, wantOffset: 0},
		{name: "negative values", page: -3, size: -1, wantPage: 1, wantSize: 9, wantOffset: 0},
		{name: "second page", page: 2, size: 9, wantPage: 2, wantSize: 9, wantOffset: 9},
		{name: "capped size", page: 3, size: 500, wantPage: 3, wantSize: 100, wantOffset: 200},
		{name: "huge page does not overflow", page: math.MaxInt/9 + 2, size: 9, wantPage: math.MaxInt/9 + 1, wantSize: 9, wantOffset: math.MaxInt / 9 * 9},
		{name: "max int page", page: math.MaxInt, size: 100, wantPage: math.MaxInt/100 + 1, wantSize: 100, wantOffset: math.MaxInt / 100 * 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := Normalize(tc.page, tc.size, 9, 100)
			assert.Equal(t, tc.wantPage, w.Page)
			assert.Equal(t, tc.wantSize, w.PageSize)
			assert.Equal(t, tc.wantSize, w.Limit())
			assert.Equal(t, tc.wantOffset, w.Offset())
		})
	}
}

func TestOffsetNeverNegative(t *testing.T) {
	for _, size := range []int{1, 9, 100} {
		for _, page := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt/size + 1, math.MaxInt/size + 2} {
			assert.GreaterOrEqual(t, Normalize(page, size, 9, 100).Offset(), 0, "page %d size %d", page, size)
		}
	}
}
