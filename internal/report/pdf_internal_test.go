package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := map[string]struct {
		count    int
		expSizes []int
	}{
		"no tasks still has one page": {count: 0, expSizes: []int{0}},
		"one task":                    {count: 1, expSizes: []int{1}},
		"first page full":             {count: 9, expSizes: []int{9}},
		"first block on second page":  {count: 10, expSizes: []int{9, 1}},
		"second page full":            {count: 19, expSizes: []int{9, 10}},
		"three pages":                 {count: 25, expSizes: []int{9, 10, 6}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			pages := paginate(test.count)

			sizes := make([]int, 0, len(pages))
			next := 0
			for _, p := range pages {
				sizes = append(sizes, len(p))
				for _, i := range p {
					assert.Equal(t, next, i, "blocks must keep task order")
					next++
				}
			}
			assert.Equal(t, test.expSizes, sizes)
		})
	}
}
