package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Catalog
		want Catalog
	}{
		{name: "empty", in: nil, want: Catalog{}},
		{name: "already normalized", in: Catalog{1, 2, 3}, want: Catalog{1, 2, 3}},
		{name: "unsorted", in: Catalog{470, 33, 68}, want: Catalog{33, 68, 470}},
		{name: "duplicates removed", in: Catalog{68, 33, 68, 33}, want: Catalog{33, 68}},
		{name: "single value", in: Catalog{4.7}, want: Catalog{4.7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	in := Catalog{3, 1, 2}
	_ = in.Normalize()
	assert.Equal(t, Catalog{3, 1, 2}, in)
}
