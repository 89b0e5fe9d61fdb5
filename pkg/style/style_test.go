package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestColorHelpersPreserveText is a function.
func TestColorHelpersPreserveText(t *testing.T) {
	type scenario struct {
		name string
		fn   func(string) string
	}

	scenarios := []scenario{
		{"bold", Bold},
		{"red", Red},
		{"yellow", Yellow},
		{"green", Green},
	}

	for _, s := range scenarios {
		out := s.fn("score")
		assert.Contains(t, out, "score")
	}
}
