package ofs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLeadingRemainingSplitLast is a function.
func TestLeadingRemainingSplitLast(t *testing.T) {
	type scenario struct {
		path           string
		leading        string
		remaining      string
		parent         string
		final          string
	}

	scenarios := []scenario{
		{
			"usr/local/bin/",
			"usr",
			"/local/bin/",
			"usr/local/",
			"bin",
		},
		{
			"/dev/null",
			"dev",
			"/null",
			"/dev/",
			"null",
		},
		{
			"usrlocal",
			"usrlocal",
			"",
			"",
			"usrlocal",
		},
		{
			"test/",
			"test",
			"/",
			"",
			"test",
		},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.leading, Leading(s.path))
		assert.Equal(t, s.remaining, Remaining(s.path))

		parent, final := SplitLast(s.path)
		assert.Equal(t, s.parent, parent)
		assert.Equal(t, s.final, final)
	}
}

// TestSizeHuman is a function.
func TestSizeHuman(t *testing.T) {
	type scenario struct {
		size     uint64
		expected string
	}

	scenarios := []scenario{
		{0, "0.0 B"},
		{512, "512.0 B"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, s := range scenarios {
		assert.Equal(t, s.expected, SizeHuman(s.size))
	}
}
