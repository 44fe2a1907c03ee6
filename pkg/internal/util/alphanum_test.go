package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortAlphanum(t *testing.T) {
	names := []string{"model10", "model2", "hermes", "model1", "deepseek"}
	SortAlphanum(names)

	require.Equal(t, []string{"deepseek", "hermes", "model1", "model2", "model10"}, names)
}
