package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, int64(0), Sum([]int64(nil)))
}

func TestMin(t *testing.T) {
	v, ok := Min([]int64{35, 46, 13})
	assert.True(t, ok)
	assert.Equal(t, int64(13), v)

	_, ok = Min([]int{})
	assert.False(t, ok)
}
