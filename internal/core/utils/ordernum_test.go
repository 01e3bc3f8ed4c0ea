package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valdes557/digitalmarket/internal/core/utils"
)

func TestGenerateOrderNumber(t *testing.T) {
	number, err := utils.GenerateOrderNumber()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(number, "DM"))
	assert.Equal(t, number, strings.ToUpper(number))
}

func TestGenerateOrderNumberUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		number, err := utils.GenerateOrderNumber()
		assert.NoError(t, err)
		_, dup := seen[number]
		assert.False(t, dup, number)
		seen[number] = struct{}{}
	}
}
