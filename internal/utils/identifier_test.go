package utils_test

import (
	"strconv"
	"testing"

	"github.com/degroeneboom/school_site_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestNewEntityID_MonotonicAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := utils.NewEntityID()
		assert.False(t, seen[id], "id %s issued twice", id)
		seen[id] = true

		n, err := strconv.ParseInt(id, 10, 64)
		assert.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}
