package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSteps_Order(t *testing.T) {
	names := make([]string, len(storeSteps))
	for i, s := range storeSteps {
		names[i] = s.name
	}
	assert.Equal(t, []string{"custom", "enum", "generic", "container", "class"}, names)
}
