package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduler/internal/core"
)

func TestLoadYAMLBatch(t *testing.T) {
	input := `
count: 3
processes:
  - arrival_time: 0
    burst_time: 5
  - arrival_time: 1
    burst_time: 3
  - arrival_time: 2
    burst_time: 8
`
	batch, err := LoadYAMLBatch(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, batch.IDs())
	assert.Equal(t, 8, batch.Processes()[2].BurstTime)
}

func TestLoadYAMLBatch_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty document": "",
		"unknown field":  "processes:\n  - arrival_time: 0\n    burst: 5\n",
		"missing burst":  "processes:\n  - arrival_time: 0\n",
		"count mismatch": "count: 2\nprocesses:\n  - arrival_time: 0\n    burst_time: 5\n",
		"not a list":     "processes: 3\n",
		"zero burst":     "processes:\n  - arrival_time: 0\n    burst_time: 0\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAMLBatch(strings.NewReader(input))
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}
