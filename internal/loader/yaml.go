package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
)

// BatchFile is the YAML batch layout:
//
//	count: 2            # optional, checked against the list when present
//	processes:
//	  - arrival_time: 0
//	    burst_time: 5
//	  - arrival_time: 1
//	    burst_time: 3
type BatchFile struct {
	Count     *int          `yaml:"count"`
	Processes []ProcessSpec `yaml:"processes"`
}

type ProcessSpec struct {
	ArrivalTime *int `yaml:"arrival_time"`
	BurstTime   *int `yaml:"burst_time"`
}

// LoadYAMLBatch decodes a BatchFile. Unknown fields are rejected so that typos
// fail loudly instead of silently defaulting to zero.
func LoadYAMLBatch(r io.Reader) (core.Batch, error) {
	var file BatchFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return core.Batch{}, fmt.Errorf("%w: empty batch file", core.ErrInvalidInput)
		}
		return core.Batch{}, fmt.Errorf("%w: %v", core.ErrInvalidInput, err)
	}

	records := make([]core.Record, len(file.Processes))
	for i, p := range file.Processes {
		if p.ArrivalTime == nil || p.BurstTime == nil {
			return core.Batch{}, fmt.Errorf("%w: process %d needs arrival_time and burst_time", core.ErrInvalidInput, i+1)
		}
		records[i] = core.Record{ArrivalTime: *p.ArrivalTime, BurstTime: *p.BurstTime}
	}

	declared := len(records)
	if file.Count != nil {
		declared = *file.Count
	}
	return core.NewBatch(declared, records)
}
