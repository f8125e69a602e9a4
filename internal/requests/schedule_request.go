package requests

import "cpu-scheduler/internal/core"

type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// Batch validates the jobs and builds a batch with ids in request order.
func (r ScheduleRequests) Batch() (core.Batch, error) {
	records := make([]core.Record, len(r.Jobs))
	for i, job := range r.Jobs {
		records[i] = core.Record{ArrivalTime: job.ArrivalTime, BurstTime: job.BurstTime}
	}
	return core.NewBatch(len(records), records)
}
