package schedulers

import (
	"sort"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestJobFirst runs the batch shortest burst first.
//
// The order is fixed once, up front, from every burst time in the batch. It is
// not re-evaluated as the clock advances, so a short job arriving late still
// goes ahead of a longer job that arrived earlier, and the cpu idles until it
// arrives. Textbook non-preemptive SJF would instead pick the shortest job
// already arrived at each decision point.
func ScheduleShortestJobFirst(batch core.Batch) (Result, error) {
	if batch.Len() == 0 {
		return Result{}, core.ErrEmptyBatch
	}
	logrus.Debugf("running sjf algorithm over %d processes ...", batch.Len())

	processes := sortShortestJob(batch.Processes())
	return simulate(ShortestJobFirst, processes), nil
}

// sortShortestJob orders processes by burst time ascending.
// Equal bursts keep their input order.
func sortShortestJob(processes []core.Process) []core.Process {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].BurstTime < processes[j].BurstTime
	})
	return processes
}
