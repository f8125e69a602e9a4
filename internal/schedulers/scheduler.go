package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// Algorithm selects a non-preemptive scheduling discipline.
type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota + 1
	ShortestJobFirst
)

var algorithmNames = map[Algorithm]string{
	FirstComeFirstServe: "FCFS",
	ShortestJobFirst:    "SJF",
}

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a selector to an Algorithm. Matching is exact and case-sensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if algorithmNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", core.ErrUnsupportedAlgorithm, name)
}

// Result is the outcome of one scheduling run.
// Batch holds the processes in execution order with their timings filled in.
type Result struct {
	Algorithm             Algorithm
	Batch                 core.Batch
	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnaroundTime float64
	Cpu                   core.CpuMetric
}

// Throughput is the number of completed processes per simulated time unit.
func (r Result) Throughput() float64 {
	if r.Cpu.TotalTime == 0 {
		return 0
	}
	return float64(r.Batch.Len()) / float64(r.Cpu.TotalTime)
}

// Schedule runs the algorithm named algorithmName over batch.
// The batch passed in is never modified; on error no result is produced.
func Schedule(batch core.Batch, algorithmName string) (Result, error) {
	algorithm, err := ParseAlgorithm(algorithmName)
	if err != nil {
		return Result{}, err
	}
	return Run(batch, algorithm)
}

// Run dispatches batch to the scheduler implementing algorithm.
func Run(batch core.Batch, algorithm Algorithm) (Result, error) {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(batch)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(batch)
	default:
		return Result{}, fmt.Errorf("%w: %v", core.ErrUnsupportedAlgorithm, algorithm)
	}
}

// ScheduleAll runs every supported algorithm over its own copy of batch.
func ScheduleAll(batch core.Batch) (map[Algorithm]Result, error) {
	results := make(map[Algorithm]Result, len(algorithmNames))
	for _, algorithm := range Algorithms() {
		result, err := Run(batch, algorithm)
		if err != nil {
			return nil, err
		}
		results[algorithm] = result
	}
	return results, nil
}

// simulate executes processes on a fresh cpu in the given order.
// processes must be owned by the caller; timings are written in place.
func simulate(algorithm Algorithm, processes []core.Process) Result {
	cpu := core.NewCpu()
	for i := range processes {
		cpu.Execute(&processes[i])
	}

	averageWaitingTime, averageResponseTime, averageTurnaroundTime := util.CalculateAverage(processes)
	result := Result{
		Algorithm:             algorithm,
		Batch:                 core.BatchOf(processes),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnaroundTime: averageTurnaroundTime,
		Cpu:                   cpu.Metric(),
	}

	logrus.WithFields(logrus.Fields{
		"algorithm":  algorithm,
		"order":      result.Batch.IDs(),
		"total_time": result.Cpu.TotalTime,
	}).Debug("schedule complete")
	return result
}
