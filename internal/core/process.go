package core

import "fmt"

// Record is one raw (arrival, burst) pair as supplied by a loader.
type Record struct {
	ArrivalTime int
	BurstTime   int
}

// Process is one simulated unit of work together with its computed timings.
type Process struct {
	ID             int
	ArrivalTime    int
	BurstTime      int
	WaitingTime    int
	TurnaroundTime int
	StartTime      int
	CompletionTime int
}

// Batch is an ordered sequence of processes. IDs are assigned once, at
// construction, and follow input order regardless of later reordering.
type Batch struct {
	processes []Process
}

// NewBatch builds a batch from records, assigning 1-based ids in input order.
// declared is the process count announced by the input and must match len(records).
func NewBatch(declared int, records []Record) (Batch, error) {
	if declared != len(records) {
		return Batch{}, fmt.Errorf("%w: declared %d processes, got %d", ErrInvalidInput, declared, len(records))
	}
	processes := make([]Process, 0, len(records))
	for i, r := range records {
		if r.ArrivalTime < 0 {
			return Batch{}, fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidInput, i+1, r.ArrivalTime)
		}
		if r.BurstTime <= 0 {
			return Batch{}, fmt.Errorf("%w: process %d has non-positive burst time %d", ErrInvalidInput, i+1, r.BurstTime)
		}
		processes = append(processes, Process{
			ID:          i + 1,
			ArrivalTime: r.ArrivalTime,
			BurstTime:   r.BurstTime,
		})
	}
	return Batch{processes: processes}, nil
}

// BatchOf wraps already-built processes in order. The slice is copied.
func BatchOf(processes []Process) Batch {
	return Batch{processes: append([]Process(nil), processes...)}
}

// Len returns the number of processes in the batch.
func (b Batch) Len() int {
	return len(b.processes)
}

// Processes returns a copy of the processes in current order.
func (b Batch) Processes() []Process {
	return append([]Process(nil), b.processes...)
}

// IDs returns the process ids in current order.
func (b Batch) IDs() []int {
	ids := make([]int, len(b.processes))
	for i, p := range b.processes {
		ids[i] = p.ID
	}
	return ids
}

func (b Batch) String() string {
	return fmt.Sprintf("%v", b.IDs())
}
