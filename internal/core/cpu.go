package core

import "github.com/sirupsen/logrus"

type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

// Utilization is the busy share of the total simulated time.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.BusyTime) / float64(m.TotalTime)
}

// Cpu is a single simulated core driven by a virtual clock starting at 0.
// It never preempts: every process handed to Execute runs to completion.
type Cpu struct {
	clock  int
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{}
}

// Execute runs process on the cpu, filling in its timings.
// When the process has not arrived yet the cpu idles until it does.
func (c *Cpu) Execute(process *Process) {
	if c.clock < process.ArrivalTime {
		logrus.Debugf("pid: %d cpu idle from %d to %d", process.ID, c.clock, process.ArrivalTime)
		c.metric.IdleTime += process.ArrivalTime - c.clock
		c.clock = process.ArrivalTime
	}

	process.StartTime = c.clock
	process.WaitingTime = c.clock - process.ArrivalTime
	process.TurnaroundTime = process.WaitingTime + process.BurstTime

	c.clock += process.BurstTime
	c.metric.BusyTime += process.BurstTime
	process.CompletionTime = c.clock
	logrus.Debugf("pid: %d executed at %d, completed at %d", process.ID, process.StartTime, process.CompletionTime)
}

// Clock returns the current simulated time.
func (c *Cpu) Clock() int {
	return c.clock
}

func (c *Cpu) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
