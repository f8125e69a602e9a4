// Package report renders scheduling results for people and programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

// FormatReport renders the execution order and both averages, two decimals each.
func FormatReport(batch core.Batch, averageWaitingTime, averageTurnaroundTime float64) string {
	var sb strings.Builder
	sb.WriteString("Scheduling order: ")
	for i, id := range batch.IDs() {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		fmt.Fprintf(&sb, "P%d", id)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Average Waiting Time: %.2f\n", averageWaitingTime)
	fmt.Fprintf(&sb, "Average Turnaround Time: %.2f\n", averageTurnaroundTime)
	return sb.String()
}

// WriteText writes FormatReport for result to w.
func WriteText(w io.Writer, result schedulers.Result) error {
	_, err := io.WriteString(w, FormatReport(result.Batch, result.AverageWaitingTime, result.AverageTurnaroundTime))
	return err
}

// WriteTable writes a Gantt line followed by a per-process table in execution order.
func WriteTable(w io.Writer, result schedulers.Result) error {
	if _, err := fmt.Fprintf(w, "%s schedule\n", result.Algorithm); err != nil {
		return err
	}
	if err := writeGantt(w, result.Batch.Processes()); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Wait", "Turnaround", "Exit"})
	for _, p := range result.Batch.Processes() {
		table.Append([]string{
			fmt.Sprint(p.ID),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.Throughput())})
	table.Render()

	_, err := fmt.Fprintf(w, "CPU utilization: %.2f%% (idle %d of %d)\n",
		result.Cpu.Utilization()*100, result.Cpu.IdleTime, result.Cpu.TotalTime)
	return err
}

// writeGantt draws one cell per process plus idle cells for gaps, e.g.
//
//	| P1 | idle | P2 |
//	0    5      7    9
func writeGantt(w io.Writer, processes []core.Process) error {
	var cells, ticks strings.Builder
	cells.WriteString("|")
	clock := 0
	cell := func(label string, start int) {
		text := " " + label + " "
		cells.WriteString(text + "|")
		mark := fmt.Sprint(start)
		ticks.WriteString(mark + strings.Repeat(" ", max(len(text)+1-len(mark), 1)))
	}
	for _, p := range processes {
		if p.StartTime > clock {
			cell("idle", clock)
		}
		cell(fmt.Sprintf("P%d", p.ID), p.StartTime)
		clock = p.CompletionTime
	}
	ticks.WriteString(fmt.Sprint(clock))
	_, err := fmt.Fprintf(w, "%s\n%s\n", cells.String(), ticks.String())
	return err
}

// WriteJSON writes response as indented JSON.
func WriteJSON(w io.Writer, response any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(response)
}
