package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// GenerateResponse converts a scheduling result into its wire representation.
// Details are listed in execution order.
func GenerateResponse(result Result) responses.ScheduleResponse {
	processes := result.Batch.Processes()
	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		details = append(details, generateProcessDetails(process))
	}

	return responses.ScheduleResponse{
		Algorithm:             result.Algorithm.String(),
		SchedulingOrder:       result.Batch.IDs(),
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         result.Throughput(),
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		Details:               details,
	}
}

// GenerateResponses converts results to their wire form, keyed by algorithm name.
func GenerateResponses(results map[Algorithm]Result) map[string]responses.ScheduleResponse {
	out := make(map[string]responses.ScheduleResponse, len(results))
	for algorithm, result := range results {
		out[algorithm.String()] = GenerateResponse(result)
	}
	return out
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		StartTime:      process.StartTime,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.StartTime - process.ArrivalTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
