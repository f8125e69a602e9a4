package schedulers

import (
	"github.com/sirupsen/logrus"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs the batch in input order.
// Input order is trusted as arrival order; processes are not re-sorted by arrival time.
func ScheduleFirstComeFirstServe(batch core.Batch) (Result, error) {
	if batch.Len() == 0 {
		return Result{}, core.ErrEmptyBatch
	}
	logrus.Debugf("running fcfs algorithm over %d processes ...", batch.Len())

	return simulate(FirstComeFirstServe, batch.Processes()), nil
}
