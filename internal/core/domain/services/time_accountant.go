package services

import (
	"time"

	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/model/report"
)

// TimeAccountant is a domain service that derives the time-accounting metrics
// of a shift from its orders and their breakage reports.
//
// The metrics partition the shift duration into mutually exclusive categories:
//
//	total = good + bad + bugs + lost + chill
//
// Key rules:
//   - Derivations are pure functions of their inputs: re-running any
//     computation over unchanged orders yields the same value
//   - Missing optional fields contribute zero and are silently skipped,
//     tolerating orders aborted mid-flow
//
// Example usage:
//
//	accountant := services.NewTimeAccountant()
//	good := accountant.GoodTime(orders)
//	bad := accountant.BadTime(orders)
//	lost := accountant.LostTime(total, good, bad, bugs, chill)
type TimeAccountant struct{}

// NewTimeAccountant creates a new TimeAccountant instance.
func NewTimeAccountant() TimeAccountant {
	return TimeAccountant{}
}

// EndedOrderCount counts the orders that finished cleanly, i.e. were not
// ended early by a force-stop.
func (TimeAccountant) EndedOrderCount(orders []*order.Order) int {
	count := 0
	for _, o := range orders {
		if !o.EndedEarly() {
			count++
		}
	}
	return count
}

// TotalBugsTime sums the bug time over all orders. Orders whose bug time was
// never computed contribute zero.
func (TimeAccountant) TotalBugsTime(orders []*order.Order) time.Duration {
	var total time.Duration
	for _, o := range orders {
		if bugs := o.BugsTime(); bugs != nil {
			total += *bugs
		}
	}
	return total
}

// GoodTime sums the machine run duration (machine end minus machine start)
// over all orders, skipping orders where either bound is missing.
func (TimeAccountant) GoodTime(orders []*order.Order) time.Duration {
	var total time.Duration
	for _, o := range orders {
		start := o.MachineStartTime()
		end := o.MachineEndTime()
		if start == nil || end == nil {
			continue
		}
		total += end.Sub(*start)
	}
	return total
}

// BadTime sums the manual-handling overhead per order: the span from scan to
// end of work, minus the machine run and minus the bug time. Orders missing
// any of the five involved fields contribute zero.
func (TimeAccountant) BadTime(orders []*order.Order) time.Duration {
	var total time.Duration
	for _, o := range orders {
		endWorking := o.EndWorkingTime()
		scan := o.ScanTime()
		machineEnd := o.MachineEndTime()
		machineStart := o.MachineStartTime()
		bugs := o.BugsTime()
		if endWorking == nil || scan == nil || machineEnd == nil || machineStart == nil || bugs == nil {
			continue
		}

		total += endWorking.Sub(*scan) - machineEnd.Sub(*machineStart) - *bugs
	}
	return total
}

// LostTime computes the unaccounted remainder of the shift:
// everything that is neither productive machine time, manual handling,
// breakage time nor the position's rest allowance.
func (TimeAccountant) LostTime(total, good, bad, bugs, chill time.Duration) time.Duration {
	return total - good - bad - bugs - chill
}

// BugTimeFor sums the incident duration over an order's solved reports.
// Open reports are skipped; they will be accounted when solved.
func (TimeAccountant) BugTimeFor(reports []*report.Report) time.Duration {
	var total time.Duration
	for _, r := range reports {
		if d, ok := r.Duration(); ok {
			total += d
		}
	}
	return total
}
