// Package testutil provides common utility functions for testing.
package testutil

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
)

// FindPayment finds a payment by its 1-based number in the schedule.
// Returns a pointer to the payment if found, nil otherwise.
func FindPayment(schedule []loans.PaymentBreakdown, number int) *loans.PaymentBreakdown {
	for i := range schedule {
		if schedule[i].PaymentNumber == number {
			return &schedule[i]
		}
	}
	return nil
}

// ScheduleProblems lists every way result breaks the guarantees of a loan
// schedule: numbering, due date order, a non-increasing balance that ends at
// zero and principal that adds up to the amount financed. An empty slice
// means the schedule is consistent.
func ScheduleProblems(result loans.Result) []string {
	var problems []string
	schedule := result.PaymentSchedule

	if len(schedule) != result.NumberOfPayments {
		problems = append(problems, fmt.Sprintf("schedule has %d payments, expected %d", len(schedule), result.NumberOfPayments))
	}
	if len(schedule) == 0 {
		return problems
	}

	principal := 0.0
	for i, p := range schedule {
		if p.PaymentNumber != i+1 {
			problems = append(problems, fmt.Sprintf("payment at index %d is numbered %d", i, p.PaymentNumber))
		}
		if i > 0 {
			previous := schedule[i-1]
			if !p.DueDate.After(previous.DueDate) {
				problems = append(problems, fmt.Sprintf("payment %d due %s is not after payment %d", p.PaymentNumber, p.DueDate.Format(constants.DateLayout), previous.PaymentNumber))
			}
			if p.RemainingBalance > previous.RemainingBalance {
				problems = append(problems, fmt.Sprintf("balance rises from %.2f to %.2f at payment %d", previous.RemainingBalance, p.RemainingBalance, p.PaymentNumber))
			}
		}
		principal += p.Principal
	}

	if last := schedule[len(schedule)-1]; last.RemainingBalance != 0 {
		problems = append(problems, fmt.Sprintf("final balance is %.2f", last.RemainingBalance))
	}

	tolerance := float64(len(schedule))*0.005 + constants.CurrencyTolerance
	if !mathutil.WithinTolerance(principal, result.TotalLoanAmount, tolerance) {
		problems = append(problems, fmt.Sprintf("principal sums to %.2f, expected %.2f", principal, result.TotalLoanAmount))
	}

	return problems
}
