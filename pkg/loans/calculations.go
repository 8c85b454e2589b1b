// Package loans provides the loan amortization and payment-schedule engine.
//
// Every calculation is a pure function over its arguments. Invalid numeric
// input or an unrecognized payment frequency never panics or errors: the
// functions report "no result" through a false second return value, or an
// empty schedule, so callers may probe speculative parameters freely. Use the
// validation package to obtain a human readable reason.
package loans

import (
	"math"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/frequency"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
)

// maxScheduleCapacity bounds the schedule preallocation; longer schedules grow
// on append.
const maxScheduleCapacity = 1024

// Params holds the inputs of a loan calculation. Fee fields are optional and
// default to zero.
type Params struct {
	PrincipalAmount  float64             `json:"principalAmount" yaml:"principalAmount"`
	InterestRate     float64             `json:"interestRate" yaml:"interestRate"` // annual, in percent
	PaymentFrequency frequency.Frequency `json:"paymentFrequency" yaml:"paymentFrequency"`
	NumberOfPayments int                 `json:"numberOfPayments" yaml:"numberOfPayments"`
	BrokerageFee     float64             `json:"brokerageFee,omitempty" yaml:"brokerageFee,omitempty"`
	OriginationFee   float64             `json:"originationFee,omitempty" yaml:"originationFee,omitempty"`
	OtherFees        float64             `json:"otherFees,omitempty" yaml:"otherFees,omitempty"`
}

// PaymentBreakdown holds the values for a given scheduled payment.
type PaymentBreakdown struct {
	PaymentNumber    int
	DueDate          time.Time
	Amount           float64
	Interest         float64
	Principal        float64
	RemainingBalance float64
}

// Result aggregates the fees, schedule and totals of a loan. A Result is
// built fresh by every CalculateLoan call and is never modified afterwards.
type Result struct {
	PrincipalAmount      float64
	TotalFees            float64
	TotalLoanAmount      float64
	PaymentAmount        float64
	TotalRepaymentAmount float64
	TotalInterest        float64
	PaymentSchedule      []PaymentBreakdown
	NumberOfPayments     int
	PaymentFrequency     frequency.Frequency
}

// CalculateTotalFees sums the optional fee fields.
func CalculateTotalFees(p Params) float64 {
	return p.BrokerageFee + p.OriginationFee + p.OtherFees
}

// CalculateTotalLoanAmount returns the amount financed: principal plus fees.
func CalculateTotalLoanAmount(p Params) float64 {
	return p.PrincipalAmount + CalculateTotalFees(p)
}

// PeriodicRate converts the annual percentage rate into the rate charged per
// payment period.
func PeriodicRate(p Params) (float64, bool) {
	config, ok := frequency.Lookup(p.PaymentFrequency)
	if !ok || !mathutil.IsFinite(p.InterestRate) {
		return 0, false
	}
	return p.InterestRate / constants.PercentageMultiplier / float64(config.PaymentsPerYear), true
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingBalance, periodicRate float64) float64 {
	return remainingBalance * periodicRate
}

// CalculatePaymentAmount calculates the periodic payment for a loan using the
// standard amortization formula, rounded to cents. There is no result when the
// amount financed is not positive, the rate is negative, there are no
// payments, any operand is not finite, the payment rounds to zero or the
// frequency is unrecognized.
func CalculatePaymentAmount(p Params) (float64, bool) {
	payment, ok := paymentAmount(p)
	if !ok {
		return 0, false
	}
	return mathutil.Round(payment), true
}

// paymentAmount is CalculatePaymentAmount before rounding.
func paymentAmount(p Params) (float64, bool) {
	if !mathutil.AllFinite(p.PrincipalAmount, p.InterestRate, p.BrokerageFee, p.OriginationFee, p.OtherFees) {
		return 0, false
	}
	totalLoanAmount := CalculateTotalLoanAmount(p)
	if totalLoanAmount <= 0 || p.InterestRate < 0 || p.NumberOfPayments <= 0 {
		return 0, false
	}
	periodicRate, ok := PeriodicRate(p)
	if !ok {
		return 0, false
	}

	payment := totalLoanAmount / float64(p.NumberOfPayments)
	if periodicRate != 0 {
		power := math.Pow(1+periodicRate, float64(p.NumberOfPayments))
		payment = totalLoanAmount * periodicRate * power / (power - 1)
	}
	// A payment that rounds to nothing would never retire the balance.
	if !mathutil.IsFinite(payment) || mathutil.Round(payment) <= 0 {
		return 0, false
	}
	return payment, true
}

// CalculatePaymentBreakdown builds the payment-by-payment schedule with due
// dates starting at firstPaymentDate. Every payment but the last is the
// nominal periodic payment; the last one pays off whatever balance remains so
// the schedule always ends at zero. Only the reported fields are rounded.
// A nil schedule is returned when the payment amount has no result.
func CalculatePaymentBreakdown(p Params, firstPaymentDate time.Time) []PaymentBreakdown {
	payment, ok := CalculatePaymentAmount(p)
	if !ok {
		return nil
	}
	periodicRate, ok := PeriodicRate(p)
	if !ok {
		return nil
	}

	schedule := make([]PaymentBreakdown, 0, min(p.NumberOfPayments, maxScheduleCapacity))
	remaining := CalculateTotalLoanAmount(p)

	for i := 0; i < p.NumberOfPayments; i++ {
		last := i == p.NumberOfPayments-1

		interest := CalculateInterestPayment(remaining, periodicRate)
		principal := mathutil.Max(0, payment-interest)
		if last {
			principal = remaining
		}
		remaining = mathutil.Max(0, remaining-principal)

		dueDate, ok := datetime.DueDate(firstPaymentDate, p.PaymentFrequency, i)
		if !ok {
			return nil
		}

		amount := payment
		if last {
			amount = principal + interest
		}

		schedule = append(schedule, PaymentBreakdown{
			PaymentNumber:    i + 1,
			DueDate:          dueDate,
			Amount:           mathutil.Round(amount),
			Interest:         mathutil.Round(interest),
			Principal:        mathutil.Round(principal),
			RemainingBalance: mathutil.Round(remaining),
		})
	}

	return schedule
}

// CalculateTotalInterest sums the interest of every scheduled payment.
func CalculateTotalInterest(schedule []PaymentBreakdown) float64 {
	total := 0.0
	for _, payment := range schedule {
		total += payment.Interest
	}
	return mathutil.Round(total)
}

// CalculateTotalRepaymentAmount returns the amount financed plus all interest
// in schedule.
func CalculateTotalRepaymentAmount(p Params, schedule []PaymentBreakdown) float64 {
	return mathutil.Round(CalculateTotalLoanAmount(p) + CalculateTotalInterest(schedule))
}

// CalculateLoan composes the fees, schedule and totals of a loan. Totals are
// always derived from the built schedule so they reconcile with its rows.
func CalculateLoan(p Params, firstPaymentDate time.Time) (Result, bool) {
	payment, ok := CalculatePaymentAmount(p)
	if !ok {
		return Result{}, false
	}
	schedule := CalculatePaymentBreakdown(p, firstPaymentDate)
	if len(schedule) == 0 {
		return Result{}, false
	}

	return Result{
		PrincipalAmount:      mathutil.Round(p.PrincipalAmount),
		TotalFees:            mathutil.Round(CalculateTotalFees(p)),
		TotalLoanAmount:      mathutil.Round(CalculateTotalLoanAmount(p)),
		PaymentAmount:        payment,
		TotalRepaymentAmount: CalculateTotalRepaymentAmount(p, schedule),
		TotalInterest:        CalculateTotalInterest(schedule),
		PaymentSchedule:      schedule,
		NumberOfPayments:     p.NumberOfPayments,
		PaymentFrequency:     p.PaymentFrequency,
	}, true
}
