package loans

import (
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
)

// BalanceParams describes a payment applied to a running balance.
// AdditionalFees are charged before the payment is applied.
type BalanceParams struct {
	CurrentBalance float64
	PaymentAmount  float64
	AdditionalFees float64
}

// BalanceResult is the outcome of applying one payment.
type BalanceResult struct {
	NewBalance float64
	AmountPaid float64
	IsPaidOff  bool
}

// CalculateNewBalance applies a payment and any additional fees to a balance.
// Overpayment is not an error; the balance floors at zero.
func CalculateNewBalance(p BalanceParams) BalanceResult {
	newBalance := mathutil.Round(mathutil.Max(0, p.CurrentBalance+p.AdditionalFees-p.PaymentAmount))
	return BalanceResult{
		NewBalance: newBalance,
		AmountPaid: mathutil.Round(p.PaymentAmount),
		IsPaidOff:  newBalance == 0,
	}
}

// CalculateBalanceFromPayments returns what remains of initialBalance after
// the successfully applied payments, never less than zero.
func CalculateBalanceFromPayments(initialBalance float64, payments []float64) float64 {
	return mathutil.Round(mathutil.Max(0, initialBalance-mathutil.Sum(payments...)))
}
