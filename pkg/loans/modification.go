package loans

import (
	"time"

	"github.com/iwvelando/loan-schedule/pkg/mathutil"
)

// FailedPayment is a scheduled payment that did not go through.
type FailedPayment struct {
	Amount      float64   `json:"amount" yaml:"amount"`
	Interest    float64   `json:"interest" yaml:"interest"`
	PaymentDate time.Time `json:"paymentDate" yaml:"paymentDate"`
}

// FailedPaymentParams holds the failed payments of a loan and the flat fee
// charged for each of them.
type FailedPaymentParams struct {
	FailedPayments []FailedPayment
	OriginationFee float64
}

// FailedPaymentResult totals the penalties owed for failed payments.
type FailedPaymentResult struct {
	TotalFees          float64
	TotalInterest      float64
	TotalAmount        float64
	FailedPaymentCount int
}

// CalculateFailedPaymentFees charges the origination fee once per failed
// payment and adds up the interest each one forwent. No failed payments yields
// a zero result.
func CalculateFailedPaymentFees(p FailedPaymentParams) FailedPaymentResult {
	count := len(p.FailedPayments)
	totalFees := float64(count) * p.OriginationFee

	totalInterest := 0.0
	for _, failed := range p.FailedPayments {
		totalInterest += failed.Interest
	}

	return FailedPaymentResult{
		TotalFees:          mathutil.Round(totalFees),
		TotalInterest:      mathutil.Round(totalInterest),
		TotalAmount:        mathutil.Round(totalFees + totalInterest),
		FailedPaymentCount: count,
	}
}

// CalculateModificationBalance returns the balance carried into a restructured
// loan. It does not rebuild a schedule; pass the result to CalculateLoan as the
// new principal for that.
func CalculateModificationBalance(currentBalance, brokerageFee float64, failed FailedPaymentResult) float64 {
	return mathutil.Round(currentBalance + brokerageFee + failed.TotalAmount)
}
