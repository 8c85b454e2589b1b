package loans

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"go.uber.org/zap"
)

// Calculator wraps the loan functions for callers that want a debug trail of
// what was computed and when a calculation produced no result.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// PaymentAmount is CalculatePaymentAmount with logging.
func (c *Calculator) PaymentAmount(p Params) (float64, bool) {
	payment, ok := CalculatePaymentAmount(p)
	if !ok {
		c.logNoResult("loans.PaymentAmount", p)
		return 0, false
	}
	c.logger.Debug(fmt.Sprintf("periodic payment of %.2f for %d %s payments", payment, p.NumberOfPayments, p.PaymentFrequency),
		zap.String("op", "loans.PaymentAmount"),
	)
	return payment, true
}

// Loan is CalculateLoan with logging.
func (c *Calculator) Loan(p Params, firstPaymentDate time.Time) (Result, bool) {
	result, ok := CalculateLoan(p, firstPaymentDate)
	if !ok {
		c.logNoResult("loans.Loan", p)
		return Result{}, false
	}

	last := result.PaymentSchedule[len(result.PaymentSchedule)-1]
	c.logger.Debug(fmt.Sprintf("built schedule of %d payments from %s to %s",
		len(result.PaymentSchedule), datetime.Format(firstPaymentDate), datetime.Format(last.DueDate)),
		zap.String("op", "loans.Loan"),
		zap.Float64("totalLoanAmount", result.TotalLoanAmount),
		zap.Float64("totalInterest", result.TotalInterest),
		zap.Float64("totalRepaymentAmount", result.TotalRepaymentAmount),
	)
	if last.Amount != result.PaymentAmount {
		c.logger.Debug(fmt.Sprintf("final payment adjusted from %.2f to %.2f", result.PaymentAmount, last.Amount),
			zap.String("op", "loans.Loan"),
		)
	}
	return result, true
}

// ApplyPayment is CalculateNewBalance with logging.
func (c *Calculator) ApplyPayment(p BalanceParams) BalanceResult {
	result := CalculateNewBalance(p)
	if p.PaymentAmount > p.CurrentBalance+p.AdditionalFees {
		c.logger.Debug("payment exceeds balance, flooring at zero",
			zap.String("op", "loans.ApplyPayment"),
			zap.Float64("balance", p.CurrentBalance+p.AdditionalFees),
			zap.Float64("payment", p.PaymentAmount),
		)
	}
	if result.IsPaidOff {
		c.logger.Debug(fmt.Sprintf("balance paid off with payment of %.2f", result.AmountPaid),
			zap.String("op", "loans.ApplyPayment"),
		)
	}
	return result
}

// ModificationBalance aggregates failed payment penalties and returns them
// along with the balance carried into a restructured loan.
func (c *Calculator) ModificationBalance(currentBalance, brokerageFee float64, failed FailedPaymentParams) (FailedPaymentResult, float64) {
	penalties := CalculateFailedPaymentFees(failed)
	balance := CalculateModificationBalance(currentBalance, brokerageFee, penalties)
	c.logger.Debug(fmt.Sprintf("%d failed payments add %.2f in fees and %.2f in interest",
		penalties.FailedPaymentCount, penalties.TotalFees, penalties.TotalInterest),
		zap.String("op", "loans.ModificationBalance"),
		zap.Float64("newTotalBalance", balance),
	)
	return penalties, balance
}

func (c *Calculator) logNoResult(op string, p Params) {
	c.logger.Debug("no result for loan parameters",
		zap.String("op", op),
		zap.Float64("principalAmount", p.PrincipalAmount),
		zap.Float64("interestRate", p.InterestRate),
		zap.String("paymentFrequency", p.PaymentFrequency.String()),
		zap.Int("numberOfPayments", p.NumberOfPayments),
		zap.Float64("totalFees", CalculateTotalFees(p)),
	)
}
