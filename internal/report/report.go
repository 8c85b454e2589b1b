// Package report composes a loan schedule, the payments applied against it
// and an optional restructuring into a single result for output.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/loan-schedule/internal/config"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/validation"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNoSchedule is returned when the configured loan cannot be scheduled.
var ErrNoSchedule = errors.New("loan parameters produce no payment schedule")

// Report holds everything computed for one configuration.
type Report struct {
	Name             string
	Currency         string
	Params           loans.Params
	FirstPaymentDate time.Time
	Loan             loans.Result
	Balance          *BalanceSummary
	Modification     *Modification
	Warnings         []string
}

// BalanceSummary tracks the balance of the loan as payments are applied.
type BalanceSummary struct {
	InitialBalance float64
	Remaining      float64
	IsPaidOff      bool
	Payments       []AppliedPayment
}

// AppliedPayment is one configured payment and its effect on the balance.
type AppliedPayment struct {
	Amount  float64
	Applied bool
	Result  loans.BalanceResult
	Warning string
}

// Modification is the restructured loan built from the remaining balance,
// brokerage fee and failed payment penalties.
type Modification struct {
	CurrentBalance   float64
	BrokerageFee     float64
	FailedPayments   loans.FailedPaymentResult
	NewTotalBalance  float64
	Params           loans.Params
	FirstPaymentDate time.Time
	Loan             *loans.Result
}

// Build computes the report for conf. Validation failures of payments and of
// the restructured loan are reported as warnings; only a loan that cannot be
// scheduled at all or an unparseable date is an error.
func Build(logger *zap.Logger, conf config.Configuration, now time.Time) (Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	calc := loans.NewCalculator(logger)

	report := Report{
		Name:     conf.Name,
		Currency: conf.Currency,
		Params:   conf.Loan.Params(),
	}

	first, err := conf.Loan.FirstPayment(now)
	if err != nil {
		return report, err
	}
	report.FirstPaymentDate = first

	validationErr := validation.ValidateLoanParams(report.Params)
	report.warn(logger, validationErr)

	result, ok := calc.Loan(report.Params, first)
	if !ok {
		if validationErr != nil {
			return report, fmt.Errorf("%w: %w", ErrNoSchedule, validationErr)
		}
		return report, ErrNoSchedule
	}
	report.Loan = result

	if len(conf.Payments) > 0 {
		report.Balance = applyPayments(logger, calc, result.TotalRepaymentAmount, conf.Payments)
		for _, payment := range report.Balance.Payments {
			if payment.Warning != "" {
				report.Warnings = append(report.Warnings, payment.Warning)
			}
		}
	}

	if conf.Modification != nil {
		modification, err := report.modify(logger, calc, conf, now)
		if err != nil {
			return report, err
		}
		report.Modification = modification
	}

	return report, nil
}

// applyPayments applies each payment in order. Payments that are not positive
// are skipped; payments larger than the balance are applied and flagged.
func applyPayments(logger *zap.Logger, calc *loans.Calculator, initialBalance float64, payments []float64) *BalanceSummary {
	summary := &BalanceSummary{InitialBalance: initialBalance}
	balance := initialBalance
	var applied []float64

	for i, amount := range payments {
		payment := AppliedPayment{Amount: amount}
		if err := validation.ValidatePaymentAmount(amount, balance); err != nil {
			payment.Warning = fmt.Sprintf("payment %d: %v", i+1, err)
			logger.Warn(payment.Warning,
				zap.String("op", "report.Build"),
			)
			if errors.Is(err, validation.ErrInvalidPaymentAmount) {
				summary.Payments = append(summary.Payments, payment)
				continue
			}
		}

		payment.Applied = true
		payment.Result = calc.ApplyPayment(loans.BalanceParams{CurrentBalance: balance, PaymentAmount: amount})
		balance = payment.Result.NewBalance
		applied = append(applied, amount)
		summary.Payments = append(summary.Payments, payment)
	}

	summary.Remaining = loans.CalculateBalanceFromPayments(initialBalance, applied)
	summary.IsPaidOff = summary.Remaining == 0
	return summary
}

func (r *Report) modify(logger *zap.Logger, calc *loans.Calculator, conf config.Configuration, now time.Time) (*Modification, error) {
	m := conf.Modification

	var current float64
	switch {
	case m.CurrentBalance != nil:
		current = *m.CurrentBalance
	case r.Balance != nil:
		current = r.Balance.Remaining
	default:
		current = r.Loan.TotalRepaymentAmount
	}

	failed, err := m.FailedPaymentParams()
	if err != nil {
		return nil, err
	}
	first, err := m.FirstPayment(now)
	if err != nil {
		return nil, err
	}

	penalties, newBalance := calc.ModificationBalance(current, m.BrokerageFee, failed)
	modification := &Modification{
		CurrentBalance:   current,
		BrokerageFee:     m.BrokerageFee,
		FailedPayments:   penalties,
		NewTotalBalance:  newBalance,
		Params:           m.Params(conf.Loan, newBalance),
		FirstPaymentDate: first,
	}

	if err := validation.ValidateLoanParams(modification.Params); err != nil {
		for _, e := range multierr.Errors(err) {
			r.addWarning(logger, "modification: "+e.Error())
		}
	}
	if result, ok := calc.Loan(modification.Params, first); ok {
		modification.Loan = &result
	}

	return modification, nil
}

// warn records every error combined in err as a separate warning.
func (r *Report) warn(logger *zap.Logger, err error) {
	for _, e := range multierr.Errors(err) {
		r.addWarning(logger, e.Error())
	}
}

func (r *Report) addWarning(logger *zap.Logger, warning string) {
	logger.Warn(warning,
		zap.String("op", "report.Build"),
	)
	r.Warnings = append(r.Warnings, warning)
}
