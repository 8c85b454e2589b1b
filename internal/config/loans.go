package config

import (
	"fmt"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/frequency"
	"github.com/iwvelando/loan-schedule/pkg/loans"
)

// Loan holds the parameters of the loan to schedule.
type Loan struct {
	PrincipalAmount  float64 `yaml:"principalAmount"`
	InterestRate     float64 `yaml:"interestRate"` // annual percentage
	PaymentFrequency string  `yaml:"paymentFrequency"`
	NumberOfPayments int     `yaml:"numberOfPayments,omitempty"`
	TermMonths       int     `yaml:"termMonths,omitempty"`
	BrokerageFee     float64 `yaml:"brokerageFee,omitempty"`
	OriginationFee   float64 `yaml:"originationFee,omitempty"`
	OtherFees        float64 `yaml:"otherFees,omitempty"`
	FirstPaymentDate string  `yaml:"firstPaymentDate,omitempty"`
}

// Modification restructures the loan after failed payments.
type Modification struct {
	CurrentBalance   *float64        `yaml:"currentBalance,omitempty"` // nil means the balance left after payments
	BrokerageFee     float64         `yaml:"brokerageFee,omitempty"`
	OriginationFee   float64         `yaml:"originationFee,omitempty"` // charged per failed payment
	FailedPayments   []FailedPayment `yaml:"failedPayments,omitempty"`
	PaymentFrequency string          `yaml:"paymentFrequency,omitempty"` // defaults to the loan's
	NumberOfPayments int             `yaml:"numberOfPayments,omitempty"`
	FirstPaymentDate string          `yaml:"firstPaymentDate,omitempty"`
}

// FailedPayment is a payment that was returned or declined.
type FailedPayment struct {
	Amount      float64 `yaml:"amount"`
	Interest    float64 `yaml:"interest"`
	PaymentDate string  `yaml:"paymentDate"`
}

// Params converts the loan into calculation parameters. An unrecognized
// frequency is passed through unchanged so validation can report it.
func (loan Loan) Params() loans.Params {
	f := parseFrequency(loan.PaymentFrequency)
	return loans.Params{
		PrincipalAmount:  loan.PrincipalAmount,
		InterestRate:     loan.InterestRate,
		PaymentFrequency: f,
		NumberOfPayments: numberOfPayments(f, loan.NumberOfPayments, loan.TermMonths),
		BrokerageFee:     loan.BrokerageFee,
		OriginationFee:   loan.OriginationFee,
		OtherFees:        loan.OtherFees,
	}
}

// FirstPayment returns the configured first payment date, or today when none
// is set.
func (loan Loan) FirstPayment(now time.Time) (time.Time, error) {
	return parseDateOr(loan.FirstPaymentDate, now, "loan first payment date")
}

// Params converts the modification into the parameters of the restructured
// loan with principal as the amount carried over. Rate and frequency follow
// the original loan unless overridden.
func (m Modification) Params(original Loan, principal float64) loans.Params {
	f := parseFrequency(original.PaymentFrequency)
	if m.PaymentFrequency != "" {
		f = parseFrequency(m.PaymentFrequency)
	}
	return loans.Params{
		PrincipalAmount:  principal,
		InterestRate:     original.InterestRate,
		PaymentFrequency: f,
		NumberOfPayments: numberOfPayments(f, m.NumberOfPayments, 0),
	}
}

// FailedPaymentParams converts the failed payments into calculation inputs.
func (m Modification) FailedPaymentParams() (loans.FailedPaymentParams, error) {
	params := loans.FailedPaymentParams{OriginationFee: m.OriginationFee}
	for i, failed := range m.FailedPayments {
		var paymentDate time.Time
		if failed.PaymentDate != "" {
			var err error
			paymentDate, err = datetime.ParseDate(failed.PaymentDate)
			if err != nil {
				return params, fmt.Errorf("failed payment %d has invalid payment date: %w", i+1, err)
			}
		}
		params.FailedPayments = append(params.FailedPayments, loans.FailedPayment{
			Amount:      failed.Amount,
			Interest:    failed.Interest,
			PaymentDate: paymentDate,
		})
	}
	return params, nil
}

// FirstPayment returns the first payment date of the restructured loan, or
// today when none is set.
func (m Modification) FirstPayment(now time.Time) (time.Time, error) {
	return parseDateOr(m.FirstPaymentDate, now, "modification first payment date")
}

func parseFrequency(s string) frequency.Frequency {
	f, err := frequency.Parse(s)
	if err != nil {
		return frequency.Frequency(s)
	}
	return f
}

// numberOfPayments prefers an explicit count, then a term in months, then the
// default count for the cadence.
func numberOfPayments(f frequency.Frequency, explicit, termMonths int) int {
	switch {
	case explicit != 0:
		return explicit
	case termMonths > 0:
		return frequency.NumberOfPaymentsForTerm(f, termMonths)
	default:
		return frequency.DefaultNumberOfPayments(f)
	}
}

func parseDateOr(value string, now time.Time, field string) (time.Time, error) {
	if value == "" {
		return datetime.StartOfDay(now), nil
	}
	t, err := datetime.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected layout %s: %w", field, value, DateLayout, err)
	}
	return t, nil
}
