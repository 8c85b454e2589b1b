package validation

import (
	"errors"
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/frequency"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"go.uber.org/multierr"
)

// Constraint violations reported by the validators. Returned errors wrap
// these so callers can branch with errors.Is.
var (
	ErrInvalidPrincipal        = errors.New("principal amount must be greater than 0")
	ErrInvalidInterestRate     = errors.New("interest rate cannot be negative")
	ErrInvalidNumberOfPayments = errors.New("number of payments must be greater than 0")
	ErrUnknownFrequency        = errors.New("payment frequency is not supported")
	ErrNegativeFee             = errors.New("fees cannot be negative")
	ErrInvalidPaymentAmount    = errors.New("payment amount must be greater than 0")
	ErrPaymentExceedsBalance   = errors.New("payment amount exceeds current balance")
)

// ValidateLoanParams returns nil when p can be calculated, otherwise an error
// naming every constraint that failed.
func ValidateLoanParams(p loans.Params) error {
	var err error

	if !mathutil.IsFinite(p.PrincipalAmount) || p.PrincipalAmount <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w, got %v", ErrInvalidPrincipal, p.PrincipalAmount))
	}
	if !mathutil.IsFinite(p.InterestRate) || p.InterestRate < 0 {
		err = multierr.Append(err, fmt.Errorf("%w, got %v", ErrInvalidInterestRate, p.InterestRate))
	}
	if p.NumberOfPayments <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w, got %d", ErrInvalidNumberOfPayments, p.NumberOfPayments))
	}
	if !p.PaymentFrequency.Valid() {
		err = multierr.Append(err, fmt.Errorf("%w: %q, expected one of %v", ErrUnknownFrequency, p.PaymentFrequency, frequency.All()))
	}

	fees := []struct {
		name   string
		amount float64
	}{
		{"brokerage fee", p.BrokerageFee},
		{"origination fee", p.OriginationFee},
		{"other fees", p.OtherFees},
	}
	for _, fee := range fees {
		if !mathutil.IsFinite(fee.amount) || fee.amount < 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s is %v", ErrNegativeFee, fee.name, fee.amount))
		}
	}

	return err
}

// ValidatePaymentAmount checks that a payment is positive and does not exceed
// the balance it is applied to.
func ValidatePaymentAmount(paymentAmount, currentBalance float64) error {
	if !mathutil.IsFinite(paymentAmount) || paymentAmount <= 0 {
		return fmt.Errorf("%w, got %.2f (current balance %.2f)", ErrInvalidPaymentAmount, paymentAmount, currentBalance)
	}
	if paymentAmount > currentBalance {
		return fmt.Errorf("%w: payment %.2f, balance %.2f", ErrPaymentExceedsBalance, paymentAmount, currentBalance)
	}
	return nil
}
