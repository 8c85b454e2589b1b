package loans

import (
	"fmt"
	"math"
	"testing"

	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/frequency"
)

// ReferencePayment represents a single payment from the reference schedule
type ReferencePayment struct {
	Month            int
	Payment          float64
	PrincipalPayment float64
	Interest         float64
	LoanBalance      float64
}

// getReferenceSchedule returns the authoritative amortization schedule data
// Based on: Loan amount $175,000, Interest rate 4.5%, Term 360 months
// Calculator: https://www.fidelitygroup.com/amortizing-loan-calculator
func getReferenceSchedule() []ReferencePayment {
	return []ReferencePayment{
		{1, 886.70, 230.45, 656.25, 174769.55},
		{2, 886.70, 231.31, 655.39, 174538.24},
		{3, 886.70, 232.18, 654.52, 174306.06},
		{4, 886.70, 233.05, 653.65, 174073.00},
		{5, 886.70, 233.93, 652.77, 173839.08},
		{6, 886.70, 234.80, 651.90, 173604.28},
		{7, 886.70, 235.68, 651.02, 173368.59},
		{8, 886.70, 236.57, 650.13, 173132.03},
		{9, 886.70, 237.45, 649.25, 172894.57},
		{10, 886.70, 238.34, 648.35, 172656.23},
		{11, 886.70, 239.24, 647.46, 172416.99},
		{12, 886.70, 240.14, 646.56, 172176.85},
		// Adding key milestone months for validation
		{24, 886.70, 251.17, 635.53, 169224.01},
		{36, 886.70, 262.71, 623.99, 166135.52},
		{60, 886.70, 287.40, 599.30, 159526.36},
		{120, 886.70, 359.76, 526.94, 140156.51},
		{180, 886.70, 450.35, 436.35, 115909.42},
		{240, 886.70, 563.75, 322.95, 85557.02},
		{300, 886.70, 705.70, 181.00, 47562.00},
		{359, 886.70, 880.09, 6.61, 883.39},
		{360, 886.70, 883.39, 3.31, 0.00},
	}
}

func TestLoanCalculationsAgainstReferenceSchedule(t *testing.T) {
	// Reference loan parameters
	params := Params{
		PrincipalAmount:  175000,
		InterestRate:     4.5,
		PaymentFrequency: frequency.Monthly,
		NumberOfPayments: 360,
	}

	schedule := CalculatePaymentBreakdown(params, datetime.MustParseTime(datetime.DateLayout, "2025-01-01"))
	if len(schedule) != 360 {
		t.Fatalf("CalculatePaymentBreakdown() returned %d payments, expected 360", len(schedule))
	}

	referenceData := getReferenceSchedule()
	// The reference keeps the unrounded payment; paying the rounded 886.70
	// each month drifts the balance by well under a dollar over 30 years.
	tolerance := 1.00

	for _, ref := range referenceData {
		payment := schedule[ref.Month-1]

		t.Run(fmt.Sprintf("Month_%d", ref.Month), func(t *testing.T) {
			if payment.PaymentNumber != ref.Month {
				t.Errorf("Payment number mismatch: got %d, expected %d", payment.PaymentNumber, ref.Month)
			}

			// Test total payment amount
			if math.Abs(payment.Amount-ref.Payment) > tolerance {
				t.Errorf("Payment amount mismatch: got %.2f, expected %.2f (diff: %.2f)",
					payment.Amount, ref.Payment, math.Abs(payment.Amount-ref.Payment))
			}

			// Test principal payment
			if math.Abs(payment.Principal-ref.PrincipalPayment) > tolerance {
				t.Errorf("Principal payment mismatch: got %.2f, expected %.2f (diff: %.2f)",
					payment.Principal, ref.PrincipalPayment, math.Abs(payment.Principal-ref.PrincipalPayment))
			}

			// Test interest payment
			if math.Abs(payment.Interest-ref.Interest) > tolerance {
				t.Errorf("Interest payment mismatch: got %.2f, expected %.2f (diff: %.2f)",
					payment.Interest, ref.Interest, math.Abs(payment.Interest-ref.Interest))
			}

			// Test remaining balance
			if math.Abs(payment.RemainingBalance-ref.LoanBalance) > tolerance {
				t.Errorf("Remaining balance mismatch: got %.2f, expected %.2f (diff: %.2f)",
					payment.RemainingBalance, ref.LoanBalance, math.Abs(payment.RemainingBalance-ref.LoanBalance))
			}

			// Verify payment components add up correctly
			calculatedPayment := payment.Principal + payment.Interest
			if math.Abs(calculatedPayment-payment.Amount) > 0.011 {
				t.Errorf("Payment components don't add up: Principal(%.2f) + Interest(%.2f) = %.2f, but Payment = %.2f",
					payment.Principal, payment.Interest, calculatedPayment, payment.Amount)
			}
		})
	}
}

func TestPaymentAmountAgainstReference(t *testing.T) {
	payment, ok := CalculatePaymentAmount(Params{
		PrincipalAmount:  175000,
		InterestRate:     4.5,
		PaymentFrequency: frequency.Monthly,
		NumberOfPayments: 360,
	})
	if !ok {
		t.Fatal("CalculatePaymentAmount() returned no result")
	}

	expectedPayment := 886.70
	if math.Abs(payment-expectedPayment) > 0.001 {
		t.Errorf("CalculatePaymentAmount() = %.2f, expected %.2f (diff: %.2f)",
			payment, expectedPayment, math.Abs(payment-expectedPayment))
	}
}

func TestInterestCalculationAgainstReference(t *testing.T) {
	// Test based on a 30-year $300,000 mortgage at 6% APR
	periodicRate, ok := PeriodicRate(Params{InterestRate: 6.0, PaymentFrequency: frequency.Monthly})
	if !ok {
		t.Fatal("PeriodicRate() returned no result")
	}

	// Reference values calculated using standard amortization formulas
	// These are the expected remaining principal balances at specific months
	referenceValues := map[int]struct {
		remainingPrincipal float64
		interestPayment    float64
	}{
		1:   {remainingPrincipal: 298501.31, interestPayment: 1500.00},
		12:  {remainingPrincipal: 295188.16, interestPayment: 1475.94},
		24:  {remainingPrincipal: 289042.25, interestPayment: 1445.21},
		60:  {remainingPrincipal: 270762.08, interestPayment: 1353.81},
		120: {remainingPrincipal: 220446.41, interestPayment: 1102.23},
		180: {remainingPrincipal: 151235.80, interestPayment: 756.18},
		240: {remainingPrincipal: 60708.53, interestPayment: 303.54},
		300: {remainingPrincipal: 0.00, interestPayment: 0.00},
	}

	tolerance := 10.0 // Allow $10 tolerance for rounding differences

	for month, expected := range referenceValues {
		if month == 300 { // Skip final month as it's handled specially
			continue
		}

		// Calculate what the interest payment should be for the remaining principal
		calculatedInterest := CalculateInterestPayment(expected.remainingPrincipal, periodicRate)

		diff := math.Abs(calculatedInterest - expected.interestPayment)
		if diff > tolerance {
			t.Errorf("CalculateInterestPayment() for month %d = %.2f, expected %.2f (diff: %.2f)",
				month, calculatedInterest, expected.interestPayment, diff)
		}
	}
}

func TestFullScheduleConsistency(t *testing.T) {
	params := Params{
		PrincipalAmount:  175000,
		InterestRate:     4.5,
		PaymentFrequency: frequency.Monthly,
		NumberOfPayments: 360,
	}

	result, ok := CalculateLoan(params, datetime.MustParseTime(datetime.DateLayout, "2025-01-01"))
	if !ok {
		t.Fatal("CalculateLoan() returned no result")
	}
	schedule := result.PaymentSchedule

	// Verify schedule has the expected number of payments
	if len(schedule) != 360 {
		t.Errorf("Schedule should have 360 payments, got %d", len(schedule))
	}

	// Verify the final payment falls 30 years out and clears the balance
	finalPayment := schedule[len(schedule)-1]
	if got := datetime.Format(finalPayment.DueDate); got != "2054-12-01" {
		t.Errorf("Final payment due %s, expected 2054-12-01", got)
	}
	if finalPayment.RemainingBalance != 0 {
		t.Errorf("Final remaining balance should be zero, got %.2f", finalPayment.RemainingBalance)
	}

	// Verify principal decreases monotonically
	previousBalance := 175000.0
	for _, payment := range schedule {
		if payment.RemainingBalance >= previousBalance {
			t.Errorf("Remaining balance should decrease each payment: #%d balance %.2f >= previous %.2f",
				payment.PaymentNumber, payment.RemainingBalance, previousBalance)
		}
		previousBalance = payment.RemainingBalance
	}
}

func TestReferenceScheduleDataIntegrity(t *testing.T) {
	referenceData := getReferenceSchedule()

	// Verify reference data makes sense
	for i, payment := range referenceData {
		t.Run(fmt.Sprintf("RefData_Month_%d", payment.Month), func(t *testing.T) {
			// Principal + Interest should equal Payment (within small tolerance)
			calculatedPayment := payment.PrincipalPayment + payment.Interest
			if math.Abs(calculatedPayment-payment.Payment) > 0.01 {
				t.Errorf("Reference data inconsistent: Principal(%.2f) + Interest(%.2f) = %.2f, but Payment = %.2f",
					payment.PrincipalPayment, payment.Interest, calculatedPayment, payment.Payment)
			}

			// Loan balance should decrease over time
			if i > 0 && payment.LoanBalance >= referenceData[i-1].LoanBalance {
				t.Errorf("Reference loan balance should decrease: Month %d balance %.2f >= Month %d balance %.2f",
					payment.Month, payment.LoanBalance, referenceData[i-1].Month, referenceData[i-1].LoanBalance)
			}

			// Interest should generally decrease over time (since balance decreases)
			if i > 0 && payment.Interest > referenceData[i-1].Interest+1.0 { // Allow small increases due to timing
				t.Errorf("Reference interest should generally decrease: Month %d interest %.2f > Month %d interest %.2f",
					payment.Month, payment.Interest, referenceData[i-1].Month, referenceData[i-1].Interest)
			}

			// Principal payment should generally increase over time
			if i > 0 && payment.PrincipalPayment < referenceData[i-1].PrincipalPayment-1.0 { // Allow small decreases
				t.Errorf("Reference principal should generally increase: Month %d principal %.2f < Month %d principal %.2f",
					payment.Month, payment.PrincipalPayment, referenceData[i-1].Month, referenceData[i-1].PrincipalPayment)
			}
		})
	}
}
