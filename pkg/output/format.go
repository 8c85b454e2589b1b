// Package output provides utilities for formatting and displaying loan
// schedules.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/loan-schedule/internal/report"
	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/format"
	"github.com/iwvelando/loan-schedule/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Render writes r to w in the named output format.
func Render(w io.Writer, outputFormat string, r report.Report) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, r)
	case constants.OutputFormatCSV:
		return CsvFormat(w, r)
	case constants.OutputFormatJSON:
		return JSONFormat(w, r)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, r)
	}
	return fmt.Errorf("unsupported output format %q", outputFormat)
}

// PrettyFormat outputs a human-readable rather than machine-readable summary
// and schedule.
func PrettyFormat(w io.Writer, r report.Report) error {
	pw := &prettyWriter{w: w, p: message.NewPrinter(language.MustParse(constants.DefaultLocale)), currency: r.Currency}

	title := "Loan schedule"
	if r.Name != "" {
		title += " for " + r.Name
	}
	pw.printf("--- %s ---\n", title)
	pw.loan(r.Params, r.Loan)

	if b := r.Balance; b != nil {
		pw.printf("\n--- Payments applied ---\n")
		pw.printf("Starting balance: %s\n", pw.money(b.InitialBalance))
		for i, payment := range b.Payments {
			status := "applied, balance " + pw.money(payment.Result.NewBalance)
			if !payment.Applied {
				status = "skipped"
			}
			pw.printf("  %d. %s %s\n", i+1, pw.money(payment.Amount), status)
		}
		pw.printf("Remaining balance: %s", pw.money(b.Remaining))
		if b.IsPaidOff {
			pw.printf(" (paid off)")
		}
		pw.printf("\n")
	}

	if m := r.Modification; m != nil {
		pw.printf("\n--- Loan modification ---\n")
		pw.printf("Current balance:      %s\n", pw.money(m.CurrentBalance))
		pw.printf("Brokerage fee:        %s\n", pw.money(m.BrokerageFee))
		pw.printf("Failed payments:      %d (fees %s, interest %s)\n",
			m.FailedPayments.FailedPaymentCount, pw.money(m.FailedPayments.TotalFees), pw.money(m.FailedPayments.TotalInterest))
		pw.printf("New total balance:    %s\n", pw.money(m.NewTotalBalance))
		if m.Loan != nil {
			pw.printf("\n")
			pw.loan(m.Params, *m.Loan)
		}
	}

	if len(r.Warnings) > 0 {
		pw.printf("\nWarnings:\n")
		for _, warning := range r.Warnings {
			pw.printf("  - %s\n", warning)
		}
	}

	return pw.err
}

// CsvFormat outputs the payment schedules in comma-separated value format.
// The schedule column is "loan" for the original loan and "modification" for
// the restructured one.
func CsvFormat(w io.Writer, r report.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"schedule", "payment", "due date", "amount", "interest", "principal", "remaining balance"}); err != nil {
		return err
	}

	writeSchedule := func(name string, schedule []loans.PaymentBreakdown) error {
		for _, p := range schedule {
			record := []string{
				name,
				strconv.Itoa(p.PaymentNumber),
				datetime.Format(p.DueDate),
				strconv.FormatFloat(p.Amount, 'f', constants.DecimalPlaces, 64),
				strconv.FormatFloat(p.Interest, 'f', constants.DecimalPlaces, 64),
				strconv.FormatFloat(p.Principal, 'f', constants.DecimalPlaces, 64),
				strconv.FormatFloat(p.RemainingBalance, 'f', constants.DecimalPlaces, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeSchedule("loan", r.Loan.PaymentSchedule); err != nil {
		return err
	}
	if r.Modification != nil && r.Modification.Loan != nil {
		if err := writeSchedule("modification", r.Modification.Loan.PaymentSchedule); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSONFormat outputs the report as indented JSON.
func JSONFormat(w io.Writer, r report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newReportView(r))
}

// YAMLFormat outputs the report as YAML.
func YAMLFormat(w io.Writer, r report.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newReportView(r)); err != nil {
		return err
	}
	return enc.Close()
}

// prettyWriter keeps the first write error so the pretty printer can be
// written as a straight sequence of lines.
type prettyWriter struct {
	w        io.Writer
	p        *message.Printer
	currency string
	err      error
}

func (pw *prettyWriter) printf(format string, a ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = pw.p.Fprintf(pw.w, format, a...)
}

func (pw *prettyWriter) money(amount float64) string {
	return format.Currency(amount, pw.currency)
}

func (pw *prettyWriter) loan(params loans.Params, result loans.Result) {
	pw.printf("Principal:            %s\n", pw.money(result.PrincipalAmount))
	pw.printf("Fees:                 %s\n", pw.money(result.TotalFees))
	pw.printf("Amount financed:      %s\n", pw.money(result.TotalLoanAmount))
	pw.printf("Interest rate:        %.2f%%\n", params.InterestRate)
	pw.printf("Payment:              %s %s x %d\n", pw.money(result.PaymentAmount), result.PaymentFrequency, result.NumberOfPayments)
	pw.printf("Total interest:       %s\n", pw.money(result.TotalInterest))
	pw.printf("Total repayment:      %s\n", pw.money(result.TotalRepaymentAmount))
	pw.printf("\n")
	pw.printf("#   | Due date   | Amount       | Interest     | Principal    | Balance\n")
	pw.printf("___ | __________ | ____________ | ____________ | ____________ | ____________\n")
	for _, p := range result.PaymentSchedule {
		pw.printf("%-3d | %s | %-12s | %-12s | %-12s | %s\n",
			p.PaymentNumber, datetime.Format(p.DueDate),
			pw.money(p.Amount), pw.money(p.Interest), pw.money(p.Principal), pw.money(p.RemainingBalance))
	}
}
