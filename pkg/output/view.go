package output

import (
	"github.com/iwvelando/loan-schedule/internal/report"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/loans"
)

// reportView is the machine-readable shape of a report with dates rendered
// in the configuration date layout.
type reportView struct {
	Name         string            `json:"name,omitempty" yaml:"name,omitempty"`
	Currency     string            `json:"currency" yaml:"currency"`
	Loan         loanView          `json:"loan" yaml:"loan"`
	Balance      *balanceView      `json:"balance,omitempty" yaml:"balance,omitempty"`
	Modification *modificationView `json:"modification,omitempty" yaml:"modification,omitempty"`
	Warnings     []string          `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type loanView struct {
	Params               loans.Params  `json:"params" yaml:"params"`
	FirstPaymentDate     string        `json:"firstPaymentDate" yaml:"firstPaymentDate"`
	PrincipalAmount      float64       `json:"principalAmount" yaml:"principalAmount"`
	TotalFees            float64       `json:"totalFees" yaml:"totalFees"`
	TotalLoanAmount      float64       `json:"totalLoanAmount" yaml:"totalLoanAmount"`
	PaymentAmount        float64       `json:"paymentAmount" yaml:"paymentAmount"`
	TotalInterest        float64       `json:"totalInterest" yaml:"totalInterest"`
	TotalRepaymentAmount float64       `json:"totalRepaymentAmount" yaml:"totalRepaymentAmount"`
	PaymentSchedule      []paymentView `json:"paymentSchedule" yaml:"paymentSchedule"`
}

type paymentView struct {
	PaymentNumber    int     `json:"paymentNumber" yaml:"paymentNumber"`
	DueDate          string  `json:"dueDate" yaml:"dueDate"`
	Amount           float64 `json:"amount" yaml:"amount"`
	Interest         float64 `json:"interest" yaml:"interest"`
	Principal        float64 `json:"principal" yaml:"principal"`
	RemainingBalance float64 `json:"remainingBalance" yaml:"remainingBalance"`
}

type balanceView struct {
	InitialBalance float64              `json:"initialBalance" yaml:"initialBalance"`
	Remaining      float64              `json:"remaining" yaml:"remaining"`
	IsPaidOff      bool                 `json:"isPaidOff" yaml:"isPaidOff"`
	Payments       []appliedPaymentView `json:"payments" yaml:"payments"`
}

type appliedPaymentView struct {
	Amount     float64 `json:"amount" yaml:"amount"`
	Applied    bool    `json:"applied" yaml:"applied"`
	NewBalance float64 `json:"newBalance" yaml:"newBalance"`
	Warning    string  `json:"warning,omitempty" yaml:"warning,omitempty"`
}

type modificationView struct {
	CurrentBalance     float64   `json:"currentBalance" yaml:"currentBalance"`
	BrokerageFee       float64   `json:"brokerageFee" yaml:"brokerageFee"`
	FailedPaymentCount int       `json:"failedPaymentCount" yaml:"failedPaymentCount"`
	FailedPaymentFees  float64   `json:"failedPaymentFees" yaml:"failedPaymentFees"`
	FailedInterest     float64   `json:"failedInterest" yaml:"failedInterest"`
	NewTotalBalance    float64   `json:"newTotalBalance" yaml:"newTotalBalance"`
	Loan               *loanView `json:"loan,omitempty" yaml:"loan,omitempty"`
}

func newReportView(r report.Report) reportView {
	view := reportView{
		Name:     r.Name,
		Currency: r.Currency,
		Loan:     newLoanView(r.Params, datetime.Format(r.FirstPaymentDate), r.Loan),
		Warnings: r.Warnings,
	}

	if r.Balance != nil {
		balance := &balanceView{
			InitialBalance: r.Balance.InitialBalance,
			Remaining:      r.Balance.Remaining,
			IsPaidOff:      r.Balance.IsPaidOff,
		}
		for _, p := range r.Balance.Payments {
			balance.Payments = append(balance.Payments, appliedPaymentView{
				Amount:     p.Amount,
				Applied:    p.Applied,
				NewBalance: p.Result.NewBalance,
				Warning:    p.Warning,
			})
		}
		view.Balance = balance
	}

	if m := r.Modification; m != nil {
		modification := &modificationView{
			CurrentBalance:     m.CurrentBalance,
			BrokerageFee:       m.BrokerageFee,
			FailedPaymentCount: m.FailedPayments.FailedPaymentCount,
			FailedPaymentFees:  m.FailedPayments.TotalFees,
			FailedInterest:     m.FailedPayments.TotalInterest,
			NewTotalBalance:    m.NewTotalBalance,
		}
		if m.Loan != nil {
			loan := newLoanView(m.Params, datetime.Format(m.FirstPaymentDate), *m.Loan)
			modification.Loan = &loan
		}
		view.Modification = modification
	}

	return view
}

func newLoanView(params loans.Params, firstPaymentDate string, result loans.Result) loanView {
	view := loanView{
		Params:               params,
		FirstPaymentDate:     firstPaymentDate,
		PrincipalAmount:      result.PrincipalAmount,
		TotalFees:            result.TotalFees,
		TotalLoanAmount:      result.TotalLoanAmount,
		PaymentAmount:        result.PaymentAmount,
		TotalInterest:        result.TotalInterest,
		TotalRepaymentAmount: result.TotalRepaymentAmount,
		PaymentSchedule:      make([]paymentView, 0, len(result.PaymentSchedule)),
	}
	for _, p := range result.PaymentSchedule {
		view.PaymentSchedule = append(view.PaymentSchedule, paymentView{
			PaymentNumber:    p.PaymentNumber,
			DueDate:          datetime.Format(p.DueDate),
			Amount:           p.Amount,
			Interest:         p.Interest,
			Principal:        p.Principal,
			RemainingBalance: p.RemainingBalance,
		})
	}
	return view
}
