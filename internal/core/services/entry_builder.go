package services

import (
	"fmt"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntrySpec is one side of a posting before account resolution: an account
// named by its registry name, the side it is hit on, and a positive amount.
type EntrySpec struct {
	AccountName  string
	DeclaredType domain.AccountType // Used when the account may be auto-created
	Type         domain.TransactionType
	Amount       decimal.Decimal
	Notes        string
}

// BuildEntrySpecs maps a validated business event to its double-entry lines.
// The function is pure: same event in, same specs out, and the debit and
// credit totals of the result are always equal.
func BuildEntrySpecs(event domain.BusinessEvent) ([]EntrySpec, error) {
	switch event.Kind {
	case domain.DonationReceived:
		return []EntrySpec{
			{AccountName: domain.AccountCash, DeclaredType: domain.Asset, Type: domain.Debit, Amount: event.Amount, Notes: "Donation from " + event.PartyName},
			{AccountName: domain.FundIncomeAccountName(event.FundOrCategory), DeclaredType: domain.Income, Type: domain.Credit, Amount: event.Amount, Notes: event.FundOrCategory + " giving"},
		}, nil

	case domain.ExpensePaid:
		return []EntrySpec{
			{AccountName: domain.CategoryExpenseAccountName(event.FundOrCategory), DeclaredType: domain.Expense, Type: domain.Debit, Amount: event.Amount, Notes: "Paid to " + event.PartyName},
			{AccountName: domain.AccountCash, DeclaredType: domain.Asset, Type: domain.Credit, Amount: event.Amount},
		}, nil

	case domain.BillRecorded:
		return []EntrySpec{
			{AccountName: domain.CategoryExpenseAccountName(event.FundOrCategory), DeclaredType: domain.Expense, Type: domain.Debit, Amount: event.Amount, Notes: "Bill from " + event.PartyName},
			{AccountName: domain.AccountAccountsPayable, DeclaredType: domain.Liability, Type: domain.Credit, Amount: event.Amount, Notes: "Owed to " + event.PartyName},
		}, nil

	case domain.BillPaid:
		return []EntrySpec{
			{AccountName: domain.AccountAccountsPayable, DeclaredType: domain.Liability, Type: domain.Debit, Amount: event.Amount, Notes: "Settled with " + event.PartyName},
			{AccountName: domain.AccountCash, DeclaredType: domain.Asset, Type: domain.Credit, Amount: event.Amount},
		}, nil

	case domain.InvoiceIssued:
		return []EntrySpec{
			{AccountName: domain.AccountAccountsReceivable, DeclaredType: domain.Asset, Type: domain.Debit, Amount: event.Amount, Notes: "Invoice to " + event.PartyName},
			{AccountName: domain.AccountServiceRevenue, DeclaredType: domain.Income, Type: domain.Credit, Amount: event.Amount},
		}, nil

	case domain.InvoiceCollected:
		return []EntrySpec{
			{AccountName: domain.AccountCash, DeclaredType: domain.Asset, Type: domain.Debit, Amount: event.Amount, Notes: "Collected from " + event.PartyName},
			{AccountName: domain.AccountAccountsReceivable, DeclaredType: domain.Asset, Type: domain.Credit, Amount: event.Amount},
		}, nil

	case domain.PayrollRun:
		// One debit/credit pair per employee so both the Salaries Expense
		// and the Cash statements read per person.
		specs := make([]EntrySpec, 0, len(event.PayrollLines)*2)
		for _, line := range event.PayrollLines {
			specs = append(specs,
				EntrySpec{
					AccountName:  domain.AccountSalariesExpense,
					DeclaredType: domain.Expense,
					Type:         domain.Debit,
					Amount:       line.Amount,
					Notes:        "Salary: " + line.EmployeeName,
				},
				EntrySpec{
					AccountName:  domain.AccountCash,
					DeclaredType: domain.Asset,
					Type:         domain.Credit,
					Amount:       line.Amount,
					Notes:        "Salary: " + line.EmployeeName,
				},
			)
		}
		return specs, nil

	default:
		return nil, fmt.Errorf("unknown event kind %q", event.Kind)
	}
}

// journalDescription derives a human-readable description for the journal a
// business event produces.
func journalDescription(event domain.BusinessEvent) string {
	if event.Description != "" {
		return event.Description
	}
	switch event.Kind {
	case domain.DonationReceived:
		return fmt.Sprintf("Donation from %s to %s", event.PartyName, event.FundOrCategory)
	case domain.ExpensePaid:
		return fmt.Sprintf("Expense paid to %s (%s)", event.PartyName, event.FundOrCategory)
	case domain.BillRecorded:
		return fmt.Sprintf("Bill recorded from %s (%s)", event.PartyName, event.FundOrCategory)
	case domain.BillPaid:
		return fmt.Sprintf("Bill payment to %s", event.PartyName)
	case domain.InvoiceIssued:
		return fmt.Sprintf("Invoice issued to %s", event.PartyName)
	case domain.InvoiceCollected:
		return fmt.Sprintf("Invoice collected from %s", event.PartyName)
	case domain.PayrollRun:
		return fmt.Sprintf("Payroll run for %d employees", len(event.PayrollLines))
	default:
		return string(event.Kind)
	}
}
