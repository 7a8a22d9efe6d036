package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsDebitNormal reports whether the account type increases on the debit side.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a ledger account in the chart of accounts.
// Every journal line must reference a registered account; free-text fund and
// category names are resolved against this registry before posting.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary Key (UUID)
	Name         string      `json:"name"`         // Unique within the chart of accounts
	AccountType  AccountType `json:"accountType"`  // ASSET, LIABILITY, etc.
	CurrencyCode string      `json:"currencyCode"` // Single-currency deployment, defaults to KES
	Description  string      `json:"description"`
	IsActive     bool        `json:"isActive"`
	AuditFields
	Balance decimal.Decimal `json:"balance"` // Persisted cache; authoritative value is the signed sum of lines
}

// Well-known account names the entry builder posts against. They are seeded by
// migration; fund and category accounts are derived from these suffixes.
const (
	AccountCash               = "Cash"
	AccountAccountsPayable    = "Accounts Payable"
	AccountAccountsReceivable = "Accounts Receivable"
	AccountServiceRevenue     = "Service Revenue"
	AccountSalariesExpense    = "Salaries Expense"

	FundIncomeSuffix      = " Income"
	CategoryExpenseSuffix = " Expense"
)

// FundIncomeAccountName maps a donation fund label to its income account name,
// e.g. "Tithes & Offering" -> "Tithes & Offering Income".
func FundIncomeAccountName(fund string) string {
	return fund + FundIncomeSuffix
}

// CategoryExpenseAccountName maps an expense category label to its expense
// account name, e.g. "Utilities" -> "Utilities Expense".
func CategoryExpenseAccountName(category string) string {
	return category + CategoryExpenseSuffix
}
