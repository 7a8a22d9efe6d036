package accounting

import (
	"fmt"

	"github.com/parishbooks/church_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a transaction amount based
// on account type and transaction type. Used by both services and repositories
// so the sign convention lives in exactly one place.
//
// DEBIT to ASSET/EXPENSE -> Positive (+)
// CREDIT to ASSET/EXPENSE -> Negative (-)
// DEBIT to LIABILITY/EQUITY/INCOME -> Negative (-)
// CREDIT to LIABILITY/EQUITY/INCOME -> Positive (+)
func CalculateSignedAmount(txn domain.Transaction, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := txn.Amount
	isDebit := txn.TransactionType == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Income:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account ID %s", accountType, txn.AccountID)
	}
	return signedAmount, nil
}

// SumsByType returns the debit and credit totals of a set of lines.
func SumsByType(transactions []domain.Transaction) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		if txn.TransactionType == domain.Debit {
			debits = debits.Add(txn.Amount)
		} else {
			credits = credits.Add(txn.Amount)
		}
	}
	return debits, credits
}

// ValidateJournalBalance checks that a set of journal lines forms a valid
// double-entry posting: at least two lines over at least two accounts, all
// amounts positive, and debits equal to credits.
func ValidateJournalBalance(transactions []domain.Transaction) error {
	if len(transactions) < 2 {
		return fmt.Errorf("journal must have at least two transaction entries")
	}

	accounts := make(map[string]struct{}, len(transactions))
	for _, txn := range transactions {
		if txn.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("transaction amount must be positive for account %s", txn.AccountID)
		}
		accounts[txn.AccountID] = struct{}{}
	}
	if len(accounts) < 2 {
		return fmt.Errorf("journal must affect at least two different accounts")
	}

	debits, credits := SumsByType(transactions)
	if !debits.Equal(credits) {
		return fmt.Errorf("journal entries do not balance: debits sum is %s and credits sum is %s",
			debits.String(), credits.String())
	}
	return nil
}

// BalanceChanges aggregates the signed net effect of a set of lines per
// account, given the type of each referenced account.
func BalanceChanges(transactions []domain.Transaction, accountTypes map[string]domain.AccountType) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(accountTypes))
	for _, txn := range transactions {
		accountType, ok := accountTypes[txn.AccountID]
		if !ok {
			return nil, fmt.Errorf("account type not found for account ID %s", txn.AccountID)
		}
		signedAmount, err := CalculateSignedAmount(txn, accountType)
		if err != nil {
			return nil, err
		}
		changes[txn.AccountID] = changes[txn.AccountID].Add(signedAmount)
	}
	return changes, nil
}
