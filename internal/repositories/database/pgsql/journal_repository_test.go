package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSumEntriesQueryAsOfBound(t *testing.T) {
	query, args := sumEntriesQuery("acc-1", nil)
	assert.NotContains(t, query, "$2")
	assert.Equal(t, []interface{}{"acc-1"}, args)

	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	query, args = sumEntriesQuery("acc-1", &asOf)
	// The cutoff must be commit time: bounding on the journal date would
	// count a backdated journal in balances taken before it was committed.
	assert.Contains(t, query, "t.created_at <= $2")
	assert.NotContains(t, query, "journal_date")
	assert.Equal(t, []interface{}{"acc-1", asOf}, args)
}

func TestTrialBalanceQueryAsOfBound(t *testing.T) {
	assert.Contains(t, trialBalanceQuery, "t.created_at <= $1")
	assert.NotContains(t, trialBalanceQuery, "journal_date")
}
