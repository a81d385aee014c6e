package mapping

import (
	"testing"
	"time"

	"github.com/chris/marketplace-ledger/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToApiLedgerEntry(t *testing.T) {
	entry := &models.LedgerEntry{
		EntryID:      "e-1",
		StorefrontID: uuid.New(),
		AccountID:    "buyer",
		Kind:         models.SALE,
		Credit:       12,
		Description:  "Purchase",
		Timestamp:    time.Now(),
	}

	out := ToApiLedgerEntry(entry)
	assert.Nil(t, out.Debit)
	require.NotNil(t, out.Credit)
	assert.Equal(t, uint64(12), *out.Credit)
	assert.Equal(t, "SALE", out.Kind)
	assert.Equal(t, "buyer", out.AccountId)

	entry.Credit = 99
	assert.Equal(t, uint64(12), *out.Credit)
}
