package repositories

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"pdfkita/domain"
)

func TestDownloadLedger(t *testing.T) {
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	store := NewStore(db, testLogger())
	ledger := NewDownloadLedger(store, testLogger())

	now := time.Now().UTC().Truncate(time.Second)

	t.Run("empty namespace yields empty history", func(t *testing.T) {
		require.New(t).Empty(ledger.List("alice"))
	})

	t.Run("append preserves insertion order", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ledger.Append("alice", domain.DownloadRecord{
			Name: "report.pdf", Date: now, Size: lo.ToPtr(int64(2048)),
		}))
		req.NoError(ledger.Append("alice", domain.DownloadRecord{
			Name: "budget.pdf", Date: now.Add(time.Minute),
		}))

		records := ledger.List("alice")
		req.Len(records, 2)
		req.Equal("report.pdf", records[0].Name)
		req.Equal("budget.pdf", records[1].Name)
	})

	t.Run("appends never merge same-name records", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ledger.Append("alice", domain.DownloadRecord{
			Name: "report.pdf", Date: now.Add(2 * time.Minute),
		}))

		records := ledger.List("alice")
		req.Len(records, 3)
	})

	t.Run("namespaces are isolated", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ledger.Append("bob", domain.DownloadRecord{Name: "photo.pdf", Date: now}))

		req.Len(ledger.List("bob"), 1)
		req.Len(ledger.List("alice"), 3)
	})

	t.Run("delete removes every entry with that name", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ledger.DeleteByName("alice", "report.pdf"))

		records := ledger.List("alice")
		req.Len(records, 1)
		req.Equal("budget.pdf", records[0].Name)
	})

	t.Run("empty namespace falls back to guest", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ledger.Append("", domain.DownloadRecord{Name: "anon.pdf", Date: now}))
		req.Len(ledger.List(domain.GuestNamespace), 1)
	})

	t.Run("corrupt persisted value degrades to empty history", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.Set(LedgerKey("alice"), "[broken"))
		req.Empty(ledger.List("alice"))
	})

	t.Run("size survives the JSON roundtrip, nil stays nil", func(t *testing.T) {
		req := require.New(t)
		req.NoError(ledger.Append("carol", domain.DownloadRecord{
			Name: "a.pdf", Date: now, Size: lo.ToPtr(int64(99)),
		}))
		req.NoError(ledger.Append("carol", domain.DownloadRecord{Name: "b.pdf", Date: now}))

		records := ledger.List("carol")
		req.Equal(int64(99), *records[0].Size)
		req.Nil(records[1].Size)
	})
}
