package services

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"pdfkita/repositories"
)

// testDeps wires real repositories over an in-memory Badger instance.
// Only the remote API is mocked in service tests.
type testDeps struct {
	store     repositories.IStore
	registry  repositories.IUploadRegistry
	ledger    repositories.IDownloadLedger
	sessions  repositories.ISessionRepository
	selection repositories.ISelectionRepository
	log       *slog.Logger
}

func setupDeps(t *testing.T) testDeps {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelError)
	store := repositories.NewStore(db, log)
	return testDeps{
		store:     store,
		registry:  repositories.NewUploadRegistry(store, log),
		ledger:    repositories.NewDownloadLedger(store, log),
		sessions:  repositories.NewSessionRepository(store),
		selection: repositories.NewSelectionRepository(store),
		log:       log,
	}
}
