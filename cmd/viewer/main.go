package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"pdfkita/internal"
	"pdfkita/repositories"
)

// Config defines the store viewer environment variables.
type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	DebugPort      int    `env:"DEBUG_PORT,default=8091"`
}

func main() {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Read-only + BypassLockGuard: inspect the store while the CLI owns it.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	stats := func() map[string]any {
		return map[string]any{
			"Mode": "Viewer (Read-Only)",
			"Time": time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.DebugPort)
	if err := internal.StartDebugServer(db, config.DebugPort, "/inspect", WorkflowMapper, stats); err != nil {
		log.Fatalf("Debug server failed: %v", err)
	}
}

// WorkflowMapper classifies the workflow's store keys for display.
func WorkflowMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	switch {
	case key == repositories.KeyUploadedFiles:
		row.Kind = "REGISTRY"
	case strings.HasPrefix(key, repositories.LedgerKeyPrefix):
		row.Kind = "LEDGER"
	case key == repositories.KeySelectedFile, key == repositories.KeySelectedFileName:
		row.Kind = "SELECTION"
	case key == repositories.KeyUserToken:
		row.Kind = "SESSION"
		row.Detail = "(token hidden)"
	case key == repositories.KeyUserName, key == repositories.KeyGuestConvertCount:
		row.Kind = "SESSION"
	}
	return row
}
