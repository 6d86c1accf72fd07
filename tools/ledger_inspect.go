package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"

	"pdfkita/domain"
	"pdfkita/repositories"
)

// ledger_inspect dumps the download history straight from the local store,
// one row per record, across every namespace unless -ns narrows it.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	ns := flag.String("ns", "", "Only this namespace (default: all)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Namespace", "Name", "Date", "Size"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	prefix := repositories.LedgerKey(*ns)
	if *ns == "" {
		prefix = repositories.LedgerKeyPrefix
	}

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			namespace := strings.TrimPrefix(string(item.Key()), repositories.LedgerKeyPrefix)

			err := item.Value(func(v []byte) error {
				var records []domain.DownloadRecord
				if err := json.Unmarshal(v, &records); err != nil {
					// Log and continue instead of stopping the whole dump.
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}
				for _, record := range records {
					size := "-"
					if record.Size != nil {
						size = fmt.Sprintf("%.1f KB", float64(*record.Size)/1024)
					}
					table.Append([]string{
						namespace,
						record.Name,
						record.Date.Local().Format("2006-01-02 15:04:05"),
						size,
					})
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning ledger: ", err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
