package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"pdfkita/client"
	"pdfkita/domain"
	"pdfkita/repositories"
	"pdfkita/services"
)

// Exit codes for the workflow CLI.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitUsage   = 3
)

const usage = `usage: pdfkita <command> [args]

  login <username> <token>   persist identity, lift the guest quota
  logout                     revert to anonymous
  whoami                     show identity and remote profile
  upload <path>              stage a file for conversion
  files                      list staged files
  remove <name>              delete a staged file (remote first)
  convert <word|excel|jpg> [name]
                             convert a staged file to PDF
  download                   fetch the last conversion result
  history                    list downloaded files
  redownload <name>          fetch a historical download again
  forget <name>              drop entries from the download history
`

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfkita: %v\n", err)
	}
	os.Exit(code)
}

// run wires the whole workflow and dispatches one command. Returning instead
// of exiting keeps the deferred Badger close running and the wiring testable.
func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage, nil
	}

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Debug("closing local store")
		_ = db.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Wiring: store → repositories → services, remote API on the side.
	store := repositories.NewStore(db, log)
	registry := repositories.NewUploadRegistry(store, log)
	ledger := repositories.NewDownloadLedger(store, log)
	sessions := repositories.NewSessionRepository(store)
	selection := repositories.NewSelectionRepository(store)
	api := client.NewConvertAPI(config.APIURL, config.HTTPTimeout, log)

	app := &app{
		config:   config,
		sessions: services.NewSessionService(sessions),
		uploads:  services.NewUploadService(api, registry, log),
		converts: services.NewConvertService(api, registry, selection, sessions,
			services.NewQuotaGate(sessions, log), log),
		ledger:    services.NewLedgerService(api, registry, ledger, log),
		resolver:  services.NewResolver(config.APIURL, registry, selection, log),
		selection: selection,
		api:       api,
	}

	if err := app.dispatch(ctx, os.Args[1], os.Args[2:]); err != nil {
		notifyError(err.Error())
		return exitRuntime, nil
	}
	return exitOK, nil
}

type app struct {
	config    Config
	sessions  services.ISessionService
	uploads   services.IUploadService
	converts  services.IConvertService
	ledger    *services.LedgerService
	resolver  services.IResolver
	selection repositories.ISelectionRepository
	api       client.IConvertAPI
}

func (a *app) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login needs <username> <token>")
		}
		session, err := a.sessions.Login(args[0], args[1])
		if err != nil {
			return err
		}
		notifyOK("logged in as %s", session.Username)
		return nil

	case "logout":
		if err := a.sessions.Logout(); err != nil {
			return err
		}
		notifyOK("logged out")
		return nil

	case "whoami":
		return a.whoami(ctx)

	case "upload":
		if len(args) != 1 {
			return fmt.Errorf("upload needs <path>")
		}
		return a.upload(ctx, args[0])

	case "files":
		files := a.uploads.ListFiles()
		if len(files) == 0 {
			fmt.Println("no files staged")
			return nil
		}
		for _, f := range files {
			fmt.Printf("%s\t%d bytes\t%s\n", f.Name, f.Size, f.MimeType)
		}
		return nil

	case "remove":
		if len(args) != 1 {
			return fmt.Errorf("remove needs <name>")
		}
		if err := a.uploads.RemoveFile(ctx, args[0]); err != nil {
			return err
		}
		notifyOK("removed %s", args[0])
		return nil

	case "convert":
		return a.convert(ctx, args)

	case "download":
		return a.download(ctx)

	case "history":
		records := a.ledger.ListDownloads(a.sessions.Current())
		if len(records) == 0 {
			fmt.Println("no downloads recorded")
			return nil
		}
		for _, r := range records {
			size := "-"
			if r.Size != nil {
				sizeKB := float64(*r.Size) / 1024
				size = fmt.Sprintf("%.1f KB", sizeKB)
			}
			fmt.Printf("%s\t%s\t%s\n", r.Name, r.Date.Local().Format("2006-01-02 15:04"), size)
		}
		return nil

	case "redownload":
		if len(args) != 1 {
			return fmt.Errorf("redownload needs <name>")
		}
		return a.redownload(ctx, args[0])

	case "forget":
		if len(args) != 1 {
			return fmt.Errorf("forget needs <name>")
		}
		if err := a.ledger.DeleteDownload(a.sessions.Current(), args[0]); err != nil {
			return err
		}
		notifyOK("forgot %s", args[0])
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) whoami(ctx context.Context) error {
	session := a.sessions.Current()
	if !session.IsAuthenticated() {
		fmt.Println("anonymous (guest)")
		return nil
	}
	fmt.Printf("user: %s\n", session.Username)
	profile, err := a.api.UserByUsername(ctx, session.Username)
	if err != nil {
		// Display-only lookup: identity stands without it.
		return nil
	}
	fmt.Printf("email: %s\n", profile.Email)
	return nil
}

func (a *app) upload(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file, err := a.uploads.AddFile(ctx, filepath.Base(path), content)
	if err != nil {
		return err
	}
	notifyOK("staged %s (%d bytes)", file.Name, file.Size)
	return nil
}

func (a *app) convert(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("convert needs <word|excel|jpg> [name]")
	}
	kind, ok := domain.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown conversion kind %q", args[0])
	}

	var job *domain.Job
	var err error
	if len(args) > 1 {
		job, err = a.converts.Convert(ctx, args[1], kind)
	} else {
		job, err = a.converts.ConvertFirst(ctx, kind)
	}
	if err != nil {
		return err
	}
	notifyOK("converted %s -> %s", job.Source.Name, job.Selected.DisplayName)
	return nil
}

// download fetches the last conversion result and records it in the ledger.
func (a *app) download(ctx context.Context) error {
	selected, ok := a.selection.Load()
	if !ok {
		return fmt.Errorf("nothing to download: convert a file first")
	}

	content, err := a.api.Fetch(ctx, selected.URL)
	if err != nil {
		return err
	}
	target := filepath.Join(a.config.DownloadDir, selected.DisplayName)
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return err
	}

	if _, err := a.ledger.RecordDownload(a.sessions.Current(), selected); err != nil {
		return err
	}
	notifyOK("saved %s", target)
	return nil
}

func (a *app) redownload(ctx context.Context, name string) error {
	records := a.ledger.ListDownloads(a.sessions.Current())
	for _, record := range records {
		if record.Name != name {
			continue
		}
		fileURL, err := a.resolver.ResolveURL(record)
		if err != nil {
			return err
		}
		content, err := a.api.Fetch(ctx, fileURL)
		if err != nil {
			return err
		}
		target := filepath.Join(a.config.DownloadDir, record.Name)
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return err
		}
		notifyOK("saved %s", target)
		return nil
	}
	return fmt.Errorf("%q is not in the download history", name)
}

// Transient notices from the original screens map to colored lines here; a
// one-shot process has no timer to clear them.
func notifyOK(format string, args ...any) {
	color.Green.Printf(format+"\n", args...)
}

func notifyError(message string) {
	color.Warn.Println(message)
}
