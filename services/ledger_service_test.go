package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pdfkita/domain"
	"pdfkita/errors"
	"pdfkita/mocks"
)

// synchronous keeps the remote mirroring deterministic in tests.
func synchronous(task func()) { task() }

func TestLedgerService_RecordDownload(t *testing.T) {
	alice := domain.Session{Username: "alice", Token: "opaque"}

	t.Run("appends locally and mirrors remotely", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		ctrl := gomock.NewController(t)
		mockAPI := mocks.NewMockIConvertAPI(ctrl)
		svc := NewLedgerService(mockAPI, deps.registry, deps.ledger, deps.log)
		svc.dispatch = synchronous

		req.NoError(deps.registry.Put(domain.UploadedFile{Name: "report.docx", Size: 2048}))
		mockAPI.EXPECT().LogDownload(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		record, err := svc.RecordDownload(alice, domain.SelectedFile{
			URL: "/files/abc123.pdf", DisplayName: "report.pdf",
		})
		req.NoError(err)
		req.Equal("report.pdf", record.Name)
		// Size cross-referenced from the registry by name stem.
		req.NotNil(record.Size)
		req.Equal(int64(2048), *record.Size)

		req.Len(deps.ledger.List("alice"), 1)
	})

	t.Run("unknown file records a nil size", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		ctrl := gomock.NewController(t)
		mockAPI := mocks.NewMockIConvertAPI(ctrl)
		svc := NewLedgerService(mockAPI, deps.registry, deps.ledger, deps.log)
		svc.dispatch = synchronous

		mockAPI.EXPECT().LogDownload(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		record, err := svc.RecordDownload(alice, domain.SelectedFile{
			URL: "/files/xyz.pdf", DisplayName: "mystery.pdf",
		})
		req.NoError(err)
		req.Nil(record.Size)
	})

	t.Run("remote log failure never rolls the ledger back", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		ctrl := gomock.NewController(t)
		mockAPI := mocks.NewMockIConvertAPI(ctrl)
		svc := NewLedgerService(mockAPI, deps.registry, deps.ledger, deps.log)
		svc.dispatch = synchronous

		mockAPI.EXPECT().
			LogDownload(gomock.Any(), gomock.Any()).
			Return(errors.ErrConversionFailed).
			Times(1)

		_, err := svc.RecordDownload(alice, domain.SelectedFile{
			URL: "/files/abc123.pdf", DisplayName: "report.pdf",
		})
		req.NoError(err)
		req.Len(deps.ledger.List("alice"), 1)
	})

	t.Run("remote mirroring is dispatched off the caller's path", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		ctrl := gomock.NewController(t)
		mockAPI := mocks.NewMockIConvertAPI(ctrl)
		svc := NewLedgerService(mockAPI, deps.registry, deps.ledger, deps.log)

		done := make(chan struct{})
		mockAPI.EXPECT().
			LogDownload(gomock.Any(), gomock.Any()).
			Do(func(any, any) { close(done) }).
			Return(nil).
			Times(1)

		_, err := svc.RecordDownload(alice, domain.SelectedFile{
			URL: "/files/abc123.pdf", DisplayName: "report.pdf",
		})
		req.NoError(err)
		<-done
	})

	t.Run("two downloads of the same file produce two entries", func(t *testing.T) {
		req := require.New(t)
		deps := setupDeps(t)
		ctrl := gomock.NewController(t)
		mockAPI := mocks.NewMockIConvertAPI(ctrl)
		svc := NewLedgerService(mockAPI, deps.registry, deps.ledger, deps.log)
		svc.dispatch = synchronous

		mockAPI.EXPECT().LogDownload(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		selected := domain.SelectedFile{URL: "/files/abc123.pdf", DisplayName: "report.pdf"}
		_, err := svc.RecordDownload(alice, selected)
		req.NoError(err)
		_, err = svc.RecordDownload(alice, selected)
		req.NoError(err)

		req.Len(svc.ListDownloads(alice), 2)
	})
}

func TestLedgerService_DeleteDownload(t *testing.T) {
	req := require.New(t)
	deps := setupDeps(t)
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockIConvertAPI(ctrl)
	svc := NewLedgerService(mockAPI, deps.registry, deps.ledger, deps.log)
	svc.dispatch = synchronous

	alice := domain.Session{Username: "alice", Token: "opaque"}

	// Purely local: no remote call beyond the two download mirrors.
	mockAPI.EXPECT().LogDownload(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	selected := domain.SelectedFile{URL: "/files/abc123.pdf", DisplayName: "report.pdf"}
	_, err := svc.RecordDownload(alice, selected)
	req.NoError(err)
	_, err = svc.RecordDownload(alice, selected)
	req.NoError(err)

	req.NoError(svc.DeleteDownload(alice, "report.pdf"))
	req.Empty(svc.ListDownloads(alice))
}
