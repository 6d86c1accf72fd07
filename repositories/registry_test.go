package repositories

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"pdfkita/domain"
)

func TestUploadRegistry(t *testing.T) {
	db, cleanup := SetupTestDB(t)
	defer cleanup()

	store := NewStore(db, testLogger())
	registry := NewUploadRegistry(store, testLogger())

	report := domain.UploadedFile{
		Name: "report.docx", Size: 2048,
		MimeType:   "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		RemotePath: "/uploads/abc123.docx", UploadedBy: 1,
	}
	sheet := domain.UploadedFile{
		Name: "budget.xlsx", Size: 512,
		RemotePath: "/uploads/def456.xlsx", UploadedBy: 1,
	}

	t.Run("empty store yields empty list", func(t *testing.T) {
		require.New(t).Empty(registry.List())
	})

	t.Run("put preserves insertion order", func(t *testing.T) {
		req := require.New(t)
		req.NoError(registry.Put(report))
		req.NoError(registry.Put(sheet))

		names := lo.Map(registry.List(), func(f domain.UploadedFile, _ int) string {
			return f.Name
		})
		req.Equal([]string{"report.docx", "budget.xlsx"}, names)
	})

	t.Run("find by name", func(t *testing.T) {
		req := require.New(t)
		found, ok := registry.Find("report.docx")
		req.True(ok)
		req.Equal(int64(2048), found.Size)

		_, ok = registry.Find("missing.doc")
		req.False(ok)
	})

	t.Run("same-name put replaces, never duplicates", func(t *testing.T) {
		req := require.New(t)
		bigger := report
		bigger.Size = 4096
		req.NoError(registry.Put(bigger))

		files := registry.List()
		req.Len(files, 2)
		found, ok := registry.Find("report.docx")
		req.True(ok)
		req.Equal(int64(4096), found.Size)
	})

	t.Run("delete removes only the named file", func(t *testing.T) {
		req := require.New(t)
		req.NoError(registry.Delete("report.docx"))

		files := registry.List()
		req.Len(files, 1)
		req.Equal("budget.xlsx", files[0].Name)
	})

	t.Run("corrupt persisted value degrades to empty list", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.Set(KeyUploadedFiles, "{not json"))
		req.Empty(registry.List())

		// A new write repairs the key.
		req.NoError(registry.Put(report))
		req.Len(registry.List(), 1)
	})

	t.Run("legacy single-object value reads as one-element list", func(t *testing.T) {
		req := require.New(t)
		req.NoError(store.Set(KeyUploadedFiles,
			`{"name":"old.doc","size":10,"type":"application/msword","path":"/uploads/old.doc","uploadedBy":1}`))

		files := registry.List()
		req.Len(files, 1)
		req.Equal("old.doc", files[0].Name)
	})
}
