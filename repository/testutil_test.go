package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
)

// newTestDB opens an isolated in-memory database with the same error
// translation the production Postgres connection uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hero{},
		&models.Project{},
		&models.Blog{},
		&models.Certificate{},
		&models.Skill{},
		&models.Message{},
	))
	return db
}

// fakeUploader records uploads and removals instead of talking to Supabase.
type fakeUploader struct {
	uploads []string
	removed []string
	err     error
}

func (f *fakeUploader) Upload(file storage.File, folder string) (storage.Object, error) {
	if f.err != nil {
		return storage.Object{}, f.err
	}
	path := folder + "/" + file.Name
	f.uploads = append(f.uploads, path)
	return storage.Object{
		URL:  "https://cdn.test/storage/v1/object/public/uploads/" + path,
		Path: path,
	}, nil
}

func (f *fakeUploader) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

// storageFilePDF is a ready-made resume upload for hero tests.
var storageFilePDF = storage.File{
	Name:        "resume.pdf",
	ContentType: "application/pdf",
	Data:        []byte("%PDF-1.4"),
}

func testFile(name string) *storage.File {
	return &storage.File{
		Name:        name,
		ContentType: "image/png",
		Data:        []byte("test-bytes"),
	}
}
