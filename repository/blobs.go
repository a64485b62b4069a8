package repository

import (
	"log"

	"github.com/skathar/portfolio-backend/storage"
)

// removeBlobPath deletes a stored object best effort; cleanup failures are
// logged, never surfaced to the caller.
func removeBlobPath(up storage.Uploader, path string) {
	if path == "" {
		return
	}
	if err := up.Remove(path); err != nil {
		log.Printf("remove blob %s: %v", path, err)
	}
}

// removeBlobURL resolves a public URL back to its object path and deletes it.
func removeBlobURL(up storage.Uploader, publicURL string) {
	removeBlobPath(up, storage.PathFromURL(publicURL))
}
