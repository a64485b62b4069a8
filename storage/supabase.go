package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// ErrUploadFailed wraps any provider-side rejection, including files whose
// format is not in the allow list.
var ErrUploadFailed = errors.New("upload failed")

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// File is an upload decoded away from its multipart origins, so repositories
// never touch form handles directly.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Object identifies a stored blob: URL is the public link, Path the
// provider-internal handle used for deletion.
type Object struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Uploader is what repositories depend on; Client is the Supabase-backed
// implementation.
type Uploader interface {
	Upload(file File, folder string) (Object, error)
	Remove(path string) error
}

type Client struct {
	baseURL string
	apiKey  string
	bucket  string
	storage *storage_go.Client
	http    *http.Client
}

func NewClient(baseURL, apiKey, bucket string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		storage: storage_go.NewClient(baseURL+"/storage/v1", apiKey, nil),
		http:    &http.Client{},
	}
}

// Upload stores the file under <bucket>/<folder>/<uuid><ext> and returns its
// public URL together with the object path.
func (c *Client) Upload(file File, folder string) (Object, error) {
	ext := strings.ToLower(filepath.Ext(file.Name))
	if !allowedExts[ext] {
		return Object{}, fmt.Errorf("%w: format %q not allowed", ErrUploadFailed, ext)
	}

	objectPath := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	contentType := file.ContentType
	options := storage_go.FileOptions{
		ContentType: &contentType,
	}
	if _, err := c.storage.UploadFile(c.bucket, objectPath, bytes.NewReader(file.Data), options); err != nil {
		return Object{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return Object{
		URL:  fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath),
		Path: objectPath,
	}, nil
}

// Remove deletes a stored object by its path. Supabase answers 200 or 204 on
// success.
func (c *Client) Remove(path string) error {
	if path == "" {
		return nil
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete object %s: status=%d body=%s", path, resp.StatusCode, string(body))
	}
	return nil
}

// PathFromURL resolves a public object URL back to the object path within
// its bucket. Returns "" when the URL does not look like a storage link.
func PathFromURL(publicURL string) string {
	const marker = "/storage/v1/object/public/"
	idx := strings.Index(publicURL, marker)
	if idx == -1 {
		return ""
	}
	rest := publicURL[idx+len(marker):]
	if q := strings.Index(rest, "?"); q != -1 {
		rest = rest[:q]
	}
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// FromMultipart reads a form file into a File. Returns nil when fh is nil so
// optional uploads pass straight through.
func FromMultipart(fh *multipart.FileHeader) (*File, error) {
	if fh == nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
