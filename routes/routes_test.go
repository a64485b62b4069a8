package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skathar/portfolio-backend/config"
	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/storage"
	"github.com/skathar/portfolio-backend/utils"
)

const testSecret = "routes-secret"

type fakeUploader struct{}

func (f *fakeUploader) Upload(file storage.File, folder string) (storage.Object, error) {
	path := folder + "/" + file.Name
	return storage.Object{
		URL:  "https://cdn.test/storage/v1/object/public/uploads/" + path,
		Path: path,
	}, nil
}

func (f *fakeUploader) Remove(path string) error { return nil }

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Hero{}, &models.Project{}, &models.Blog{},
		&models.Certificate{}, &models.Skill{}, &models.Message{},
	))

	hash, err := utils.HashPassword("admin-pass")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Email:    "admin@site.test",
		Password: hash,
		Role:     models.RoleAdmin,
	}).Error)

	return SetupRouter(gin.New(), Deps{
		DB:       db,
		Uploader: &fakeUploader{},
		Cfg:      config.Config{JWTSecret: testSecret},
	})
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, method, path, token string, fields map[string]string, fileName string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if fileName != "" {
		fw, _ := mw.CreateFormFile("file", fileName)
		_, _ = fw.Write([]byte("binary"))
	}
	_ = mw.Close()

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/user/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/user/login", "", gin.H{
		"email":    "admin@site.test",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = doJSON(r, http.MethodPost, "/user/login", "", gin.H{
		"email":    "admin@site.test",
		"password": "admin-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestContactFlow(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/contact/create", "", gin.H{
		"name":    "Visitor",
		"email":   "visitor@mail.test",
		"message": "Hi there",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// the inbox stays admin-only
	w = doJSON(r, http.MethodGet, "/contact/get", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := loginAs(t, r, "admin@site.test", "admin-pass")
	w = doJSON(r, http.MethodGet, "/contact/get", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "visitor@mail.test")
}

func TestBlogDuplicateTitle(t *testing.T) {
	r := setupAPI(t)
	token := loginAs(t, r, "admin@site.test", "admin-pass")

	fields := map[string]string{
		"title":       "Why Goroutines",
		"description": "Concurrency notes",
		"link":        "https://blog.test/goroutines",
	}
	w := doForm(r, http.MethodPost, "/blog/create", token, fields, "cover.png")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doForm(r, http.MethodPost, "/blog/create", token, fields, "cover.png")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Blog with this title already exists")

	// the listing is public and still holds exactly the first post
	w = doJSON(r, http.MethodGet, "/blog/get", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Data []models.Blog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Data, 1)
	assert.Equal(t, "why-goroutines", listing.Data[0].Slug)
}

func TestAdminGating(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodPost, "/user/create", "", gin.H{
		"email":    "reader@site.test",
		"password": "reader-pass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := loginAs(t, r, "reader@site.test", "reader-pass")
	w = doForm(r, http.MethodPost, "/skill/create", token, map[string]string{
		"name":     "Go",
		"category": "backend",
		"icon":     "go.svg",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUnknownBlogReturnsNotFound(t *testing.T) {
	r := setupAPI(t)

	w := doJSON(r, http.MethodGet, "/blog/get/"+uuid.New().String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
