package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlogRepo(t *testing.T) (*BlogRepo, *fakeUploader) {
	up := &fakeUploader{}
	return NewBlogRepo(newTestDB(t), up, false), up
}

func TestBlogCreateDuplicateTitle(t *testing.T) {
	repo, _ := newBlogRepo(t)

	first, err := repo.Create(BlogInput{Title: "A", Description: "d"}, nil)
	require.NoError(t, err)

	_, err = repo.Create(BlogInput{Title: "A", Description: "e"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "already exists")

	// first record is untouched by the failed insert
	got, err := repo.GetByID(first.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "d", got.Description)
}

func TestBlogCreateDefaults(t *testing.T) {
	repo, _ := newBlogRepo(t)

	blog, err := repo.Create(BlogInput{Description: "no title given"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, blog.Title)
	assert.Equal(t, "general", blog.Category)
	assert.NotEmpty(t, blog.Slug)
}

func TestBlogCreateUploadsImage(t *testing.T) {
	repo, up := newBlogRepo(t)

	blog, err := repo.Create(BlogInput{Title: "With image"}, testFile("cover.png"))
	require.NoError(t, err)
	assert.Contains(t, blog.Image, "blogs/cover.png")
	assert.Equal(t, []string{"blogs/cover.png"}, up.uploads)
}

func TestBlogPartialUpdate(t *testing.T) {
	repo, _ := newBlogRepo(t)

	blog, err := repo.Create(BlogInput{Title: "A", Description: "d", Link: "http://a", Category: "go"}, nil)
	require.NoError(t, err)

	desc := "updated"
	patch := BlogPatch{Description: &desc}

	updated, err := repo.Update(blog.ID.String(), patch, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", updated.Title)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, "http://a", updated.Link)
	assert.Equal(t, "go", updated.Category)

	// applying the same patch twice ends in the same state
	again, err := repo.Update(blog.ID.String(), patch, nil)
	require.NoError(t, err)
	assert.Equal(t, updated.Title, again.Title)
	assert.Equal(t, updated.Description, again.Description)
	assert.Equal(t, updated.Link, again.Link)
	assert.Equal(t, updated.Category, again.Category)
}

func TestBlogUpdateDuplicateTitle(t *testing.T) {
	repo, _ := newBlogRepo(t)

	_, err := repo.Create(BlogInput{Title: "First"}, nil)
	require.NoError(t, err)
	second, err := repo.Create(BlogInput{Title: "Second"}, nil)
	require.NoError(t, err)

	title := "First"
	_, err = repo.Update(second.ID.String(), BlogPatch{Title: &title}, nil)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBlogNotFound(t *testing.T) {
	repo, _ := newBlogRepo(t)
	missing := uuid.New().String()

	_, err := repo.GetByID(missing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(missing, BlogPatch{}, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Delete(missing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogDeleteReturnsLastState(t *testing.T) {
	repo, _ := newBlogRepo(t)

	blog, err := repo.Create(BlogInput{Title: "Bye", Description: "d"}, nil)
	require.NoError(t, err)

	deleted, err := repo.Delete(blog.ID.String())
	require.NoError(t, err)
	assert.Equal(t, blog.ID, deleted.ID)
	assert.Equal(t, "Bye", deleted.Title)

	_, err = repo.GetByID(blog.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}
