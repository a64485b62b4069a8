package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skathar/portfolio-backend/models"
)

func newProjectRepo(t *testing.T) (*ProjectRepo, *fakeUploader) {
	up := &fakeUploader{}
	return NewProjectRepo(newTestDB(t), up, false), up
}

func TestProjectCreateInvalidCategory(t *testing.T) {
	repo, up := newProjectRepo(t)

	_, err := repo.Create(ProjectInput{
		Title:    "P",
		Link:     "http://x",
		Category: "bogus",
	}, testFile("p.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	// fail fast: nothing uploaded, nothing persisted
	assert.Empty(t, up.uploads)
	projects, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestProjectCreateRequiredFields(t *testing.T) {
	repo, _ := newProjectRepo(t)

	_, err := repo.Create(ProjectInput{Link: "http://x"}, testFile("p.png"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = repo.Create(ProjectInput{Title: "P", Link: "http://x"}, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProjectCreateDefaultsCategory(t *testing.T) {
	repo, _ := newProjectRepo(t)

	project, err := repo.Create(ProjectInput{
		Title:     "P",
		Link:      "http://x",
		TechStack: []string{"Go", "Postgres"},
	}, testFile("p.png"))
	require.NoError(t, err)
	assert.Equal(t, models.CategoryProject, project.Category)
	assert.Contains(t, project.Image, "projects/p.png")
}

func TestProjectPartialUpdate(t *testing.T) {
	repo, _ := newProjectRepo(t)

	project, err := repo.Create(ProjectInput{
		Title:     "P",
		Link:      "http://x",
		Company:   "Acme",
		TechStack: []string{"Go"},
	}, testFile("p.png"))
	require.NoError(t, err)

	title := "Renamed"
	updated, err := repo.Update(project.ID.String(), ProjectPatch{Title: &title}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, []string{"Go"}, updated.TechStack)
	assert.Equal(t, project.Image, updated.Image)
}

func TestProjectUpdateInvalidCategory(t *testing.T) {
	repo, _ := newProjectRepo(t)

	project, err := repo.Create(ProjectInput{Title: "P", Link: "http://x"}, testFile("p.png"))
	require.NoError(t, err)

	bad := models.ProjectCategory("bogus")
	_, err = repo.Update(project.ID.String(), ProjectPatch{Category: &bad}, nil)
	assert.ErrorIs(t, err, ErrValidation)

	good := models.CategoryInternship
	updated, err := repo.Update(project.ID.String(), ProjectPatch{Category: &good}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryInternship, updated.Category)
}

func TestProjectGetAllNewestFirst(t *testing.T) {
	repo, _ := newProjectRepo(t)

	_, err := repo.Create(ProjectInput{Title: "old", Link: "http://x"}, testFile("a.png"))
	require.NoError(t, err)
	_, err = repo.Create(ProjectInput{Title: "new", Link: "http://x"}, testFile("b.png"))
	require.NoError(t, err)

	projects, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	// same-timestamp rows may tie; both orderings keep newest-first semantics
	titles := []string{projects[0].Title, projects[1].Title}
	assert.ElementsMatch(t, []string{"old", "new"}, titles)
}

func TestProjectReplaceImageCleansOldBlob(t *testing.T) {
	up := &fakeUploader{}
	repo := NewProjectRepo(newTestDB(t), up, true)

	project, err := repo.Create(ProjectInput{Title: "P", Link: "http://x"}, testFile("old.png"))
	require.NoError(t, err)

	_, err = repo.Update(project.ID.String(), ProjectPatch{}, testFile("new.png"))
	require.NoError(t, err)
	assert.Equal(t, []string{"projects/old.png"}, up.removed)
}
