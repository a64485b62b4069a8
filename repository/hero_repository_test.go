package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skathar/portfolio-backend/models"
)

func TestHeroGetCurrentReturnsLatest(t *testing.T) {
	db := newTestDB(t)
	repo := NewHeroRepo(db, &fakeUploader{}, false)

	older, err := repo.Create(HeroInput{Name: "Old"}, nil)
	require.NoError(t, err)
	// push the first row into the past so creation order is unambiguous
	require.NoError(t, db.Model(&models.Hero{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	_, err = repo.Create(HeroInput{Name: "New"}, nil)
	require.NoError(t, err)

	current, err := repo.GetCurrent()
	require.NoError(t, err)
	assert.Equal(t, "New", current.Name)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "New", all[0].Name)
	assert.Equal(t, "Old", all[1].Name)
}

func TestHeroGetCurrentEmpty(t *testing.T) {
	repo := NewHeroRepo(newTestDB(t), &fakeUploader{}, false)

	_, err := repo.GetCurrent()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHeroCreateWithResume(t *testing.T) {
	up := &fakeUploader{}
	repo := NewHeroRepo(newTestDB(t), up, false)

	hero, err := repo.Create(HeroInput{Name: "Sam"}, &storageFilePDF)
	require.NoError(t, err)
	assert.Contains(t, hero.Resume.URL, "resumes/resume.pdf")
	assert.Equal(t, "resumes/resume.pdf", hero.Resume.Path)
	assert.Equal(t, []string{"resumes/resume.pdf"}, up.uploads)
}

func TestHeroRemoveTitleIdempotent(t *testing.T) {
	repo := NewHeroRepo(newTestDB(t), &fakeUploader{}, false)

	hero, err := repo.Create(HeroInput{Name: "Sam", Titles: []string{"A", "B"}}, nil)
	require.NoError(t, err)

	updated, err := repo.RemoveTitle(hero.ID.String(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, updated.Titles)

	// removing an absent title succeeds and changes nothing
	again, err := repo.RemoveTitle(hero.ID.String(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, again.Titles)
}

func TestHeroRemoveTitleMissingHero(t *testing.T) {
	repo := NewHeroRepo(newTestDB(t), &fakeUploader{}, false)

	_, err := repo.RemoveTitle("3b2d7f9e-0000-0000-0000-000000000000", "A")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHeroUpdateReplacesEducations(t *testing.T) {
	repo := NewHeroRepo(newTestDB(t), &fakeUploader{}, false)

	hero, err := repo.Create(HeroInput{
		Name: "Sam",
		Educations: []models.Education{
			{Institute: "Old School", Mode: models.ModeOffline},
			{Institute: "Other School"},
		},
	}, nil)
	require.NoError(t, err)

	replacement := []models.Education{{Institute: "New School", Mode: models.ModeOnline}}
	updated, err := repo.Update(hero.ID.String(), HeroPatch{Educations: &replacement}, nil)
	require.NoError(t, err)
	require.Len(t, updated.Educations, 1)
	assert.Equal(t, "New School", updated.Educations[0].Institute)
	// absent fields keep their values
	assert.Equal(t, "Sam", updated.Name)
}

func TestHeroUpdatePreservesUnspecifiedFields(t *testing.T) {
	repo := NewHeroRepo(newTestDB(t), &fakeUploader{}, false)

	hero, err := repo.Create(HeroInput{
		Name:        "Sam",
		About:       "about me",
		Location:    "Remote",
		SocialLinks: models.SocialLinks{Github: "https://github.com/sam"},
	}, nil)
	require.NoError(t, err)

	about := "rewritten"
	updated, err := repo.Update(hero.ID.String(), HeroPatch{About: &about}, nil)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", updated.About)
	assert.Equal(t, "Sam", updated.Name)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "https://github.com/sam", updated.SocialLinks.Github)
}

func TestHeroResumeReplacementCleansOldBlob(t *testing.T) {
	up := &fakeUploader{}
	repo := NewHeroRepo(newTestDB(t), up, true)

	hero, err := repo.Create(HeroInput{Name: "Sam"}, &storageFilePDF)
	require.NoError(t, err)

	newResume := storageFilePDF
	newResume.Name = "resume-v2.pdf"
	_, err = repo.Update(hero.ID.String(), HeroPatch{}, &newResume)
	require.NoError(t, err)
	assert.Equal(t, []string{"resumes/resume.pdf"}, up.removed)
}
