package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCreateAndList(t *testing.T) {
	repo := NewMessageRepo(newTestDB(t))

	_, err := repo.Create(MessageInput{Name: "N", Email: "n@x.y"})
	assert.ErrorIs(t, err, ErrValidation)

	msg, err := repo.Create(MessageInput{Name: "N", Email: "n@x.y", Subject: "Hi", Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Hi", msg.Subject)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "hello", all[0].Message)
}

func TestMessageDelete(t *testing.T) {
	repo := NewMessageRepo(newTestDB(t))

	msg, err := repo.Create(MessageInput{Name: "N", Email: "n@x.y", Message: "hello"})
	require.NoError(t, err)

	deleted, err := repo.Delete(msg.ID.String())
	require.NoError(t, err)
	assert.Equal(t, msg.ID, deleted.ID)

	_, err = repo.Delete(msg.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
}
