package repositories_test

import (
	"context"
	"testing"

	"moodboard/internal/models"
	"moodboard/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photoURLs(photos []models.Photo) []string {
	urls := make([]string, len(photos))
	for i, p := range photos {
		urls[i] = p.URL
	}
	return urls
}

func TestGORMMoodboardRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	photos := repositories.NewGORMPhotoRepository(db)
	owner := createUser(t, db, "sam")
	happy := mood(t, db, "Happy")

	board := &models.Moodboard{Title: "Trip", Description: "Beach", UserID: owner.ID, MoodID: happy.ID}
	newPhotos := []models.Photo{{URL: "http://img/1"}, {URL: "http://img/2"}}
	require.NoError(t, boards.CreateWithPhotos(ctx, board, newPhotos))
	assert.NotEmpty(t, board.ID)
	for _, p := range newPhotos {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, board.ID, p.MoodboardID)
	}

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Trip", got.Title)
	require.NotNil(t, got.Mood)
	assert.Equal(t, "Happy", got.Mood.Name)

	stored, err := photos.FindByMoodboardID(ctx, board.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"http://img/1", "http://img/2"}, photoURLs(stored))

	_, err = boards.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMMoodboardRepository_CreateRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	owner := createUser(t, db, "sam")
	happy := mood(t, db, "Happy")

	// two photos with the same primary key make the second insert fail
	board := &models.Moodboard{Title: "Trip", UserID: owner.ID, MoodID: happy.ID}
	err := boards.CreateWithPhotos(ctx, board, []models.Photo{
		{ID: "same", URL: "http://img/1"},
		{ID: "same", URL: "http://img/2"},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Moodboard{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Photo{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGORMMoodboardRepository_UpdateWithPhotos(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	photos := repositories.NewGORMPhotoRepository(db)
	owner := createUser(t, db, "sam")
	happy, calm := mood(t, db, "Happy"), mood(t, db, "Calm")

	board := &models.Moodboard{Title: "Trip", UserID: owner.ID, MoodID: happy.ID}
	initial := []models.Photo{{URL: "http://img/1"}, {URL: "http://img/2"}}
	require.NoError(t, boards.CreateWithPhotos(ctx, board, initial))

	other := &models.Moodboard{Title: "Other", UserID: owner.ID, MoodID: happy.ID}
	otherPhotos := []models.Photo{{URL: "http://img/1"}}
	require.NoError(t, boards.CreateWithPhotos(ctx, other, otherPhotos))

	board.Title = "Renamed"
	board.MoodID = calm.ID
	// the other board's photo id must be ignored
	err := boards.UpdateWithPhotos(ctx, board,
		[]string{initial[0].ID, otherPhotos[0].ID},
		[]models.Photo{{URL: "http://img/3"}})
	require.NoError(t, err)

	got, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "Calm", got.Mood.Name)

	stored, err := photos.FindByMoodboardID(ctx, board.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"http://img/2", "http://img/3"}, photoURLs(stored))

	kept, err := photos.GetByID(ctx, initial[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "http://img/2", kept.URL)

	otherStored, err := photos.FindByMoodboardID(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, otherStored, 1)

	missing := &models.Moodboard{ID: "missing", Title: "x", MoodID: happy.ID}
	err = boards.UpdateWithPhotos(ctx, missing, nil, nil)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMMoodboardRepository_ListSummariesByOwner(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	sam, ann := createUser(t, db, "sam"), createUser(t, db, "ann")
	happy := mood(t, db, "Happy")

	require.NoError(t, boards.CreateWithPhotos(ctx,
		&models.Moodboard{Title: "Trip", UserID: sam.ID, MoodID: happy.ID},
		[]models.Photo{{URL: "http://img/1"}, {URL: "http://img/2"}}))
	require.NoError(t, boards.CreateWithPhotos(ctx,
		&models.Moodboard{Title: "Empty", UserID: sam.ID, MoodID: happy.ID}, nil))
	require.NoError(t, boards.CreateWithPhotos(ctx,
		&models.Moodboard{Title: "Ann's", UserID: ann.ID, MoodID: happy.ID},
		[]models.Photo{{URL: "http://img/9"}}))

	summaries, err := boards.ListSummariesByOwner(ctx, sam.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	counts := map[string]int64{}
	for _, s := range summaries {
		assert.Equal(t, sam.ID, s.UserID)
		assert.Equal(t, "Happy", s.MoodName)
		counts[s.Title] = s.PhotoCount
	}
	assert.Equal(t, map[string]int64{"Trip": 2, "Empty": 0}, counts)

	none, err := boards.ListSummariesByOwner(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGORMMoodboardRepository_DeleteWithPhotos(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	photos := repositories.NewGORMPhotoRepository(db)
	owner := createUser(t, db, "sam")
	happy := mood(t, db, "Happy")

	board := &models.Moodboard{Title: "Trip", UserID: owner.ID, MoodID: happy.ID}
	created := []models.Photo{{URL: "http://img/1"}, {URL: "http://img/2"}}
	require.NoError(t, boards.CreateWithPhotos(ctx, board, created))

	require.NoError(t, boards.DeleteWithPhotos(ctx, board.ID))

	_, err := boards.GetByID(ctx, board.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	for _, p := range created {
		_, err := photos.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	}

	assert.ErrorIs(t, boards.DeleteWithPhotos(ctx, board.ID), repositories.ErrNotFound)
}

func TestGORMMoodboardRepository_DuplicateURLOnBoard(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	photos := repositories.NewGORMPhotoRepository(db)
	owner := createUser(t, db, "sam")
	happy := mood(t, db, "Happy")

	board := &models.Moodboard{Title: "Trip", UserID: owner.ID, MoodID: happy.ID}
	require.NoError(t, boards.CreateWithPhotos(ctx, board, []models.Photo{{URL: "http://img/1"}}))

	// two concurrent edits that both computed u3 as new: the second must fail
	require.NoError(t, boards.UpdateWithPhotos(ctx, board, nil, []models.Photo{{URL: "http://img/3"}}))
	err := boards.UpdateWithPhotos(ctx, board, nil, []models.Photo{{URL: "http://img/3"}})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEntry)

	stored, err := photos.FindByMoodboardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://img/1", "http://img/3"}, photoURLs(stored))

	other := &models.Moodboard{Title: "Dup", UserID: owner.ID, MoodID: happy.ID}
	err = boards.CreateWithPhotos(ctx, other, []models.Photo{{URL: "http://img/1"}, {URL: "http://img/1"}})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEntry)

	// the same URL on a different board is fine
	require.NoError(t, boards.CreateWithPhotos(ctx,
		&models.Moodboard{Title: "Other", UserID: owner.ID, MoodID: happy.ID},
		[]models.Photo{{URL: "http://img/1"}}))
}

func TestGORMMoodboardRepository_PhotosKeepSubmittedOrder(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	boards := repositories.NewGORMMoodboardRepository(db)
	photos := repositories.NewGORMPhotoRepository(db)
	owner := createUser(t, db, "sam")

	board := &models.Moodboard{Title: "Trip", UserID: owner.ID, MoodID: mood(t, db, "Calm").ID}
	initial := []models.Photo{
		{URL: "http://img/e"}, {URL: "http://img/a"}, {URL: "http://img/d"}, {URL: "http://img/b"}, {URL: "http://img/c"},
	}
	require.NoError(t, boards.CreateWithPhotos(ctx, board, initial))

	stored, err := photos.FindByMoodboardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://img/e", "http://img/a", "http://img/d", "http://img/b", "http://img/c"}, photoURLs(stored))

	// removed photos leave a gap, new ones go to the end
	require.NoError(t, boards.UpdateWithPhotos(ctx, board,
		[]string{initial[1].ID},
		[]models.Photo{{URL: "http://img/z"}, {URL: "http://img/y"}}))

	stored, err = photos.FindByMoodboardID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://img/e", "http://img/d", "http://img/b", "http://img/c", "http://img/z", "http://img/y"}, photoURLs(stored))
}
