package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stored map[uuid.UUID]ResumeData
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[uuid.UUID]ResumeData{}}
}

func (f *fakeRepo) GetProfile(ctx context.Context, ownerID uuid.UUID) (ResumeData, error) {
	if f.err != nil {
		return ResumeData{}, f.err
	}
	d, ok := f.stored[ownerID]
	if !ok {
		return ResumeData{}, ErrProfileNotFound
	}
	return d, nil
}

func (f *fakeRepo) SaveProfile(ctx context.Context, ownerID uuid.UUID, data ResumeData) error {
	if f.err != nil {
		return f.err
	}
	f.stored[ownerID] = data
	return nil
}

func TestProfileGetDefaultsForFreshAccount(t *testing.T) {
	svc := NewProfileService(newFakeRepo())

	got, err := svc.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, DefaultResumeData(), got)
}

func TestProfileRoundTrip(t *testing.T) {
	svc := NewProfileService(newFakeRepo())
	owner := uuid.New()

	d := PlaceholderData()
	d.PersonalInfo.FullName = "Jane Smith"
	require.NoError(t, svc.Save(context.Background(), owner, d))

	got, err := svc.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.PersonalInfo.FullName)
}

func TestProfileSaveRejectsDuplicateIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProfileService(repo)

	d := DefaultResumeData()
	d.Experience = []Experience{{ID: "e1"}, {ID: "e1"}}
	err := svc.Save(context.Background(), uuid.New(), d)
	require.Error(t, err)
	assert.Empty(t, repo.stored)
}

func TestProfileGetPropagatesStorageErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewProfileService(repo)

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
}
