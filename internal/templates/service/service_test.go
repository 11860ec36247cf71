package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thequickanswers/subsite-backend/internal/templates/domain"
)

type fakeRepo struct {
	byID    map[uuid.UUID]*domain.Template
	byAppID map[string]*domain.Template
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    map[uuid.UUID]*domain.Template{},
		byAppID: map[string]*domain.Template{},
	}
}

func (f *fakeRepo) Create(_ context.Context, name, appID, description string, structure json.RawMessage) (*domain.Template, error) {
	if _, ok := f.byAppID[appID]; ok {
		return nil, domain.ErrAppIDTaken
	}
	t := &domain.Template{
		ID:          uuid.New(),
		Name:        name,
		AppID:       appID,
		Description: description,
		Structure:   structure,
	}
	f.byID[t.ID] = t
	f.byAppID[appID] = t
	return t, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Template, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, name, description string, structure json.RawMessage) (*domain.Template, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	t.Name = name
	t.Description = description
	t.Structure = structure
	return t, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	t, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	delete(f.byID, id)
	delete(f.byAppID, t.AppID)
	return true, nil
}

func (f *fakeRepo) List(_ context.Context) ([]domain.Template, error) {
	out := make([]domain.Template, 0, len(f.byID))
	for _, t := range f.byID {
		out = append(out, *t)
	}
	return out, nil
}

func TestCreate(t *testing.T) {
	t.Run("requires name, app id and structure", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Create(context.Background(), "", "app123", "", json.RawMessage(`{}`))
		assert.Error(t, err)

		_, err = svc.Create(context.Background(), "Cafe", "", "", json.RawMessage(`{}`))
		assert.Error(t, err)

		_, err = svc.Create(context.Background(), "Cafe", "app123", "", nil)
		assert.Error(t, err)
	})

	t.Run("duplicate app id conflicts", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Create(context.Background(), "Cafe", "app123", "", json.RawMessage(`{}`))
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), "Other", "app123", "", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, domain.ErrAppIDTaken)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("absent fields keep their prior values", func(t *testing.T) {
		repo := newFakeRepo()
		svc := New(repo)

		created, err := svc.Create(context.Background(), "Cafe", "app123", "A cafe starter", json.RawMessage(`{"pages":["home"]}`))
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), created.ID, "Bistro", "", nil)
		require.NoError(t, err)

		assert.Equal(t, "Bistro", updated.Name)
		assert.Equal(t, "A cafe starter", updated.Description)
		assert.JSONEq(t, `{"pages":["home"]}`, string(updated.Structure))
	})

	t.Run("unknown template", func(t *testing.T) {
		svc := New(newFakeRepo())

		_, err := svc.Update(context.Background(), uuid.New(), "Bistro", "", nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDeleteTemplate(t *testing.T) {
	t.Run("removes an existing template", func(t *testing.T) {
		repo := newFakeRepo()
		svc := New(repo)

		created, err := svc.Create(context.Background(), "Cafe", "app123", "", json.RawMessage(`{}`))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), created.ID))
		assert.Empty(t, repo.byID)
	})

	t.Run("unknown template", func(t *testing.T) {
		svc := New(newFakeRepo())

		err := svc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
