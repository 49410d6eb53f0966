package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ashwinyue/toolhub/internal/model"
)

type fakeStore struct {
	saved   [][]model.Tool
	rows    []model.Tool
	saveErr error
	listErr error
}

func (f *fakeStore) ReplaceAll(_ context.Context, tools []model.Tool) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, tools)
	return nil
}

func (f *fakeStore) List(context.Context) ([]model.Tool, error) {
	return f.rows, f.listErr
}

func TestSyncer_OnCatalogChanged(t *testing.T) {
	store := &fakeStore{}
	s := NewSyncer(store, nil)

	s.OnCatalogChanged([]model.Tool{{ID: "a"}, {ID: "b"}})

	require.Len(t, store.saved, 1)
	assert.Len(t, store.saved[0], 2)
}

func TestSyncer_OnCatalogChanged_Failure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := NewSyncer(&fakeStore{saveErr: errors.New("db down")}, zap.New(core))

	assert.NotPanics(t, func() { s.OnCatalogChanged(nil) })
	assert.Equal(t, 1, logs.FilterMessage("failed to mirror tool snapshot").Len())
}

func TestSyncer_Restore(t *testing.T) {
	tests := []struct {
		name    string
		store   *fakeStore
		wantOK  bool
		wantErr bool
	}{
		{name: "empty table", store: &fakeStore{}, wantOK: false},
		{name: "rows present", store: &fakeStore{rows: []model.Tool{{ID: "a"}}}, wantOK: true},
		{name: "list error", store: &fakeStore{listErr: errors.New("boom")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tools, ok, err := NewSyncer(tt.store, nil).Restore(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Len(t, tools, 1)
			}
		})
	}
}
