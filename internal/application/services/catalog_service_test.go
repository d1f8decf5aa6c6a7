package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporkart/facility-discovery/internal/adapters/catalog"
)

func TestCatalogService_ListAndGet(t *testing.T) {
	repo := catalog.NewStaticAdapter([]catalog.RawRecord{
		{ID: "f1", Name: "Aqua Center", City: "Istanbul"},
	})
	svc := NewCatalogService(repo)

	facilities, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, facilities, 1)

	f, err := svc.GetByID(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Aqua Center", f.Name)
}

func TestCatalogService_Replace(t *testing.T) {
	svc := NewCatalogService(catalog.NewStaticAdapter([]catalog.RawRecord{
		{ID: "f1", Name: "Aqua Center"},
	}))

	svc.Replace(catalog.NewStaticAdapter([]catalog.RawRecord{
		{ID: "f2", Name: "Beta Gym"},
		{ID: "f3", Name: "Gamma Pilates"},
	}))

	facilities, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, facilities, 2)
	assert.Equal(t, "f2", facilities[0].ID)

	_, err = svc.GetByID(context.Background(), "f1")
	assert.Error(t, err, "old catalog entries are gone after replacement")
}
