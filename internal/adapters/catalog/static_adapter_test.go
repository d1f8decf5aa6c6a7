package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporkart/facility-discovery/internal/domain/entities"
	apperrors "github.com/sporkart/facility-discovery/pkg/errors"
)

func TestNormalize_MapsAllFields(t *testing.T) {
	f := Normalize(RawRecord{
		ID:             "f1",
		Name:           "Kalamış Yüzme Havuzu",
		City:           "İstanbul",
		CityDistrict:   "Kadıköy",
		ActivityGroups: []ActivityGroup{{Name: "Havuz"}, {Name: "Fitness"}},
		Cards:          []string{"Multinet", "Setcard"},
		Lat:            40.98,
		Lng:            29.03,
		Address:        "Kalamış Cad. 12",
		Thumbnail:      "kalamis.jpg",
	})

	assert.Equal(t, "f1", f.ID)
	assert.Equal(t, "Havuz", f.Type)
	assert.Equal(t, []string{"Multinet", "Setcard"}, f.CardTypes)
	assert.Equal(t, "Kadıköy", f.District)
	assert.Equal(t, 40.98, f.Location.Latitude)
	assert.Equal(t, 29.03, f.Location.Longitude)
	assert.Equal(t, "kalamis.jpg", f.Thumbnail)
}

func TestNormalize_Defaults(t *testing.T) {
	f := Normalize(RawRecord{Name: "Adsız Tesis", City: "Ankara"})

	assert.Equal(t, entities.DefaultFacilityType, f.Type)
	assert.NotNil(t, f.CardTypes)
	assert.Empty(t, f.CardTypes)
	assert.NotEmpty(t, f.ID, "records without an id get a generated one")
}

func TestNormalize_EmptyActivityGroupName(t *testing.T) {
	f := Normalize(RawRecord{ID: "f2", ActivityGroups: []ActivityGroup{{Name: ""}}})
	assert.Equal(t, entities.DefaultFacilityType, f.Type)
}

func TestStaticAdapter_GetByID(t *testing.T) {
	repo := NewStaticAdapter([]RawRecord{
		{ID: "f1", Name: "Aqua Center"},
		{ID: "f2", Name: "Beta Gym"},
	})

	f, err := repo.GetByID(context.Background(), "f2")
	require.NoError(t, err)
	assert.Equal(t, "Beta Gym", f.Name)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestNewStaticAdapterFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facilities.json")
	payload := `[
		{"id":"f1","name":"Aqua Center","city":"İstanbul","cityDistrict":"Kadıköy",
		 "activityGroups":[{"name":"Havuz"}],"cards":["Multinet"],
		 "lat":40.98,"lng":29.03,"address":"Kalamış Cad. 12"},
		{"id":"f2","name":"Beta Gym","city":"İstanbul","cityDistrict":"Beşiktaş",
		 "cards":["Tümü"],"lat":41.04,"lng":29.00,"address":"Barbaros Bulvarı 3"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	repo, err := NewStaticAdapterFromFile(path)
	require.NoError(t, err)

	facilities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, facilities, 2)
	assert.Equal(t, "Havuz", facilities[0].Type)
	assert.Equal(t, entities.DefaultFacilityType, facilities[1].Type)
	assert.True(t, facilities[1].AcceptsCard("Multinet"), "sentinel card accepts everything")
}

func TestNewStaticAdapterFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStaticAdapterFromFile(path)
	assert.Error(t, err)
}
