package tracks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMap_PreservesDocumentOrder(t *testing.T) {
	data := []byte(`{
		"Zebra Engineering": ["stripes"],
		"Alpha Engineering": ["sorting"]
	}`)

	defs, err := ParseMap(data)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "Zebra Engineering", defs[0].Name)
	assert.Equal(t, []string{"stripes"}, defs[0].Skills)
	assert.Equal(t, "Alpha Engineering", defs[1].Name)
}

func TestParseMap_RejectsNonObject(t *testing.T) {
	_, err := ParseMap([]byte(`["not", "an", "object"]`))
	assert.Error(t, err)
}

func TestParseMap_RejectsNonStringSkills(t *testing.T) {
	_, err := ParseMap([]byte(`{"Web": [1, 2, 3]}`))
	assert.Error(t, err)
}

func TestParseMap_RejectsEmptyObject(t *testing.T) {
	_, err := ParseMap([]byte(`{}`))
	assert.Error(t, err)
}

func TestParseMap_RejectsInvalidJSON(t *testing.T) {
	_, err := ParseMap([]byte(`{"Web": `))
	assert.Error(t, err)
}

func TestLoadMap_EmptyPathUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultMap(), LoadMap(""))
}

func TestLoadMap_MissingFileFallsBack(t *testing.T) {
	assert.Equal(t, DefaultMap(), LoadMap("/nonexistent/track_map.json"))
}

func TestLoadMap_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"oops"`), 0644))

	assert.Equal(t, DefaultMap(), LoadMap(path))
}

func TestLoadMap_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracks.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Backend": ["go", "postgres"]}`), 0644))

	defs := LoadMap(path)
	require.Len(t, defs, 1)
	assert.Equal(t, "Backend", defs[0].Name)
	assert.Equal(t, []string{"go", "postgres"}, defs[0].Skills)
}

func TestRecommend_KnownTrack(t *testing.T) {
	recSkills, courses := Recommend("Web Development")
	assert.NotEmpty(t, recSkills)
	assert.NotEmpty(t, courses)
}

func TestRecommend_AliasedTrack(t *testing.T) {
	recSkills, courses := Recommend("Data Science")
	assert.Contains(t, recSkills, "scikit-learn")
	assert.NotEmpty(t, courses)
}

func TestRecommend_UnknownTrack(t *testing.T) {
	recSkills, courses := Recommend(DefaultTrack)
	assert.Empty(t, recSkills)
	assert.Empty(t, courses)
}
