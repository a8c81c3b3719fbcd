package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yok-atlas/uni-api/dataset"
)

func newTestService() *Service {
	return NewService(dataset.FromSlice(testUniversities()))
}

func TestAdvancedEmptyQueryReturnsEverything(t *testing.T) {
	envelope := newTestService().Advanced(mustParse(t, Query{}))

	assert.Equal(t, 4, envelope.Count)
	assert.Len(t, envelope.Results, 4)
	assert.Nil(t, envelope.Filters.UniversityTypes)
	assert.Nil(t, envelope.Filters.Cities)
	assert.Nil(t, envelope.Filters.ScoreRange.Min)
	assert.Nil(t, envelope.Sorting.SortBy)
	assert.Equal(t, "asc", envelope.Sorting.SortOrder)
}

func TestAdvancedZeroMatchesIsNotAnError(t *testing.T) {
	envelope := newTestService().Advanced(mustParse(t, Query{Cities: "rize"}))

	assert.Equal(t, 0, envelope.Count)
	assert.NotNil(t, envelope.Results)
	assert.Empty(t, envelope.Results)
}

func TestAdvancedEchoesCriteria(t *testing.T) {
	envelope := newTestService().Advanced(mustParse(t, Query{
		UniversityTypes: "devlet",
		Cities:          "ankara",
		MinScore:        "400",
		MaxScore:        "450",
		SortBy:          "name",
		SortOrder:       "desc",
	}))

	require.NotNil(t, envelope.Filters.UniversityTypes)
	assert.Equal(t, "devlet", *envelope.Filters.UniversityTypes)
	require.NotNil(t, envelope.Filters.Cities)
	assert.Equal(t, "ankara", *envelope.Filters.Cities)
	require.NotNil(t, envelope.Filters.ScoreRange.Min)
	assert.Equal(t, 400.0, *envelope.Filters.ScoreRange.Min)
	require.NotNil(t, envelope.Sorting.SortBy)
	assert.Equal(t, "name", *envelope.Sorting.SortBy)
	assert.Equal(t, "desc", envelope.Sorting.SortOrder)
}

func TestAdvancedFiltersThenSorts(t *testing.T) {
	envelope := newTestService().Advanced(mustParse(t, Query{
		UniversityTypes: "vakıf",
		SortBy:          "name",
	}))

	require.Equal(t, 2, envelope.Count)
	assert.Equal(t, "İstanbul Sanat Üniversitesi", envelope.Results[0].Name)
	assert.Equal(t, "Koç Üniversitesi", envelope.Results[1].Name)
}

func TestSearchFacultiesIsTurkishCaseInsensitive(t *testing.T) {
	service := newTestService()

	results := service.SearchFaculties("HUKUK")
	require.Len(t, results, 1)
	assert.Equal(t, "Ankara Üniversitesi", results[0].Name)
	require.Len(t, results[0].Faculties, 1)
	assert.Equal(t, "Hukuk Fakültesi", results[0].Faculties[0].Name)

	// Dotless I folding: upper-case TIP lowers to "tıp" under Turkish
	// casing, where a naive ASCII fold would produce "tip" and miss.
	assert.Len(t, service.SearchFaculties("TIP"), 1)
}

func TestSearchFacultiesReturnsTrimmedShape(t *testing.T) {
	results := newTestService().SearchFaculties("mühendislik")

	require.Len(t, results, 1)
	match := results[0]
	assert.Equal(t, 1, match.ID)
	assert.Equal(t, "Çukurova Üniversitesi", match.Name)
	assert.Equal(t, "ADANA", match.City)
	assert.NotEmpty(t, match.Type)
}

func TestSearchProgramsPrunesToMatches(t *testing.T) {
	results := newTestService().SearchPrograms("mühendisliği")

	require.Len(t, results, 1)
	require.Len(t, results[0].Faculties, 1)
	assert.Len(t, results[0].Faculties[0].Programs, 2)
}

func TestByScoreRange(t *testing.T) {
	results := newTestService().ByScoreRange(400, 450, "")

	// Only programs with both scores fully inside qualify here; data-less
	// programs never match this endpoint.
	require.Len(t, results, 1)
	assert.Equal(t, "Ankara Üniversitesi", results[0].Name)
	require.Len(t, results[0].Faculties, 2)
}

func TestByScoreRangeWithScoreType(t *testing.T) {
	results := newTestService().ByScoreRange(400, 450, "SAY")

	// The EA programs inside [400,450] are excluded by the score type
	// restriction, and no SAY program fits the range.
	assert.Empty(t, results)
}

func TestOptions(t *testing.T) {
	options := newTestService().Options()

	assert.Equal(t, []string{"ADANA", "ANKARA", "İSTANBUL"}, options.Cities)
	assert.Equal(t, []string{"EA", "SAY"}, options.ScoreTypes)
	assert.Equal(t, []string{"lisans", "önlisans"}, options.ProgramTypes)
	assert.Equal(t, 4, options.TotalUniversities)
	assert.Equal(t, 3, options.TotalCities)

	byID := make(map[Category]CategoryOption)
	for _, option := range options.FacultyCategories {
		byID[option.ID] = option
	}
	assert.Equal(t, 1, byID[CategoryLaw].Count)
	assert.Equal(t, 1, byID[CategoryEngineering].Count)
	// Tıp Fakültesi only; zero-count categories are omitted entirely.
	assert.Equal(t, 1, byID[CategoryMedicine].Count)
	for _, option := range options.FacultyCategories {
		assert.Positive(t, option.Count)
	}
}

func TestStats(t *testing.T) {
	stats := newTestService().Stats()

	assert.Equal(t, 4, stats.Universities)
	assert.Equal(t, 10, stats.TotalPrograms)
	assert.Equal(t, 7, stats.ProgramsWithData)
	assert.Equal(t, "70.0%", stats.Coverage)
	assert.Equal(t, []string{"EA", "SAY"}, stats.ScoreTypes)
	assert.Equal(t, 80+120+200+350+60+30+40, stats.TotalQuota)
	assert.NotEmpty(t, stats.PlacementRate)
}

func mustParse(t *testing.T, q Query) Criteria {
	t.Helper()
	criteria, err := ParseQuery(q)
	require.NoError(t, err)
	return criteria
}
