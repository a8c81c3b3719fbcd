package search

import (
	"fmt"
	"sort"

	"github.com/yok-atlas/uni-api/dataset"
	"github.com/yok-atlas/uni-api/model"
)

// Service runs every catalog query against the in-memory dataset. All of
// its methods are synchronous and side-effect free.
type Service struct {
	store dataset.Store
}

// NewService creates a search service over the given dataset store.
func NewService(store dataset.Store) *Service {
	return &Service{store: store}
}

// FiltersEcho mirrors the criteria back to the client in the advanced-search
// envelope. Absent filters serialize as null.
type FiltersEcho struct {
	UniversityTypes   *string        `json:"universityTypes"`
	Cities            *string        `json:"cities"`
	ProgramTypes      *string        `json:"programTypes"`
	ScoreTypes        *string        `json:"scoreTypes"`
	FacultyCategories *string        `json:"facultyCategories"`
	ScoreRange        ScoreRangeEcho `json:"scoreRange"`
	QuotaRange        QuotaRangeEcho `json:"quotaRange"`
	ProgramName       *string        `json:"programName"`
}

type ScoreRangeEcho struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type QuotaRangeEcho struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// SortSpec echoes the applied sorting.
type SortSpec struct {
	SortBy    *string `json:"sortBy"`
	SortOrder string  `json:"sortOrder"`
}

// Envelope is the advanced-search response body. Zero matches is a normal
// outcome: count is 0 and results is an empty list, never an error.
type Envelope struct {
	Count   int                `json:"count"`
	Filters FiltersEcho        `json:"filters"`
	Sorting SortSpec           `json:"sorting"`
	Results []model.University `json:"results"`
}

// Advanced runs the multi-criteria search: filter pipeline, category pass,
// sort, and envelope assembly.
func (s *Service) Advanced(criteria Criteria) Envelope {
	results := Filter(s.store.All(), criteria)
	results = Sort(results, criteria.SortBy, criteria.SortOrder)

	return Envelope{
		Count:   len(results),
		Filters: criteria.echo(),
		Sorting: SortSpec{
			SortBy:    optionalString(criteria.raw.SortBy),
			SortOrder: criteria.SortOrder,
		},
		Results: results,
	}
}

func (c Criteria) echo() FiltersEcho {
	return FiltersEcho{
		UniversityTypes:   optionalString(c.raw.UniversityTypes),
		Cities:            optionalString(c.raw.Cities),
		ProgramTypes:      optionalString(c.raw.ProgramTypes),
		ScoreTypes:        optionalString(c.raw.ScoreTypes),
		FacultyCategories: optionalString(c.raw.FacultyCategories),
		ScoreRange:        ScoreRangeEcho{Min: c.MinScore, Max: c.MaxScore},
		QuotaRange:        QuotaRangeEcho{Min: c.MinQuota, Max: c.MaxQuota},
		ProgramName:       optionalString(c.ProgramName),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UniversityMatch is the trimmed university shape returned by the faculty
// and program name searches.
type UniversityMatch struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	City      string          `json:"city"`
	Type      string          `json:"type"`
	Website   string          `json:"website"`
	Faculties []model.Faculty `json:"faculties"`
}

// SearchFaculties returns universities holding at least one faculty whose
// name contains the term (Turkish case-insensitive), pruned to those
// faculties.
func (s *Service) SearchFaculties(term string) []UniversityMatch {
	var results []UniversityMatch
	for _, university := range s.store.All() {
		var matched []model.Faculty
		for _, faculty := range university.Faculties {
			if containsTr(faculty.Name, term) {
				matched = append(matched, faculty)
			}
		}
		if len(matched) > 0 {
			results = append(results, trimUniversity(university, matched))
		}
	}
	return results
}

// SearchPrograms returns universities pruned to the faculties and programs
// whose program name contains the term (Turkish case-insensitive).
func (s *Service) SearchPrograms(term string) []UniversityMatch {
	var results []UniversityMatch
	for _, university := range s.store.All() {
		var matchedFaculties []model.Faculty
		for _, faculty := range university.Faculties {
			var matchedPrograms []model.Program
			for _, program := range faculty.Programs {
				if containsTr(program.Name, term) {
					matchedPrograms = append(matchedPrograms, program)
				}
			}
			if len(matchedPrograms) > 0 {
				faculty.Programs = matchedPrograms
				matchedFaculties = append(matchedFaculties, faculty)
			}
		}
		if len(matchedFaculties) > 0 {
			results = append(results, trimUniversity(university, matchedFaculties))
		}
	}
	return results
}

// ByScoreRange returns universities pruned to programs whose general-quota
// score interval lies fully inside [min, max], optionally restricted to an
// exact score type. Programs without both scores never match here.
func (s *Service) ByScoreRange(min, max float64, scoreType string) []UniversityMatch {
	var results []UniversityMatch
	for _, university := range s.store.All() {
		var matchedFaculties []model.Faculty
		for _, faculty := range university.Faculties {
			var matchedPrograms []model.Program
			for _, program := range faculty.Programs {
				data := program.YokData2024
				if data == nil {
					continue
				}
				if scoreType != "" && data.ScoreType != scoreType {
					continue
				}
				general := data.Quota.General
				if general.MinScore == nil || general.MaxScore == nil {
					continue
				}
				if *general.MinScore >= min && *general.MaxScore <= max {
					matchedPrograms = append(matchedPrograms, program)
				}
			}
			if len(matchedPrograms) > 0 {
				faculty.Programs = matchedPrograms
				matchedFaculties = append(matchedFaculties, faculty)
			}
		}
		if len(matchedFaculties) > 0 {
			results = append(results, trimUniversity(university, matchedFaculties))
		}
	}
	return results
}

func trimUniversity(u model.University, faculties []model.Faculty) UniversityMatch {
	return UniversityMatch{
		ID:        u.ID,
		Name:      u.Name,
		City:      u.City,
		Type:      u.Type,
		Website:   u.Website,
		Faculties: faculties,
	}
}

// CategoryOption is a faculty category with the number of distinct faculty
// names classified into it.
type CategoryOption struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Count int      `json:"count"`
}

// FilterOptions lists the distinct values available for each advanced-search
// filter, plus faculty-category counts.
type FilterOptions struct {
	Cities            []string         `json:"cities"`
	ScoreTypes        []string         `json:"scoreTypes"`
	ProgramTypes      []string         `json:"programTypes"`
	UniversityTypes   []string         `json:"universityTypes"`
	FacultyCategories []CategoryOption `json:"facultyCategories"`
	TotalUniversities int              `json:"totalUniversities"`
	TotalCities       int              `json:"totalCities"`
}

// Options aggregates the distinct filter values over the whole dataset.
func (s *Service) Options() FilterOptions {
	cities := make(map[string]struct{})
	scoreTypes := make(map[string]struct{})
	programTypes := make(map[string]struct{})
	universityTypes := make(map[string]struct{})
	facultyNames := make(map[string]struct{})

	for _, university := range s.store.All() {
		cities[university.City] = struct{}{}
		universityTypes[university.Type] = struct{}{}
		for _, faculty := range university.Faculties {
			facultyNames[faculty.Name] = struct{}{}
			for _, program := range faculty.Programs {
				if program.YokData2024 != nil {
					scoreTypes[program.YokData2024.ScoreType] = struct{}{}
					programTypes[program.YokData2024.ProgramType] = struct{}{}
				}
			}
		}
	}

	counts := make(map[Category]int, len(Categories))
	for name := range facultyNames {
		for _, category := range Categorize(name) {
			counts[category]++
		}
	}
	categories := make([]CategoryOption, 0, len(Categories))
	for _, def := range Categories {
		if counts[def.ID] > 0 {
			categories = append(categories, CategoryOption{ID: def.ID, Name: def.Name, Count: counts[def.ID]})
		}
	}

	return FilterOptions{
		Cities:            sortedKeys(cities),
		ScoreTypes:        sortedKeys(scoreTypes),
		ProgramTypes:      sortedKeys(programTypes),
		UniversityTypes:   sortedKeys(universityTypes),
		FacultyCategories: categories,
		TotalUniversities: s.store.Count(),
		TotalCities:       len(cities),
	}
}

// Statistics summarizes the dataset and its 2024 placement-data coverage.
type Statistics struct {
	Universities     int      `json:"universities"`
	TotalPrograms    int      `json:"totalPrograms"`
	ProgramsWithData int      `json:"programsWithEnhancedData"`
	Coverage         string   `json:"enhancedDataCoverage"`
	ScoreTypes       []string `json:"scoreTypes"`
	ProgramTypes     []string `json:"programTypes"`
	TotalQuota       int      `json:"totalQuota"`
	TotalPlaced      int      `json:"totalPlaced"`
	PlacementRate    string   `json:"placementRate"`
}

// Stats computes the dataset statistics. Quota categories with a nil total
// are excluded from the sums.
func (s *Service) Stats() Statistics {
	totalPrograms := 0
	programsWithData := 0
	totalQuota := 0
	totalPlaced := 0
	scoreTypes := make(map[string]struct{})
	programTypes := make(map[string]struct{})

	for _, university := range s.store.All() {
		for _, faculty := range university.Faculties {
			for _, program := range faculty.Programs {
				totalPrograms++
				data := program.YokData2024
				if data == nil {
					continue
				}
				programsWithData++
				scoreTypes[data.ScoreType] = struct{}{}
				programTypes[data.ProgramType] = struct{}{}
				if data.Quota.General.Total != nil {
					totalQuota += *data.Quota.General.Total
				}
				if data.Quota.General.Placed != nil {
					totalPlaced += *data.Quota.General.Placed
				}
			}
		}
	}

	coverage := "0.0%"
	if totalPrograms > 0 {
		coverage = fmt.Sprintf("%.1f%%", float64(programsWithData)/float64(totalPrograms)*100)
	}
	placementRate := "0%"
	if totalQuota > 0 {
		placementRate = fmt.Sprintf("%.1f%%", float64(totalPlaced)/float64(totalQuota)*100)
	}

	return Statistics{
		Universities:     s.store.Count(),
		TotalPrograms:    totalPrograms,
		ProgramsWithData: programsWithData,
		Coverage:         coverage,
		ScoreTypes:       sortedKeys(scoreTypes),
		ProgramTypes:     sortedKeys(programTypes),
		TotalQuota:       totalQuota,
		TotalPlaced:      totalPlaced,
		PlacementRate:    placementRate,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
