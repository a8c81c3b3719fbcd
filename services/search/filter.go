package search

import (
	"math"
	"strings"

	"github.com/yok-atlas/uni-api/model"
)

// Filter narrows the dataset to the universities, faculties and programs
// matching the criteria, preserving the hierarchical shape and dropping
// parents left empty. It never mutates the input: surviving universities are
// shallow copies whose Faculties/Programs slices are rebuilt as needed.
// Empty criteria return the full dataset.
func Filter(universities []model.University, criteria Criteria) []model.University {
	results := make([]model.University, 0, len(universities))

	for _, university := range universities {
		if !matchesAnyToken(university.Type, criteria.UniversityTypes) {
			continue
		}
		if !matchesAnyToken(university.City, criteria.Cities) {
			continue
		}
		results = append(results, university)
	}

	results = filterPrograms(results, criteria)

	if len(criteria.FacultyCategories) > 0 {
		// Second pass over the already-pruned tree: category filtering
		// narrows further, it never restores dropped faculties.
		results = filterByCategory(results, criteria.FacultyCategories)
	}

	return results
}

// matchesAnyToken reports whether the lower-cased value contains any of the
// (already lower-cased) tokens as a substring. An empty token list matches
// everything.
func matchesAnyToken(value string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	lowered := strings.ToLower(value)
	for _, token := range tokens {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// filterPrograms applies the program-level predicates per faculty, replacing
// Programs with the survivors and pruning empty faculties and universities.
func filterPrograms(universities []model.University, criteria Criteria) []model.University {
	if criteria.ProgramName == "" &&
		len(criteria.ProgramTypes) == 0 &&
		len(criteria.ScoreTypes) == 0 &&
		!criteria.hasScoreRange() &&
		!criteria.hasQuotaRange() {
		return universities
	}

	results := make([]model.University, 0, len(universities))
	for _, university := range universities {
		faculties := make([]model.Faculty, 0, len(university.Faculties))
		for _, faculty := range university.Faculties {
			programs := make([]model.Program, 0, len(faculty.Programs))
			for _, program := range faculty.Programs {
				if programMatches(program, criteria) {
					programs = append(programs, program)
				}
			}
			if len(programs) > 0 {
				faculty.Programs = programs
				faculties = append(faculties, faculty)
			}
		}
		if len(faculties) > 0 {
			university.Faculties = faculties
			results = append(results, university)
		}
	}
	return results
}

func programMatches(program model.Program, criteria Criteria) bool {
	if criteria.ProgramName != "" &&
		!strings.Contains(strings.ToLower(program.Name), strings.ToLower(criteria.ProgramName)) {
		return false
	}

	// Programs without placement data pass every admission-data filter:
	// absence of data is not a rejection reason.
	data := program.YokData2024
	if data == nil {
		return true
	}

	if len(criteria.ProgramTypes) > 0 &&
		!containsToken(criteria.ProgramTypes, strings.ToLower(data.ProgramType)) {
		return false
	}

	if len(criteria.ScoreTypes) > 0 &&
		!containsToken(criteria.ScoreTypes, strings.ToUpper(data.ScoreType)) {
		return false
	}

	if criteria.hasScoreRange() {
		general := data.Quota.General
		// Only judged when both bounds exist on the program side.
		if general.MinScore != nil && general.MaxScore != nil {
			lo := math.Inf(-1)
			hi := math.Inf(1)
			if criteria.MinScore != nil {
				lo = *criteria.MinScore
			}
			if criteria.MaxScore != nil {
				hi = *criteria.MaxScore
			}
			// Full containment: the program's own score interval must lie
			// entirely inside the requested one.
			if *general.MinScore < lo || *general.MaxScore > hi {
				return false
			}
		}
	}

	if criteria.hasQuotaRange() {
		if total := data.Quota.General.Total; total != nil {
			if criteria.MinQuota != nil && *total < *criteria.MinQuota {
				return false
			}
			if criteria.MaxQuota != nil && *total > *criteria.MaxQuota {
				return false
			}
		}
	}

	return true
}

func filterByCategory(universities []model.University, categories []string) []model.University {
	results := make([]model.University, 0, len(universities))
	for _, university := range universities {
		faculties := make([]model.Faculty, 0, len(university.Faculties))
		for _, faculty := range university.Faculties {
			if matchesAnyCategory(faculty.Name, categories) {
				faculties = append(faculties, faculty)
			}
		}
		if len(faculties) > 0 {
			university.Faculties = faculties
			results = append(results, university)
		}
	}
	return results
}

func containsToken(tokens []string, value string) bool {
	for _, token := range tokens {
		if token == value {
			return true
		}
	}
	return false
}
