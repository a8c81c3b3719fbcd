package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yok-atlas/uni-api/model"
)

// Sort keys supported by the advanced search.
const (
	SortByName         = "name"
	SortByCity         = "city"
	SortByProgramCount = "programCount"
	SortByFacultyCount = "facultyCount"
	SortByScore        = "score"
)

// Sort orders universities by the given key and direction. The sort is
// stable; an unknown or empty key preserves the input order. String keys
// compare under Turkish collation, numeric keys are derived from the
// current (already filtered) faculty and program lists.
func Sort(universities []model.University, sortBy, sortOrder string) []model.University {
	desc := sortOrder == "desc"

	switch sortBy {
	case SortByName:
		sortByString(universities, desc, func(u model.University) string { return u.Name })
	case SortByCity:
		sortByString(universities, desc, func(u model.University) string { return u.City })
	case SortByProgramCount:
		sortByNumber(universities, desc, func(u model.University) float64 {
			return float64(u.ProgramCount())
		})
	case SortByFacultyCount:
		sortByNumber(universities, desc, func(u model.University) float64 {
			return float64(len(u.Faculties))
		})
	case SortByScore:
		sortByNumber(universities, desc, averageMinScore)
	}

	return universities
}

func sortByString(universities []model.University, desc bool, key func(model.University) string) {
	collator := collate.New(language.Turkish)
	sort.SliceStable(universities, func(i, j int) bool {
		cmp := collator.CompareString(key(universities[i]), key(universities[j]))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func sortByNumber(universities []model.University, desc bool, key func(model.University) float64) {
	sort.SliceStable(universities, func(i, j int) bool {
		a, b := key(universities[i]), key(universities[j])
		if desc {
			return a > b
		}
		return a < b
	})
}

// averageMinScore derives the mean general-quota MinScore across all
// programs of the university that carry one. A university with no such
// program gets 0, which sorts as the lowest score in either direction.
func averageMinScore(u model.University) float64 {
	sum := 0.0
	count := 0
	for _, faculty := range u.Faculties {
		for _, program := range faculty.Programs {
			if program.YokData2024 == nil {
				continue
			}
			if score := program.YokData2024.Quota.General.MinScore; score != nil {
				sum += *score
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
