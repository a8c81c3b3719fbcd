package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Query carries the raw advanced-search query parameters as received on the
// wire. Numeric bounds stay strings here so that an explicit "0" is
// distinguishable from an absent parameter.
type Query struct {
	UniversityTypes   string `query:"universityTypes"`
	Cities            string `query:"cities"`
	ProgramTypes      string `query:"programTypes"`
	ScoreTypes        string `query:"scoreTypes"`
	FacultyCategories string `query:"facultyCategories"`
	MinScore          string `query:"minScore"`
	MaxScore          string `query:"maxScore"`
	MinQuota          string `query:"minQuota"`
	MaxQuota          string `query:"maxQuota"`
	ProgramName       string `query:"programName"`
	SortBy            string `query:"sortBy"`
	SortOrder         string `query:"sortOrder"`
}

// Criteria is the normalized, typed form of a Query. It lives for a single
// request: built from the parameters, fed through Filter and Sort, discarded.
type Criteria struct {
	UniversityTypes   []string // lower-cased tokens
	Cities            []string // lower-cased tokens
	ProgramTypes      []string // lower-cased tokens
	ScoreTypes        []string // upper-cased tokens
	FacultyCategories []string // lower-cased category ids
	MinScore          *float64
	MaxScore          *float64
	MinQuota          *int
	MaxQuota          *int
	ProgramName       string
	SortBy            string
	SortOrder         string

	raw Query
}

// InvalidParamError reports a query parameter that failed to parse.
type InvalidParamError struct {
	Parameter string
	Message   string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Parameter, e.Message)
}

// ParseQuery normalizes a raw Query into Criteria. List parameters are
// comma-split, trimmed and case-normalized; numeric bounds must parse or the
// whole request is rejected.
func ParseQuery(q Query) (Criteria, error) {
	criteria := Criteria{
		UniversityTypes:   lowerAll(splitList(q.UniversityTypes)),
		Cities:            lowerAll(splitList(q.Cities)),
		ProgramTypes:      lowerAll(splitList(q.ProgramTypes)),
		ScoreTypes:        upperAll(splitList(q.ScoreTypes)),
		FacultyCategories: lowerAll(splitList(q.FacultyCategories)),
		ProgramName:       strings.TrimSpace(q.ProgramName),
		SortBy:            strings.TrimSpace(q.SortBy),
		SortOrder:         normalizeOrder(q.SortOrder),
		raw:               q,
	}

	var err error
	if criteria.MinScore, err = parseFloatParam(q.MinScore, "minScore"); err != nil {
		return Criteria{}, err
	}
	if criteria.MaxScore, err = parseFloatParam(q.MaxScore, "maxScore"); err != nil {
		return Criteria{}, err
	}
	if criteria.MinQuota, err = parseIntParam(q.MinQuota, "minQuota"); err != nil {
		return Criteria{}, err
	}
	if criteria.MaxQuota, err = parseIntParam(q.MaxQuota, "maxQuota"); err != nil {
		return Criteria{}, err
	}

	return criteria, nil
}

// hasScoreRange reports whether at least one score bound was supplied.
func (c Criteria) hasScoreRange() bool {
	return c.MinScore != nil || c.MaxScore != nil
}

// hasQuotaRange reports whether at least one quota bound was supplied.
func (c Criteria) hasQuotaRange() bool {
	return c.MinQuota != nil || c.MaxQuota != nil
}

func normalizeOrder(order string) string {
	if strings.TrimSpace(strings.ToLower(order)) == "desc" {
		return "desc"
	}
	return "asc"
}

func parseFloatParam(raw, name string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &InvalidParamError{Parameter: name, Message: "must be a number"}
	}
	return &value, nil
}

func parseIntParam(raw, name string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &InvalidParamError{Parameter: name, Message: "must be an integer"}
	}
	return &value, nil
}

func lowerAll(tokens []string) []string {
	for i, token := range tokens {
		tokens[i] = strings.ToLower(token)
	}
	return tokens
}

func upperAll(tokens []string) []string {
	for i, token := range tokens {
		tokens[i] = strings.ToUpper(token)
	}
	return tokens
}
