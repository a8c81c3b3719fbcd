package model

// QuotaDetails holds admission statistics for a single quota category.
// A nil Total means the category does not apply to the program and the
// block must be skipped during aggregation and display.
type QuotaDetails struct {
	Total    *int     `json:"total"`
	Placed   *int     `json:"placed"`
	MinScore *float64 `json:"minScore"`
	MaxScore *float64 `json:"maxScore"`
}

// Quota groups the five YÖK admission quota categories of a program.
type Quota struct {
	General     QuotaDetails `json:"general"`
	SchoolFirst QuotaDetails `json:"schoolFirst"`
	Earthquake  QuotaDetails `json:"earthquake"`
	WomenOver34 QuotaDetails `json:"womenOver34"`
	Veteran     QuotaDetails `json:"veteran"`
}

// YokData2024 carries the 2024 YÖK placement data of a program.
type YokData2024 struct {
	ProgramCode string `json:"programCode"`
	ScoreType   string `json:"scoreType"`   // e.g. SAY, EA, SÖZ, DİL
	ProgramType string `json:"programType"` // "lisans" or associate ("önlisans")
	Quota       Quota  `json:"quota"`
}

// Program represents an academic program. YokData2024 is nil for programs
// the source dataset has no placement data for; that is a common, valid state.
type Program struct {
	Name        string       `json:"name"`
	YokData2024 *YokData2024 `json:"yokData2024,omitempty"`
}

// Faculty represents a faculty of a university. The ID is unique only
// within the owning university.
type Faculty struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Programs []Program `json:"programs"`
}

// University represents a Turkish university with its faculties.
type University struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // free text, contains "Devlet" or "Vakıf"
	City      string    `json:"city"`
	Website   string    `json:"website"`
	Address   string    `json:"address"`
	Logo      string    `json:"logo"`
	Faculties []Faculty `json:"faculties"`
}

// ProgramCount returns the number of programs across all faculties.
func (u University) ProgramCount() int {
	count := 0
	for _, faculty := range u.Faculties {
		count += len(faculty.Programs)
	}
	return count
}
