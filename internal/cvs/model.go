package cvs

import (
	"strings"
	"time"
)

// Language proficiency levels accepted on intake. Anything else renders as the
// fallback label.
const (
	LevelBasic  = "basic"
	LevelGood   = "good"
	LevelFluent = "fluent"
)

// Experience is one employment entry.
type Experience struct {
	CompanyName        string   `json:"company_name"`
	Title              string   `json:"title"`
	CompanyDescription string   `json:"company_description,omitempty"`
	Achievements       string   `json:"achievements,omitempty"`
	Duties             []string `json:"duties,omitempty"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date,omitempty"`
	Current            bool     `json:"current"`
}

// Education is one education entry.
type Education struct {
	School           string `json:"school"`
	Degree           string `json:"degree"`
	YearOfCompletion string `json:"year_of_completion"`
}

// Language is one language proficiency entry.
type Language struct {
	Language      string `json:"language"`
	SpeakingLevel string `json:"speaking_level"`
	ReadingLevel  string `json:"reading_level"`
	WritingLevel  string `json:"writing_level"`
}

// Reference is one personal reference entry.
type Reference struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

// CVDocument is the canonical in-memory CV handed to rendering. The same shape
// serves as the session draft. Skills and duties are always pre-split slices;
// splitting happens once at the form boundary.
type CVDocument struct {
	FirstName             string       `json:"first_name"`
	LastName              string       `json:"last_name"`
	Role                  string       `json:"role"`
	Email                 string       `json:"email"`
	LinkedIn              string       `json:"linkedin"`
	Location              string       `json:"location"`
	Summary               string       `json:"summary"`
	PlaceOfBirth          string       `json:"place_of_birth"`
	Nationality           string       `json:"nationality"`
	PhoneNumber           string       `json:"phone_number"`
	DateOfBirth           string       `json:"date_of_birth"`
	Gender                string       `json:"gender"`
	Skills                []string     `json:"skills"`
	Experiences           []Experience `json:"experiences"`
	Educations            []Education  `json:"educations"`
	Languages             []Language   `json:"languages"`
	AdditionalInformation []string     `json:"additional_information"`
	References            []Reference  `json:"references"`
}

// CV is the persisted record owned by a user. Experiences and educations live
// in child tables; the remaining collections are structured columns on the
// parent row.
type CV struct {
	ID                    string
	UserID                string
	FirstName             string
	LastName              string
	Role                  string
	Email                 string
	LinkedIn              string
	Location              string
	Summary               string
	PlaceOfBirth          string
	Nationality           string
	PhoneNumber           string
	DateOfBirth           string
	Gender                string
	Skills                []string
	Languages             []Language
	AdditionalInformation []string
	References            []Reference
	Experiences           []Experience
	Educations            []Education
	CreatedAt             time.Time
}

// SplitList splits a comma-separated string into trimmed elements, dropping
// empty ones. Already-empty input yields nil.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
