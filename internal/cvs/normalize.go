package cvs

import (
	"net/url"
	"strings"
)

// Group is the result of normalizing one repeated field group. Malformed marks
// a submission whose parallel arrays disagreed in length; the records are then
// empty so a broken submission never yields partial entries. An untouched form
// section also yields empty records but is not malformed.
type Group[T any] struct {
	Records   []T
	Malformed bool
}

// NormalizeDraft reshapes a raw form submission into a draft CVDocument. The
// second return lists the repeated groups that were dropped as malformed.
func NormalizeDraft(form url.Values) (CVDocument, []string) {
	doc := CVDocument{
		FirstName:             form.Get("first_name"),
		LastName:              form.Get("last_name"),
		Role:                  form.Get("role"),
		Email:                 form.Get("email"),
		LinkedIn:              form.Get("linkedin"),
		Location:              form.Get("location"),
		Summary:               form.Get("summary"),
		PlaceOfBirth:          form.Get("place_of_birth"),
		Nationality:           form.Get("nationality"),
		PhoneNumber:           form.Get("phone_number"),
		DateOfBirth:           form.Get("date_of_birth"),
		Gender:                form.Get("gender"),
		Skills:                SplitList(form.Get("skills")),
		AdditionalInformation: trimAll(fieldValues(form, "additional_information")),
		Languages:             NormalizeLanguages(form),
		References:            NormalizeReferences(form),
	}

	var malformed []string

	experiences := NormalizeExperiences(form)
	doc.Experiences = experiences.Records
	if experiences.Malformed {
		malformed = append(malformed, "experiences")
	}

	educations := NormalizeEducations(form)
	doc.Educations = educations.Records
	if educations.Malformed {
		malformed = append(malformed, "educations")
	}

	return doc, malformed
}

// NormalizeExperiences zips the eight parallel experience arrays positionally.
func NormalizeExperiences(form url.Values) Group[Experience] {
	companies := fieldValues(form, "company_name")
	titles := fieldValues(form, "title")
	descriptions := fieldValues(form, "company_description")
	achievements := fieldValues(form, "achievements")
	duties := fieldValues(form, "duties")
	startDates := fieldValues(form, "start_date")
	endDates := fieldValues(form, "end_date")
	currents := fieldValues(form, "current")

	n := len(companies)
	if len(titles) != n || len(descriptions) != n || len(achievements) != n ||
		len(duties) != n || len(startDates) != n || len(endDates) != n || len(currents) != n {
		return Group[Experience]{Malformed: true}
	}

	records := make([]Experience, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Experience{
			CompanyName:        companies[i],
			Title:              titles[i],
			CompanyDescription: descriptions[i],
			Achievements:       achievements[i],
			Duties:             SplitList(duties[i]),
			StartDate:          startDates[i],
			EndDate:            endDates[i],
			Current:            parseCheckbox(currents[i]),
		})
	}
	return Group[Experience]{Records: records}
}

// NormalizeEducations zips the three parallel education arrays positionally.
func NormalizeEducations(form url.Values) Group[Education] {
	schools := fieldValues(form, "school")
	degrees := fieldValues(form, "degree")
	years := fieldValues(form, "year_of_completion")

	n := len(schools)
	if len(degrees) != n || len(years) != n {
		return Group[Education]{Malformed: true}
	}

	records := make([]Education, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, Education{
			School:           schools[i],
			Degree:           degrees[i],
			YearOfCompletion: years[i],
		})
	}
	return Group[Education]{Records: records}
}

// NormalizeLanguages builds one entry per submitted language name. Level
// arrays shorter than the name array pad with the empty string, which renders
// as the fallback proficiency label.
func NormalizeLanguages(form url.Values) []Language {
	names := fieldValues(form, "language")
	speaking := fieldValues(form, "speaking_level")
	reading := fieldValues(form, "reading_level")
	writing := fieldValues(form, "writing_level")

	var out []Language
	for i, name := range names {
		out = append(out, Language{
			Language:      name,
			SpeakingLevel: valueAt(speaking, i),
			ReadingLevel:  valueAt(reading, i),
			WritingLevel:  valueAt(writing, i),
		})
	}
	return out
}

// NormalizeReferences builds one entry per submitted reference name, padding
// missing positions with the empty string.
func NormalizeReferences(form url.Values) []Reference {
	names := fieldValues(form, "reference_name")
	positions := fieldValues(form, "reference_position")
	phones := fieldValues(form, "reference_phone")

	var out []Reference
	for i, name := range names {
		out = append(out, Reference{
			Name:     name,
			Position: valueAt(positions, i),
			Phone:    valueAt(phones, i),
		})
	}
	return out
}

// fieldValues reads a repeated form field, accepting both bare and
// bracket-suffixed names as browsers submit either.
func fieldValues(form url.Values, name string) []string {
	if vals, ok := form[name]; ok {
		return vals
	}
	return form[name+"[]"]
}

func valueAt(vals []string, i int) string {
	if i < len(vals) {
		return vals[i]
	}
	return ""
}

func parseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func trimAll(vals []string) []string {
	var out []string
	for _, v := range vals {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
