package cvs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the parent CV row plus one child row per experience and
// education entry, all in one transaction.
func (r *PGRepo) Create(ctx context.Context, cv CV) error {
	languages, err := json.Marshal(emptyIfNilLanguages(cv.Languages))
	if err != nil {
		return fmt.Errorf("marshal languages: %w", err)
	}
	additional, err := json.Marshal(emptyIfNilStrings(cv.AdditionalInformation))
	if err != nil {
		return fmt.Errorf("marshal additional information: %w", err)
	}
	references, err := json.Marshal(emptyIfNilReferences(cv.References))
	if err != nil {
		return fmt.Errorf("marshal references: %w", err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const insertCV = `
INSERT INTO cvs (
    id,
    user_id,
    first_name,
    last_name,
    role,
    email,
    linkedin,
    location,
    summary,
    place_of_birth,
    nationality,
    phone_number,
    date_of_birth,
    gender,
    skills,
    languages,
    additional_information,
    "references",
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err = tx.ExecContext(
		ctx,
		insertCV,
		cv.ID,
		cv.UserID,
		cv.FirstName,
		cv.LastName,
		cv.Role,
		cv.Email,
		nullIfEmpty(cv.LinkedIn),
		nullIfEmpty(cv.Location),
		nullIfEmpty(cv.Summary),
		nullIfEmpty(cv.PlaceOfBirth),
		nullIfEmpty(cv.Nationality),
		nullIfEmpty(cv.PhoneNumber),
		nullIfEmpty(cv.DateOfBirth),
		nullIfEmpty(cv.Gender),
		nullIfEmpty(strings.Join(cv.Skills, ", ")),
		languages,
		additional,
		references,
		cv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cv: %w", err)
	}

	const insertExperience = `
INSERT INTO experiences (
    id, cv_id, position, company_name, title, company_description, achievements, duties, start_date, end_date, current
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for i, exp := range cv.Experiences {
		_, err = tx.ExecContext(
			ctx,
			insertExperience,
			uuid.NewString(),
			cv.ID,
			i,
			exp.CompanyName,
			exp.Title,
			nullIfEmpty(exp.CompanyDescription),
			nullIfEmpty(exp.Achievements),
			nullIfEmpty(strings.Join(exp.Duties, ", ")),
			nullIfEmpty(exp.StartDate),
			nullIfEmpty(exp.EndDate),
			exp.Current,
		)
		if err != nil {
			return fmt.Errorf("insert experience %d: %w", i, err)
		}
	}

	const insertEducation = `
INSERT INTO educations (
    id, cv_id, position, school, degree, year_of_completion
) VALUES ($1, $2, $3, $4, $5, $6)`

	for i, edu := range cv.Educations {
		_, err = tx.ExecContext(
			ctx,
			insertEducation,
			uuid.NewString(),
			cv.ID,
			i,
			edu.School,
			edu.Degree,
			nullIfEmpty(edu.YearOfCompletion),
		)
		if err != nil {
			return fmt.Errorf("insert education %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// GetLatestByUser returns the most recent CV for a user with its child
// collections loaded in submission order.
func (r *PGRepo) GetLatestByUser(ctx context.Context, userID string) (CV, error) {
	const query = `
SELECT id, user_id, first_name, last_name, role, email, linkedin, location, summary,
       place_of_birth, nationality, phone_number, date_of_birth, gender, skills,
       languages, additional_information, "references", created_at
FROM cvs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`

	var cv CV
	var linkedin, location, summary, placeOfBirth, nationality sql.NullString
	var phoneNumber, dateOfBirth, gender, skills sql.NullString
	var languages, additional, references []byte

	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&cv.ID,
		&cv.UserID,
		&cv.FirstName,
		&cv.LastName,
		&cv.Role,
		&cv.Email,
		&linkedin,
		&location,
		&summary,
		&placeOfBirth,
		&nationality,
		&phoneNumber,
		&dateOfBirth,
		&gender,
		&skills,
		&languages,
		&additional,
		&references,
		&cv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CV{}, ErrNotFound
		}
		return CV{}, err
	}

	cv.LinkedIn = linkedin.String
	cv.Location = location.String
	cv.Summary = summary.String
	cv.PlaceOfBirth = placeOfBirth.String
	cv.Nationality = nationality.String
	cv.PhoneNumber = phoneNumber.String
	cv.DateOfBirth = dateOfBirth.String
	cv.Gender = gender.String
	cv.Skills = SplitList(skills.String)

	if len(languages) > 0 {
		if err := json.Unmarshal(languages, &cv.Languages); err != nil {
			return CV{}, fmt.Errorf("unmarshal languages: %w", err)
		}
	}
	if len(additional) > 0 {
		if err := json.Unmarshal(additional, &cv.AdditionalInformation); err != nil {
			return CV{}, fmt.Errorf("unmarshal additional information: %w", err)
		}
	}
	if len(references) > 0 {
		if err := json.Unmarshal(references, &cv.References); err != nil {
			return CV{}, fmt.Errorf("unmarshal references: %w", err)
		}
	}

	if cv.Experiences, err = r.experiencesFor(ctx, cv.ID); err != nil {
		return CV{}, err
	}
	if cv.Educations, err = r.educationsFor(ctx, cv.ID); err != nil {
		return CV{}, err
	}

	return cv, nil
}

// DeleteByUser removes all CVs for a user; child rows cascade.
func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM cvs WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	deleted, _ := res.RowsAffected()
	return int(deleted), nil
}

func (r *PGRepo) experiencesFor(ctx context.Context, cvID string) ([]Experience, error) {
	const query = `
SELECT company_name, title, company_description, achievements, duties, start_date, end_date, current
FROM experiences
WHERE cv_id = $1
ORDER BY position`

	rows, err := r.DB.QueryContext(ctx, query, cvID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Experience
	for rows.Next() {
		var exp Experience
		var description, achievements, duties, startDate, endDate sql.NullString
		if err := rows.Scan(
			&exp.CompanyName,
			&exp.Title,
			&description,
			&achievements,
			&duties,
			&startDate,
			&endDate,
			&exp.Current,
		); err != nil {
			return nil, err
		}
		exp.CompanyDescription = description.String
		exp.Achievements = achievements.String
		exp.Duties = SplitList(duties.String)
		exp.StartDate = startDate.String
		exp.EndDate = endDate.String
		out = append(out, exp)
	}
	return out, rows.Err()
}

func (r *PGRepo) educationsFor(ctx context.Context, cvID string) ([]Education, error) {
	const query = `
SELECT school, degree, year_of_completion
FROM educations
WHERE cv_id = $1
ORDER BY position`

	rows, err := r.DB.QueryContext(ctx, query, cvID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Education
	for rows.Next() {
		var edu Education
		var year sql.NullString
		if err := rows.Scan(&edu.School, &edu.Degree, &year); err != nil {
			return nil, err
		}
		edu.YearOfCompletion = year.String
		out = append(out, edu)
	}
	return out, rows.Err()
}

func nullIfEmpty(val string) sql.NullString {
	if strings.TrimSpace(val) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: val, Valid: true}
}

func emptyIfNilLanguages(in []Language) []Language {
	if in == nil {
		return []Language{}
	}
	return in
}

func emptyIfNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

func emptyIfNilReferences(in []Reference) []Reference {
	if in == nil {
		return []Reference{}
	}
	return in
}

var _ Repo = (*PGRepo)(nil)
