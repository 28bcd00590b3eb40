package cvs

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for CV intake, assembly, and persistence.
type Service struct {
	Repo   Repo
	Drafts *DraftStore
}

// Preview normalizes a form submission and stores the resulting draft in the
// session. Malformed repeated groups degrade to empty rather than failing the
// request; their names are returned so callers can log them.
func (s *Service) Preview(ctx context.Context, sessionID string, form url.Values) (CVDocument, []string, error) {
	if sessionID == "" {
		return CVDocument{}, nil, ErrInvalidInput
	}
	draft, malformed := NormalizeDraft(form)
	if err := s.Drafts.Save(ctx, sessionID, draft); err != nil {
		return CVDocument{}, nil, err
	}
	return draft, malformed, nil
}

// Resolve produces the authoritative CVDocument for a caller. Scalar personal
// fields always come from the session draft. The list sections come from the
// latest persisted CV when the caller has one, else from the draft. The two
// sources are never merged within a section.
//
// The scalar/list split mirrors the behavior this service replaced; see
// DESIGN.md before changing it.
func (s *Service) Resolve(ctx context.Context, userID, sessionID string) (CVDocument, error) {
	doc, err := s.Drafts.Load(ctx, sessionID)
	if err != nil {
		return CVDocument{}, err
	}

	if userID == "" {
		return doc, nil
	}

	cv, err := s.Repo.GetLatestByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return doc, nil
	}
	if err != nil {
		return CVDocument{}, err
	}

	doc.Experiences = cv.Experiences
	doc.Educations = cv.Educations
	doc.Languages = cv.Languages
	doc.AdditionalInformation = cv.AdditionalInformation
	doc.References = cv.References
	return doc, nil
}

// Store validates and persists a CV for the given user. Validation failures
// come back as field errors with nothing persisted.
func (s *Service) Store(ctx context.Context, userID string, form url.Values) (CV, FieldErrors, error) {
	if userID == "" {
		return CV{}, nil, ErrInvalidInput
	}
	if fieldErrs := ValidateStore(form); fieldErrs != nil {
		return CV{}, fieldErrs, nil
	}

	doc, _ := NormalizeDraft(form)

	cv := CV{
		ID:                    uuid.NewString(),
		UserID:                userID,
		FirstName:             doc.FirstName,
		LastName:              doc.LastName,
		Role:                  doc.Role,
		Email:                 doc.Email,
		LinkedIn:              doc.LinkedIn,
		Location:              doc.Location,
		Summary:               doc.Summary,
		PlaceOfBirth:          doc.PlaceOfBirth,
		Nationality:           doc.Nationality,
		PhoneNumber:           doc.PhoneNumber,
		DateOfBirth:           doc.DateOfBirth,
		Gender:                doc.Gender,
		Skills:                doc.Skills,
		Languages:             doc.Languages,
		AdditionalInformation: doc.AdditionalInformation,
		References:            doc.References,
		Experiences:           doc.Experiences,
		Educations:            doc.Educations,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, cv); err != nil {
		return CV{}, nil, err
	}
	return cv, nil, nil
}

// Delete removes every persisted CV owned by the user.
func (s *Service) Delete(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrInvalidInput
	}
	return s.Repo.DeleteByUser(ctx, userID)
}
