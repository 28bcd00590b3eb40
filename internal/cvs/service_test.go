package cvs

import (
	"context"
	"net/url"
	"reflect"
	"testing"
	"time"

	"cv-builder/internal/shared/session"
)

func newTestService() *Service {
	return &Service{
		Repo:   NewMemoryRepo(),
		Drafts: NewDraftStore(session.NewMemoryStore(time.Hour)),
	}
}

func previewForm() url.Values {
	return url.Values{
		"first_name":          {"Ana"},
		"last_name":           {"Silva"},
		"role":                {"Engineer"},
		"email":               {"ana.silva@example.com"},
		"skills":              {"Go, Python , Rust"},
		"company_name":        {"Acme"},
		"title":               {"Engineer"},
		"company_description": {""},
		"achievements":        {""},
		"duties":              {""},
		"start_date":          {"2020-01-01"},
		"end_date":            {""},
		"current":             {"1"},
		"school":              {"State U"},
		"degree":              {"BSc"},
		"year_of_completion":  {"2019"},
	}
}

func TestPreviewStoresDraft(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, malformed, err := svc.Preview(ctx, "sess-1", previewForm())
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(malformed) != 0 {
		t.Fatalf("unexpected malformed groups: %v", malformed)
	}

	draft, err := svc.Drafts.Load(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if draft.FirstName != "Ana" {
		t.Errorf("draft scalar lost: %q", draft.FirstName)
	}
	if want := []string{"Go", "Python", "Rust"}; !reflect.DeepEqual(draft.Skills, want) {
		t.Errorf("skills: got %v want %v", draft.Skills, want)
	}
	if len(draft.Experiences) != 1 || draft.Experiences[0].CompanyName != "Acme" {
		t.Errorf("experiences not normalized: %+v", draft.Experiences)
	}
}

func TestPreviewRequiresSession(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Preview(context.Background(), "", previewForm()); err == nil {
		t.Fatalf("expected error for empty session")
	}
}

func TestResolveDraftOnlyPath(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Preview(ctx, "sess-1", previewForm()); err != nil {
		t.Fatalf("Preview: %v", err)
	}

	doc, err := svc.Resolve(ctx, "", "sess-1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.FirstName != "Ana" || len(doc.Experiences) != 1 {
		t.Errorf("draft-only resolve wrong: %+v", doc)
	}
}

func TestResolveEmptyDefaultsWithoutDraft(t *testing.T) {
	svc := newTestService()

	doc, err := svc.Resolve(context.Background(), "", "sess-unknown")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if doc.FirstName != "" || len(doc.Experiences) != 0 || len(doc.Educations) != 0 {
		t.Errorf("expected empty defaults, got %+v", doc)
	}
}

// Scalar fields come from the session draft even when a persisted CV exists;
// only the list sections switch to the persisted record.
func TestResolveScalarListSourceSplit(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	storeForm := previewForm()
	if _, fieldErrs, err := svc.Store(ctx, "user-1", storeForm); err != nil || fieldErrs != nil {
		t.Fatalf("Store: err=%v fieldErrs=%v", err, fieldErrs)
	}

	draftForm := url.Values{
		"first_name":         {"Beatriz"},
		"role":               {"Designer"},
		"school":             {"Other School"},
		"degree":             {"Diploma"},
		"year_of_completion": {"2022"},
	}
	if _, _, err := svc.Preview(ctx, "sess-1", draftForm); err != nil {
		t.Fatalf("Preview: %v", err)
	}

	doc, err := svc.Resolve(ctx, "user-1", "sess-1")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if doc.FirstName != "Beatriz" || doc.Role != "Designer" {
		t.Errorf("scalars must come from the draft: %+v", doc)
	}
	if len(doc.Educations) != 1 || doc.Educations[0].School != "State U" {
		t.Errorf("lists must come from the persisted CV: %+v", doc.Educations)
	}
	if len(doc.Experiences) != 1 || doc.Experiences[0].CompanyName != "Acme" {
		t.Errorf("experiences must come from the persisted CV: %+v", doc.Experiences)
	}
}

func TestStoreRoundTripListSections(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	form := previewForm()
	form["language"] = []string{"Português"}
	form["speaking_level"] = []string{"fluent"}
	form["reading_level"] = []string{"good"}
	form["writing_level"] = []string{"basic"}
	form["reference_name"] = []string{"João Santos"}
	form["reference_position"] = []string{"CTO"}
	form["reference_phone"] = []string{"+244 911 111 111"}
	form["additional_information"] = []string{"Carta de condução"}

	cv, fieldErrs, err := svc.Store(ctx, "user-1", form)
	if err != nil || fieldErrs != nil {
		t.Fatalf("Store: err=%v fieldErrs=%v", err, fieldErrs)
	}
	if cv.ID == "" {
		t.Fatalf("expected generated CV ID")
	}

	got, err := svc.Repo.GetLatestByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetLatestByUser: %v", err)
	}
	if len(got.Experiences) != 1 || got.Experiences[0].Title != "Engineer" {
		t.Errorf("experiences round trip failed: %+v", got.Experiences)
	}
	if len(got.Languages) != 1 || got.Languages[0].ReadingLevel != "good" {
		t.Errorf("languages round trip failed: %+v", got.Languages)
	}
	if len(got.References) != 1 || got.References[0].Name != "João Santos" {
		t.Errorf("references round trip failed: %+v", got.References)
	}
	if !reflect.DeepEqual(got.AdditionalInformation, []string{"Carta de condução"}) {
		t.Errorf("additional information round trip failed: %+v", got.AdditionalInformation)
	}
}

func TestStoreValidationFailurePersistsNothing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	form := previewForm()
	form.Del("email")

	_, fieldErrs, err := svc.Store(ctx, "user-1", form)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if fieldErrs == nil || fieldErrs["email"] == "" {
		t.Fatalf("expected email field error, got %v", fieldErrs)
	}

	if _, err := svc.Repo.GetLatestByUser(ctx, "user-1"); err != ErrNotFound {
		t.Fatalf("nothing must be persisted on validation failure, got err=%v", err)
	}
}

func TestStoreRequiresIdentity(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Store(context.Background(), "", previewForm()); err == nil {
		t.Fatalf("expected error for missing identity")
	}
}

func TestDeleteRemovesAllForUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Store(ctx, "user-1", previewForm()); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if _, _, err := svc.Store(ctx, "user-1", previewForm()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	deleted, err := svc.Delete(ctx, "user-1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}
	if _, err := svc.Repo.GetLatestByUser(ctx, "user-1"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
