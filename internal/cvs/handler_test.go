package cvs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cv-builder/internal/bootstrap"
	"cv-builder/internal/shared/config"
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	app, err := bootstrap.Build(config.Config{
		Env:          "dev",
		RenderEngine: "html",
		DraftTTL:     time.Hour,
	})
	if err != nil {
		t.Fatalf("bootstrap.Build: %v", err)
	}
	return app.Router
}

func fullForm() url.Values {
	return url.Values{
		"first_name":          {"Ana"},
		"last_name":           {"Silva"},
		"role":                {"Engineer"},
		"email":               {"ana.silva@example.com"},
		"skills":              {"Go, Python, Rust"},
		"company_name":        {"Acme"},
		"title":               {"Engineer"},
		"company_description": {""},
		"achievements":        {""},
		"duties":              {"Backend, Revisão de código"},
		"start_date":          {"2020-01-01"},
		"end_date":            {""},
		"current":             {"1"},
		"school":              {"State U"},
		"degree":              {"BSc"},
		"year_of_completion":  {"2019"},
	}
}

func postForm(router *gin.Engine, path string, form url.Values, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "cv_session" {
			return ck
		}
	}
	t.Fatalf("no cv_session cookie in response")
	return nil
}

func TestPreviewThenDownloadRendersDraft(t *testing.T) {
	router := newTestApp(t)

	rec := postForm(router, "/cv/preview", fullForm(), nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("preview status = %d body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/cv/templates" {
		t.Errorf("preview redirect = %q", loc)
	}
	cookie := sessionCookie(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/cv/download/template1", nil)
	req.AddCookie(cookie)
	dl := httptest.NewRecorder()
	router.ServeHTTP(dl, req)

	if dl.Code != http.StatusOK {
		t.Fatalf("download status = %d body=%s", dl.Code, dl.Body.String())
	}
	if ct := dl.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if cd := dl.Header().Get("Content-Disposition"); !strings.Contains(cd, "cv.html") {
		t.Errorf("content disposition = %q", cd)
	}

	body := dl.Body.String()
	for _, want := range []string{"Engineer - Acme", "BSc - State U", "Ana", "Silva", "Atual"} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
	for _, absent := range []string{"Sem experiência adicionada.", "Sem educação adicionada.", "Sem habilidades adicionadas."} {
		if strings.Contains(body, absent) {
			t.Errorf("rendered output must not contain placeholder %q", absent)
		}
	}
}

func TestDownloadWithoutDraftShowsPlaceholders(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/cv/download/template1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d body=%s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	placeholders := []string{
		"Sem experiência adicionada.",
		"Sem educação adicionada.",
		"Sem idiomas adicionados.",
		"Sem habilidades adicionadas.",
		"Sem informações adicionais.",
		"Sem referências adicionadas.",
	}
	for _, want := range placeholders {
		if !strings.Contains(body, want) {
			t.Errorf("empty CV must show placeholder %q", want)
		}
	}
}

func TestDownloadUnknownTemplate(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/cv/download/template99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Error.Code != "template_not_found" {
		t.Errorf("error code = %q", payload.Error.Code)
	}
}

func TestTemplatesCatalogEndpoint(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/cv/templates", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Templates []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"templates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(payload.Templates) != 20 {
		t.Fatalf("expected 20 templates, got %d", len(payload.Templates))
	}
	if payload.Templates[0].ID != "template1" || payload.Templates[0].Title != "Modelo 1" {
		t.Errorf("first template = %+v", payload.Templates[0])
	}
}

func TestStorePersistsForGuestIdentity(t *testing.T) {
	router := newTestApp(t)

	rec := postForm(router, "/cv/store", fullForm(), func(req *http.Request) {
		req.Header.Set("X-Guest-Id", "g-123")
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("store status = %d body=%s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/cv/templates?saved=1" {
		t.Errorf("store redirect = %q", loc)
	}

	// A fresh session has no draft, so scalars render empty while the list
	// sections come from the persisted CV.
	req := httptest.NewRequest(http.MethodGet, "/cv/download/template1", nil)
	req.Header.Set("X-Guest-Id", "g-123")
	dl := httptest.NewRecorder()
	router.ServeHTTP(dl, req)

	if dl.Code != http.StatusOK {
		t.Fatalf("download status = %d body=%s", dl.Code, dl.Body.String())
	}
	body := dl.Body.String()
	if !strings.Contains(body, "Engineer - Acme") {
		t.Errorf("persisted experience must render")
	}
	if !strings.Contains(body, "BSc - State U") {
		t.Errorf("persisted education must render")
	}
	if strings.Contains(body, "Ana") {
		t.Errorf("scalars must come from the empty draft, not the persisted CV")
	}
}

func TestStoreRejectsInvalidForm(t *testing.T) {
	router := newTestApp(t)

	form := fullForm()
	form.Set("email", "not-an-email")
	rec := postForm(router, "/cv/store", form, func(req *http.Request) {
		req.Header.Set("X-Guest-Id", "g-123")
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Error.Code != "validation_error" {
		t.Errorf("error code = %q", payload.Error.Code)
	}
	if payload.Error.Details["email"] == "" {
		t.Errorf("expected email field error, got %v", payload.Error.Details)
	}
}

func TestStoreRequiresIdentityHeader(t *testing.T) {
	router := newTestApp(t)

	rec := postForm(router, "/cv/store", fullForm(), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestDeleteRemovesPersistedCV(t *testing.T) {
	router := newTestApp(t)

	if rec := postForm(router, "/cv/store", fullForm(), func(req *http.Request) {
		req.Header.Set("X-Guest-Id", "g-123")
	}); rec.Code != http.StatusSeeOther {
		t.Fatalf("store status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/cv", nil)
	req.Header.Set("X-Guest-Id", "g-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d body=%s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Deleted int `json:"deleted"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if payload.Deleted != 1 {
		t.Errorf("deleted = %d", payload.Deleted)
	}

	// After deletion the download falls back to the empty draft.
	dlReq := httptest.NewRequest(http.MethodGet, "/cv/download/template1", nil)
	dlReq.Header.Set("X-Guest-Id", "g-123")
	dl := httptest.NewRecorder()
	router.ServeHTTP(dl, dlReq)
	if dl.Code != http.StatusOK {
		t.Fatalf("download status = %d", dl.Code)
	}
	if !strings.Contains(dl.Body.String(), "Sem experiência adicionada.") {
		t.Errorf("deleted CV must not render")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
