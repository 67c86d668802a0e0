package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nsodat/vitrina/internal/content"
	"github.com/nsodat/vitrina/internal/render"
	"github.com/nsodat/vitrina/internal/sse"
	"github.com/nsodat/vitrina/internal/testutil"
)

// fakePublisher records publish calls instead of running git.
type fakePublisher struct {
	messages []string
	err      error
}

func (f *fakePublisher) Publish(_ context.Context, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.messages = append(f.messages, message)
	return "pushed", nil
}

var testSite = render.Site{Title: "Студенческое портфолио", Owner: "NSODAT", Description: "Портфолио"}

// testEnv sets up a seeded content dir, service, and router for testing.
// authToken="" means auth disabled; non-empty means token mode.
func testEnv(t *testing.T, authToken string) (*Service, http.Handler) {
	t.Helper()
	svc, router, _ := testEnvFull(t, authToken, &fakePublisher{})
	return svc, router
}

func testEnvFull(t *testing.T, authToken string, pub Publisher) (*Service, http.Handler, *content.Holder) {
	t.Helper()

	dir := t.TempDir()
	store, err := content.NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := content.EnsureDefaults(store); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}

	holder := content.NewHolder(store, testutil.Logger())
	holder.Refresh(context.Background())

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	svc := NewService(store, holder, renderer, nil, pub, testSite)
	router := NewRouter(svc, authToken != "", authToken, nil, t.TempDir())
	return svc, router, holder
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPageServesInteractionContract(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("page status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	for _, id := range []string{"educationModules", "thesisContent", "courseworksList", "practicalsList", "navbar", "navToggle", "navMenu", "backToTop"} {
		if !strings.Contains(body, `id="`+id+`"`) {
			t.Errorf("page missing id %q", id)
		}
	}
	if !strings.Contains(body, "Модуль 1") {
		t.Error("page missing seeded module content")
	}
}

func TestAssets(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/assets/style.css")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style.css: status = %d, type = %q", w.Code, w.Header().Get("Content-Type"))
	}

	w = get(t, router, "/assets/app.js")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/javascript") {
		t.Errorf("app.js: status = %d, type = %q", w.Code, w.Header().Get("Content-Type"))
	}

	w = get(t, router, "/assets/nope.txt")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown asset status = %d, want 404", w.Code)
	}
}

func TestDataFileWithETag(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/data/education_modules.json")
	if w.Code != http.StatusOK {
		t.Fatalf("data file status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("no ETag on data file response")
	}

	var doc []content.Module
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("data file is not a module array: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/data/education_modules.json", nil)
	req.Header.Set("If-None-Match", etag)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional get status = %d, want 304", w.Code)
	}
}

func TestDataFile_NotFound(t *testing.T) {
	_, router := testEnv(t, "")

	if w := get(t, router, "/data/unknown.json"); w.Code != http.StatusNotFound {
		t.Errorf("unknown data file status = %d, want 404", w.Code)
	}
}

func TestListSections(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/api/sections")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var resp SectionListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(resp.Sections))
	}
	for _, info := range resp.Sections {
		if info.Checksum == "" {
			t.Errorf("section %s has no checksum", info.Section)
		}
		if info.Empty {
			t.Errorf("seeded section %s reported empty", info.Section)
		}
	}
}

func TestGetSection(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/api/sections/thesis")
	if w.Code != http.StatusOK {
		t.Fatalf("get section status = %d, body = %s", w.Code, w.Body.String())
	}
	var payload SectionPayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Section != "thesis" || payload.Checksum == "" {
		t.Errorf("payload = %+v", payload)
	}

	if w := get(t, router, "/api/sections/bogus"); w.Code != http.StatusNotFound {
		t.Errorf("unknown section status = %d, want 404", w.Code)
	}
}

func TestUpdateSectionRoundTrip(t *testing.T) {
	_, router := testEnv(t, "")

	doc := content.Thesis{Title: "Новая тема", Topic: "Графы", Description: "Описание"}
	body, _ := json.Marshal(doc)
	req := httptest.NewRequest(http.MethodPut, "/api/sections/thesis", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	// The page reflects the new document immediately.
	if w := get(t, router, "/"); !strings.Contains(w.Body.String(), "Новая тема") {
		t.Error("page does not reflect updated thesis")
	}

	// So does the well-known data path.
	w = get(t, router, "/data/thesis.json")
	var got content.Thesis
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Title != "Новая тема" {
		t.Errorf("thesis title = %q", got.Title)
	}
}

func TestUpdateWithOptimisticLocking(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/api/sections/courseworks")
	var payload SectionPayload
	_ = json.Unmarshal(w.Body.Bytes(), &payload)

	doc := []content.Coursework{{ID: 1, Title: "Курсовая v2", Semester: "Семестр 4"}}
	body, _ := json.Marshal(doc)

	// Update with correct checksum.
	req := httptest.NewRequest(http.MethodPut, "/api/sections/courseworks", bytes.NewReader(body))
	req.Header.Set("If-Match", payload.Checksum)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update with correct checksum = %d, body = %s", w.Code, w.Body.String())
	}

	// Update with stale checksum → 409.
	req = httptest.NewRequest(http.MethodPut, "/api/sections/courseworks", bytes.NewReader(body))
	req.Header.Set("If-Match", payload.Checksum) // stale now
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("update with stale checksum = %d, want 409", w.Code)
	}
}

func TestUpdateWithoutIfMatch(t *testing.T) {
	_, router := testEnv(t, "")

	doc := []content.Practical{{ID: 1, Title: "Практика v2", Semester: "Семестр 2"}}
	body, _ := json.Marshal(doc)
	req := httptest.NewRequest(http.MethodPut, "/api/sections/practicals", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("update without If-Match = %d, want 200", w.Code)
	}
}

func TestUpdateSection_InvalidBody(t *testing.T) {
	_, router := testEnv(t, "")

	// An object where an array is required.
	req := httptest.NewRequest(http.MethodPut, "/api/sections/modules", strings.NewReader(`{"title":"x"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("object body for array section = %d, want 400", w.Code)
	}

	// Malformed JSON.
	req = httptest.NewRequest(http.MethodPut, "/api/sections/modules", strings.NewReader(`{broken`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", w.Code)
	}
}

func TestUpdateSection_UnknownSection(t *testing.T) {
	_, router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodPut, "/api/sections/bogus", strings.NewReader(`[]`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown section update = %d, want 404", w.Code)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	body, _ := json.Marshal(content.Thesis{Title: "t", Topic: "x", Description: "d"})
	req := httptest.NewRequest(http.MethodPut, "/api/sections/thesis", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer secret123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("authed update = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	req := httptest.NewRequest(http.MethodPut, "/api/sections/thesis", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing token = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_WrongToken(t *testing.T) {
	_, router := testEnv(t, "secret123")

	req := httptest.NewRequest(http.MethodPost, "/api/publish", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token = %d, want 401", w.Code)
	}
}

func TestAuthLeavesReadsOpen(t *testing.T) {
	_, router := testEnv(t, "secret123")

	// Reads and the page stay public even in token mode.
	for _, path := range []string{"/", "/api/sections", "/api/stats", "/data/thesis.json", "/fragments/modules"} {
		if w := get(t, router, path); w.Code == http.StatusUnauthorized {
			t.Errorf("GET %s = 401, want public", path)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/api/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	var stats content.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatal(err)
	}
	if stats.Modules != 1 || stats.Semesters != 1 || stats.Labs != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Courseworks != 1 || stats.Practicals != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestSectionFragment(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/fragments/modules")
	if w.Code != http.StatusOK {
		t.Fatalf("fragment status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "module-card") {
		t.Error("modules fragment missing cards")
	}

	if w := get(t, router, "/fragments/bogus"); w.Code != http.StatusNotFound {
		t.Errorf("unknown fragment status = %d, want 404", w.Code)
	}
}

func TestSectionFragment_EmptyAnswers204(t *testing.T) {
	_, router := testEnv(t, "")

	// Blank the thesis, then fetch its fragment.
	req := httptest.NewRequest(http.MethodPut, "/api/sections/thesis", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("blanking thesis = %d", w.Code)
	}

	if w := get(t, router, "/fragments/thesis"); w.Code != http.StatusNoContent {
		t.Errorf("empty fragment status = %d, want 204", w.Code)
	}
}

func TestModuleFragment(t *testing.T) {
	_, router := testEnv(t, "")

	w := get(t, router, "/fragments/modules/0?state=expanded")
	if w.Code != http.StatusOK {
		t.Fatalf("module fragment status = %d, body = %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "rotate(180deg)") || strings.Contains(body, " hidden") {
		t.Error("expanded card not rendered expanded")
	}

	w = get(t, router, "/fragments/modules/0")
	if !strings.Contains(w.Body.String(), "rotate(0deg)") {
		t.Error("default card not rendered collapsed")
	}

	if w := get(t, router, "/fragments/modules/99"); w.Code != http.StatusNotFound {
		t.Errorf("out of range index = %d, want 404", w.Code)
	}
	if w := get(t, router, "/fragments/modules/abc"); w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric index = %d, want 400", w.Code)
	}
}

func TestPublish(t *testing.T) {
	pub := &fakePublisher{}
	_, router, _ := testEnvFull(t, "", pub)

	req := httptest.NewRequest(http.MethodPost, "/api/publish", strings.NewReader(`{"message":"Обновление"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("publish status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp PublishResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Output != "pushed" {
		t.Errorf("output = %q", resp.Output)
	}
	if len(pub.messages) != 1 || pub.messages[0] != "Обновление" {
		t.Errorf("messages = %v", pub.messages)
	}
}

func TestPublish_EmptyBody(t *testing.T) {
	pub := &fakePublisher{}
	_, router, _ := testEnvFull(t, "", pub)

	req := httptest.NewRequest(http.MethodPost, "/api/publish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("publish with no body = %d", w.Code)
	}
	if len(pub.messages) != 1 {
		t.Fatalf("messages = %v", pub.messages)
	}
}

func TestPublish_NotConfigured(t *testing.T) {
	_, router, _ := testEnvFull(t, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/publish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("publish without publisher = %d, want 503", w.Code)
	}
}

func TestServeImage(t *testing.T) {
	imagesDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(imagesDir, "preview.png"), []byte("fake-png-data"), 0o644); err != nil {
		t.Fatal(err)
	}

	ih := NewImageHandler(imagesDir)
	r := chi.NewRouter()
	r.Get("/images/{filename}", ih.ServeFile)

	req := httptest.NewRequest(http.MethodGet, "/images/preview.png", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("serve image = %d", w.Code)
	}
	if w.Body.String() != "fake-png-data" {
		t.Error("content mismatch")
	}

	req = httptest.NewRequest(http.MethodGet, "/images/nope.png", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing image = %d, want 404", w.Code)
	}
}

func TestServeImage_TraversalBlocked(t *testing.T) {
	ih := NewImageHandler(t.TempDir())
	r := chi.NewRouter()
	r.Get("/images/{filename}", ih.ServeFile)

	for _, name := range []string{"../thesis.json", "../../etc/passwd"} {
		req := httptest.NewRequest(http.MethodGet, "/images/"+name, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		// chi may not route the traversal paths at all (404), or the handler rejects (400).
		if w.Code == http.StatusOK {
			t.Errorf("traversal %q should not return 200", name)
		}
	}
}

func TestEventsRouteMounted(t *testing.T) {
	dir := t.TempDir()
	store, err := content.NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := content.EnsureDefaults(store); err != nil {
		t.Fatal(err)
	}
	holder := content.NewHolder(store, testutil.Logger())
	holder.Refresh(context.Background())
	renderer, err := render.New()
	if err != nil {
		t.Fatal(err)
	}

	broker := sse.NewBroker(time.Second)
	defer broker.Close()

	svc := NewService(store, holder, renderer, broker, nil, testSite)
	router := NewRouter(svc, false, "", broker, t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("events status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("events Content-Type = %q", ct)
	}
}
