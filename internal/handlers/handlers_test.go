package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nvlaw-backend/internal/cache"
	"nvlaw-backend/internal/catalog"
	"nvlaw-backend/internal/config"
	"nvlaw-backend/internal/models"
	"nvlaw-backend/internal/notifications"
	"nvlaw-backend/internal/pages"
	"nvlaw-backend/internal/store"
	"nvlaw-backend/internal/transport"
	"nvlaw-backend/internal/validation"
)

func newTestServer(t *testing.T, st *store.Store) (*Server, http.Handler) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.Load()
	srv := &Server{
		Cfg: &config.Config{
			CacheTTLSeconds: 60,
			Timezone:        time.UTC,
		},
		Store:    st,
		Catalog:  cat,
		Resolver: pages.NewResolver(cat, ""),
		Val:      validation.New(),
		Log:      logger,
		Cache:    cache.NewNoop(),
		Mailer:   notifications.NewLogMailer(logger),
	}

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		api.Post("/contact", srv.SubmitContact)
		api.Post("/appointments", srv.SubmitAppointment)
		api.Get("/blog", srv.ListBlogPosts)
		api.Get("/blog/{slug}", srv.GetBlogPostBySlug)
		api.Get("/content/{family}", srv.GetContentPages)
		api.Get("/content/{family}/{slug}", srv.GetContentPage)
		api.Get("/pages", srv.ResolvePage)
	})
	return srv, r
}

func postJSON(t *testing.T, h http.Handler, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func getPath(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) transport.Response {
	t.Helper()
	var resp transport.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func validContact() map[string]interface{} {
	return map[string]interface{}{
		"firstName": "Maya",
		"lastName":  "Osei",
		"email":     "maya@example.com",
		"subject":   "Work permit question",
		"message":   "I would like to discuss an LMIA-based application.",
	}
}

func TestSubmitContactSuccess(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)
	before := time.Now()

	rec := postJSON(t, h, "/api/contact", validContact())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)

	stored := st.Contacts(context.Background())
	require.Len(t, stored, 1)
	assert.NotEmpty(t, stored[0].ID)
	assert.False(t, stored[0].CreatedAt.Before(before))
	assert.Equal(t, "", stored[0].Phone)
}

func TestSubmitContactMissingEmail(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	body := validContact()
	delete(body, "email")
	rec := postJSON(t, h, "/api/contact", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors)
	var found bool
	for _, fe := range resp.Errors {
		if fe.Field == "email" {
			found = true
		}
	}
	assert.True(t, found, "errors must reference the email field: %+v", resp.Errors)
	assert.Empty(t, st.Contacts(context.Background()), "validation failures never reach the store")
}

func TestSubmitContactMalformedEmail(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	body := validContact()
	body["email"] = "not-an-email"
	rec := postJSON(t, h, "/api/contact", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Empty(t, st.Contacts(context.Background()))
}

func TestSubmitContactShortMessage(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	body := validContact()
	body["message"] = "hi"
	rec := postJSON(t, h, "/api/contact", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "message", resp.Errors[0].Field)
}

func TestSubmitContactRejectsInvalidJSON(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.Contacts(context.Background()))
}

func validAppointment() map[string]interface{} {
	return map[string]interface{}{
		"firstName":     "Jordan",
		"lastName":      "Li",
		"email":         "jordan@example.com",
		"phone":         "+14165550123",
		"practiceArea":  models.PracticeAreaImmigration,
		"preferredDate": "2026-09-15",
		"preferredTime": "10:30",
	}
}

func TestSubmitAppointmentSuccess(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	rec := postJSON(t, h, "/api/appointments", validAppointment())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, decodeEnvelope(t, rec).Success)

	stored := st.Appointments(context.Background())
	require.Len(t, stored, 1)
	assert.Equal(t, "2026-09-15", stored[0].PreferredDate)
	assert.Equal(t, "", stored[0].Description)
}

func TestSubmitAppointmentRequiredFields(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	for _, field := range []string{"phone", "practiceArea", "preferredDate", "preferredTime"} {
		body := validAppointment()
		delete(body, field)
		rec := postJSON(t, h, "/api/appointments", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "missing %s", field)

		resp := decodeEnvelope(t, rec)
		require.NotEmpty(t, resp.Errors, "missing %s", field)
		assert.Equal(t, field, resp.Errors[0].Field)
	}
	assert.Empty(t, st.Appointments(context.Background()))
}

func TestSubmitAppointmentRejectsBadDateShape(t *testing.T) {
	st := store.New()
	_, h := newTestServer(t, st)

	body := validAppointment()
	body["preferredDate"] = "15/09/2026"
	rec := postJSON(t, h, "/api/appointments", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body = validAppointment()
	body["preferredTime"] = "late morning"
	rec = postJSON(t, h, "/api/appointments", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBlogPosts(t *testing.T) {
	st := store.Seeded(time.UTC)
	_, h := newTestServer(t, st)

	rec := getPath(t, h, "/api/blog")
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt), "newest first")
	}
}

func TestGetBlogPostBySlug(t *testing.T) {
	st := store.Seeded(time.UTC)
	_, h := newTestServer(t, st)

	rec := getPath(t, h, "/api/blog/estate-planning-essentials-protecting-family-future")
	require.Equal(t, http.StatusOK, rec.Code)

	var post models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	assert.Equal(t, "Wills & Power of Attorney", post.Category)

	rec = getPath(t, h, "/api/blog/does-not-exist")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetContentPages(t *testing.T) {
	_, h := newTestServer(t, store.New())

	rec := getPath(t, h, "/api/content/work-permits")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []catalog.ContentPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.NotEmpty(t, items)

	rec = getPath(t, h, "/api/content/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetContentPage(t *testing.T) {
	_, h := newTestServer(t, store.New())

	rec := getPath(t, h, "/api/content/work-permits/lmia")
	require.Equal(t, http.StatusOK, rec.Code)
	var page catalog.ContentPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "lmia", page.Slug)

	rec = getPath(t, h, "/api/content/work-permits/nonexistent-slug")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolvePageEndpoint(t *testing.T) {
	_, h := newTestServer(t, store.New())

	rec := getPath(t, h, "/api/pages?path=/work-permits/lmia")
	require.Equal(t, http.StatusOK, rec.Code)
	var res pages.Resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, pages.KindContent, res.Kind)
	require.NotNil(t, res.Page)
	assert.Equal(t, "lmia", res.Page.Slug)

	rec = getPath(t, h, "/api/pages?path=/work-permits/nonexistent-slug")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, pages.KindNotFound, res.Kind)
	assert.Equal(t, pages.HubPath, res.HubLink)

	rec = getPath(t, h, "/api/pages?path=/work-permits")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, pages.KindRedirect, res.Kind)

	rec = getPath(t, h, "/api/pages")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
