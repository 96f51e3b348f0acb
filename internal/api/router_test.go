package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contaspro-backend/internal/domain"
	"contaspro-backend/internal/service"
	"contaspro-backend/internal/store"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubExtractor struct {
	fields *domain.BillFields
	err    error
}

func (e *stubExtractor) ExtractBillFields(_ context.Context, _ []byte, _ string) (*domain.BillFields, error) {
	return e.fields, e.err
}

type stubAssistant struct {
	answer string
	err    error
}

func (a *stubAssistant) AnswerFinancialQuery(_ context.Context, _ string, _ []domain.Bill) (string, error) {
	return a.answer, a.err
}

type fixture struct {
	router http.Handler
	store  store.Store
}

func newFixture(t *testing.T, extractor service.Extractor, assistant service.Assistant) *fixture {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	users := service.NewUserService(st)
	require.NoError(t, users.EnsureSeeded(context.Background()))
	bills := service.NewBillService(st, users)

	router := NewRouter(Deps{
		Store:     st,
		Bills:     bills,
		Users:     users,
		Intake:    service.NewIntakeService(extractor, bills),
		Assistant: service.NewAssistantService(assistant, bills),
	})
	return &fixture{router: router, store: st}
}

func (f *fixture) do(t *testing.T, method, path string, body []byte, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthz(t *testing.T) {
	f := newFixture(t, &stubExtractor{}, &stubAssistant{})
	rec := f.do(t, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBillEndpoints(t *testing.T) {
	f := newFixture(t, &stubExtractor{}, &stubAssistant{})

	payload := []byte(`{"beneficiary":"Celesc","amount":412.77,"dueDate":"2025-04-05","category":"Energy","companyId":"schroder"}`)
	rec := f.do(t, http.MethodPost, "/api/v1/bills", payload, "1")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Bill
	dataField(t, rec, &created)
	assert.Equal(t, domain.BillStatusPending, created.Status)

	t.Run("Validation failure is a 400", func(t *testing.T) {
		bad := []byte(`{"beneficiary":"","amount":-1,"dueDate":"05/04/2025","companyId":"schroder"}`)
		rec := f.do(t, http.MethodPost, "/api/v1/bills", bad, "1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Visibility follows the acting user", func(t *testing.T) {
		// Johnnii (user 3) cannot see schroder
		rec := f.do(t, http.MethodGet, "/api/v1/bills", nil, "3")
		require.Equal(t, http.StatusOK, rec.Code)
		var bills []domain.Bill
		dataField(t, rec, &bills)
		assert.Empty(t, bills)

		rec = f.do(t, http.MethodGet, "/api/v1/bills", nil, "1")
		dataField(t, rec, &bills)
		assert.Len(t, bills, 1)
	})

	t.Run("Pay transitions and stays paid", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/bills/%s/pay", created.ID), nil, "1")
		require.Equal(t, http.StatusOK, rec.Code)
		var paid domain.Bill
		dataField(t, rec, &paid)
		assert.Equal(t, domain.BillStatusPaid, paid.Status)

		rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/bills/%s/pay", created.ID), nil, "1")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Pay unknown bill is a 404", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/bills/nope/pay", nil, "1")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Wipe clears bills only", func(t *testing.T) {
		require.NoError(t, f.store.MarkNotificationSent("x"))
		rec := f.do(t, http.MethodDelete, "/api/v1/bills", nil, "1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, f.store.Bills())
		assert.NotEmpty(t, f.store.Users())
		assert.Equal(t, []string{"x"}, f.store.SentNotifications())
	})
}

func TestUserEndpoints(t *testing.T) {
	f := newFixture(t, &stubExtractor{}, &stubAssistant{})

	t.Run("Current defaults to the seeded admin", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/users/current", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var user domain.User
		dataField(t, rec, &user)
		assert.Equal(t, domain.UserRoleAdmin, user.Role)
	})

	t.Run("Admin updates another user's units", func(t *testing.T) {
		body := []byte(`{"accessibleUnits":["corupa"]}`)
		rec := f.do(t, http.MethodPut, "/api/v1/users/2/units", body, "1")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var user domain.User
		dataField(t, rec, &user)
		assert.Equal(t, []string{"corupa"}, user.AccessibleUnits)
	})

	t.Run("Non-admin is forbidden", func(t *testing.T) {
		body := []byte(`{"accessibleUnits":["corupa","jaragua"]}`)
		rec := f.do(t, http.MethodPut, "/api/v1/users/3/units", body, "2")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestBackupEndpoints(t *testing.T) {
	f := newFixture(t, &stubExtractor{}, &stubAssistant{})

	payload := []byte(`{"beneficiary":"Samae","amount":80,"dueDate":"2025-05-10","category":"Water","companyId":"corupa"}`)
	rec := f.do(t, http.MethodPost, "/api/v1/bills", payload, "1")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/backup", nil, "1")
	require.Equal(t, http.StatusOK, rec.Code)

	// Export is the raw snapshot document, not the API envelope
	var snap map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Contains(t, snap, "bills")
	require.Contains(t, snap, "version")
	doc := rec.Body.Bytes()

	t.Run("Round trip restores the collections", func(t *testing.T) {
		fresh := newFixture(t, &stubExtractor{}, &stubAssistant{})
		rec := fresh.do(t, http.MethodPost, "/api/v1/backup", doc, "1")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, f.store.Bills(), fresh.store.Bills())
		assert.Equal(t, f.store.Users(), fresh.store.Users())
	})

	t.Run("Malformed import is rejected and store untouched", func(t *testing.T) {
		before := f.store.Bills()
		rec := f.do(t, http.MethodPost, "/api/v1/backup", []byte("not json"), "1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, before, f.store.Bills())
	})
}

func TestIntakeEndpoint(t *testing.T) {
	extractor := &stubExtractor{fields: &domain.BillFields{
		Beneficiary: "Celesc",
		Amount:      120.5,
		DueDate:     "2025-04-05",
		Category:    "Energy",
	}}
	f := newFixture(t, extractor, &stubAssistant{})

	buildForm := func(t *testing.T) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("document", "invoice.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("jpeg-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.WriteField("companyId", "schroder"))
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("Files the extracted bill", func(t *testing.T) {
		body, contentType := buildForm(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-User-ID", "1")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var bill domain.Bill
		dataField(t, rec, &bill)
		assert.Equal(t, "Celesc", bill.Beneficiary)
	})

	t.Run("Extraction failure is a retryable 502", func(t *testing.T) {
		extractor.err = fmt.Errorf("unreadable")
		defer func() { extractor.err = nil }()

		body, contentType := buildForm(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/intake", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestAssistantEndpoint(t *testing.T) {
	f := newFixture(t, &stubExtractor{}, &stubAssistant{answer: "Nothing due this week."})

	rec := f.do(t, http.MethodPost, "/api/v1/assistant", []byte(`{"query":"what is due?"}`), "1")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]string
	dataField(t, rec, &out)
	assert.Equal(t, "Nothing due this week.", out["answer"])

	t.Run("Collaborator failure is a retryable 502", func(t *testing.T) {
		failing := newFixture(t, &stubExtractor{}, &stubAssistant{err: fmt.Errorf("timeout")})
		rec := failing.do(t, http.MethodPost, "/api/v1/assistant", []byte(`{"query":"hi"}`), "1")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
