package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/auth"
	"fakturo/internal/infrastructure/artifactfs"
	v1 "fakturo/internal/infrastructure/http/v1"
	"fakturo/internal/infrastructure/storage/sqlite"
	"fakturo/internal/infrastructure/storage/sqlite/auth_repo"
	"fakturo/pkg/logger"
)

type apiTest struct {
	router *gin.Engine
	token  string
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, err := logger.New(logger.Config{Level: "error"})
	require.NoError(t, err)

	store, err := artifactfs.New(t.TempDir())
	require.NoError(t, err)

	txm := sqlite.NewTxManager(db)
	authService := auth.NewService(
		auth_repo.NewUserRepo(txm),
		txm,
		auth.NewJWTService(auth.DefaultJWTConfig("test-secret")),
	)
	require.NoError(t, authService.EnsureAdmin(context.Background(), "admin", "password123"))

	a := &apiTest{
		router: v1.NewRouter(v1.RouterConfig{
			DB:            db,
			Logger:        log,
			ArtifactStore: store,
			AuthService:   authService,
		}),
	}

	resp := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": "admin",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var session struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &session))
	require.NotEmpty(t, session.AccessToken)
	a.token = session.AccessToken

	return a
}

func (a *apiTest) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type errorEnvelope struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealthEndpoints(t *testing.T) {
	a := newAPITest(t)

	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/health/live", nil).Code)
	assert.Equal(t, http.StatusOK, a.do(t, http.MethodGet, "/health/ready", nil).Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newAPITest(t)
	a.token = ""

	resp := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, apperror.CodeUnauthorized, decodeError(t, resp).Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a := newAPITest(t)
	a.token = ""

	resp := a.do(t, http.MethodGet, "/api/v1/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestClientCRUDOverHTTP(t *testing.T) {
	a := newAPITest(t)

	resp := a.do(t, http.MethodPost, "/api/v1/clients", map[string]any{
		"name": "Acme d.o.o.",
		"mb":   "12345678",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Acme d.o.o.", created.Name)

	resp = a.do(t, http.MethodGet, "/api/v1/clients/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = a.do(t, http.MethodGet, "/api/v1/clients", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	resp = a.do(t, http.MethodDelete, "/api/v1/clients/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = a.do(t, http.MethodGet, "/api/v1/clients/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeError(t, resp).Code)
}

func TestValidationErrorEnvelope(t *testing.T) {
	a := newAPITest(t)

	// name is required
	resp := a.do(t, http.MethodPost, "/api/v1/clients", map[string]any{"mb": "123"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, apperror.CodeValidation, decodeError(t, resp).Code)

	// malformed id in the path
	resp = a.do(t, http.MethodGet, "/api/v1/clients/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, apperror.CodeValidation, decodeError(t, resp).Code)
}

func TestDuplicateProductCodeOverHTTP(t *testing.T) {
	a := newAPITest(t)

	create := map[string]any{"code": "SKU-001", "name": "Widget", "price": "10.50", "active": true}
	resp := a.do(t, http.MethodPost, "/api/v1/products", create)
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = a.do(t, http.MethodPost, "/api/v1/products", create)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, apperror.CodeDuplicateKey, decodeError(t, resp).Code)
}

func TestInvoiceLifecycleOverHTTP(t *testing.T) {
	a := newAPITest(t)

	resp := a.do(t, http.MethodPost, "/api/v1/clients", map[string]any{
		"name": "Acme d.o.o.",
		"mb":   "12345678",
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var cl struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &cl))

	resp = a.do(t, http.MethodPost, "/api/v1/products", map[string]any{
		"code": "SKU-001", "name": "Widget", "price": "10.50", "active": true,
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var p struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &p))

	resp = a.do(t, http.MethodPost, "/api/v1/invoices", map[string]any{
		"documentType": "invoice",
		"clientId":     cl.ID,
		"date":         "2026-03-15",
		"items": []map[string]any{
			{"productId": p.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code)
	var inv struct {
		ID     string `json:"id"`
		Number string `json:"number"`
		Status string `json:"status"`
		Total  string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &inv))
	assert.Equal(t, "INV-2026-00001", inv.Number)
	assert.Equal(t, "draft", inv.Status)
	assert.Equal(t, "21", inv.Total)

	// draft → paid skips issuing
	resp = a.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%s/status", inv.ID), map[string]any{
		"status": "paid",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, apperror.CodeInvalidTransition, decodeError(t, resp).Code)

	resp = a.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%s/status", inv.ID), map[string]any{
		"status": "issued",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = a.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/invoices/%s/status", inv.ID), map[string]any{
		"status": "paid",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	// terminal invoices reject edits
	resp = a.do(t, http.MethodPut, "/api/v1/invoices/"+inv.ID, map[string]any{
		"clientId": cl.ID,
		"date":     "2026-03-16",
		"items": []map[string]any{
			{"productId": p.ID, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, apperror.CodeImmutableState, decodeError(t, resp).Code)

	// client history includes it
	resp = a.do(t, http.MethodGet, fmt.Sprintf("/api/v1/clients/%s/invoices", cl.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var history struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &history))
	assert.Equal(t, 1, history.Count)
}

func TestDocumentArtifactOverHTTP(t *testing.T) {
	a := newAPITest(t)
	path := "/api/v1/documents/invoice/2026/3/INV-2026-00001"

	resp := a.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = a.do(t, http.MethodPut, path, map[string]any{"content": "<html>v1</html>"})
	require.Equal(t, http.StatusOK, resp.Code)

	// overwrite, last write wins
	resp = a.do(t, http.MethodPut, path, map[string]any{"content": "<html>v2</html>"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = a.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var loaded struct {
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &loaded))
	assert.Equal(t, "<html>v2</html>", loaded.Content)

	resp = a.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = a.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUnknownDocumentTypeRejected(t *testing.T) {
	a := newAPITest(t)

	resp := a.do(t, http.MethodPut, "/api/v1/documents/receipt/2026/3/X-1", map[string]any{
		"content": "<html/>",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, apperror.CodeValidation, decodeError(t, resp).Code)
}
