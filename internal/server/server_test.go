package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omniassist/internal/config"
	"omniassist/internal/domain"
)

type stubService struct {
	query  string
	role   string
	answer string
	err    error
}

func (s *stubService) IngestCorpus(context.Context, string) (domain.IngestReport, error) {
	return domain.IngestReport{}, nil
}

func (s *stubService) Answer(_ context.Context, query, role string) (string, error) {
	s.query = query
	s.role = role
	return s.answer, s.err
}

func doRequest(t *testing.T, svc domain.RAGService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(svc, config.ServerConfig{}, nil)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestServer(t *testing.T) {
	t.Run("Should report liveness at the root", func(t *testing.T) {
		w := doRequest(t, &stubService{}, http.MethodGet, "/", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "running")
	})

	t.Run("Should answer chat requests", func(t *testing.T) {
		svc := &stubService{answer: "The service uses port 8443."}
		w := doRequest(t, svc, http.MethodPost, "/chat",
			`{"query": "What port does the service use?", "role": "support"}`)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "The service uses port 8443.", resp["response"])
		assert.Equal(t, "What port does the service use?", svc.query)
		assert.Equal(t, "support", svc.role)
	})

	t.Run("Should default the role to learner", func(t *testing.T) {
		svc := &stubService{answer: "ok"}
		w := doRequest(t, svc, http.MethodPost, "/chat", `{"query": "hello"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "learner", svc.role)
	})

	t.Run("Should reject requests without a query", func(t *testing.T) {
		w := doRequest(t, &stubService{}, http.MethodPost, "/chat", `{"role": "support"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "query is required")
	})

	t.Run("Should surface service failures with an error message", func(t *testing.T) {
		svc := &stubService{err: errors.New("generate answer: rate limited")}
		w := doRequest(t, svc, http.MethodPost, "/chat", `{"query": "hello"}`)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "rate limited")
	})

	t.Run("Should direct operators to run ingestion out-of-band", func(t *testing.T) {
		w := doRequest(t, &stubService{}, http.MethodPost, "/ingest", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ingest binary")
	})
}
