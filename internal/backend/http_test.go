package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPService_Structure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/get-structure", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string][]string{
			"General Tamil": {"unit_1": {"sangam", "bhakti"}},
		})
	}))
	defer srv.Close()

	s := NewHTTPService(srv.URL)
	tree, err := s.Structure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"sangam", "bhakti"}, tree.Topics("General Tamil", "unit_1"))
}

func TestHTTPService_GenerateTest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate-test", r.URL.Path)
		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "General Tamil", req.Subject)
		assert.Equal(t, 10, req.NumQuestions)
		assert.Equal(t, TestTypeTopicWise, req.TestType)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"question":"q","options":["a","b"],"correct_answer_index":1,"explanation":"e","topic":"sangam"}]`))
	}))
	defer srv.Close()

	s := NewHTTPService(srv.URL)
	qs, err := s.GenerateTest(context.Background(), GenerateRequest{
		Subject:      "General Tamil",
		Unit:         "unit_1",
		Topic:        "sangam",
		Language:     "Tamil",
		NumQuestions: 10,
		TestType:     TestTypeTopicWise,
	})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, 1, qs[0].CorrectIndex)
	assert.Equal(t, "sangam", qs[0].Topic)
}

func TestHTTPService_ChatSupport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat-support", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"Think about the formula for simple interest."}`))
	}))
	defer srv.Close()

	s := NewHTTPService(srv.URL)
	reply, err := s.ChatSupport(context.Background(), ChatRequest{
		UserQuery:    "how do I start?",
		QuestionText: "q",
		Topic:        "Aptitude",
	})
	require.NoError(t, err)
	assert.Equal(t, "Think about the formula for simple interest.", reply)
}

func TestHTTPService_JSONErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"The AI failed to generate questions for the topic 'sangam' after multiple attempts. Please try again."}`))
	}))
	defer srv.Close()

	s := NewHTTPService(srv.URL)
	_, err := s.GenerateTest(context.Background(), GenerateRequest{})
	require.Error(t, err)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusInternalServerError, svcErr.Status)
	assert.Contains(t, svcErr.Reason, "failed to generate questions for the topic 'sangam'")
}

func TestHTTPService_TextErrorTreatedAsOpaque(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	}))
	defer srv.Close()

	s := NewHTTPService(srv.URL)
	_, err := s.Structure(context.Background())
	require.Error(t, err)

	var svcErr *ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "upstream timeout", svcErr.Reason)
}
