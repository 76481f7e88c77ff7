package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testDeps struct {
	exam        *examServiceMock
	bank        *bankServiceMock
	translation *translationServiceMock
	practice    *practiceServiceMock
	vocabulary  *vocabularyServiceMock
}

func newTestRouter(deps testDeps) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := PingerFunc(func(context.Context) error { return nil })

	return NewRouter(Handlers{
		Health:     NewHealthHandler(ok, ok, "test"),
		Exam:       NewExamHandler(deps.exam, log),
		Questions:  NewQuestionHandler(deps.bank, deps.translation, log),
		Practice:   NewPracticeHandler(deps.practice, log),
		Vocabulary: NewVocabularyHandler(deps.vocabulary, log),
	}, nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
