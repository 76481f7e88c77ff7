package rest

import (
	"net/http"

	"github.com/willyuhot/ehexam/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Exam       *ExamHandler
	Questions  *QuestionHandler
	Practice   *PracticeHandler
	Vocabulary *VocabularyHandler
}

// NewRouter registers all routes. limit wraps the routes that call the
// language model; pass nil to leave them unlimited.
func NewRouter(h Handlers, limit middleware.Middleware) *http.ServeMux {
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	model := func(fn http.HandlerFunc) http.Handler { return limit(fn) }

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/exams/parse", h.Exam.Parse)
	mux.Handle("POST /api/exams/extract", model(h.Exam.Extract))
	mux.Handle("POST /api/exams/import", model(h.Exam.Import))
	mux.Handle("POST /api/exams/import-jobs", model(h.Exam.StartImport))
	mux.HandleFunc("GET /api/exams/import-jobs/{id}", h.Exam.Job)

	mux.HandleFunc("GET /api/questions", h.Questions.List)
	mux.HandleFunc("GET /api/questions/export", h.Questions.Export)
	mux.HandleFunc("GET /api/questions/{id}", h.Questions.Get)
	mux.Handle("POST /api/questions/{id}/enrich", model(h.Questions.Enrich))
	mux.HandleFunc("GET /api/questions/{id}/translation", h.Questions.Translation)
	mux.Handle("POST /api/words/analyze", model(h.Questions.AnalyzeWord))

	mux.HandleFunc("GET /api/questions/{id}/present", h.Practice.Present)
	mux.HandleFunc("POST /api/questions/{id}/answer", h.Practice.Answer)
	mux.HandleFunc("PUT /api/questions/{id}/favorite", h.Practice.AddFavorite)
	mux.HandleFunc("DELETE /api/questions/{id}/favorite", h.Practice.RemoveFavorite)
	mux.HandleFunc("GET /api/favorites", h.Practice.Favorites)
	mux.HandleFunc("GET /api/wrong-answers", h.Practice.WrongAnswers)
	mux.HandleFunc("DELETE /api/wrong-answers/{id}", h.Practice.RemoveWrongAnswer)
	mux.HandleFunc("GET /api/stats", h.Practice.Stats)
	mux.HandleFunc("DELETE /api/stats", h.Practice.ResetStats)

	mux.Handle("POST /api/vocabulary/extract", model(h.Vocabulary.Extract))
	mux.Handle("POST /api/vocabulary/import", model(h.Vocabulary.Import))
	mux.HandleFunc("GET /api/vocabulary", h.Vocabulary.List)
	mux.HandleFunc("DELETE /api/vocabulary/{id}", h.Vocabulary.Delete)

	return mux
}
