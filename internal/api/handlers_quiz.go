// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package api

import (
	"net/http"

	"github.com/tomtom215/hostduel/internal/metrics"
	"github.com/tomtom215/hostduel/internal/models"
	"github.com/tomtom215/hostduel/internal/quiz"
)

// QuizResults is the payload of GET /api/v1/quiz/results.
type QuizResults struct {
	Answers         models.QuizAnswers `json:"answers"`
	Query           string             `json:"query"`
	Recommendations []models.HostScore `json:"recommendations"`
}

// QuizQuestions returns the quiz in presentation order.
func (h *Handler) QuizQuestions(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(quiz.Questions)
}

// QuizResults scores every provider against the answers encoded in the
// query string. Unknown answer values are treated as skipped questions.
func (h *Handler) QuizResults(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	values := r.URL.Query()
	q := newQueryReader(values)

	req := QuizResultsRequest{Limit: q.Int("limit", defaultQuizResults)}
	if apiErr := q.Err(); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	answers := quiz.DecodeParams(values)
	metrics.RecordQuizSubmission(string(answers.BuildingType))

	rw.Success(QuizResults{
		Answers:         answers,
		Query:           quiz.QueryString(answers),
		Recommendations: h.quiz.Recommend(h.snapshot.Rows(), answers, req.Limit),
	})
}
