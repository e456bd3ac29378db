package drill

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/saulo-duarte/ai-mastery-drill/internal/aiquiz"
	"github.com/saulo-duarte/ai-mastery-drill/internal/analysis"
	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

// fakeSource returns questions whose correct answer is always option 0.
type fakeSource struct {
	mu       sync.Mutex
	requests []aiquiz.QuestionRequest
	failNext error
	block    chan struct{}
	started  chan struct{}
}

func (f *fakeSource) FetchBatch(ctx context.Context, req aiquiz.QuestionRequest) ([]quiz.Question, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	err := f.failNext
	f.failNext = nil
	block, started := f.block, f.started
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}

	qs := make([]quiz.Question, req.QuestionCount)
	for i := range qs {
		qs[i] = quiz.Question{
			Text:          fmt.Sprintf("batch %d question %d", req.BatchNumber, i+1),
			Options:       []string{"right", "wrong 1", "wrong 2", "wrong 3"},
			CorrectAnswer: 0,
		}
	}
	return qs, nil
}

type fakeAnalyzer struct {
	requests []analysis.AnalyzeRequest
	result   *quiz.AnalysisResult
	err      error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, req analysis.AnalyzeRequest) (*quiz.AnalysisResult, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

func physicsConfig(n int) quiz.DrillConfig {
	return quiz.DrillConfig{
		Subject:       "Physics",
		Subtopic:      "Kinematics",
		Difficulty:    quiz.Intermediate,
		Confidence:    quiz.GotTheBasics,
		QuestionCount: n,
	}
}

func sampleAnalysis() *quiz.AnalysisResult {
	return &quiz.AnalysisResult{
		Summary: "Solid grasp of displacement, shaky on acceleration.",
		LaggingAreas: []quiz.LaggingArea{
			{Area: "Acceleration", Description: "Sign conventions", Priority: quiz.PriorityHigh},
		},
		Recommendations: []string{"Redo the free-fall problems"},
	}
}

func TestSessionPhysicsTenQuestions(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	an := &fakeAnalyzer{result: sampleAnalysis()}

	s, err := Start(ctx, physicsConfig(10), src, an)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Wrong on questions 3 and 7, right otherwise.
	for i := 0; i < 10; i++ {
		answer := quiz.Chosen(0)
		if i == 2 || i == 6 {
			answer = quiz.Chosen(1)
		}
		if err := s.Submit(ctx, answer); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	if len(src.requests) != 2 {
		t.Fatalf("expected 2 batch fetches, got %d", len(src.requests))
	}
	first, second := src.requests[0], src.requests[1]
	if first.BatchNumber != 1 || first.QuestionCount != 5 || first.PerformanceData != nil {
		t.Errorf("unexpected first request: %+v", first)
	}
	if second.BatchNumber != 2 || second.QuestionCount != 5 {
		t.Errorf("unexpected second request: %+v", second)
	}
	if p := second.PerformanceData; p == nil || p.CorrectCount != 4 || p.TotalAnswered != 5 {
		t.Errorf("unexpected performance data: %+v", second.PerformanceData)
	}

	if s.State() != Complete {
		t.Fatalf("expected Complete, got %s", s.State())
	}
	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if res.Score != 80 || res.Correct != 8 || res.Incorrect != 2 || res.Total != 10 {
		t.Errorf("unexpected result: score=%d correct=%d incorrect=%d total=%d", res.Score, res.Correct, res.Incorrect, res.Total)
	}
	if len(res.Questions) != 10 {
		t.Errorf("expected 10 questions, got %d", len(res.Questions))
	}
	if res.Analysis == nil {
		t.Fatal("expected analysis to be attached")
	}

	if len(an.requests) != 1 {
		t.Fatalf("expected one analysis call, got %d", len(an.requests))
	}
	if got := an.requests[0]; got.Score != 80 || len(got.Questions) != 10 || len(got.UserAnswers) != 10 {
		t.Errorf("unexpected analysis request: score=%d questions=%d answers=%d", got.Score, len(got.Questions), len(got.UserAnswers))
	}
}

func TestSessionSingleBatch(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	an := &fakeAnalyzer{result: sampleAnalysis()}

	s, err := Start(ctx, physicsConfig(5), src, an)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := s.Submit(ctx, quiz.Chosen(0)); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	if len(src.requests) != 1 {
		t.Errorf("expected a single batch fetch, got %d", len(src.requests))
	}
	if len(an.requests) != 1 {
		t.Errorf("expected a single analysis call, got %d", len(an.requests))
	}
	res, _ := s.Result()
	if res.Score != 100 {
		t.Errorf("expected score 100, got %d", res.Score)
	}
}

func TestSessionFetchIndices(t *testing.T) {
	for _, n := range []int{5, 10, 15, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ctx := context.Background()
			src := &fakeSource{}
			s, err := Start(ctx, physicsConfig(n), src, nil)
			if err != nil {
				t.Fatalf("Start failed: %v", err)
			}

			var fetchedAt []int
			for i := 0; i < n; i++ {
				before := len(src.requests)
				if err := s.Submit(ctx, quiz.Chosen(0)); err != nil {
					t.Fatalf("Submit %d failed: %v", i, err)
				}
				if len(src.requests) > before {
					fetchedAt = append(fetchedAt, i)
				}
			}

			want := []int{4, 9, 14}[:n/quiz.BatchSize-1]
			if fmt.Sprint(fetchedAt) != fmt.Sprint(want) {
				t.Errorf("fetched at %v, want %v", fetchedAt, want)
			}
			for b, req := range src.requests {
				if req.BatchNumber != b+1 {
					t.Errorf("request %d has batch number %d", b, req.BatchNumber)
				}
			}

			res, _ := s.Result()
			if len(res.Questions) != n {
				t.Errorf("expected %d questions, got %d", n, len(res.Questions))
			}
		})
	}
}

func TestSessionFetchFailureKeepsPosition(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	s, err := Start(ctx, physicsConfig(10), src, nil)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := s.Submit(ctx, quiz.Chosen(0)); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	src.failNext = fmt.Errorf("%w: slow down", apperr.ErrRateLimited)
	err = s.Submit(ctx, quiz.Chosen(0))
	if !errors.Is(err, apperr.ErrRateLimited) {
		t.Fatalf("expected rate limited error, got %v", err)
	}
	if s.State() != AwaitingQuestion {
		t.Fatalf("expected AwaitingQuestion, got %s", s.State())
	}
	if idx, _ := s.Progress(); idx != 4 {
		t.Fatalf("expected to stay on index 4, got %d", idx)
	}

	if err := s.Submit(ctx, quiz.Chosen(0)); err != nil {
		t.Fatalf("retry Submit failed: %v", err)
	}
	if len(src.requests) != 3 {
		t.Errorf("expected first fetch, failed fetch and retry, got %d requests", len(src.requests))
	}
	if idx, _ := s.Progress(); idx != 5 {
		t.Errorf("expected index 5 after retry, got %d", idx)
	}
}

func TestSessionAnalysisFailureStillCompletes(t *testing.T) {
	ctx := context.Background()
	an := &fakeAnalyzer{err: apperr.ErrProvider}
	s, err := Start(ctx, physicsConfig(5), &fakeSource{}, an)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	// Leave the last question unanswered.
	for i := 0; i < 5; i++ {
		a := quiz.Chosen(0)
		if i == 4 {
			a = quiz.Answer{}
		}
		if err := s.Submit(ctx, a); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if res.Analysis != nil {
		t.Error("expected no analysis after failure")
	}
	if res.Score != 80 || res.Incorrect != 1 {
		t.Errorf("expected score 80 with one incorrect, got %d and %d", res.Score, res.Incorrect)
	}
}

func TestSessionConcurrentSubmitDuringFetch(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	s, err := Start(ctx, physicsConfig(10), src, nil)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := s.Submit(ctx, quiz.Chosen(0)); err != nil {
			t.Fatalf("Submit %d failed: %v", i, err)
		}
	}

	src.mu.Lock()
	src.block = make(chan struct{})
	src.started = make(chan struct{}, 1)
	src.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- s.Submit(ctx, quiz.Chosen(0)) }()
	<-src.started

	if s.State() != FetchingNextBatch {
		t.Errorf("expected FetchingNextBatch, got %s", s.State())
	}
	if err := s.Submit(ctx, quiz.Chosen(1)); !errors.Is(err, ErrFetchInProgress) {
		t.Errorf("expected ErrFetchInProgress, got %v", err)
	}

	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("blocked Submit failed: %v", err)
	}
	if len(src.requests) != 2 {
		t.Errorf("expected exactly one next-batch fetch, got %d requests", len(src.requests))
	}
}

func TestSessionObserverAndErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidConfig", func(t *testing.T) {
		_, err := Start(ctx, physicsConfig(7), &fakeSource{}, nil)
		if !errors.Is(err, quiz.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("FirstBatchFailure", func(t *testing.T) {
		src := &fakeSource{failNext: apperr.ErrQuotaExhausted}
		_, err := Start(ctx, physicsConfig(5), src, nil)
		if !errors.Is(err, apperr.ErrQuotaExhausted) {
			t.Errorf("expected ErrQuotaExhausted, got %v", err)
		}
	})

	t.Run("Transitions", func(t *testing.T) {
		var seen []State
		s, err := Start(ctx, physicsConfig(5), &fakeSource{}, &fakeAnalyzer{result: sampleAnalysis()},
			WithObserver(func(_, to State) { seen = append(seen, to) }))
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}
		if _, err := s.Result(); !errors.Is(err, ErrNotComplete) {
			t.Errorf("expected ErrNotComplete, got %v", err)
		}
		for i := 0; i < 5; i++ {
			s.Submit(ctx, quiz.Chosen(0))
		}
		tail := seen[len(seen)-4:]
		want := []State{BatchBoundaryCheck, Finalizing, FetchingAnalysis, Complete}
		if fmt.Sprint(tail) != fmt.Sprint(want) {
			t.Errorf("last transitions = %v, want %v", tail, want)
		}
		if err := s.Submit(ctx, quiz.Chosen(0)); !errors.Is(err, ErrNotAwaiting) {
			t.Errorf("expected ErrNotAwaiting after completion, got %v", err)
		}
	})
}
