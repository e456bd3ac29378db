package drill

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/ai-mastery-drill/internal/aiquiz"
	"github.com/saulo-duarte/ai-mastery-drill/internal/analysis"
	"github.com/saulo-duarte/ai-mastery-drill/internal/apperr"
	"github.com/saulo-duarte/ai-mastery-drill/internal/config"
	"github.com/saulo-duarte/ai-mastery-drill/internal/quiz"
)

var (
	ErrFetchInProgress = errors.New("next batch is still loading")
	ErrNotAwaiting     = errors.New("session is not waiting for an answer")
	ErrNotComplete     = errors.New("session is not complete")
	ErrShortBatch      = fmt.Errorf("%w: batch has fewer questions than requested", apperr.ErrMalformedResponse)
)

// QuestionSource supplies one batch of questions.
type QuestionSource interface {
	FetchBatch(ctx context.Context, req aiquiz.QuestionRequest) ([]quiz.Question, error)
}

// Analyzer reviews a finished attempt.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.AnalyzeRequest) (*quiz.AnalysisResult, error)
}

// Session drives one drill from the first batch to the results. It is safe
// for concurrent use; the lock is released during network calls and the
// state keeps a second batch fetch from starting.
type Session struct {
	mu sync.Mutex

	id        string
	cfg       quiz.DrillConfig
	source    QuestionSource
	analyzer  Analyzer
	observer  Observer
	state     State
	index     int
	questions []quiz.Question
	answers   []quiz.Answer
	score     int
	analysis  *quiz.AnalysisResult
}

// Start validates cfg and loads the first batch. A failed first fetch is
// returned to the caller and no session is created.
func Start(ctx context.Context, cfg quiz.DrillConfig, source QuestionSource, analyzer Analyzer, opts ...Option) (*Session, error) {
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		source:   source,
		analyzer: analyzer,
		state:    AwaitingQuestion,
		answers:  make([]quiz.Answer, cfg.QuestionCount),
	}
	for _, opt := range opts {
		opt(s)
	}

	log := s.logger(ctx)
	log.Info("Starting drill")

	batch, err := s.fetch(ctx, s.batchRequest(0))
	if err != nil {
		log.WithError(err).Error("Failed to load first batch")
		return nil, err
	}
	s.questions = batch
	return s, nil
}

func (s *Session) ID() string { return s.id }

func (s *Session) Config() quiz.DrillConfig { return s.cfg }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Progress returns the zero-based index of the current question and the
// target question count.
func (s *Session) Progress() (index, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, s.cfg.QuestionCount
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (quiz.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != AwaitingQuestion {
		return quiz.Question{}, ErrNotAwaiting
	}
	return s.questions[s.index], nil
}

// Submit records the answer to the current question and moves the drill
// forward. The next batch is fetched only on the fifth answer of a batch when
// more questions are needed than are held. On fetch failure the session stays
// on the same question with the answer kept; submitting again retries.
func (s *Session) Submit(ctx context.Context, answer quiz.Answer) error {
	s.mu.Lock()
	switch s.state {
	case AwaitingQuestion:
	case FetchingNextBatch:
		s.mu.Unlock()
		return ErrFetchInProgress
	default:
		s.mu.Unlock()
		return ErrNotAwaiting
	}

	i := s.index
	s.answers[i] = answer
	s.transition(BatchBoundaryCheck)

	next, n, m := i+1, s.cfg.QuestionCount, len(s.questions)
	switch {
	case next%quiz.BatchSize == 0 && next < n && next >= m:
		return s.fetchNext(ctx, next)
	case next >= n:
		return s.finalize(ctx)
	default:
		s.index = next
		s.transition(AwaitingQuestion)
		s.mu.Unlock()
		return nil
	}
}

// fetchNext is entered with the lock held and releases it.
func (s *Session) fetchNext(ctx context.Context, answered int) error {
	req := s.batchRequest(answered)
	s.transition(FetchingNextBatch)
	s.mu.Unlock()

	batch, err := s.fetch(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger(ctx).WithError(err).WithField("batch", req.BatchNumber).Error("Failed to load next batch")
		s.transition(AwaitingQuestion)
		return fmt.Errorf("batch %d: %w", req.BatchNumber, err)
	}
	s.questions = append(s.questions, batch...)
	s.index = answered
	s.transition(AwaitingQuestion)
	return nil
}

// finalize is entered with the lock held and releases it. Analysis failures
// are logged and the session completes with the score only.
func (s *Session) finalize(ctx context.Context) error {
	s.transition(Finalizing)
	s.score = quiz.Score(quiz.CorrectCount(s.questions, s.answers), s.cfg.QuestionCount)

	if s.analyzer == nil {
		s.transition(Complete)
		s.mu.Unlock()
		return nil
	}

	req := analysis.AnalyzeRequest{
		Subject:     s.cfg.Subject,
		Subtopic:    s.cfg.Subtopic,
		Questions:   append([]quiz.Question(nil), s.questions...),
		UserAnswers: append([]quiz.Answer(nil), s.answers...),
		Score:       s.score,
	}
	s.transition(FetchingAnalysis)
	s.mu.Unlock()

	result, err := s.analyzer.Analyze(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger(ctx).WithError(err).Warn("Analysis unavailable, showing score only")
	} else {
		s.analysis = result
	}
	s.transition(Complete)
	return nil
}

// Result returns the results view once the drill is complete.
func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Complete {
		return Result{}, ErrNotComplete
	}
	correct := quiz.CorrectCount(s.questions, s.answers)
	return Result{
		Subject:   s.cfg.Subject,
		Subtopic:  s.cfg.Subtopic,
		Score:     s.score,
		Correct:   correct,
		Incorrect: s.cfg.QuestionCount - correct,
		Total:     s.cfg.QuestionCount,
		Questions: append([]quiz.Question(nil), s.questions...),
		Answers:   append([]quiz.Answer(nil), s.answers...),
		Analysis:  s.analysis,
	}, nil
}

// batchRequest builds the request for the batch that starts after answered
// questions. Performance is sent only from the second batch on.
func (s *Session) batchRequest(answered int) aiquiz.QuestionRequest {
	req := aiquiz.QuestionRequest{
		Subject:       s.cfg.Subject,
		Subtopic:      s.cfg.Subtopic,
		Difficulty:    string(s.cfg.Difficulty),
		Confidence:    string(s.cfg.Confidence),
		QuestionCount: min(quiz.BatchSize, s.cfg.QuestionCount-answered),
		BatchNumber:   answered/quiz.BatchSize + 1,
		QuestionType:  string(s.cfg.QuestionType),
	}
	if answered > 0 {
		req.PerformanceData = &aiquiz.PerformanceData{
			CorrectCount:  quiz.CorrectCount(s.questions[:answered], s.answers[:answered]),
			TotalAnswered: answered,
		}
	}
	return req
}

func (s *Session) fetch(ctx context.Context, req aiquiz.QuestionRequest) ([]quiz.Question, error) {
	batch, err := s.source.FetchBatch(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(batch) < req.QuestionCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrShortBatch, len(batch), req.QuestionCount)
	}
	batch = batch[:req.QuestionCount]
	for i, q := range batch {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", apperr.ErrMalformedResponse, i+1, err)
		}
	}
	return batch, nil
}

func (s *Session) transition(to State) {
	from := s.state
	s.state = to
	if s.observer != nil && from != to {
		s.observer(from, to)
	}
}

func (s *Session) logger(ctx context.Context) *logrus.Entry {
	return config.WithContext(ctx).WithFields(logrus.Fields{
		"session_id": s.id,
		"subject":    s.cfg.Subject,
		"subtopic":   s.cfg.Subtopic,
	})
}
