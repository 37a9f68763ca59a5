package quiz

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session defaults.
const (
	DefaultTotalQuestions   = 10
	DefaultTimeLimit        = 15 * time.Second
	DefaultFeedbackDuration = 1500 * time.Millisecond
)

// State is the current screen of the quiz.
type State int

const (
	StateWelcome State = iota
	StateQuestion
	StateFeedback
	StateResults
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateQuestion:
		return "question"
	case StateFeedback:
		return "feedback"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

// Event reports which transition a call caused.
type Event int

const (
	EventNone         Event = iota
	EventTimeUp             // question -> feedback on expiry
	EventNextQuestion       // feedback -> question
	EventFinished           // feedback -> results
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventTimeUp:
		return "time_up"
	case EventNextQuestion:
		return "next_question"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Options tunes session length and timing. Zero fields take the defaults.
type Options struct {
	TotalQuestions   int
	TimeLimit        time.Duration
	FeedbackDuration time.Duration
}

// DefaultOptions returns the standard ten-question, fifteen-second session.
func DefaultOptions() Options {
	return Options{
		TotalQuestions:   DefaultTotalQuestions,
		TimeLimit:        DefaultTimeLimit,
		FeedbackDuration: DefaultFeedbackDuration,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TotalQuestions <= 0 {
		o.TotalQuestions = d.TotalQuestions
	}
	if o.TimeLimit <= 0 {
		o.TimeLimit = d.TimeLimit
	}
	if o.FeedbackDuration <= 0 {
		o.FeedbackDuration = d.FeedbackDuration
	}
	return o
}

// Record is the history entry for one finished question.
type Record struct {
	Index    int // 1-based question number
	Question Question
	Input    string        // Raw input at submission, empty on time-out
	Elapsed  time.Duration // Time from question start to submission or expiry
	Outcome  Outcome
}

// Session is one run of the quiz state machine.
// It is owned by a single frame loop and is not safe for concurrent use.
type Session struct {
	opts Options
	rng  Rand

	id         string
	state      State
	difficulty Difficulty
	index      int
	score      int

	question   Question
	startedAt  time.Time
	remaining  time.Duration
	feedbackAt time.Time
	last       Outcome
	history    []Record
}

// NewSession creates a session in the welcome state.
func NewSession(rng Rand, opts Options) *Session {
	opts = opts.withDefaults()
	return &Session{
		opts:      opts,
		rng:       rng,
		state:     StateWelcome,
		remaining: opts.TimeLimit,
	}
}

// Start selects a difficulty and moves from welcome to the first question.
// Returns false if the session is not on the welcome screen or d is unknown.
func (s *Session) Start(d Difficulty, now time.Time) bool {
	if s.state != StateWelcome || !d.Valid() {
		return false
	}

	s.id = uuid.NewString()
	s.difficulty = d
	s.index = 0
	s.score = 0
	s.last = Outcome{}
	s.history = s.history[:0]
	s.nextQuestion(now)
	return true
}

// nextQuestion advances the index, draws a question and restarts the timer.
func (s *Session) nextQuestion(now time.Time) {
	s.index++
	s.question = Generate(s.difficulty, s.rng)
	s.startedAt = now
	s.remaining = s.opts.TimeLimit
	s.state = StateQuestion
}

// Tick advances timers to now and performs at most one time-driven transition.
func (s *Session) Tick(now time.Time) Event {
	switch s.state {
	case StateQuestion:
		s.updateRemaining(now)
		if s.remaining <= 0 {
			s.expire(now)
			return EventTimeUp
		}

	case StateFeedback:
		if now.Sub(s.feedbackAt) <= s.opts.FeedbackDuration {
			return EventNone
		}
		if s.index < s.opts.TotalQuestions {
			s.nextQuestion(now)
			return EventNextQuestion
		}
		s.state = StateResults
		return EventFinished
	}

	return EventNone
}

// Submit checks an answer. Input that does not parse as an integer is ignored
// and the session stays on the question. Returns false when nothing was scored,
// which includes a submission arriving after the time limit: that question
// expires instead.
func (s *Session) Submit(input string, now time.Time) (Outcome, bool) {
	if s.state != StateQuestion {
		return Outcome{}, false
	}

	s.updateRemaining(now)
	if s.remaining <= 0 {
		s.expire(now)
		return Outcome{}, false
	}

	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return Outcome{}, false
	}

	out := score(value == s.question.Answer, s.RemainingFraction())
	s.finish(out, input, now)
	return out, true
}

// Replay returns from results to the welcome screen, clearing the run.
func (s *Session) Replay() bool {
	if s.state != StateResults {
		return false
	}

	s.state = StateWelcome
	s.id = ""
	s.difficulty = ""
	s.index = 0
	s.score = 0
	s.question = Question{}
	s.remaining = s.opts.TimeLimit
	s.last = Outcome{}
	s.history = nil
	return true
}

func (s *Session) updateRemaining(now time.Time) {
	left := s.opts.TimeLimit - now.Sub(s.startedAt)
	switch {
	case left < 0:
		left = 0
	case left > s.opts.TimeLimit:
		left = s.opts.TimeLimit
	}
	s.remaining = left
}

func (s *Session) expire(now time.Time) {
	s.finish(Outcome{TimedOut: true}, "", now)
}

func (s *Session) finish(out Outcome, input string, now time.Time) {
	s.score += out.Points
	s.last = out
	s.history = append(s.history, Record{
		Index:    s.index,
		Question: s.question,
		Input:    input,
		Elapsed:  s.opts.TimeLimit - s.remaining,
		Outcome:  out,
	})
	s.state = StateFeedback
	s.feedbackAt = now
}

// ID identifies the current run; empty on the welcome screen.
func (s *Session) ID() string { return s.id }

// State returns the current screen.
func (s *Session) State() State { return s.state }

// Difficulty returns the selected difficulty, empty on the welcome screen.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Index returns the 1-based number of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions per run.
func (s *Session) Total() int { return s.opts.TotalQuestions }

// Score returns the points accumulated so far.
func (s *Session) Score() int { return s.score }

// Question returns the active (or last answered) question.
func (s *Session) Question() Question { return s.question }

// TimeLimit returns the per-question limit.
func (s *Session) TimeLimit() time.Duration { return s.opts.TimeLimit }

// Remaining returns the time left as of the last Tick or Submit.
func (s *Session) Remaining() time.Duration { return s.remaining }

// RemainingFraction returns Remaining as a fraction of the limit in [0, 1].
func (s *Session) RemainingFraction() float64 {
	return float64(s.remaining) / float64(s.opts.TimeLimit)
}

// LastOutcome returns the result of the most recent question.
func (s *Session) LastOutcome() Outcome { return s.last }

// History returns a copy of the finished questions of this run.
func (s *Session) History() []Record {
	out := make([]Record, len(s.history))
	copy(out, s.history)
	return out
}

// Summary computes the results-screen figures for the run so far.
func (s *Session) Summary() Summary {
	return summarize(s.difficulty, s.opts.TotalQuestions, s.score, s.history)
}
