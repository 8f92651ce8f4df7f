// Package trivia assembles fixed-size trivia sets from themed question
// pools under the same frequency-control rules the schedule generator uses,
// and orchestrates automated multi-set builds across a theme catalog.
package trivia

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/pucklab/puckdesk/pkg/domain"
	"github.com/pucklab/puckdesk/pkg/engine"
)

//go:generate moq -out mocks/question_provider.go -pkg mocks -skip-ensure -fmt goimports . QuestionProvider
//go:generate moq -out mocks/set_store.go -pkg mocks -skip-ensure -fmt goimports . SetStore
//go:generate moq -out mocks/composer.go -pkg mocks -skip-ensure -fmt goimports . Composer

// QuestionProvider supplies published questions matching a theme filter
type QuestionProvider interface {
	GetPool(ctx context.Context, filter domain.PoolFilter) ([]domain.ContentItem, error)
}

// SetStore persists assembled trivia sets
type SetStore interface {
	InsertTriviaSet(ctx context.Context, set *domain.TriviaSet) error
}

// Composer writes a publishable title and description for an assembled
// set. Optional; a nil composer falls back to derived titles.
type Composer interface {
	ComposeSetMeta(ctx context.Context, set *domain.TriviaSet) (title, description string, err error)
}

// Builder assembles one trivia set per BuildSet call, walking the stages
// validate, fetch-pool, select, assemble, persist and reporting a
// structured result instead of bare errors for expected failure modes.
type Builder struct {
	questions QuestionProvider
	store     SetStore
	composer  Composer
	rnd       *rand.Rand
	now       func() time.Time
}

// NewBuilder creates a trivia set builder. composer may be nil; rnd feeds
// selection tie-breaking, nil seeds from the clock.
func NewBuilder(questions QuestionProvider, store SetStore, composer Composer, rnd *rand.Rand) *Builder {
	return &Builder{questions: questions, store: store, composer: composer, rnd: rnd, now: time.Now}
}

// BuildRequest describes one trivia set build
type BuildRequest struct {
	Type          domain.TriviaType
	Theme         string
	Category      string
	QuestionCount int
	AllowPartial  bool
}

// build stage names, one task result per stage
const (
	stageValidate = "validate"
	stageFetch    = "fetch-pool"
	stageSelect   = "select"
	stageAssemble = "assemble"
	stagePersist  = "persist"
)

// BuildSet assembles and persists one trivia set. The returned result is
// always non-nil: expected failures come back as status failed with
// structured errors, an under-count with AllowPartial comes back as
// partial, and a panic in the selection stage is converted to an
// unexpected-error entry rather than crashing the run.
func (b *Builder) BuildSet(ctx context.Context, req BuildRequest) *domain.BuildResult {
	started := time.Now()
	res := &domain.BuildResult{Status: domain.BuildFailed}
	defer func() { res.ExecutionTime = time.Since(started) }()

	// validate
	if err := req.validate(); err != nil {
		failStage(res, stageValidate, domain.ErrCodeValidation, err.Error())
		return res
	}
	passStage(res, stageValidate)

	// fetch-pool
	pool, err := b.questions.GetPool(ctx, domain.PoolFilter{
		Type:     req.Type.ContentType(),
		Theme:    req.Theme,
		Category: req.Category,
		Status:   domain.StatusPublished,
	})
	if err != nil {
		failStage(res, stageFetch, domain.ErrCodePersistence, fmt.Sprintf("fetch question pool: %v", err))
		return res
	}
	if len(pool) == 0 {
		failStage(res, stageFetch, domain.ErrCodeNoContent,
			fmt.Sprintf("no published %s questions match theme %q", req.Type, req.Theme))
		return res
	}
	passStage(res, stageFetch)

	// select
	count := req.QuestionCount
	partial := false
	if len(pool) < count {
		if !req.AllowPartial {
			failStage(res, stageSelect, domain.ErrCodeInsufficientPool,
				fmt.Sprintf("pool has %d questions, %d requested", len(pool), count))
			return res
		}
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("pool has %d questions, %d requested; proceeding with partial set", len(pool), count))
		count = len(pool)
		partial = true
	}

	selected, err := b.selectQuestions(pool, count)
	if err != nil {
		failStage(res, stageSelect, domain.ErrCodeUnexpected, err.Error())
		return res
	}
	passStage(res, stageSelect)

	// assemble
	set := b.assembleSet(ctx, req, selected, res)
	passStage(res, stageAssemble)

	// persist
	if err := b.store.InsertTriviaSet(ctx, set); err != nil {
		failStage(res, stagePersist, domain.ErrCodePersistence, fmt.Sprintf("insert trivia set: %v", err))
		return res
	}
	passStage(res, stagePersist)

	res.Status = domain.BuildSuccess
	if partial {
		res.Status = domain.BuildPartial
	}
	res.Set = set

	lgr.Printf("[INFO] built %s trivia set %q with %d questions (%s)", req.Type, set.Title, set.QuestionCount, res.Status)
	return res
}

// validate checks the request before any I/O
func (r BuildRequest) validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("unknown trivia type %q", r.Type)
	}
	if strings.TrimSpace(r.Theme) == "" {
		return fmt.Errorf("theme is required")
	}
	if r.QuestionCount <= 0 {
		return fmt.Errorf("question count must be positive, got %d", r.QuestionCount)
	}
	return nil
}

// selectQuestions runs the frequency-controlled selector over the pool,
// converting a panic anywhere in the selection path to an error so one bad
// build never takes down an automated batch
func (b *Builder) selectQuestions(pool []domain.ContentItem, count int) (selected []domain.SetQuestion, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("selection panic: %v", r)
		}
	}()

	tracker, err := engine.NewUsageTracker(len(pool), count, b.rnd)
	if err != nil {
		return nil, err
	}
	items, err := engine.SelectWithFrequencyControl(pool, count, tracker)
	if err != nil {
		return nil, err
	}

	selected = make([]domain.SetQuestion, 0, len(items))
	for _, it := range items {
		selected = append(selected, domain.SetQuestion{ContentItem: it.ContentItem, DisplayOrder: it.DisplayOrder})
	}
	return selected, nil
}

// assembleSet builds the set record; question count comes from the actual
// selection length, never the requested count
func (b *Builder) assembleSet(ctx context.Context, req BuildRequest, questions []domain.SetQuestion, res *domain.BuildResult) *domain.TriviaSet {
	now := b.now()
	setID := uuid.NewString()

	set := &domain.TriviaSet{
		SetID:         setID,
		Title:         defaultTitle(req.Type, req.Theme),
		Slug:          makeSlug(req.Theme, now, setID),
		Description:   fmt.Sprintf("%d %s questions about %s", len(questions), typeLabel(req.Type), req.Theme),
		Type:          req.Type,
		Theme:         req.Theme,
		Category:      req.Category,
		QuestionCount: len(questions),
		Questions:     questions,
		Status:        domain.StatusUnpublished,
		CreatedAt:     now,
	}

	if b.composer != nil {
		title, description, err := b.composer.ComposeSetMeta(ctx, set)
		if err != nil {
			// composer is best-effort, keep the derived title
			res.Warnings = append(res.Warnings, fmt.Sprintf("title composer failed: %v", err))
			lgr.Printf("[WARN] title composer failed for set %s: %v", setID, err)
		} else {
			set.Title = title
			set.Description = description
		}
	}

	return set
}

// typeLabel maps a trivia type to its human-readable label
func typeLabel(t domain.TriviaType) string {
	switch t {
	case domain.TriviaTrueFalse:
		return "true or false"
	case domain.TriviaWhoAmI:
		return "who am I"
	default:
		return "multiple choice"
	}
}

// defaultTitle derives a set title from the type and theme
func defaultTitle(t domain.TriviaType, theme string) string {
	label := typeLabel(t)
	return titleCase(label) + " Trivia: " + titleCase(theme)
}

// titleCase uppercases the first letter of each word
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// makeSlug derives a url-safe slug from theme, build date and set id
func makeSlug(theme string, now time.Time, setID string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, theme)
	cleaned = strings.Trim(cleaned, "-")

	// first uuid group keeps slugs unique without dragging the full id in
	short := setID
	if i := strings.IndexByte(setID, '-'); i > 0 {
		short = setID[:i]
	}
	return fmt.Sprintf("%s-%s-%s", cleaned, now.Format("2006-01-02"), short)
}

// failStage records a failed task and its structured error
func failStage(res *domain.BuildResult, stage, code, msg string) {
	res.Tasks = append(res.Tasks, domain.TaskResult{Stage: stage, Success: false, Error: msg})
	res.Errors = append(res.Errors, domain.BuildError{Code: code, Message: msg, Stage: stage})
}

// passStage records a successful task
func passStage(res *domain.BuildResult, stage string) {
	res.Tasks = append(res.Tasks, domain.TaskResult{Stage: stage, Success: true})
}
