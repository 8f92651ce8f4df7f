package trivia

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/pucklab/puckdesk/pkg/domain"
)

//go:generate moq -out mocks/set_builder.go -pkg mocks -skip-ensure -fmt goimports . SetBuilder
//go:generate moq -out mocks/theme_usage.go -pkg mocks -skip-ensure -fmt goimports . ThemeUsage

// SetBuilder builds a single trivia set
type SetBuilder interface {
	BuildSet(ctx context.Context, req BuildRequest) *domain.BuildResult
}

// ThemeUsage reports how many sets of a type were historically created per
// theme, feeding the least-used theme policy
type ThemeUsage interface {
	ThemeUsage(ctx context.Context, setType domain.TriviaType) (map[string]int, error)
}

// Orchestrator runs the set builder across multiple themes in one
// invocation, continuing past individual failures and aggregating counts
type Orchestrator struct {
	builder SetBuilder
	usage   ThemeUsage
	catalog []string
}

// NewOrchestrator creates an automated set build orchestrator. An empty
// catalog falls back to DefaultThemes.
func NewOrchestrator(builder SetBuilder, usage ThemeUsage, catalog []string) *Orchestrator {
	if len(catalog) == 0 {
		catalog = DefaultThemes
	}
	return &Orchestrator{builder: builder, usage: usage, catalog: catalog}
}

// AutomatedRequest describes an automated multi-set build
type AutomatedRequest struct {
	NumberOfSets    int
	Type            domain.TriviaType
	QuestionsPerSet int
	Themes          []string // nil means the full configured catalog
	BalanceThemes   bool
	AllowPartial    bool
}

// BuildAutomatedSets builds NumberOfSets trivia sets. With BalanceThemes
// the themes rotate round-robin (set i gets theme i mod themeCount);
// otherwise each set goes to the theme with the lowest usage count,
// seeded from persisted history. One set's failure never fails the batch;
// only zero successes does.
func (o *Orchestrator) BuildAutomatedSets(ctx context.Context, req AutomatedRequest) (*domain.BatchResult, error) {
	if req.NumberOfSets <= 0 {
		return nil, fmt.Errorf("number of sets must be positive, got %d", req.NumberOfSets)
	}
	if req.QuestionsPerSet <= 0 {
		return nil, fmt.Errorf("questions per set must be positive, got %d", req.QuestionsPerSet)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("unknown trivia type %q", req.Type)
	}

	themes := req.Themes
	if len(themes) == 0 {
		themes = o.catalog
	}

	counts := o.seedThemeCounts(ctx, req.Type, themes)

	result := &domain.BatchResult{}
	for i := 0; i < req.NumberOfSets; i++ {
		var theme string
		if req.BalanceThemes {
			theme = themes[i%len(themes)]
		} else {
			theme = pickLeastUsedTheme(themes, counts)
		}
		// count the attempt, not just successes, so a theme with broken
		// content can't pin every remaining slot in the batch
		counts[theme]++

		buildRes := o.builder.BuildSet(ctx, BuildRequest{
			Type:          req.Type,
			Theme:         theme,
			QuestionCount: req.QuestionsPerSet,
			AllowPartial:  req.AllowPartial,
		})
		result.Results = append(result.Results, buildRes)

		if buildRes.Status == domain.BuildFailed {
			result.SetsFailed++
			lgr.Printf("[WARN] automated set %d/%d (theme %q) failed", i+1, req.NumberOfSets, theme)
			continue
		}
		result.SetsCreated++
	}

	result.Message = fmt.Sprintf("created %d of %d trivia sets, %d failed",
		result.SetsCreated, req.NumberOfSets, result.SetsFailed)

	if result.SetsCreated == 0 {
		return nil, fmt.Errorf("all %d set builds failed", req.NumberOfSets)
	}

	lgr.Printf("[INFO] automated build completed: %s", result.Message)
	return result, nil
}

// seedThemeCounts loads historical per-theme set counts; a read failure
// starts every theme at zero rather than failing the batch
func (o *Orchestrator) seedThemeCounts(ctx context.Context, setType domain.TriviaType, themes []string) map[string]int {
	counts := make(map[string]int, len(themes))
	for _, th := range themes {
		counts[th] = 0
	}

	if o.usage == nil {
		return counts
	}
	history, err := o.usage.ThemeUsage(ctx, setType)
	if err != nil {
		lgr.Printf("[WARN] theme usage history unavailable, starting from zero: %v", err)
		return counts
	}
	for th := range counts {
		counts[th] = history[th]
	}
	return counts
}

// pickLeastUsedTheme returns the theme with the lowest usage count. Ties
// break toward the earliest theme in catalog order, which keeps the choice
// deterministic for a given history.
func pickLeastUsedTheme(themes []string, counts map[string]int) string {
	best := themes[0]
	for _, th := range themes[1:] {
		if counts[th] < counts[best] {
			best = th
		}
	}
	return best
}
