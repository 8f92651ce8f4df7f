package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/pucklab/puckdesk/pkg/datex"
	"github.com/pucklab/puckdesk/pkg/domain"
	"github.com/pucklab/puckdesk/pkg/engine"
	"github.com/pucklab/puckdesk/pkg/trivia"
)

// decodeRequest strictly decodes a JSON request body, rejecting unknown
// fields so malformed payloads never reach the engine
func decodeRequest(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// generateScheduleRequest is the payload for POST /schedules/generate
type generateScheduleRequest struct {
	StartDate   string `json:"start_date"`
	Days        int    `json:"days"`
	ItemsPerDay int    `json:"items_per_day"`
	ContentType string `json:"content_type"`
}

// generateScheduleHandler builds daily schedules for a date range
func (s *Server) generateScheduleHandler(w http.ResponseWriter, r *http.Request) {
	var req generateScheduleRequest
	if err := decodeRequest(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	cfg := s.config.GetScheduleConfig()
	if req.ItemsPerDay == 0 {
		req.ItemsPerDay = cfg.ItemsPerDay
	}

	if !datex.ValidISODate(req.StartDate) {
		renderError(w, r, fmt.Errorf("start_date %q is not a valid ISO date", req.StartDate), http.StatusBadRequest)
		return
	}
	if req.Days <= 0 || req.Days > cfg.MaxDays {
		renderError(w, r, fmt.Errorf("days must be between 1 and %d", cfg.MaxDays), http.StatusBadRequest)
		return
	}
	if req.ItemsPerDay <= 0 {
		renderError(w, r, fmt.Errorf("items_per_day must be positive"), http.StatusBadRequest)
		return
	}
	contentType := domain.ContentType(req.ContentType)
	if !contentType.Valid() {
		renderError(w, r, fmt.Errorf("unknown content_type %q", req.ContentType), http.StatusBadRequest)
		return
	}

	// two admins generating the same range at once get one run's result;
	// overlapping-but-different ranges still race, last upsert wins
	key := fmt.Sprintf("%s|%d|%d|%s", req.StartDate, req.Days, req.ItemsPerDay, req.ContentType)
	val, err, _ := s.generateGroup.Do(key, func() (interface{}, error) {
		return s.generator.Generate(r.Context(), engine.GenerateRequest{
			StartDate:   req.StartDate,
			Days:        req.Days,
			ItemsPerDay: req.ItemsPerDay,
			ContentType: contentType,
		})
	})
	if err != nil {
		log.Printf("[ERROR] schedule generation failed: %v", err)
		renderError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	renderJSON(w, r, http.StatusCreated, val)
}

// getScheduleHandler returns the schedule for a single date
func (s *Server) getScheduleHandler(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if !datex.ValidISODate(date) {
		renderError(w, r, fmt.Errorf("date %q is not a valid ISO date", date), http.StatusBadRequest)
		return
	}

	sched, err := s.db.GetDailySchedule(r.Context(), date)
	if err != nil {
		log.Printf("[ERROR] failed to get schedule: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	if sched == nil {
		renderError(w, r, fmt.Errorf("no schedule for %s", date), http.StatusNotFound)
		return
	}

	renderJSON(w, r, http.StatusOK, sched)
}

// listSchedulesHandler returns schedules within an inclusive date range
func (s *Server) listSchedulesHandler(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !datex.ValidISODate(from) || !datex.ValidISODate(to) {
		renderError(w, r, fmt.Errorf("from and to must be valid ISO dates"), http.StatusBadRequest)
		return
	}

	scheds, err := s.db.ListDailySchedules(r.Context(), from, to)
	if err != nil {
		log.Printf("[ERROR] failed to list schedules: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, scheds)
}

// buildSetRequest is the payload for POST /trivia/sets
type buildSetRequest struct {
	SetType       string `json:"set_type"`
	Theme         string `json:"theme"`
	Category      string `json:"category"`
	QuestionCount int    `json:"question_count"`
	AllowPartial  bool   `json:"allow_partial"`
}

// buildSetHandler assembles and persists one trivia set
func (s *Server) buildSetHandler(w http.ResponseWriter, r *http.Request) {
	var req buildSetRequest
	if err := decodeRequest(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if req.QuestionCount == 0 {
		req.QuestionCount = s.config.GetTriviaConfig().QuestionsPerSet
	}

	result := s.builder.BuildSet(r.Context(), trivia.BuildRequest{
		Type:          domain.TriviaType(req.SetType),
		Theme:         req.Theme,
		Category:      req.Category,
		QuestionCount: req.QuestionCount,
		AllowPartial:  req.AllowPartial,
	})

	renderJSON(w, r, buildStatusCode(result), result)
}

// buildStatusCode maps a build result to an HTTP status: created for
// success/partial, bad request for validation failures, unprocessable for
// the rest
func buildStatusCode(result *domain.BuildResult) int {
	if result.Status != domain.BuildFailed {
		return http.StatusCreated
	}
	for _, e := range result.Errors {
		if e.Code == domain.ErrCodeValidation {
			return http.StatusBadRequest
		}
	}
	return http.StatusUnprocessableEntity
}

// automatedBuildRequest is the payload for POST /trivia/automated
type automatedBuildRequest struct {
	NumberOfSets    int      `json:"number_of_sets"`
	SetType         string   `json:"set_type"`
	QuestionsPerSet int      `json:"questions_per_set"`
	Themes          []string `json:"themes"`
	BalanceThemes   bool     `json:"balance_themes"`
	AllowPartial    bool     `json:"allow_partial"`
}

// automatedBuildHandler builds multiple trivia sets in one invocation
func (s *Server) automatedBuildHandler(w http.ResponseWriter, r *http.Request) {
	var req automatedBuildRequest
	if err := decodeRequest(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	cfg := s.config.GetTriviaConfig()
	if req.QuestionsPerSet == 0 {
		req.QuestionsPerSet = cfg.QuestionsPerSet
	}

	if req.NumberOfSets <= 0 || req.NumberOfSets > cfg.MaxSetsPerBatch {
		renderError(w, r, fmt.Errorf("number_of_sets must be between 1 and %d", cfg.MaxSetsPerBatch), http.StatusBadRequest)
		return
	}
	if req.QuestionsPerSet <= 0 {
		renderError(w, r, fmt.Errorf("questions_per_set must be positive"), http.StatusBadRequest)
		return
	}
	setType := domain.TriviaType(req.SetType)
	if !setType.Valid() {
		renderError(w, r, fmt.Errorf("unknown set_type %q", req.SetType), http.StatusBadRequest)
		return
	}

	result, err := s.orchestrator.BuildAutomatedSets(r.Context(), trivia.AutomatedRequest{
		NumberOfSets:    req.NumberOfSets,
		Type:            setType,
		QuestionsPerSet: req.QuestionsPerSet,
		Themes:          req.Themes,
		BalanceThemes:   req.BalanceThemes,
		AllowPartial:    req.AllowPartial,
	})
	if err != nil {
		log.Printf("[ERROR] automated build failed: %v", err)
		renderError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	renderJSON(w, r, http.StatusCreated, result)
}

// listSetsHandler returns trivia sets with optional filters
func (s *Server) listSetsHandler(w http.ResponseWriter, r *http.Request) {
	setType := domain.TriviaType(r.URL.Query().Get("set_type"))
	if setType != "" && !setType.Valid() {
		renderError(w, r, fmt.Errorf("unknown set_type %q", setType), http.StatusBadRequest)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		if parsed > 100 {
			parsed = 100
		}
		limit = parsed
	}

	sets, err := s.db.ListTriviaSets(r.Context(), setType, r.URL.Query().Get("theme"), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list trivia sets: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, sets)
}

// importFeedRequest is the payload for POST /import/feed
type importFeedRequest struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Theme       string `json:"theme"`
}

// importFeedHandler pulls a feed into the content pool as drafts
func (s *Server) importFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req importFeedRequest
	if err := decodeRequest(r, &req); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if req.URL == "" {
		renderError(w, r, fmt.Errorf("url is required"), http.StatusBadRequest)
		return
	}
	contentType := domain.ContentType(req.ContentType)
	if !contentType.Valid() {
		renderError(w, r, fmt.Errorf("unknown content_type %q", req.ContentType), http.StatusBadRequest)
		return
	}

	imported, err := s.importer.ImportFeed(r.Context(), req.URL, contentType, req.Theme)
	if err != nil {
		log.Printf("[ERROR] feed import failed: %v", err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, map[string]int{"imported": imported})
}
