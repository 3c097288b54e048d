// Package advisor implements the canned-response engine behind the career
// assistant. Replies are not generated: the user's utterance is matched
// against an ordered keyword rule table and the first hit selects a
// pre-authored template plus its follow-up suggestions.
package advisor

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hotgigs/careerassist/internal/metrics"
	"github.com/hotgigs/careerassist/internal/model/profile"
)

// Topic identifies one canned response template.
type Topic string

const (
	TopicWelcome   Topic = "welcome"
	TopicResume    Topic = "resume"
	TopicJobSearch Topic = "job-search"
	TopicInterview Topic = "interview"
	TopicSkills    Topic = "skills"
	TopicSourcing  Topic = "sourcing"
	TopicGeneral   Topic = "general"
)

// suggestionCount is the number of follow-up suggestions attached to
// every reply.
const suggestionCount = 4

// Filler value ranges for the simulated market statistics.
const (
	jobCountBase         = 120
	jobCountSpread       = 280
	candidateCountBase   = 40
	candidateCountSpread = 160
)

// Reply is the resolver result: one canned text block and exactly four
// follow-up suggestions.
type Reply struct {
	Topic       Topic    `json:"topic"`
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions"`
}

// Rule maps keyword groups to a topic. A rule matches when every group
// contributes at least one substring hit; a rule with Role set only
// applies to users of that role.
type Rule struct {
	Topic    Topic
	Role     profile.Role
	Keywords [][]string
}

func (r Rule) matches(lowered string, role profile.Role) bool {
	if r.Role != "" && r.Role != role {
		return false
	}
	for _, group := range r.Keywords {
		if !containsAny(lowered, group) {
			return false
		}
	}
	return true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// defaultRules is evaluated top to bottom; the first match wins, so the
// order encodes the dispatch priority.
func defaultRules() []Rule {
	return []Rule{
		{Topic: TopicResume, Keywords: [][]string{{"resume", "cv"}}},
		{Topic: TopicJobSearch, Keywords: [][]string{{"job"}, {"find", "search"}}},
		{Topic: TopicInterview, Keywords: [][]string{{"interview"}}},
		{Topic: TopicSkills, Keywords: [][]string{{"skill", "learn"}}},
		{Topic: TopicSourcing, Role: profile.RoleRecruiter, Keywords: [][]string{{"candidate", "hire"}}},
	}
}

// Advisor resolves user utterances to canned replies. The random source
// feeding the simulated market statistics and the clock feeding the
// current-year filler are injectable so output can be made deterministic.
type Advisor struct {
	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
	rules   []Rule
	content *content
	metrics *metrics.Collector
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithSeed makes the numeric fillers deterministic.
func WithSeed(seed int64) Option {
	return func(a *Advisor) {
		a.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock overrides the clock used for the current-year filler.
func WithClock(now func() time.Time) Option {
	return func(a *Advisor) {
		a.now = now
	}
}

// WithMetrics wires resolve counts and timings into the collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(a *Advisor) {
		a.metrics = c
	}
}

// New builds an advisor with the built-in rule table and content.
func New(opts ...Option) *Advisor {
	a := &Advisor{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		rules:   defaultRules(),
		content: defaultContent(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Resolve selects the canned reply for an utterance. It is total: every
// input resolves, unmatched utterances fall through to the role-specific
// general template.
func (a *Advisor) Resolve(utterance string, role profile.Role) Reply {
	start := time.Now()
	topic := a.classify(strings.ToLower(utterance), role)
	reply := a.render(topic, role)
	if a.metrics != nil {
		a.metrics.RecordResolve(string(reply.Topic), time.Since(start))
	}
	return reply
}

func (a *Advisor) classify(lowered string, role profile.Role) Topic {
	for _, rule := range a.rules {
		if rule.matches(lowered, role) {
			return rule.Topic
		}
	}
	return TopicGeneral
}

func (a *Advisor) render(topic Topic, role profile.Role) Reply {
	entry := a.content.lookup(topic, role)
	return Reply{
		Topic:       topic,
		Text:        a.expand(entry.text),
		Suggestions: append([]string(nil), entry.suggestions...),
	}
}

// expand fills the dynamic placeholders. The two market counts are drawn
// in a fixed order so a seeded advisor produces reproducible text.
func (a *Advisor) expand(text string) string {
	if !strings.Contains(text, "{") {
		return text
	}

	pairs := make([]string, 0, 6)
	if strings.Contains(text, "{jobCount}") {
		pairs = append(pairs, "{jobCount}", strconv.Itoa(a.draw(jobCountBase, jobCountSpread)))
	}
	if strings.Contains(text, "{candidateCount}") {
		pairs = append(pairs, "{candidateCount}", strconv.Itoa(a.draw(candidateCountBase, candidateCountSpread)))
	}
	if strings.Contains(text, "{year}") {
		pairs = append(pairs, "{year}", strconv.Itoa(a.now().Year()))
	}
	if len(pairs) == 0 {
		return text
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func (a *Advisor) draw(base, spread int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return base + a.rng.Intn(spread)
}

// Welcome returns the role-specific greeting that seeds a new transcript,
// with the user's display name embedded, plus the role's starter
// suggestions.
func (a *Advisor) Welcome(p profile.Profile) Reply {
	role := p.Role
	if !role.Valid() {
		role = profile.RoleJobSeeker
	}
	text := strings.ReplaceAll(a.content.welcome[role], "{name}", p.DisplayName)
	return Reply{
		Topic:       TopicWelcome,
		Text:        text,
		Suggestions: a.Starters(role),
	}
}

// Starters returns the onboarding suggestions offered before the user has
// asked anything.
func (a *Advisor) Starters(role profile.Role) []string {
	if !role.Valid() {
		role = profile.RoleJobSeeker
	}
	return append([]string(nil), a.content.starters[role]...)
}

// RoleInfo describes one selectable role for onboarding surfaces.
type RoleInfo struct {
	ID       profile.Role `json:"id"`
	Label    string       `json:"label"`
	Starters []string     `json:"starters"`
}

// Catalog lists the roles the assistant can advise, with their starter
// suggestions.
func (a *Advisor) Catalog() []RoleInfo {
	roles := profile.Roles()
	infos := make([]RoleInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, RoleInfo{
			ID:       role,
			Label:    role.Label(),
			Starters: a.Starters(role),
		})
	}
	return infos
}
