package advisor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hotgigs/careerassist/internal/model/profile"
)

// Playbook is an operator-supplied content override. A non-empty rules
// list replaces the whole dispatch table; templates, fallbacks, starters
// and welcome lines are merged per key over the built-in content.
type Playbook struct {
	Rules     []PlaybookRule              `yaml:"rules"`
	Templates map[string]PlaybookTemplate `yaml:"templates"`
	Fallbacks map[string]PlaybookTemplate `yaml:"fallbacks"`
	Starters  map[string][]string         `yaml:"starters"`
	Welcome   map[string]string           `yaml:"welcome"`
}

// PlaybookRule is the YAML form of one dispatch rule. Keywords are
// groups of alternatives; every group must hit for the rule to match.
type PlaybookRule struct {
	Topic    string     `yaml:"topic"`
	Role     string     `yaml:"role,omitempty"`
	Keywords [][]string `yaml:"keywords"`
}

// PlaybookTemplate is the YAML form of one authored reply.
type PlaybookTemplate struct {
	Text        string   `yaml:"text"`
	Suggestions []string `yaml:"suggestions"`
}

func (t PlaybookTemplate) toEntry() (entry, error) {
	if strings.TrimSpace(t.Text) == "" {
		return entry{}, errors.New("text is empty")
	}
	if len(t.Suggestions) != suggestionCount {
		return entry{}, fmt.Errorf("needs exactly %d suggestions, got %d", suggestionCount, len(t.Suggestions))
	}
	return entry{text: t.Text, suggestions: append([]string(nil), t.Suggestions...)}, nil
}

// parseTopic accepts only topics that map to a template slot. The
// general and welcome topics are authored per role and addressed through
// the fallbacks and welcome sections instead.
func parseTopic(raw string) (Topic, bool) {
	switch Topic(raw) {
	case TopicResume, TopicJobSearch, TopicInterview, TopicSkills, TopicSourcing:
		return Topic(raw), true
	}
	return "", false
}

// LoadPlaybook reads and parses a playbook file.
func LoadPlaybook(path string) (*Playbook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playbook: %w", err)
	}
	var pb Playbook
	if err := yaml.Unmarshal(raw, &pb); err != nil {
		return nil, fmt.Errorf("parse playbook: %w", err)
	}
	return &pb, nil
}

// ApplyPlaybook validates the playbook and overlays it onto the advisor.
// Nothing is applied when any section fails validation. It must run
// before the advisor starts serving traffic.
func (a *Advisor) ApplyPlaybook(pb *Playbook) error {
	if pb == nil {
		return nil
	}

	rules, err := pb.compileRules()
	if err != nil {
		return err
	}

	templates := make(map[Topic]entry, len(pb.Templates))
	for key, tpl := range pb.Templates {
		topic, ok := parseTopic(key)
		if !ok {
			return fmt.Errorf("playbook: template %q: unknown topic", key)
		}
		e, err := tpl.toEntry()
		if err != nil {
			return fmt.Errorf("playbook: template %q: %w", key, err)
		}
		templates[topic] = e
	}

	fallbacks := make(map[profile.Role]entry, len(pb.Fallbacks))
	for key, tpl := range pb.Fallbacks {
		role, err := profile.ParseRole(key)
		if err != nil {
			return fmt.Errorf("playbook: fallback %q: %w", key, err)
		}
		e, err := tpl.toEntry()
		if err != nil {
			return fmt.Errorf("playbook: fallback %q: %w", key, err)
		}
		fallbacks[role] = e
	}

	starters := make(map[profile.Role][]string, len(pb.Starters))
	for key, list := range pb.Starters {
		role, err := profile.ParseRole(key)
		if err != nil {
			return fmt.Errorf("playbook: starters %q: %w", key, err)
		}
		if len(list) != suggestionCount {
			return fmt.Errorf("playbook: starters %q: needs exactly %d entries, got %d", key, suggestionCount, len(list))
		}
		starters[role] = append([]string(nil), list...)
	}

	welcome := make(map[profile.Role]string, len(pb.Welcome))
	for key, text := range pb.Welcome {
		role, err := profile.ParseRole(key)
		if err != nil {
			return fmt.Errorf("playbook: welcome %q: %w", key, err)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("playbook: welcome %q: text is empty", key)
		}
		welcome[role] = text
	}

	if len(rules) > 0 {
		a.rules = rules
	}
	for topic, e := range templates {
		a.content.templates[topic] = e
	}
	for role, e := range fallbacks {
		a.content.fallbacks[role] = e
	}
	for role, list := range starters {
		a.content.starters[role] = list
	}
	for role, text := range welcome {
		a.content.welcome[role] = text
	}
	return nil
}

func (pb *Playbook) compileRules() ([]Rule, error) {
	rules := make([]Rule, 0, len(pb.Rules))
	for i, pr := range pb.Rules {
		topic, ok := parseTopic(pr.Topic)
		if !ok {
			return nil, fmt.Errorf("playbook: rule %d: unknown topic %q", i, pr.Topic)
		}
		var role profile.Role
		if pr.Role != "" {
			parsed, err := profile.ParseRole(pr.Role)
			if err != nil {
				return nil, fmt.Errorf("playbook: rule %d: %w", i, err)
			}
			role = parsed
		}
		if len(pr.Keywords) == 0 {
			return nil, fmt.Errorf("playbook: rule %d: no keyword groups", i)
		}
		groups := make([][]string, 0, len(pr.Keywords))
		for j, group := range pr.Keywords {
			if len(group) == 0 {
				return nil, fmt.Errorf("playbook: rule %d: keyword group %d is empty", i, j)
			}
			lowered := make([]string, 0, len(group))
			for _, kw := range group {
				kw = strings.ToLower(strings.TrimSpace(kw))
				if kw == "" {
					return nil, fmt.Errorf("playbook: rule %d: keyword group %d holds an empty keyword", i, j)
				}
				lowered = append(lowered, kw)
			}
			groups = append(groups, lowered)
		}
		rules = append(rules, Rule{Topic: topic, Role: role, Keywords: groups})
	}
	return rules, nil
}
