package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

// LeagueSettings is the lineup shape shared by every team in the league.
//
//	slots:
//	  - name: QB
//	    positions: [QB]
//	    count: 1
//	  - name: FLEX
//	    positions: [RB, WR, TE]
//	    count: 2
//	excluded: [K, DEF]
type LeagueSettings struct {
	Slots    []SlotSettings `yaml:"slots"`
	Excluded []string       `yaml:"excluded"`
}

type SlotSettings struct {
	Name      string   `yaml:"name"`
	Positions []string `yaml:"positions"`
	Count     int      `yaml:"count"`
}

func DefaultLeagueSettings() LeagueSettings {
	return LeagueSettings{
		Slots: []SlotSettings{
			{Name: "QB", Positions: []string{"QB"}, Count: 1},
			{Name: "RB", Positions: []string{"RB"}, Count: 2},
			{Name: "WR", Positions: []string{"WR"}, Count: 3},
			{Name: "TE", Positions: []string{"TE"}, Count: 1},
			{Name: "SFLEX", Positions: []string{"QB", "RB", "WR", "TE"}, Count: 1},
			{Name: "FLEX", Positions: []string{"RB", "WR", "TE"}, Count: 2},
		},
		Excluded: []string{"K", "DEF"},
	}
}

func LoadLeagueSettings(path string) (LeagueSettings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return LeagueSettings{}, fmt.Errorf("reading league settings: %w", err)
	}
	return ParseLeagueSettings(b)
}

func ParseLeagueSettings(b []byte) (LeagueSettings, error) {
	var s LeagueSettings
	if err := yaml.UnmarshalStrict(b, &s); err != nil {
		return LeagueSettings{}, fmt.Errorf("parsing league settings: %w", err)
	}
	if len(s.Slots) == 0 {
		s.Slots = DefaultLeagueSettings().Slots
	}
	if s.Excluded == nil {
		s.Excluded = DefaultLeagueSettings().Excluded
	}
	if _, err := s.SlotDefinitions(); err != nil {
		return LeagueSettings{}, err
	}
	return s, nil
}

// SlotDefinitions converts the settings into model slots, rejecting unknown
// positions and non-positive counts.
func (s LeagueSettings) SlotDefinitions() ([]models.SlotDefinition, error) {
	slots := make([]models.SlotDefinition, 0, len(s.Slots))
	for _, slot := range s.Slots {
		if slot.Name == "" {
			return nil, fmt.Errorf("slot without a name")
		}
		if slot.Count <= 0 {
			return nil, fmt.Errorf("slot %s: count must be positive, got %d", slot.Name, slot.Count)
		}
		def := models.SlotDefinition{Name: strings.ToUpper(slot.Name), Count: slot.Count}
		for _, raw := range slot.Positions {
			pos, ok := models.ParsePosition(raw)
			if !ok {
				return nil, fmt.Errorf("slot %s: unsupported position %q", slot.Name, raw)
			}
			def.Eligible = append(def.Eligible, pos)
		}
		if len(def.Eligible) == 0 {
			return nil, fmt.Errorf("slot %s: no eligible positions", slot.Name)
		}
		slots = append(slots, def)
	}
	return slots, nil
}

func (s LeagueSettings) IsExcluded(position string) bool {
	for _, e := range s.Excluded {
		if strings.EqualFold(e, position) {
			return true
		}
	}
	return false
}
