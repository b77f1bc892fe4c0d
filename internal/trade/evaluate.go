package trade

import (
	"fmt"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

const (
	lightTax = 0.075
	heavyTax = 0.175
)

// TaxRate returns the penalty for a team sending sent players to a
// counterpart while taking back received. Only these exact count pairs are
// taxed; everything else, including four-or-more player dumps, is not.
func TaxRate(sent, received int) float64 {
	switch {
	case sent == 2 && received <= 1:
		return lightTax
	case sent == 3 && received == 2:
		return lightTax
	case sent == 3 && received <= 1:
		return heavyTax
	}
	return 0
}

type TaxNote struct {
	Counterpart   string
	SentCount     int
	ReceivedCount int
	Rate          float64
	TaxedValue    float64
	Amount        float64
}

func (n TaxNote) String() string {
	return fmt.Sprintf("%.1f%% tax on %d-for-%d with %s",
		n.Rate*100, n.SentCount, n.ReceivedCount, n.Counterpart)
}

type TeamResult struct {
	RosterID string
	Sent     float64
	Received float64
	Tax      float64
	Net      float64
	Notes    []TaxNote
}

type Evaluation struct {
	ProposalTeams int
	Teams         []TeamResult
}

func (e Evaluation) Team(rosterID string) (TeamResult, bool) {
	for _, t := range e.Teams {
		if t.RosterID == rosterID {
			return t, true
		}
	}
	return TeamResult{}, false
}

// Evaluate sums each participant's incoming and outgoing raw value and, for
// three-team trades, taxes lopsided player dumps between every ordered pair.
// Player ids missing from players count with zero value.
func Evaluate(p *Proposal, players models.PlayerIndex) Evaluation {
	teams := p.Teams()
	eval := Evaluation{ProposalTeams: len(teams), Teams: make([]TeamResult, 0, len(teams))}

	for _, team := range teams {
		r := TeamResult{RosterID: team}
		r.Sent = sumRaw(p.Sending(team), players)
		r.Received = sumRaw(p.Receiving(team), players)

		if len(teams) == MaxTeams {
			for _, other := range teams {
				if other == team {
					continue
				}
				sent := p.Between(team, other)
				received := p.Between(other, team)
				rate := TaxRate(len(sent), len(received))
				if rate == 0 {
					continue
				}
				value := sumRaw(sent, players)
				note := TaxNote{
					Counterpart:   other,
					SentCount:     len(sent),
					ReceivedCount: len(received),
					Rate:          rate,
					TaxedValue:    value,
					Amount:        value * rate,
				}
				r.Tax += note.Amount
				r.Notes = append(r.Notes, note)
			}
		}

		r.Net = r.Received - r.Sent - r.Tax
		eval.Teams = append(eval.Teams, r)
	}

	return eval
}

func sumRaw(playerIDs []string, players models.PlayerIndex) float64 {
	var total float64
	for _, id := range playerIDs {
		total += players[id].RawValue
	}
	return total
}
