// Package trade holds multi-team trade proposals and evaluates them.
package trade

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// MaxTeams is the largest number of rosters a proposal may involve.
const MaxTeams = 3

var (
	ErrTooManyTeams  = errors.New("trade already has the maximum number of teams")
	ErrDuplicateTeam = errors.New("team is already part of the trade")
	ErrUnknownTeam   = errors.New("team is not part of the trade")
	ErrSameTeam      = errors.New("a player cannot be traded to the team sending him")
	ErrUnknownPlayer = errors.New("player is not part of the trade")
	ErrEmptyRosterID = errors.New("roster id is empty")
	ErrEmptyPlayerID = errors.New("player id is empty")
)

// Move is a single player transfer.
type Move struct {
	PlayerID string
	From     string
	To       string
}

// Proposal is the in-progress trade between up to three rosters. Each
// player is stored once with both endpoints, so a player sent by one team is
// always received by exactly one other.
type Proposal struct {
	ID    uuid.UUID
	teams []string
	moves map[string]Move
	order []string
}

func NewProposal(teams ...string) (*Proposal, error) {
	p := &Proposal{
		ID:    uuid.New(),
		moves: make(map[string]Move),
	}
	for _, t := range teams {
		if err := p.AddTeam(t); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Proposal) Teams() []string {
	out := make([]string, len(p.teams))
	copy(out, p.teams)
	return out
}

func (p *Proposal) HasTeam(rosterID string) bool {
	for _, t := range p.teams {
		if t == rosterID {
			return true
		}
	}
	return false
}

func (p *Proposal) AddTeam(rosterID string) error {
	if rosterID == "" {
		return ErrEmptyRosterID
	}
	if p.HasTeam(rosterID) {
		return fmt.Errorf("adding %s: %w", rosterID, ErrDuplicateTeam)
	}
	if len(p.teams) >= MaxTeams {
		return ErrTooManyTeams
	}
	p.teams = append(p.teams, rosterID)
	return nil
}

// RemoveTeam drops a participant along with every move sent from or to it.
func (p *Proposal) RemoveTeam(rosterID string) error {
	idx := -1
	for i, t := range p.teams {
		if t == rosterID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("removing %s: %w", rosterID, ErrUnknownTeam)
	}
	p.teams = append(p.teams[:idx], p.teams[idx+1:]...)

	for _, id := range p.order {
		m := p.moves[id]
		if m.From == rosterID || m.To == rosterID {
			p.dropMove(id)
		}
	}
	return nil
}

// AddPlayer records playerID moving from one participant to another,
// replacing any earlier move of the same player.
func (p *Proposal) AddPlayer(playerID, from, to string) error {
	if playerID == "" {
		return ErrEmptyPlayerID
	}
	if from == to {
		return ErrSameTeam
	}
	if !p.HasTeam(from) {
		return fmt.Errorf("sending team %s: %w", from, ErrUnknownTeam)
	}
	if !p.HasTeam(to) {
		return fmt.Errorf("receiving team %s: %w", to, ErrUnknownTeam)
	}

	p.dropMove(playerID)
	p.moves[playerID] = Move{PlayerID: playerID, From: from, To: to}
	p.order = append(p.order, playerID)
	return nil
}

func (p *Proposal) RemovePlayer(playerID string) error {
	if _, ok := p.moves[playerID]; !ok {
		return fmt.Errorf("removing %s: %w", playerID, ErrUnknownPlayer)
	}
	p.dropMove(playerID)
	return nil
}

func (p *Proposal) dropMove(playerID string) {
	if _, ok := p.moves[playerID]; !ok {
		return
	}
	delete(p.moves, playerID)
	for i, id := range p.order {
		if id == playerID {
			p.order = append(p.order[:i:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *Proposal) Clear() {
	p.teams = nil
	p.moves = make(map[string]Move)
	p.order = nil
}

func (p *Proposal) IsEmpty() bool {
	return len(p.moves) == 0
}

// Moves returns every transfer in the order it was added.
func (p *Proposal) Moves() []Move {
	out := make([]Move, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.moves[id])
	}
	return out
}

func (p *Proposal) Move(playerID string) (Move, bool) {
	m, ok := p.moves[playerID]
	return m, ok
}

func (p *Proposal) Sending(rosterID string) []string {
	var out []string
	for _, m := range p.Moves() {
		if m.From == rosterID {
			out = append(out, m.PlayerID)
		}
	}
	return out
}

func (p *Proposal) Receiving(rosterID string) []string {
	var out []string
	for _, m := range p.Moves() {
		if m.To == rosterID {
			out = append(out, m.PlayerID)
		}
	}
	return out
}

// Between returns the ids sent from one team directly to another, sorted.
func (p *Proposal) Between(from, to string) []string {
	var out []string
	for _, m := range p.moves {
		if m.From == from && m.To == to {
			out = append(out, m.PlayerID)
		}
	}
	sort.Strings(out)
	return out
}
