package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSymmetric checks that every sent player is received by exactly one
// other participant and the reverse.
func assertSymmetric(t *testing.T, p *Proposal) {
	t.Helper()

	senders := map[string][]string{}
	receivers := map[string][]string{}
	for _, team := range p.Teams() {
		for _, id := range p.Sending(team) {
			senders[id] = append(senders[id], team)
		}
		for _, id := range p.Receiving(team) {
			receivers[id] = append(receivers[id], team)
		}
	}

	assert.Equal(t, len(senders), len(receivers))
	for id, from := range senders {
		require.Len(t, from, 1, id)
		to := receivers[id]
		require.Len(t, to, 1, id)
		assert.NotEqual(t, from[0], to[0], id)
	}
}

func TestNewProposal(t *testing.T) {
	p, err := NewProposal("1", "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, p.Teams())
	assert.True(t, p.IsEmpty())
	assert.NotEmpty(t, p.ID.String())
}

func TestAddTeamLimits(t *testing.T) {
	p, err := NewProposal("1", "2", "3")
	require.NoError(t, err)

	assert.ErrorIs(t, p.AddTeam("4"), ErrTooManyTeams)
	assert.ErrorIs(t, p.AddTeam("2"), ErrDuplicateTeam)
	assert.ErrorIs(t, p.AddTeam(""), ErrEmptyRosterID)

	_, err = NewProposal("1", "2", "3", "4")
	assert.ErrorIs(t, err, ErrTooManyTeams)
}

func TestAddPlayerValidation(t *testing.T) {
	p, err := NewProposal("1", "2")
	require.NoError(t, err)

	assert.ErrorIs(t, p.AddPlayer("p", "1", "1"), ErrSameTeam)
	assert.ErrorIs(t, p.AddPlayer("p", "1", "9"), ErrUnknownTeam)
	assert.ErrorIs(t, p.AddPlayer("p", "9", "1"), ErrUnknownTeam)
	assert.ErrorIs(t, p.AddPlayer("", "1", "2"), ErrEmptyPlayerID)
	assert.True(t, p.IsEmpty())
}

func TestAddPlayerReplacesPriorMove(t *testing.T) {
	p, err := NewProposal("1", "2", "3")
	require.NoError(t, err)

	require.NoError(t, p.AddPlayer("p", "1", "2"))
	require.NoError(t, p.AddPlayer("p", "1", "3"))

	assert.Empty(t, p.Receiving("2"))
	assert.Equal(t, []string{"p"}, p.Receiving("3"))
	assert.Equal(t, []string{"p"}, p.Sending("1"))
	assert.Len(t, p.Moves(), 1)
	assertSymmetric(t, p)
}

func TestRemovePlayer(t *testing.T) {
	p, err := NewProposal("1", "2")
	require.NoError(t, err)
	require.NoError(t, p.AddPlayer("a", "1", "2"))
	require.NoError(t, p.AddPlayer("b", "2", "1"))

	require.NoError(t, p.RemovePlayer("a"))
	assert.ErrorIs(t, p.RemovePlayer("a"), ErrUnknownPlayer)

	assert.Empty(t, p.Sending("1"))
	assert.Empty(t, p.Receiving("2"))
	assert.Equal(t, []string{"b"}, p.Sending("2"))
	assertSymmetric(t, p)
}

func TestRemoveTeamCascades(t *testing.T) {
	p, err := NewProposal("1", "2", "3")
	require.NoError(t, err)
	require.NoError(t, p.AddPlayer("a", "1", "2"))
	require.NoError(t, p.AddPlayer("b", "2", "1"))
	require.NoError(t, p.AddPlayer("c", "3", "1"))
	require.NoError(t, p.AddPlayer("d", "2", "3"))
	require.NoError(t, p.AddPlayer("e", "1", "3"))

	require.NoError(t, p.RemoveTeam("3"))

	assert.Equal(t, []string{"1", "2"}, p.Teams())
	assert.Equal(t, []Move{
		{PlayerID: "a", From: "1", To: "2"},
		{PlayerID: "b", From: "2", To: "1"},
	}, p.Moves())
	assertSymmetric(t, p)

	assert.ErrorIs(t, p.RemoveTeam("3"), ErrUnknownTeam)
	require.NoError(t, p.RemoveTeam("2"))
	assert.True(t, p.IsEmpty())
	assert.Equal(t, []string{"1"}, p.Teams())
}

func TestClear(t *testing.T) {
	p, err := NewProposal("1", "2")
	require.NoError(t, err)
	require.NoError(t, p.AddPlayer("a", "1", "2"))

	p.Clear()

	assert.Empty(t, p.Teams())
	assert.True(t, p.IsEmpty())
	require.NoError(t, p.AddTeam("5"))
}

func TestBetween(t *testing.T) {
	p, err := NewProposal("1", "2", "3")
	require.NoError(t, err)
	require.NoError(t, p.AddPlayer("z", "1", "2"))
	require.NoError(t, p.AddPlayer("y", "1", "2"))
	require.NoError(t, p.AddPlayer("x", "1", "3"))

	assert.Equal(t, []string{"y", "z"}, p.Between("1", "2"))
	assert.Equal(t, []string{"x"}, p.Between("1", "3"))
	assert.Empty(t, p.Between("2", "1"))
}
