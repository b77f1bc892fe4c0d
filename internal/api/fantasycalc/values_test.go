package fantasycalc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/omarshaarawi/rosterbot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValues(t *testing.T) {
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/values/current", r.URL.Path)
		query = r.URL.Query()
		w.Write([]byte(`[
			{"player": {"id": 1, "name": "Ja'Marr Chase", "sleeperId": "7564", "position": "WR"}, "value": 10321},
			{"player": {"id": 2, "name": "Unmapped", "position": "RB"}, "value": 500}
		]`))
	}))
	defer srv.Close()

	client := NewClient(config.FantasyCalc{NumQBs: 2, NumTeams: 10, PPR: 0.5})
	client.BaseURL = srv.URL

	values, err := client.GetValues(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"7564": 10321}, values)
	assert.Equal(t, "false", query.Get("isDynasty"))
	assert.Equal(t, "2", query.Get("numQbs"))
	assert.Equal(t, "10", query.Get("numTeams"))
	assert.Equal(t, "0.5", query.Get("ppr"))
}

func TestGetValuesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(config.FantasyCalc{})
	client.BaseURL = srv.URL

	_, err := client.GetValues(context.Background())
	assert.ErrorContains(t, err, "502")
}
