package request

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/diamondstats/internal/model"
)

// Route variable names
const (
	VarPlayerID = "playerId"
	VarTeam     = "teamAbbrev"
)

// PlayerID extracts the numeric player id from the route
func PlayerID(r *http.Request) (model.PlayerID, bool) {
	n, err := strconv.Atoi(mux.Vars(r)[VarPlayerID])
	if err != nil || n <= 0 {
		return 0, false
	}
	return model.PlayerID(n), true
}

// Team extracts the team abbreviation from the route, upper-cased
func Team(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(mux.Vars(r)[VarTeam]))
}

// Query returns a trimmed query parameter
func Query(r *http.Request, name string) string {
	return strings.TrimSpace(RawQuery(r, name))
}

// RawQuery returns a query parameter exactly as sent
func RawQuery(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
