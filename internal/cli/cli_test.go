package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/diamondstats/internal/api"
	"github.com/mcoot/diamondstats/internal/factory"
	"github.com/mcoot/diamondstats/internal/model"
	"github.com/mcoot/diamondstats/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestRoster())

	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:       testutil.NopLogger(),
		PlayerIndex:  s.app.PlayerIndex,
		StatsService: s.app.StatsService,
	}))
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--server", s.server.URL, "--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)
	s.Contains(out, "Status: ok")
	s.Contains(out, "Index ready: yes")
}

func (s *CLISuite) TestPlayersSearchText() {
	out, err := s.run("players", "search", "mike", "tr")
	s.Require().NoError(err)
	s.Contains(out, "545361")
	s.Contains(out, "Trout")
	s.NotContains(out, "Ohtani")
}

func (s *CLISuite) TestPlayersSearchJSON() {
	out, err := s.run("-o", "json", "players", "search", "judge")
	s.Require().NoError(err)

	var players []Player
	s.Require().NoError(json.Unmarshal([]byte(out), &players))
	s.Require().Len(players, 1)
	s.Equal(Player{ID: 592450, FirstName: "Aaron", LastName: "Judge"}, players[0])
}

func (s *CLISuite) TestPlayersSearchTooShort() {
	_, err := s.run("players", "search", "ab")
	s.Require().Error(err)
	s.True(IsCode(err, "QUERY_TOO_SHORT"))

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(400, apiErr.Status)
	s.NotEmpty(apiErr.RequestID)
}

func (s *CLISuite) TestPlayersIndex() {
	out, err := s.run("players", "index")
	s.Require().NoError(err)
	s.Contains(out, "Ready: yes")
	s.Contains(out, "Players: 7")
}

func (s *CLISuite) TestBattingWithColumns() {
	events := model.NewTable([]string{"pitch_type", "release_speed", "events"})
	events.AppendRow([]any{"FF", 97.5, nil})
	events.AppendRow([]any{"SL", 86.0, "strikeout"})
	s.app.MockGateway.Events = events

	out, err := s.run("--columns", "pitch_type,events", "stats", "batting", "545361",
		"--start", "2024-04-01", "--end", "2024-04-30")
	s.Require().NoError(err)
	s.Contains(out, "pitch_type")
	s.Contains(out, "strikeout")
	s.NotContains(out, "release_speed")

	call := s.app.MockGateway.LastCall()
	s.Equal("BatterEvents", call.Method)
	s.Equal(2024, call.Start.Year())
	s.Equal(4, int(call.End.Month()))
}

func (s *CLISuite) TestBattingRequiresBothDates() {
	_, err := s.run("stats", "batting", "545361", "--start", "2024-04-01")
	s.Error(err)
}

func (s *CLISuite) TestPitchingRejectsBadID() {
	_, err := s.run("stats", "pitching", "ohtani")
	s.Error(err)
	s.Empty(s.app.MockGateway.Calls())
}

func (s *CLISuite) TestSeasonInvalidType() {
	_, err := s.run("stats", "season", "--type", "soccer", "--year", "2023")
	s.Require().Error(err)
	s.True(IsCode(err, "INVALID_STAT_TYPE"))
}

func (s *CLISuite) TestPercentiles() {
	ranks := model.NewTable([]string{"player_name", "player_id", "xwoba"})
	ranks.AppendRow([]any{"Trout, Mike", int64(545361), int64(97)})
	ranks.AppendRow([]any{"Judge, Aaron", int64(592450), int64(100)})
	s.app.MockGateway.Percentiles = ranks

	out, err := s.run("stats", "percentiles", "545361", "--type", "batter", "--year", "2023")
	s.Require().NoError(err)
	s.Contains(out, "Trout, Mike")
	s.NotContains(out, "Judge")
	s.Equal(model.PlayerTypeBatter, s.app.MockGateway.LastCall().PlayerType)
}

func (s *CLISuite) TestStandings() {
	east := model.NewTable([]string{"Tm", "W"})
	east.AppendRow([]any{"Baltimore Orioles", int64(101)})
	s.app.MockGateway.Divisions = []model.Division{{Name: "AL East Division", Table: east}}

	out, err := s.run("standings", "--year", "2023")
	s.Require().NoError(err)
	s.Contains(out, "AL East Division")
	s.Contains(out, "Baltimore Orioles")
	s.Contains(out, "101")
	s.Equal(2023, s.app.MockGateway.LastCall().Year)
}

func (s *CLISuite) TestSchedule() {
	_, err := s.run("schedule", "nyy", "--year", "2023")
	s.Require().NoError(err)

	call := s.app.MockGateway.LastCall()
	s.Equal("NYY", call.Team)
	s.Equal(2023, call.Year)
}

func (s *CLISuite) TestCacheClear() {
	out, err := s.run("cache", "clear")
	s.Require().NoError(err)
	s.Contains(out, "Cache cleared successfully")
	s.Equal(1, s.app.MockGateway.Cleared)
}
