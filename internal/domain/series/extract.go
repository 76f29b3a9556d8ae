package series

import (
	"fmt"
	"sort"
	"strings"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/timeutil"
)

// bracketSeries is the number of series in a full modern bracket: eight
// quarterfinals, four semifinals, two conference finals, one final.
const bracketSeries = 15

// roundRanks partitions a season's series, ranked by first-game date, into
// playoff rounds. Positional assignment is only sound over a complete
// bracket, hence the strict bracketSeries check in ExtractSeries.
var roundRanks = []struct {
	round Round
	count int
}{
	{ConfQuarters, 8},
	{ConfSemis, 4},
	{ConfFinals, 2},
	{Finals, 1},
}

type matchupGroup struct {
	id      string
	games   []domain.GameRecord
	summary SeriesSummary
}

// ExtractSeries groups one season's playoff game records into series and
// derives a summary per series, with rounds assigned by chronological order
// of each series' first game. The whole season fails on any malformed group
// or on a series count other than a full bracket: round assignment is a
// global positional function, so partial output would mis-label rounds.
func ExtractSeries(seasonYear int, records []domain.GameRecord) ([]SeriesSummary, error) {
	groups := make(map[string]*matchupGroup)
	order := make([]string, 0, bracketSeries)

	for _, rec := range records {
		if err := validateRecord(seasonYear, rec); err != nil {
			return nil, err
		}
		id := MatchupID(seasonYear, rec.HomeTeam, rec.AwayTeam)
		g, ok := groups[id]
		if !ok {
			g = &matchupGroup{id: id}
			groups[id] = g
			order = append(order, id)
		}
		g.games = append(g.games, rec)
	}

	for _, id := range order {
		g := groups[id]
		summary, err := summarize(seasonYear, g.games)
		if err != nil {
			return nil, fmt.Errorf("%w: matchup %s: %v", ErrMalformedSeries, id, err)
		}
		g.summary = summary
	}

	if len(order) != bracketSeries {
		return nil, fmt.Errorf("%w: season %d yielded %d series, want %d",
			ErrMalformedSeries, seasonYear, len(order), bracketSeries)
	}

	// Rank series by first-game date; round follows from rank.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := groups[order[i]], groups[order[j]]
		if a.games[0].Date != b.games[0].Date {
			return a.games[0].Date < b.games[0].Date
		}
		return a.games[0].GameID < b.games[0].GameID
	})

	summaries := make([]SeriesSummary, 0, bracketSeries)
	rank := 0
	for _, rr := range roundRanks {
		for i := 0; i < rr.count; i++ {
			s := groups[order[rank]].summary
			s.Round = rr.round
			summaries = append(summaries, s)
			rank++
		}
	}
	return summaries, nil
}

// summarize derives one SeriesSummary from a matchup group, sorted in place
// by game date.
func summarize(seasonYear int, games []domain.GameRecord) (SeriesSummary, error) {
	sort.SliceStable(games, func(i, j int) bool {
		if games[i].Date != games[j].Date {
			return games[i].Date < games[j].Date
		}
		return games[i].GameID < games[j].GameID
	})

	// Whoever hosted game 1 holds series home-court advantage throughout.
	first := games[0]
	advTeam := first.HomeTeam
	otherTeam := first.AwayTeam

	homeTeams := make([]string, len(games))
	gameWinners := make([]string, len(games))
	gameIDs := make([]string, len(games))
	roles := make([]Role, len(games))
	for i, g := range games {
		homeTeams[i] = g.HomeTeam
		gameWinners[i] = g.Winner
		gameIDs[i] = g.GameID
		if g.Winner == advTeam {
			roles[i] = Adv
		} else {
			roles[i] = Other
		}
	}

	// The canonical outcome validates that the series has a unique decisive
	// winner. A clinch before the last recorded game means extra games were
	// recorded after the series was decided, which real data never contains.
	outcome, err := OutcomeFromRoles(roles)
	if err != nil {
		return SeriesSummary{}, err
	}
	if outcome.GamesPlayed() != len(games) {
		return SeriesSummary{}, fmt.Errorf("%d games recorded after the clinch",
			len(games)-outcome.GamesPlayed())
	}

	return SeriesSummary{
		Season:      seasonYear,
		BestOf:      outcome.BestOf(),
		GamesPlayed: len(games),
		AdvTeam:     advTeam,
		OtherTeam:   otherTeam,
		WinnerTeam:  games[len(games)-1].Winner,
		HomeTeams:   homeTeams,
		GameWinners: gameWinners,
		GameIDs:     gameIDs,
	}, nil
}

func validateRecord(seasonYear int, rec domain.GameRecord) error {
	if rec.Season != seasonYear {
		return fmt.Errorf("%w: game %s belongs to season %d, extracting %d",
			ErrMalformedSeries, rec.GameID, rec.Season, seasonYear)
	}
	if rec.HomeTeam == "" || rec.AwayTeam == "" || rec.HomeTeam == rec.AwayTeam {
		return fmt.Errorf("%w: game %s has invalid teams %q/%q",
			ErrMalformedSeries, rec.GameID, rec.HomeTeam, rec.AwayTeam)
	}
	if rec.Winner != rec.HomeTeam && rec.Winner != rec.AwayTeam {
		return fmt.Errorf("%w: game %s winner %q is neither participant",
			ErrMalformedSeries, rec.GameID, rec.Winner)
	}
	if _, err := timeutil.ParseDate(rec.Date); err != nil {
		return fmt.Errorf("%w: game %s has invalid date %q",
			ErrMalformedSeries, rec.GameID, rec.Date)
	}
	return nil
}

// MatchupID builds the season-scoped, order-independent key for a pair of
// teams, so both legs of a pairing group together regardless of listing
// order.
func MatchupID(seasonYear int, teamA, teamB string) string {
	if strings.Compare(teamB, teamA) < 0 {
		teamA, teamB = teamB, teamA
	}
	return fmt.Sprintf("%s_%s_%d", teamA, teamB, seasonYear)
}

// FilterRound returns only the summaries belonging to one round, preserving
// order.
func FilterRound(all []SeriesSummary, round Round) []SeriesSummary {
	filtered := make([]SeriesSummary, 0, len(all))
	for _, s := range all {
		if s.Round == round {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
