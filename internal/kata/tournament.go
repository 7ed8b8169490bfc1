package kata

import "fmt"

const (
	awayTeamWon = 0
	homeTeamWon = 1
	winPoints   = 3
)

// TournamentWinner scores a round robin and returns the team with the most
// points. Each competition is [home, away]; results[i] is 1 when the home
// team won competitions[i] and 0 when the away team did. Wins are worth 3
// points. On a tie the team that reached the top score first wins.
func TournamentWinner(competitions [][2]string, results []int) (string, error) {
	if len(competitions) == 0 {
		return "", ErrNoCompetitions
	}
	if len(results) != len(competitions) {
		return "", fmt.Errorf("%d competitions, %d results: %w", len(competitions), len(results), ErrResultsMismatch)
	}

	points := make(map[string]int)
	best := ""
	for i, c := range competitions {
		var winner string
		switch results[i] {
		case homeTeamWon:
			winner = c[0]
		case awayTeamWon:
			winner = c[1]
		default:
			return "", fmt.Errorf("result %d is %d: %w", i, results[i], ErrInvalidResult)
		}

		points[winner] += winPoints
		if best == "" || points[winner] > points[best] {
			best = winner
		}
	}
	return best, nil
}
