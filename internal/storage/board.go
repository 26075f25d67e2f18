package storage

import (
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// MaxHighScores is the number of entries kept on the board.
const MaxHighScores = 3

// Entry is one line of the high-score board.
type Entry struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// Insert appends e to board, sorts descending by score and keeps the best
// limit entries. The sort is stable, so e lands after existing entries with
// the same score. board is not modified.
func Insert(board []Entry, e Entry, limit int) []Entry {
	out := append(slices.Clone(board), e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RankLines formats the board in stored order with 1-based ranks,
// e.g. "1. Ann - 30".
func RankLines(board []Entry) []string {
	lines := make([]string, len(board))
	for i, e := range board {
		lines[i] = fmt.Sprintf("%d. %s - %d", i+1, e.Name, e.Score)
	}
	return lines
}

// encodeBoard renders the board as a YAML sequence of {name, score} maps.
func encodeBoard(board []Entry) (string, error) {
	if board == nil {
		board = []Entry{}
	}
	data, err := yaml.Marshal(board)
	if err != nil {
		return "", fmt.Errorf("storage: cannot encode high scores: %w", err)
	}
	return string(data), nil
}

// decodeBoard parses a stored board. An empty body is an empty board.
func decodeBoard(body string) ([]Entry, error) {
	var board []Entry
	if err := yaml.Unmarshal([]byte(body), &board); err != nil {
		return nil, fmt.Errorf("storage: cannot decode high scores: %w", err)
	}
	if board == nil {
		board = []Entry{}
	}
	return board, nil
}
