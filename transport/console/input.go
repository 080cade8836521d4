package console

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedMove = errors.New("malformed move input")

// ParseMove turns a player's raw answer into zero-based board coordinates.
// The expected shape is two digits, column first then row, both 1-based
// ("12" means column 1, row 2). Range checking is left to the engine, so
// answers like "99" on a 3x3 board parse fine and get rejected there.
func ParseMove(input string) (row, col int, err error) {
	token := strings.TrimSpace(input)
	if len(token) != 2 {
		return 0, 0, fmt.Errorf("%w: want column and row digits, got %q", ErrMalformedMove, input)
	}

	colDigit, rowDigit := token[0], token[1]
	if colDigit < '0' || colDigit > '9' || rowDigit < '0' || rowDigit > '9' {
		return 0, 0, fmt.Errorf("%w: want column and row digits, got %q", ErrMalformedMove, input)
	}

	return int(rowDigit-'0') - 1, int(colDigit-'0') - 1, nil
}
