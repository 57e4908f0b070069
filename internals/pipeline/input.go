package pipeline

import (
	"errors"
	"strconv"
	"strings"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
)

// Input is a validated request for one mod
type Input struct {
	APIKey string
	Game   string
	ModID  int
}

// ParseInput trims and validates the raw user input. It never does any I/O.
func ParseInput(apiKey string, game string, modID string) (*Input, error) {
	apiKey = strings.TrimSpace(apiKey)
	game = strings.TrimSpace(game)
	modID = strings.TrimSpace(modID)

	switch {
	case apiKey == "":
		return nil, &merrors.ValidationError{Field: "apikey", Message: "API key is empty", Missing: true}
	case game == "":
		return nil, &merrors.ValidationError{Field: "game", Message: "game name is empty", Missing: true}
	case modID == "":
		return nil, &merrors.ValidationError{Field: "mod_id", Message: "mod ID is empty", Missing: true}
	}

	id, err := strconv.Atoi(modID)
	if err != nil {
		return nil, &merrors.ValidationError{
			Field:   "mod_id",
			Message: "mod ID must be an integer, got \"" + modID + "\"",
		}
	}
	if id <= 0 {
		return nil, &merrors.ValidationError{
			Field:   "mod_id",
			Message: "mod ID must be positive, got " + modID,
		}
	}

	return &Input{APIKey: apiKey, Game: game, ModID: id}, nil
}

// IsMissing is true if err is a ValidationError for an empty field
func IsMissing(err error) bool {
	var vErr *merrors.ValidationError
	return errors.As(err, &vErr) && vErr.Missing
}
