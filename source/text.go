package source

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/philipjlin/TeamMatching/types"
)

// SyntaxError reports a malformed line of a text dataset.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Unwrap returns types.ErrInvalidInput.
func (e *SyntaxError) Unwrap() error {
	return types.ErrInvalidInput
}

// ParseText decodes the line-oriented text format:
//
//	# comment
//	Team red atk:3 def:1 int:0 res:2 cap:3
//	Player ann atk:5 def:2 int:1 res:0 prefs:red,blue
//
// Each record is a keyword, an ID, then key:value fields in any order.
// Attribute keys accept single-letter (a, d, i, r), short (atk, def, int,
// res) and long (attack, defense, intelligence, resourceProduction) names;
// omitted attributes are zero. cap is optional and only valid for teams; prefs only for players.
// Text after '#' is ignored.
func ParseText(r io.Reader) (*types.Dataset, error) {
	ds := &types.Dataset{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++

		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("%s record without an ID", fields[0])}
		}

		switch strings.ToLower(fields[0]) {
		case "team":
			team, err := parseTeam(fields[1], fields[2:])
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Msg: err.Error()}
			}
			ds.Teams = append(ds.Teams, team)
		case "player":
			player, err := parsePlayer(fields[1], fields[2:])
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Msg: err.Error()}
			}
			ds.Players = append(ds.Players, player)
		default:
			return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("unknown record %q, want Team or Player", fields[0])}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading text dataset: %w", err)
	}

	return ds, nil
}

func parseTeam(id string, fields []string) (types.Team, error) {
	team := types.Team{ID: id}
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		key, value, err := splitField(field, seen)
		if err != nil {
			return team, err
		}

		if key == "cap" {
			team.Capacity, err = parseInt(key, value)
			if err != nil {
				return team, err
			}

			continue
		}

		dst := attributeField(&team.Weights, key)
		if dst == nil {
			return team, fmt.Errorf("unknown team field %q", key)
		}
		if *dst, err = parseInt(key, value); err != nil {
			return team, err
		}
	}

	return team, nil
}

func parsePlayer(id string, fields []string) (types.Player, error) {
	player := types.Player{ID: id, Preferences: []string{}}
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		key, value, err := splitField(field, seen)
		if err != nil {
			return player, err
		}

		if key == "prefs" {
			if value != "" {
				player.Preferences = strings.Split(value, ",")
			}

			continue
		}

		dst := attributeField(&player.Skills, key)
		if dst == nil {
			return player, fmt.Errorf("unknown player field %q", key)
		}
		if *dst, err = parseInt(key, value); err != nil {
			return player, err
		}
	}

	return player, nil
}

// splitField splits "key:value" and normalizes key to its short name.
func splitField(field string, seen map[string]struct{}) (string, string, error) {
	key, value, ok := strings.Cut(field, ":")
	if !ok {
		return "", "", fmt.Errorf("field %q is not key:value", field)
	}

	key = canonicalKey(key)
	if _, dup := seen[key]; dup {
		return "", "", fmt.Errorf("field %q given more than once", key)
	}
	seen[key] = struct{}{}

	return key, value, nil
}

func canonicalKey(key string) string {
	switch strings.ToLower(key) {
	case "a", "atk", "attack":
		return "atk"
	case "d", "def", "defense":
		return "def"
	case "i", "int", "intelligence":
		return "int"
	case "r", "res", "resource", "resourceproduction":
		return "res"
	case "cap", "capacity":
		return "cap"
	case "prefs", "preferences":
		return "prefs"
	default:
		return key
	}
}

func attributeField(a *types.Attributes, key string) *int {
	switch key {
	case "atk":
		return &a.Attack
	case "def":
		return &a.Defense
	case "int":
		return &a.Intelligence
	case "res":
		return &a.ResourceProduction
	default:
		return nil
	}
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("field %q: %q is not an integer", key, value)
	}

	return n, nil
}
