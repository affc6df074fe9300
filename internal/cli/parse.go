package cli

import (
	"strconv"
	"strings"
)

// splitKeyword separates the lower-cased command keyword from the rest of
// the line at the first plain space. The rest keeps its original case. A tab
// does not end the keyword, so "add\tx" is not an add command.
func splitKeyword(line string) (keyword, args string) {
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseAddArgs: one word is the title; otherwise the first two words are the
// title and whatever follows is the description.
func parseAddArgs(args string) (title, description string, ok bool) {
	words := strings.Fields(args)
	switch len(words) {
	case 0:
		return "", "", false
	case 1:
		return words[0], "", true
	default:
		return strings.Join(words[:2], " "), strings.Join(words[2:], " "), true
	}
}

// parseUpdateArgs reads "<id> <title> [description]". Exactly two words after
// the id are split one and one; three or more follow the add rule.
func parseUpdateArgs(args string) (id string, title, description string, ok bool) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return "", "", "", false
	}
	id, words := fields[0], fields[1:]
	switch len(words) {
	case 1:
		return id, words[0], "", true
	case 2:
		return id, words[0], words[1], true
	default:
		return id, strings.Join(words[:2], " "), strings.Join(words[2:], " "), true
	}
}
