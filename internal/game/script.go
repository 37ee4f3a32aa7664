package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadScript is returned by ParseScript for malformed tokens.
var ErrBadScript = errors.New("bad script")

// ParseScript turns a comma-separated event script into events.
//
//	click:100:100,right,right,up,esc,quit
//
// Key tokens use Key.String names; whitespace and case are ignored.
func ParseScript(script string) ([]Event, error) {
	var events []Event
	for i, raw := range strings.Split(script, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok == "" {
			continue
		}
		ev, err := parseToken(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %v", ErrBadScript, i+1, tok, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseToken(tok string) (Event, error) {
	if tok == "quit" {
		return QuitEvent(), nil
	}
	if rest, ok := strings.CutPrefix(tok, "click:"); ok {
		xs, ys, found := strings.Cut(rest, ":")
		if !found {
			return Event{}, errors.New("want click:x:y")
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return Event{}, fmt.Errorf("x: %w", err)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return Event{}, fmt.Errorf("y: %w", err)
		}
		return MouseUpEvent(x, y), nil
	}
	for k := KeyEscape; k <= KeyC; k++ {
		if tok == k.String() {
			return KeyDownEvent(k), nil
		}
	}
	return Event{}, errors.New("unknown token")
}
