package game

import (
	"errors"
	"testing"
)

func TestParseScript_Tokens(t *testing.T) {
	events, err := ParseScript(" click:100:100, Right ,up,down,left,esc,h,c,quit,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Event{
		MouseUpEvent(100, 100),
		KeyDownEvent(KeyArrowRight),
		KeyDownEvent(KeyArrowUp),
		KeyDownEvent(KeyArrowDown),
		KeyDownEvent(KeyArrowLeft),
		KeyDownEvent(KeyEscape),
		KeyDownEvent(KeyH),
		KeyDownEvent(KeyC),
		QuitEvent(),
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], events[i])
		}
	}
}

func TestParseScript_Empty(t *testing.T) {
	events, err := ParseScript("")
	if err != nil || len(events) != 0 {
		t.Fatalf("expected no events and no error, got %v, %v", events, err)
	}
}

func TestParseScript_Errors(t *testing.T) {
	for _, s := range []string{"click:1", "click:a:2", "click:1:b", "jump", "right,unknown"} {
		if _, err := ParseScript(s); !errors.Is(err, ErrBadScript) {
			t.Fatalf("%q: expected ErrBadScript, got %v", s, err)
		}
	}
}
