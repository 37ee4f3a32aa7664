package game

import "testing"

func TestSimLogEntry_StringFixedWidth(t *testing.T) {
	e := SimLogEntry{Frame: 42, Category: "move", Key: "step", Value: "right (4,4) -> (5,4)"}
	want := "[F=042] move      step     right (4,4) -> (5,4)"
	if got := e.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, logInput, keyIgnored, "x")
	if len(quiet.Entries()) != 0 {
		t.Fatal("non-verbose log should drop verbose entries")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, logInput, keyIgnored, "x")
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose log should keep verbose entries")
	}
}

func TestSimLog_FilterAndLastOf(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, logState, keyStart, "a")
	sl.Add(2, logMove, keyStep, "b")
	sl.Add(3, logMove, keyClick, "c")
	sl.Add(4, logMove, keyStep, "d")

	if n := len(sl.Filter(logMove, "")); n != 3 {
		t.Fatalf("expected 3 move entries, got %d", n)
	}
	if n := sl.CountCategory(logMove, keyStep); n != 2 {
		t.Fatalf("expected 2 step entries, got %d", n)
	}
	last, ok := sl.LastOf(logMove, keyStep)
	if !ok || last.Value != "d" {
		t.Fatalf("expected last step value d, got %+v ok=%t", last, ok)
	}
	if _, ok := sl.LastOf(logState, keyStop); ok {
		t.Fatal("expected no stop entry")
	}
}

func TestSimLog_Tail(t *testing.T) {
	sl := NewSimLog(false)
	for i := 1; i <= 5; i++ {
		sl.Add(i, logMove, keyStep, "")
	}
	tail := sl.Tail(2)
	if len(tail) != 2 || tail[0].Frame != 4 || tail[1].Frame != 5 {
		t.Fatalf("expected frames 4,5, got %+v", tail)
	}
	if len(sl.Tail(10)) != 5 {
		t.Fatal("oversized tail should return every entry")
	}
	if sl.Tail(0) != nil {
		t.Fatal("zero tail should be nil")
	}
}
