package game

import (
	"strings"
	"testing"
)

func TestReport_FreshSession(t *testing.T) {
	s := NewSession(testGrid(), nil)
	r := s.Report()
	for _, want := range []string{
		"grid: tile=22 tiles=30x20 window=660x440",
		"frame=0 phase=menu",
		"agent: tile=(0,0) pixel=(11,11)",
		"start button: x=280 y=195 w=100 h=50 started=false",
		"(no entries recorded yet)",
	} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}

func TestReport_TailIsBounded(t *testing.T) {
	ts := newTestSim(t, WithStarted())
	for i := 0; i < reportLogLines+10; i++ {
		ts.Press(KeyArrowDown)
	}
	r := ts.Session.Report()
	if !strings.Contains(r, "== last 20 log entries ==") {
		t.Fatalf("expected a bounded tail:\n%s", r)
	}
	if strings.Contains(r, "state     start") {
		t.Fatalf("start entry should have scrolled out of the tail:\n%s", r)
	}
}
