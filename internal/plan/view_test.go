package plan

import "testing"

func TestBuildDayView(t *testing.T) {
	s := newTestStore(t)
	s.AddToDay(brunch, Saturday) // b1, 90m
	s.AddToDay(movie, Sunday)    // b2, 60m
	s.AddToDay(hiking, Saturday) // b3, 180m
	s.UpdateBlock("b1", WithStart(9*60))
	s.UpdateBlock("b3", WithStart(10*60))

	sat := BuildDayView(s.Blocks(), Saturday)
	assertIDs(t, sat.Blocks, "b1", "b3")
	if sat.TotalMinutes != 270 {
		t.Errorf("TotalMinutes = %d, want 270", sat.TotalMinutes)
	}
	if msg, ok := sat.Conflict("b1"); !ok || msg != "overlaps with Hiking 10:00–13:00" {
		t.Errorf("b1 conflict = %q, %v", msg, ok)
	}
	if msg, ok := sat.Conflict("b3"); !ok || msg != "overlaps with Brunch 09:00–10:30" {
		t.Errorf("b3 conflict = %q, %v", msg, ok)
	}

	sun := BuildDayView(s.Blocks(), Sunday)
	assertIDs(t, sun.Blocks, "b2")
	if sun.TotalMinutes != 60 {
		t.Errorf("TotalMinutes = %d, want 60", sun.TotalMinutes)
	}
	if len(sun.Conflicts) != 0 {
		t.Errorf("expected no conflicts on sunday, got %v", sun.Conflicts)
	}
}

func TestBuildDayView_Recomputes(t *testing.T) {
	s := newTestStore(t)
	s.AddToDay(brunch, Saturday)
	s.AddToDay(hiking, Saturday)
	s.UpdateBlock("b1", WithStart(600))
	s.UpdateBlock("b2", WithStart(630))

	if v := BuildDayView(s.Blocks(), Saturday); len(v.Conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %v", v.Conflicts)
	}

	s.UpdateBlock("b2", Unschedule())
	if v := BuildDayView(s.Blocks(), Saturday); len(v.Conflicts) != 0 {
		t.Errorf("expected conflicts to clear, got %v", v.Conflicts)
	}
}

func TestBuildBoard(t *testing.T) {
	board := BuildBoard(nil)
	if len(board) != 2 || board[0].Day != Saturday || board[1].Day != Sunday {
		t.Fatalf("unexpected board: %+v", board)
	}
	if board[0].Blocks == nil {
		t.Error("expected non-nil empty blocks")
	}
}
