package check

import "testing"

func TestMeetsDifficulty(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		difficulty int
		want       bool
	}{
		{"tie fails", 15, 15, false},
		{"above difficulty", 16, 15, true},
		{"below difficulty", 5, 13, false},
		{"negative total", -5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeetsDifficulty(tt.total, tt.difficulty)
			if got != tt.want {
				t.Errorf("MeetsDifficulty(%d, %d) = %v, want %v", tt.total, tt.difficulty, got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	got := Check(20, 17)
	if !got.Success || got.Margin != 3 || got.Difficulty != 17 {
		t.Fatalf("Check(20, 17) = %+v", got)
	}
	got = Check(12, 13)
	if got.Success || got.Margin != -1 {
		t.Fatalf("Check(12, 13) = %+v", got)
	}
}

func TestLookupDifficulty(t *testing.T) {
	d, err := LookupDifficulty(" Professional ")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if d.Value != 17 {
		t.Fatalf("professional DV = %d, want 17", d.Value)
	}
	if _, err := LookupDifficulty("impossible"); err == nil {
		t.Fatal("expected unknown difficulty error")
	}
}

func TestDifficultiesAscending(t *testing.T) {
	list := Difficulties()
	for i := 1; i < len(list); i++ {
		if list[i].Value <= list[i-1].Value {
			t.Fatalf("difficulty %s (%d) is not above %s (%d)", list[i].Key, list[i].Value, list[i-1].Key, list[i-1].Value)
		}
	}
	list[0].Value = 0
	if Difficulties()[0].Value != 9 {
		t.Fatal("Difficulties should return a copy")
	}
}
