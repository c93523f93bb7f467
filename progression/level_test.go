package progression

import (
	"testing"

	"github.com/cppla/travelquest/catalog"
)

func TestLevelForZero(t *testing.T) {
	l := LevelFor(0)
	if l.Level != 1 || l.Title != "여행 초보" {
		t.Fatalf("expected level 1 여행 초보, got %+v", l)
	}
	p := ProgressToNext(0)
	if p.Current != 0 || p.Max != 100 || p.Percentage != 0 {
		t.Fatalf("unexpected progress at 0 points: %+v", p)
	}
	if p.Next == nil || p.Next.Level != 2 {
		t.Fatalf("expected next level 2, got %+v", p.Next)
	}
}

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		points int
		level  int
	}{
		{-5, 1}, {0, 1}, {99, 1}, {100, 2}, {299, 2}, {300, 3},
		{999, 4}, {1000, 5}, {5499, 9}, {5500, 10}, {100000, 10},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.points).Level; got != tc.level {
			t.Errorf("LevelFor(%d) = %d, want %d", tc.points, got, tc.level)
		}
	}
}

func TestProgressToNextBounds(t *testing.T) {
	for points := 0; points <= 7000; points += 7 {
		p := ProgressToNext(points)
		if p.Next == nil {
			if p.Percentage != 100 || p.Current != points || p.Max != points {
				t.Fatalf("terminal progress malformed at %d: %+v", points, p)
			}
			continue
		}
		if p.Current < 0 || p.Current > p.Max {
			t.Fatalf("current out of range at %d: %+v", points, p)
		}
		if p.Percentage < 0 || p.Percentage > 100 {
			t.Fatalf("percentage out of range at %d: %+v", points, p)
		}
	}
}

func TestProgressToNextMidLevel(t *testing.T) {
	p := ProgressToNext(450)
	if p.Level.Level != 3 || p.Current != 150 || p.Max != 300 || p.Percentage != 50 {
		t.Fatalf("unexpected progress at 450: %+v", p)
	}
}

func TestProgressToNextMaxLevel(t *testing.T) {
	levels := catalog.Levels()
	top := levels[len(levels)-1]
	p := ProgressToNext(top.MinPoints + 10)
	if p.Next != nil || p.Percentage != 100 || p.Current != top.MinPoints+10 || p.Max != top.MinPoints+10 {
		t.Fatalf("expected terminal state, got %+v", p)
	}
}
