package geometric

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

func TestBranchesTerminal(t *testing.T) {
	origin := gg.Pt(400, 500)
	tests := []struct {
		name   string
		length float64
		depth  int
	}{
		{"zero depth", 100, 0},
		{"negative depth", 100, -2},
		{"short branch", 1.99, 5},
		{"zero length", 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Branches(origin, 90, tt.length, tt.depth, 30, 0.7); len(got) != 0 {
				t.Errorf("got %d segments, want none", len(got))
			}
		})
	}
}

func TestBranchesCount(t *testing.T) {
	tests := []struct {
		length float64
		depth  int
		decay  float64
		want   int
	}{
		{100, 1, 0.7, 1},
		{100, 3, 0.7, 7},
		{100, 5, 0.7, 31},
		// 100*0.7^11 < 2, so eleven levels survive
		{100, 14, 0.7, 1<<11 - 1},
		// 3 -> 1.5 stops after the trunk
		{3, 4, 0.5, 1},
	}
	for _, tt := range tests {
		got := Branches(gg.Pt(0, 0), 90, tt.length, tt.depth, 30, tt.decay)
		if len(got) != tt.want {
			t.Errorf("length %g depth %d decay %g: got %d segments, want %d",
				tt.length, tt.depth, tt.decay, len(got), tt.want)
		}
	}
}

func TestBranchesGeometry(t *testing.T) {
	origin := gg.Pt(100, 200)
	segs := Branches(origin, 90, 100, 2, 30, 0.5)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}

	// trunk grows up the screen
	if !near(segs[0].Start, origin) || !near(segs[0].End, gg.Pt(100, 100)) {
		t.Errorf("trunk = %v", segs[0])
	}

	// left child (60°) before right child (120°)
	left := gg.Pt(100+50*math.Cos(math.Pi/3), 100-50*math.Sin(math.Pi/3))
	right := gg.Pt(100+50*math.Cos(2*math.Pi/3), 100-50*math.Sin(2*math.Pi/3))
	if !near(segs[1].Start, segs[0].End) || !near(segs[1].End, left) {
		t.Errorf("left branch = %v, want end %v", segs[1], left)
	}
	if !near(segs[2].Start, segs[0].End) || !near(segs[2].End, right) {
		t.Errorf("right branch = %v, want end %v", segs[2], right)
	}
}

func TestBranchesPreOrder(t *testing.T) {
	segs := Branches(gg.Pt(0, 0), 90, 100, 3, 30, 0.7)
	// trunk, left, left-left, left-right, right, right-left, right-right
	if !near(segs[2].Start, segs[1].End) || !near(segs[3].Start, segs[1].End) {
		t.Error("left subtree is not contiguous")
	}
	if !near(segs[4].Start, segs[0].End) {
		t.Error("right child does not follow the left subtree")
	}
}

func TestRequestTree(t *testing.T) {
	req := Request{Origin: gg.Pt(400, 550), Length: 100, Angle: math.Pi / 2, Depth: 3}
	a := req.Tree()
	b := Branches(req.Origin, 90, 100, 3, DefaultBranchAngle, DefaultDecay)
	if len(a) != len(b) {
		t.Fatalf("got %d segments, want %d", len(a), len(b))
	}
	for i := range a {
		if !near(a[i].Start, b[i].Start) || !near(a[i].End, b[i].End) {
			t.Errorf("segment %d = %v, want %v", i, a[i], b[i])
		}
	}
	if !slices.Equal(req.Tree(), req.Tree()) {
		t.Error("identical requests produced different output")
	}
}

func TestCheckDepth(t *testing.T) {
	if err := CheckDepth(3, MaxKochDepth); err != nil {
		t.Errorf("CheckDepth(3) = %v", err)
	}
	if err := CheckDepth(-1, MaxKochDepth); !errors.Is(err, ErrNegativeDepth) {
		t.Errorf("CheckDepth(-1) = %v, want ErrNegativeDepth", err)
	}
	if err := CheckDepth(MaxKochDepth+1, MaxKochDepth); !errors.Is(err, ErrDepthTooLarge) {
		t.Errorf("CheckDepth(max+1) = %v, want ErrDepthTooLarge", err)
	}
}
