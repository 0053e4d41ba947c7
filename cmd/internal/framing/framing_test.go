package framing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func boxAround(center mgl64.Vec3, extent float64) Bounds {
	b := NewBounds()
	half := extent / 2
	b.Extend(center.Sub(mgl64.Vec3{half, half, half}))
	b.Extend(center.Add(mgl64.Vec3{half, half, half}))
	return b
}

func TestFrameLooksAtCenter(t *testing.T) {
	center := mgl64.Vec3{4, -2, 7}
	p := Frame(boxAround(center, 3), 1.0)

	if p.Target.Sub(center).Len() > 1e-9 {
		t.Errorf("expected look-at %v, got %v", center, p.Target)
	}
}

func TestFrameDistanceScalesLinearly(t *testing.T) {
	p1 := Frame(boxAround(mgl64.Vec3{}, 10), 1.0)
	p2 := Frame(boxAround(mgl64.Vec3{}, 20), 1.0)

	ratio := p2.Distance / p1.Distance
	if math.Abs(ratio-2.0) > 1e-9 {
		t.Errorf("expected distance to double with extent, got ratio %f", ratio)
	}
}

func TestFrameEyeSitsAtDistance(t *testing.T) {
	center := mgl64.Vec3{1, 2, 3}
	p := Frame(boxAround(center, 8), 1.0)

	got := p.Eye.Sub(center).Len()
	if math.Abs(got-p.Distance) > 1e-9 {
		t.Errorf("expected eye %f from center, got %f", p.Distance, got)
	}
}

func TestFrameDegenerateBox(t *testing.T) {
	b := NewBounds()
	b.Extend(mgl64.Vec3{5, 5, 5}) // single point, zero extent

	p := Frame(b, 1.0)
	if math.IsNaN(p.Distance) || math.IsInf(p.Distance, 0) || p.Distance <= 0 {
		t.Fatalf("expected finite positive distance, got %f", p.Distance)
	}
	if p.Distance != minDistance {
		t.Errorf("expected minimum distance %f, got %f", minDistance, p.Distance)
	}
	if p.Target.Sub(mgl64.Vec3{5, 5, 5}).Len() > 1e-9 {
		t.Errorf("expected look-at at the point, got %v", p.Target)
	}
}

func TestFrameEmptyBox(t *testing.T) {
	p := Frame(NewBounds(), 1.0)
	if p.Distance != minDistance {
		t.Errorf("expected minimum distance for empty box, got %f", p.Distance)
	}
	if p.Target.Len() > 1e-9 {
		t.Errorf("expected origin look-at for empty box, got %v", p.Target)
	}
}

func TestFrameNarrowDimensionGoverns(t *testing.T) {
	square := Frame(boxAround(mgl64.Vec3{}, 10), 1.0)
	tall := Frame(boxAround(mgl64.Vec3{}, 10), 0.5)
	wide := Frame(boxAround(mgl64.Vec3{}, 10), 2.0)

	if tall.Distance <= square.Distance {
		t.Errorf("tall frame should need more distance: square %f, tall %f",
			square.Distance, tall.Distance)
	}
	if wide.Distance <= square.Distance {
		t.Errorf("wide frame should need more distance: square %f, wide %f",
			square.Distance, wide.Distance)
	}

	// Halving the width or halving the height cuts the narrow
	// dimension by the same factor, so the distances match.
	if math.Abs(wide.Distance-tall.Distance) > 1e-9 {
		t.Errorf("aspect 2.0 and 0.5 should need equal distance: wide %f, tall %f",
			wide.Distance, tall.Distance)
	}
}

func TestFrameKeepsExtentInsideNarrowDimension(t *testing.T) {
	const extent = 10.0

	for _, aspect := range []float64{0.25, 0.5, 1.0, 16.0 / 9.0, 2.0, 4.0} {
		p := Frame(boxAround(mgl64.Vec3{}, extent), aspect)

		// Half-angle of the narrow frame dimension at the render FOV.
		half := p.FOV / 2
		if aspect > 1 {
			half = math.Atan(math.Tan(half) / aspect)
		} else if aspect < 1 {
			half = math.Atan(math.Tan(half) * aspect)
		}

		visible := 2 * p.Distance * math.Tan(half)
		if visible < extent {
			t.Errorf("aspect %g: visible span %f is smaller than extent %f",
				aspect, visible, extent)
		}
	}
}

func TestFrameDeterministic(t *testing.T) {
	b := boxAround(mgl64.Vec3{-3, 0, 12}, 6.5)
	p1 := Frame(b, 16.0/9.0)
	p2 := Frame(b, 16.0/9.0)

	if p1 != p2 {
		t.Errorf("identical inputs produced different placements: %+v vs %+v", p1, p2)
	}
}

func TestBoundsExtend(t *testing.T) {
	b := NewBounds()
	if !b.Empty() {
		t.Fatal("new bounds should be empty")
	}

	b.Extend(mgl64.Vec3{1, -2, 3})
	b.Extend(mgl64.Vec3{-1, 4, 0})

	if b.Empty() {
		t.Fatal("extended bounds should not be empty")
	}
	wantMin := mgl64.Vec3{-1, -2, 0}
	wantMax := mgl64.Vec3{1, 4, 3}
	if b.Min != wantMin || b.Max != wantMax {
		t.Errorf("got min %v max %v, want min %v max %v", b.Min, b.Max, wantMin, wantMax)
	}
	if b.MaxExtent() != 6 {
		t.Errorf("expected max extent 6, got %f", b.MaxExtent())
	}
}
