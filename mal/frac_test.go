package mal

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFracString(t *testing.T) {
	f := FromInt(7)
	if f.String() != "7" {
		t.Errorf("expected integer rational to print as 7, is %s", f.String())
	}
	g, err := NewFrac(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.String() != "1/3" {
		t.Errorf("expected 1/3, is %s", g.String())
	}
}

func TestFracNormalization(t *testing.T) {
	f, _ := NewFrac(1, -2)
	if f.Num() != -1 || f.Den() != 2 {
		t.Errorf("expected sign on the numerator, is %d/%d", f.Num(), f.Den())
	}
	if _, err := NewFrac(1, 0); err == nil {
		t.Errorf("expected zero denominator to be refused")
	}
}

func TestFracEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.mal")
	defer teardown()
	//
	a, _ := NewFrac(4, 6)
	b, _ := NewFrac(2, 3)
	if !a.Equals(b) {
		t.Errorf("expected 4/6 to equal 2/3")
	}
	if a.Reduce() != b {
		t.Errorf("expected 4/6 to reduce to 2/3, is %s", a.Reduce())
	}
}

func TestFracArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.mal")
	defer teardown()
	//
	half, _ := NewFrac(1, 2)
	third, _ := NewFrac(1, 3)
	sum := half.Add(third)
	want, _ := NewFrac(5, 6)
	if !sum.Equals(want) {
		t.Errorf("expected 1/2+1/3 = 5/6, is %s", sum)
	}
	q := FromInt(1).Div(third)
	if !q.Equals(FromInt(3)) {
		t.Errorf("expected 1/(1/3) = 3, is %s", q)
	}
	d := half.Div(FromInt(-2))
	neg, _ := NewFrac(-1, 4)
	if !d.Equals(neg) {
		t.Errorf("expected (1/2)/(-2) = -1/4, is %s", d)
	}
	if d.Den() < 0 {
		t.Errorf("denominator must stay positive, is %d", d.Den())
	}
}

func TestFracCmp(t *testing.T) {
	half, _ := NewFrac(1, 2)
	third, _ := NewFrac(1, 3)
	if half.Cmp(third) != 1 || third.Cmp(half) != -1 || half.Cmp(half) != 0 {
		t.Errorf("Cmp ordering broken for 1/2 vs 1/3")
	}
}

func TestFracFloor(t *testing.T) {
	f, _ := NewFrac(7, 2)
	if f.Floor() != 3 {
		t.Errorf("expected floor(7/2) = 3, is %d", f.Floor())
	}
	g, _ := NewFrac(-7, 2)
	if g.Floor() != -4 {
		t.Errorf("expected floor(-7/2) = -4, is %d", g.Floor())
	}
	if FromInt(-3).Floor() != -3 {
		t.Errorf("expected floor(-3) = -3")
	}
}

func TestFracOverflowGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.mal")
	defer teardown()
	//
	big, _ := NewFrac(simplifyThreshold+1, 2*(simplifyThreshold+1))
	prod := big.Mul(FromInt(2))
	if !prod.Equals(FromInt(1)) {
		t.Errorf("expected guarded product to be 1, is %s", prod)
	}
}
