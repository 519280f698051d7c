package space

import (
	"errors"
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat64(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-12 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertElement(t *testing.T, el *Element[float64], expected []float64, msg string) {
	t.Helper()
	data := el.Data()
	if len(data) != len(expected) {
		t.Fatalf("%s: expected %d entries, got %d", msg, len(expected), len(data))
	}
	for i := range expected {
		if math.Abs(data[i]-expected[i]) > 1e-12 {
			t.Errorf("%s: entry %d: expected %v, got %v", msg, i, expected[i], data[i])
			return
		}
	}
}

// Shape tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		n     int
	}{
		{Shape{}, 1},
		{Shape{3}, 3},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.n {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.n)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	if !s.Equal(c) {
		t.Error("clone not equal to original")
	}
	c[0] = 9
	if s[0] != 2 {
		t.Error("clone shares backing array with original")
	}
	if s.Equal(Shape{2}) || s.Equal(Shape{3, 2}) {
		t.Error("unequal shapes reported equal")
	}
}

// DataType tests

func TestDataTypeSizeString(t *testing.T) {
	if Float32.Size() != 4 || Float64.Size() != 8 {
		t.Errorf("wrong sizes: %d, %d", Float32.Size(), Float64.Size())
	}
	if Float32.String() != "float32" || Float64.String() != "float64" {
		t.Errorf("wrong names: %q, %q", Float32, Float64)
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
}

// Space tests

func TestNewSpaceInvalidShape(t *testing.T) {
	if _, err := NewSpace[float64](Shape{0}); err == nil {
		t.Error("space with zero dimension accepted")
	}
}

func TestSpaceElementOwnership(t *testing.T) {
	r3 := Rn[float64](3)
	other := Rn[float64](3)

	x, err := r3.Element([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if !r3.Contains(x) {
		t.Error("space does not contain its own element")
	}
	if other.Contains(x) {
		t.Error("element contained in a space that did not create it")
	}
	if r3.Contains(42) {
		t.Error("space contains a non-element value")
	}
}

func TestSpaceElementLengthValidated(t *testing.T) {
	r3 := Rn[float64](3)
	if _, err := r3.Element([]float64{1, 2}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestSpaceZeroFull(t *testing.T) {
	r3 := Rn[float64](3)
	assertElement(t, r3.Zero(), []float64{0, 0, 0}, "Zero")
	assertElement(t, r3.Full(2.5), []float64{2.5, 2.5, 2.5}, "Full")
}

// Element tests

func TestElementLincomb(t *testing.T) {
	r3 := Rn[float64](3)
	x, _ := r3.Element([]float64{1, 2, 3})
	y, _ := r3.Element([]float64{10, 20, 30})
	z := r3.Zero()

	if err := z.Lincomb(2, x, 1, y); err != nil {
		t.Fatalf("Lincomb: %v", err)
	}
	assertElement(t, z, []float64{12, 24, 36}, "2*x + y")
}

func TestElementLincombAliasing(t *testing.T) {
	r3 := Rn[float64](3)
	x, _ := r3.Element([]float64{1, 2, 3})

	// x = 1*x + 1*x must work with all operands aliased.
	if err := x.Lincomb(1, x, 1, x); err != nil {
		t.Fatalf("Lincomb: %v", err)
	}
	assertElement(t, x, []float64{2, 4, 6}, "x + x in place")
}

func TestElementLincombSpaceMismatch(t *testing.T) {
	r3 := Rn[float64](3)
	other := Rn[float64](3)
	x, _ := other.Element([]float64{1, 2, 3})
	z := r3.Zero()

	if err := z.Lincomb(1, x, 1, x); !errors.Is(err, ErrSpaceMismatch) {
		t.Errorf("expected ErrSpaceMismatch, got %v", err)
	}
}

func TestElementMultiply(t *testing.T) {
	r3 := Rn[float64](3)
	x, _ := r3.Element([]float64{1, 2, 3})
	y, _ := r3.Element([]float64{4, 5, 6})

	if err := x.Multiply(y); err != nil {
		t.Fatalf("Multiply: %v", err)
	}
	assertElement(t, x, []float64{4, 10, 18}, "x .* y")
}

func TestElementScaleAssign(t *testing.T) {
	r2 := Rn[float64](2)
	x, _ := r2.Element([]float64{3, 4})
	y := r2.Zero()

	if err := y.Assign(x); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	y.Scale(2)
	assertElement(t, y, []float64{6, 8}, "2*x")
	assertElement(t, x, []float64{3, 4}, "x untouched by scaling the copy")
}

func TestElementInnerNorm(t *testing.T) {
	r2 := Rn[float64](2)
	x, _ := r2.Element([]float64{3, 4})
	y, _ := r2.Element([]float64{1, 2})

	dot, err := x.Inner(y)
	if err != nil {
		t.Fatalf("Inner: %v", err)
	}
	assertEqualFloat64(t, 11, dot, "<x, y>")
	assertEqualFloat64(t, 5, x.Norm(), "|x|")
}

func TestElementEqualAllClose(t *testing.T) {
	r2 := Rn[float64](2)
	x, _ := r2.Element([]float64{1, 2})
	y, _ := r2.Element([]float64{1, 2})
	z, _ := r2.Element([]float64{1, 2 + 1e-9})

	if !x.Equal(y) {
		t.Error("equal elements reported unequal")
	}
	if x.Equal(z) {
		t.Error("unequal elements reported equal")
	}
	if !x.AllClose(z, 1e-6) {
		t.Error("close elements reported far")
	}
	if x.AllClose(z, 1e-12) {
		t.Error("far elements reported close")
	}
}

func TestElementAtSetBounds(t *testing.T) {
	r2 := Rn[float64](2)
	x, _ := r2.Element([]float64{1, 2})

	x.Set(1, 9)
	assertEqualFloat64(t, 9, x.At(1), "At after Set")

	defer func() {
		if recover() == nil {
			t.Error("out-of-bounds At did not panic")
		}
	}()
	x.At(2)
}

// Set tests

func TestUniversalContainsAnything(t *testing.T) {
	if !Universal.Contains(42) || !Universal.Contains("anything") || !Universal.Contains(nil) {
		t.Error("universal set rejected a value")
	}
}

func TestProductContains(t *testing.T) {
	r3 := Rn[float64](3)
	other := Rn[float64](3)
	prod := NewProduct(r3, r3)

	x, _ := r3.Element([]float64{1, 2, 3})
	y, _ := r3.Element([]float64{4, 5, 6})
	foreign, _ := other.Element([]float64{7, 8, 9})

	pair, err := prod.Element(x, y)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if !prod.Contains(pair) {
		t.Error("product does not contain its own pair")
	}
	if prod.Contains(Pair[float64]{A: x, B: foreign}) {
		t.Error("pair with foreign component accepted")
	}
	if prod.Contains(x) {
		t.Error("bare element accepted by product")
	}
	if _, err := prod.Element(x, foreign); !errors.Is(err, ErrSpaceMismatch) {
		t.Errorf("expected ErrSpaceMismatch, got %v", err)
	}
}

func TestNewPowerValidated(t *testing.T) {
	r3 := Rn[float64](3)
	if _, err := NewPower(r3, 0); err == nil {
		t.Error("power with zero components accepted")
	}
	if _, err := NewPower(r3, -1); err == nil {
		t.Error("power with negative components accepted")
	}
}

func TestPowerContains(t *testing.T) {
	r3 := Rn[float64](3)
	other := Rn[float64](3)
	pw, err := NewPower(r3, 2)
	if err != nil {
		t.Fatalf("NewPower: %v", err)
	}

	x, _ := r3.Element([]float64{1, 2, 3})
	y, _ := r3.Element([]float64{4, 5, 6})
	foreign, _ := other.Element([]float64{7, 8, 9})

	tup, err := pw.Element(x, y)
	if err != nil {
		t.Fatalf("Element: %v", err)
	}
	if !pw.Contains(tup) {
		t.Error("power does not contain its own tuple")
	}
	if pw.Contains(Tuple[float64]{x, foreign}) {
		t.Error("tuple with foreign component accepted")
	}
	if pw.Contains(Tuple[float64]{x}) {
		t.Error("tuple of wrong length accepted")
	}
	if pw.Contains(x) {
		t.Error("bare element accepted by power")
	}
}

func TestPowerElementValidated(t *testing.T) {
	r3 := Rn[float64](3)
	other := Rn[float64](3)
	pw, _ := NewPower(r3, 2)

	x, _ := r3.Element([]float64{1, 2, 3})
	foreign, _ := other.Element([]float64{4, 5, 6})

	if _, err := pw.Element(x); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := pw.Element(x, foreign); !errors.Is(err, ErrSpaceMismatch) {
		t.Errorf("expected ErrSpaceMismatch, got %v", err)
	}
}

func TestPowerZeroEqualString(t *testing.T) {
	r3 := Rn[float64](3)
	pw, _ := NewPower(r3, 2)

	z := pw.Zero()
	if len(z) != 2 {
		t.Fatalf("Zero: expected 2 components, got %d", len(z))
	}
	assertElement(t, z[0], []float64{0, 0, 0}, "Zero[0]")
	assertElement(t, z[1], []float64{0, 0, 0}, "Zero[1]")

	same, _ := NewPower(r3, 2)
	longer, _ := NewPower(r3, 3)
	otherBase, _ := NewPower(Rn[float64](3), 2)
	if !pw.Equal(same) {
		t.Error("equal powers reported unequal")
	}
	if pw.Equal(longer) || pw.Equal(otherBase) {
		t.Error("unequal powers reported equal")
	}

	if got, want := pw.String(), "Rn(3, float64)^2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
