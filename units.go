package html2img

import (
	"fmt"
	"math"
)

// CmPerInch is the conversion factor between centimeters and inches.
const CmPerInch = 2.54

// Unit identifies the dimension a Quantity is expressed in.
type Unit string

// Supported units.
const (
	UnitPixel      Unit = "px"
	UnitCentimeter Unit = "cm"
	UnitInch       Unit = "in"
)

// Quantity is a numeric value tagged with its unit. Physical lengths
// (centimeters, inches) convert freely between each other; converting to or
// from pixels always routes through an explicit DPI value.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Centimeters returns a centimeter quantity.
func Centimeters(v float64) Quantity { return Quantity{Value: v, Unit: UnitCentimeter} }

// Inches returns an inch quantity.
func Inches(v float64) Quantity { return Quantity{Value: v, Unit: UnitInch} }

// Pixels returns a pixel quantity.
func Pixels(v float64) Quantity { return Quantity{Value: v, Unit: UnitPixel} }

// Centimeters coerces the quantity to its magnitude in centimeters, the
// canonical physical unit. Pixel quantities carry no physical length without
// a DPI and are rejected.
func (q Quantity) Centimeters() (float64, error) {
	switch q.Unit {
	case UnitCentimeter:
		return q.Value, nil
	case UnitInch:
		return q.Value * CmPerInch, nil
	case UnitPixel:
		return 0, fmt.Errorf("%w: pixel quantity has no physical length without DPI", ErrInvalidUnit)
	default:
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidUnit, q.Unit)
	}
}

// CmToPixels converts a length in centimeters to a whole pixel count at the
// given DPI. Both inputs must be strictly positive.
func CmToPixels(cm float64, dpi int) (int, error) {
	if cm <= 0 {
		return 0, fmt.Errorf("%w: length must be positive, got %g cm", ErrInvalidUnit, cm)
	}
	if dpi <= 0 {
		return 0, fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidUnit, dpi)
	}
	return int(math.Round(cm / CmPerInch * float64(dpi))), nil
}

// PixelsToCm converts a pixel count back to centimeters at the given DPI.
// Inverse of CmToPixels within one pixel of rounding tolerance.
func PixelsToCm(px int, dpi int) (float64, error) {
	if px <= 0 {
		return 0, fmt.Errorf("%w: pixel count must be positive, got %d", ErrInvalidUnit, px)
	}
	if dpi <= 0 {
		return 0, fmt.Errorf("%w: dpi must be positive, got %d", ErrInvalidUnit, dpi)
	}
	return float64(px) / float64(dpi) * CmPerInch, nil
}

// QuantityToPixels converts a dimensioned physical quantity to pixels at the
// given DPI. The quantity is coerced to centimeters first, so callers may
// hand over an already-dimensioned value instead of a bare scalar and get
// the same result.
func QuantityToPixels(q Quantity, dpi int) (int, error) {
	cm, err := q.Centimeters()
	if err != nil {
		return 0, err
	}
	return CmToPixels(cm, dpi)
}
