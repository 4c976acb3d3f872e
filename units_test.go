package html2img

import (
	"errors"
	"math"
	"testing"
)

func TestCmToPixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cm      float64
		dpi     int
		want    int
		wantErr error
	}{
		{
			name: "A4 width at 300 DPI",
			cm:   21,
			dpi:  300,
			want: 2480,
		},
		{
			name: "A4 height at 300 DPI",
			cm:   29.7,
			dpi:  300,
			want: 3508,
		},
		{
			name: "one inch worth of centimeters",
			cm:   2.54,
			dpi:  96,
			want: 96,
		},
		{
			name: "rounds to nearest pixel",
			cm:   1,
			dpi:  100,
			want: 39, // 1/2.54*100 = 39.37...
		},
		{
			name:    "zero length rejected",
			cm:      0,
			dpi:     300,
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "negative length rejected",
			cm:      -5,
			dpi:     300,
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "zero dpi rejected",
			cm:      10,
			dpi:     0,
			wantErr: ErrInvalidUnit,
		},
		{
			name:    "negative dpi rejected",
			cm:      10,
			dpi:     -72,
			wantErr: ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CmToPixels(tt.cm, tt.dpi)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CmToPixels(%g, %d) error = %v, want %v", tt.cm, tt.dpi, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CmToPixels(%g, %d) unexpected error: %v", tt.cm, tt.dpi, err)
			}
			if got != tt.want {
				t.Errorf("CmToPixels(%g, %d) = %d, want %d", tt.cm, tt.dpi, got, tt.want)
			}
		})
	}
}

func TestPixelsToCm_Errors(t *testing.T) {
	t.Parallel()

	if _, err := PixelsToCm(0, 300); !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("PixelsToCm(0, 300) error = %v, want ErrInvalidUnit", err)
	}
	if _, err := PixelsToCm(100, 0); !errors.Is(err, ErrInvalidUnit) {
		t.Errorf("PixelsToCm(100, 0) error = %v, want ErrInvalidUnit", err)
	}
}

// Round-tripping cm -> px -> cm stays within one pixel of the original.
func TestUnitConversion_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cm  float64
		dpi int
	}{
		{21, 300},
		{29.7, 300},
		{10, 96},
		{0.5, 72},
		{100, 600},
	}

	for _, c := range cases {
		px, err := CmToPixels(c.cm, c.dpi)
		if err != nil {
			t.Fatalf("CmToPixels(%g, %d): %v", c.cm, c.dpi, err)
		}
		back, err := PixelsToCm(px, c.dpi)
		if err != nil {
			t.Fatalf("PixelsToCm(%d, %d): %v", px, c.dpi, err)
		}
		onePixelCm := CmPerInch / float64(c.dpi)
		if math.Abs(back-c.cm) > onePixelCm {
			t.Errorf("round trip %g cm @ %d dpi: got %g cm back (tolerance %g)", c.cm, c.dpi, back, onePixelCm)
		}
	}
}

func TestQuantityToPixels(t *testing.T) {
	t.Parallel()

	t.Run("centimeter quantity matches bare scalar", func(t *testing.T) {
		t.Parallel()

		want, err := CmToPixels(21, 300)
		if err != nil {
			t.Fatal(err)
		}
		got, err := QuantityToPixels(Centimeters(21), 300)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("QuantityToPixels(Centimeters(21), 300) = %d, want %d", got, want)
		}
	})

	t.Run("inch quantity converts through canonical unit", func(t *testing.T) {
		t.Parallel()

		got, err := QuantityToPixels(Inches(1), 300)
		if err != nil {
			t.Fatal(err)
		}
		if got != 300 {
			t.Errorf("QuantityToPixels(Inches(1), 300) = %d, want 300", got)
		}
	})

	t.Run("pixel quantity rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := QuantityToPixels(Pixels(100), 300); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("expected ErrInvalidUnit, got %v", err)
		}
	})

	t.Run("unknown unit rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := QuantityToPixels(Quantity{Value: 1, Unit: "furlong"}, 300); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("expected ErrInvalidUnit, got %v", err)
		}
	})
}

func TestQuantity_Centimeters(t *testing.T) {
	t.Parallel()

	cm, err := Inches(2).Centimeters()
	if err != nil {
		t.Fatal(err)
	}
	if cm != 5.08 {
		t.Errorf("Inches(2).Centimeters() = %g, want 5.08", cm)
	}
}
