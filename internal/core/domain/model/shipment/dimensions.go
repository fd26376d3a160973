package shipment

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
)

var (
	// ErrDimensionsAreNotConstructed is returned when a Dimensions instance was not
	// created through the NewDimensions factory method.
	ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")
)

// Dimensions is a value object describing the parcel's size. All three sides
// must be positive; the volume (length * width * height) feeds the size
// component of the pricing formula.
//
// Dimensions is immutable: changing a shipment's size means constructing a
// new Dimensions value, which in turn triggers re-pricing.
type Dimensions struct {
	length float64
	width  float64
	height float64

	isConstructed bool
}

// NewDimensions creates a validated Dimensions value.
// Each side must be greater than 0.
func NewDimensions(length, width, height float64) (Dimensions, error) {
	d := Dimensions{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setSide("length", length, &d.length),
		d.setSide("width", width, &d.width),
		d.setSide("height", height, &d.height),
	); err != nil {
		return Dimensions{}, err
	}

	return d, nil
}

// Validate ensures the Dimensions value was properly constructed through NewDimensions.
func (d Dimensions) Validate() error {
	if !d.isConstructed {
		return ErrDimensionsAreNotConstructed
	}
	return nil
}

// IsEqual compares two Dimensions values side by side.
func (d Dimensions) IsEqual(other Dimensions) bool {
	return d.length == other.length && d.width == other.width && d.height == other.height
}

// Length returns the parcel length.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the parcel width.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the parcel height.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns length * width * height, the size input of the pricing formula.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

func (d *Dimensions) setSide(name string, value float64, target *float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid",
			fmt.Errorf("%f is not greater than 0", value))
	}
	*target = value
	return nil
}
