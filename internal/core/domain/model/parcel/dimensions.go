package parcel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// Dimensions holds optional parcel measurements in centimeters, parsed from
// the single free-text "LxWxH" field on the submission form.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// ParseDimensions parses an "LxWxH" string, accepting "x" or "X" as the
// separator and fractional values, e.g. "30x20x15" or "30.5X20X10".
// An empty input yields nil (dimensions are optional); anything else that is
// not three positive numbers is an error.
func ParseDimensions(raw string) (*Dimensions, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	parts := strings.Split(strings.ReplaceAll(trimmed, "X", "x"), "x")
	if len(parts) != 3 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%q is not in LxWxH form", raw),
		)
	}

	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"dimensions",
				fmt.Errorf("%q is not a positive measurement", part),
			)
		}
		values[i] = v
	}

	return &Dimensions{Length: values[0], Width: values[1], Height: values[2]}, nil
}

// String renders the dimensions back into "LxWxH" form.
func (d Dimensions) String() string {
	return fmt.Sprintf("%sx%sx%s",
		strconv.FormatFloat(d.Length, 'f', -1, 64),
		strconv.FormatFloat(d.Width, 'f', -1, 64),
		strconv.FormatFloat(d.Height, 'f', -1, 64),
	)
}
