package msgs

import (
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Cross-field invariants the tag syntax can't express.
	v.RegisterStructValidation(validateImage, Image{})
	v.RegisterStructValidation(validateLaserScan, LaserScan{})

	return v
}

// Validate checks a record against its structural invariants. Fixtures are
// validated in tests; callers producing their own records can use it too.
func Validate(record any) error {
	return validate.Struct(record)
}

func validateImage(sl validator.StructLevel) {
	img := sl.Current().Interface().(Image)

	if img.Step < img.Width {
		sl.ReportError(img.Step, "Step", "step", "stepwidth", "")
	}
	if uint32(len(img.Data)) != img.Height*img.Step {
		sl.ReportError(img.Data, "Data", "data", "databuflen", "")
	}
}

func validateLaserScan(sl validator.StructLevel) {
	scan := sl.Current().Interface().(LaserScan)

	if uint32(len(scan.Ranges)) != scan.Count {
		sl.ReportError(scan.Ranges, "Ranges", "ranges", "rangecount", "")
	}
	if uint32(len(scan.Intensities)) != scan.Count {
		sl.ReportError(scan.Intensities, "Intensities", "intensities", "intensitycount", "")
	}
	if scan.AngleMax < scan.AngleMin {
		sl.ReportError(scan.AngleMax, "AngleMax", "angle_max", "anglerange", "")
	}
}
