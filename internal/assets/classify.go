package assets

import (
	"github.com/philipparndt/goview/pkg/modelinfo"
)

// Classify reports what a dropped path would replace, by extension only
func Classify(path string) modelinfo.Kind {
	format, ok := modelinfo.Detect(path)
	if !ok {
		return modelinfo.KindUnknown
	}
	return format.Kind()
}

// Validator checks a file before it replaces live state
type Validator func(path string) error

// Inspect is the default Validator: the file must exist and pass
// modelinfo.Inspect for its format.
func Inspect(path string) error {
	_, err := modelinfo.Inspect(path)
	return err
}
