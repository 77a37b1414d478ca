package academic

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/academia/dashboard/core"
)

var (
	courseRequiredTag  = "course_required"
	courseRequiredText = "a course must be selected"
)

// InitValidators registers the academic types on a validator already set up by core.InitValidators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterCustomTypeFunc(core.NullValuer, Score{})

	validate.RegisterStructValidation(activityStructValidation, ActivityInput{})
	core.RegisterCustomTranslation(validate, translator, courseRequiredTag, courseRequiredText)
}

// activityStructValidation rejects activities pointing at a course id that cannot exist.
func activityStructValidation(sl validator.StructLevel) {
	in, ok := sl.Current().Interface().(ActivityInput)
	if !ok {
		return
	}
	if in.CourseID.Valid && in.CourseID.Int <= 0 {
		sl.ReportError(in.CourseID, "id_curso", "CourseID", courseRequiredTag, "")
	}
}
