package classroom

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/edumind/core"
	"github.com/trezcool/edumind/core/tutor"
)

var (
	subjectTag  = "subject"
	subjectText = "{0} must be one of [" + strings.Join(tutor.SubjectIDs(), ", ") + "]"

	materialExtTag    = "material_ext"
	materialExtText   = "supported formats are PDF, PPT, PPTX and DOCX"
	materialExtension = map[string]bool{".pdf": true, ".ppt": true, ".pptx": true, ".docx": true}

	maxUploadSizeTag  = "max_upload_size"
	maxUploadSizeText = fmt.Sprintf("file size cannot exceed %dMB", MaxUploadSize>>20)

	dateTag  = "date"
	dateText = "{0} must be a date formatted as YYYY-MM-DD"
)

// InitValidators registers the classroom validators. core.InitValidators must be called first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(subjectTag, subjectValidation)
	core.RegisterCustomTranslation(validate, translator, subjectTag, subjectText)

	_ = validate.RegisterValidation(materialExtTag, materialExtValidation)
	core.RegisterCustomTranslation(validate, translator, materialExtTag, materialExtText)

	_ = validate.RegisterValidation(maxUploadSizeTag, maxUploadSizeValidation)
	core.RegisterCustomTranslation(validate, translator, maxUploadSizeTag, maxUploadSizeText)

	_ = validate.RegisterValidation(dateTag, dateValidation)
	core.RegisterCustomTranslation(validate, translator, dateTag, dateText)
}

func subjectValidation(fl validator.FieldLevel) bool {
	subject := fl.Field().String()
	for _, id := range tutor.SubjectIDs() {
		if id == subject {
			return true
		}
	}
	return false
}

func materialExtValidation(fl validator.FieldLevel) bool {
	return materialExtension[strings.ToLower(filepath.Ext(fl.Field().String()))]
}

func maxUploadSizeValidation(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= MaxUploadSize
}

func dateValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
