package controllers

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/cppla/travelquest/catalog"
)

var registerOnce sync.Once

// RegisterValidators installs the place_category and region binding tags on gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("place_category", func(fl validator.FieldLevel) bool {
			return catalog.IsCategory(fl.Field().String())
		})
		_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
			return catalog.IsRegion(fl.Field().String())
		})
	})
}

// bindingFields lists the json names of the fields that failed binding validation.
func bindingFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := jsonFieldNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}
		out = append(out, name)
	}
	return out
}

var jsonFieldNames = map[string]string{
	"PlaceID":   "place_id",
	"Name":      "name",
	"Category":  "category",
	"Region":    "region",
	"Latitude":  "latitude",
	"Longitude": "longitude",
	"PlaceName": "place_name",
	"Content":   "content",
	"Rating":    "rating",
	"Tags":      "tags",
	"Photos":    "photos",
	"Count":     "count",
	"Timestamp": "timestamp",
}
