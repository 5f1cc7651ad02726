// pkg/verify/verify.go

package verify

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct runs go-playground tag validation against obj.
func Struct(obj interface{}) error {
	return validate.Struct(obj)
}
