// pkg/passgen/request.go

package passgen

import (
	"github.com/CodeMonkeyCybersecurity/tyche/pkg/verify"
	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidLength = cerr.New("length must be at least 1")
	ErrInvalidCount  = cerr.New("count must be at least 1")
)

// Request captures the numeric parameters of one generation run. Length
// counts characters for passwords and words for passphrases.
type Request struct {
	Length    int `validate:"min=1"`
	Count     int `validate:"min=1"`
	Separator string
}

// Validate enforces the request invariants, mapping tag failures onto the
// tool's error kinds.
func (r Request) Validate() error {
	err := verify.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if cerr.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Length":
				return cerr.Wrapf(ErrInvalidLength, "got %d", r.Length)
			case "Count":
				return cerr.Wrapf(ErrInvalidCount, "got %d", r.Count)
			}
		}
	}
	return err
}
