package lead

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/domain/model/errs"
	"github.com/minterminds/chatfront/pkg/domain/types"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[1-9][0-9]{0,15}$`)
	nonDigits    = regexp.MustCompile(`[^0-9]`)
)

// Submission is one lead record collected through the capture form.
type Submission struct {
	SessionID     types.SessionID     `json:"session_id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone,omitempty"`
	Category      types.LeadCategory  `json:"category"`
	CaptureMethod types.CaptureMethod `json:"capture_method"`
}

// Normalize trims fields and applies defaults for category and capture method
func (x *Submission) Normalize() {
	x.Name = strings.TrimSpace(x.Name)
	x.Email = strings.TrimSpace(x.Email)
	x.Phone = strings.TrimSpace(x.Phone)
	if x.Category == "" {
		x.Category = types.DefaultLeadCategory
	}
	if x.CaptureMethod == "" {
		x.CaptureMethod = types.DefaultCaptureMethod
	}
}

// Validate checks the form field rules. Phone is optional; when present it
// must look like an international number after stripping non-digit characters.
func (x *Submission) Validate() error {
	if x.Name == "" {
		return goerr.New("name is required", goerr.T(errs.TagValidation))
	}
	if !ValidEmail(x.Email) {
		return goerr.New("invalid email address", goerr.T(errs.TagValidation), goerr.V("email", x.Email))
	}
	if !ValidPhone(x.Phone) {
		return goerr.New("invalid phone number", goerr.T(errs.TagValidation), goerr.V("phone", x.Phone))
	}
	if err := x.Category.Validate(); err != nil {
		return goerr.Wrap(err, "invalid category", goerr.T(errs.TagValidation))
	}
	return nil
}

// ValidEmail reports whether s matches the local@domain.tld shape
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is empty or a plausible international number
func ValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return phonePattern.MatchString(nonDigits.ReplaceAllString(s, ""))
}
