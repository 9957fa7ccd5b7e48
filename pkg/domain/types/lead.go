package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// LeadID represents a unique lead submission identifier
type LeadID string

func NewLeadID() LeadID {
	return LeadID(uuid.New().String())
}

func (x LeadID) String() string {
	return string(x)
}

// LeadCategory is the interest category a lead selects in the capture form.
type LeadCategory string

const (
	LeadCategoryServices  LeadCategory = "services"
	LeadCategoryTrainings LeadCategory = "trainings"
	LeadCategoryCareers   LeadCategory = "careers"
	LeadCategoryGeneral   LeadCategory = "general"
)

// DefaultLeadCategory is used when the form submits no explicit category.
const DefaultLeadCategory = LeadCategoryServices

func (x LeadCategory) String() string {
	return string(x)
}

func (x LeadCategory) Validate() error {
	switch x {
	case LeadCategoryServices, LeadCategoryTrainings, LeadCategoryCareers, LeadCategoryGeneral:
		return nil
	}
	return goerr.New("invalid lead category", goerr.V("category", x))
}

// CaptureMethod records why the capture form was shown: the backend-supplied
// trigger reason, or the default when the user opened the form manually.
type CaptureMethod string

const DefaultCaptureMethod CaptureMethod = "chat_trigger"

func (x CaptureMethod) String() string {
	return string(x)
}
