package lead_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/minterminds/chatfront/pkg/domain/model/lead"
	"github.com/minterminds/chatfront/pkg/domain/types"
)

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"a@b.co":          true,
		"user@domain.tld": true,
		"a@b":             false,
		"plainstring":     false,
		"":                false,
		"a b@c.d":         false,
	}
	for input, want := range cases {
		gt.Equal(t, lead.ValidEmail(input), want)
	}
}

func TestValidPhone(t *testing.T) {
	cases := map[string]bool{
		"+15551234567":    true,
		"15551234567":     true,
		"+1 (555) 123-45": true,
		"abc":             false,
		"0123":            false,
		"":                true, // optional field
	}
	for input, want := range cases {
		gt.Equal(t, lead.ValidPhone(input), want)
	}
}

func TestSubmissionValidate(t *testing.T) {
	valid := func() *lead.Submission {
		return &lead.Submission{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+15551234567",
			Category: types.LeadCategoryServices,
		}
	}

	t.Run("valid submission", func(t *testing.T) {
		sub := valid()
		sub.Normalize()
		gt.NoError(t, sub.Validate())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		sub := valid()
		sub.Name = "   "
		sub.Normalize()
		gt.Error(t, sub.Validate())
	})

	t.Run("bad email rejected", func(t *testing.T) {
		sub := valid()
		sub.Email = "nope"
		sub.Normalize()
		gt.Error(t, sub.Validate())
	})

	t.Run("missing phone accepted", func(t *testing.T) {
		sub := valid()
		sub.Phone = ""
		sub.Normalize()
		gt.NoError(t, sub.Validate())
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		sub := valid()
		sub.Category = "marketing"
		sub.Normalize()
		gt.Error(t, sub.Validate())
	})

	t.Run("defaults applied by normalize", func(t *testing.T) {
		sub := valid()
		sub.Category = ""
		sub.CaptureMethod = ""
		sub.Normalize()
		gt.Equal(t, sub.Category, types.LeadCategoryServices)
		gt.Equal(t, sub.CaptureMethod, types.DefaultCaptureMethod)
	})
}
