// Package leads captures contact, join and invest form submissions.
//
// A [Submission] is what the site's forms post. [Service.Submit] normalizes
// and validates it, stamps it with an ID and time, and persists the
// resulting [Lead] through a [Store]. Three stores exist: [MemoryStore],
// [PostgresStore] and [MongoStore].
package leads

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plinyoo/starfield/pkg/errors"
)

// FormType names the form a submission came from.
type FormType string

const (
	FormContact FormType = "contact"
	FormJoin    FormType = "join"
	FormInvest  FormType = "invest"
)

// Valid reports whether t is a known form.
func (t FormType) Valid() bool {
	switch t {
	case FormContact, FormJoin, FormInvest:
		return true
	}
	return false
}

// Field length limits, in characters.
const (
	MaxNameLength    = 200
	MaxMessageLength = 5000
	MaxFieldLength   = 500
)

// Submission is a form post. JSON names match the site's forms.
type Submission struct {
	Name     string   `json:"name" bson:"name"`
	Email    string   `json:"email" bson:"email"`
	Message  string   `json:"message,omitempty" bson:"message,omitempty"`
	FormType FormType `json:"formType" bson:"form_type"`

	// Join form
	Role         string `json:"role,omitempty" bson:"role,omitempty"`
	Availability string `json:"availability,omitempty" bson:"availability,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	GitHub       string `json:"github,omitempty" bson:"github,omitempty"`

	// Invest form
	InvestmentRange string `json:"investment_range,omitempty" bson:"investment_range,omitempty"`
}

// Normalize trims every field and lower-cases the email. Profile links
// typed without a scheme ("linkedin.com/in/ada") get https:// prepended.
func (s *Submission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Message = strings.TrimSpace(s.Message)
	s.FormType = FormType(strings.ToLower(strings.TrimSpace(string(s.FormType))))
	s.Role = strings.TrimSpace(s.Role)
	s.Availability = strings.TrimSpace(s.Availability)
	s.LinkedIn = profileURL(s.LinkedIn)
	s.GitHub = profileURL(s.GitHub)
	s.InvestmentRange = strings.TrimSpace(s.InvestmentRange)
}

// profileURL trims v and adds https:// when it has no scheme at all.
// Values with some other scheme are left alone for Validate to reject.
func profileURL(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if u, err := url.Parse(v); err == nil && u.Scheme == "" && !strings.HasPrefix(v, "//") {
		return "https://" + v
	}
	return v
}

// Validate checks a normalized submission. Every failure carries
// errors.ErrCodeInvalidLead and names the offending field.
func (s Submission) Validate() error {
	if s.Name == "" {
		return invalid("name is required")
	}
	if err := errors.ValidateEmail(s.Email); err != nil {
		return invalid("%s", errors.UserMessage(err))
	}
	if !s.FormType.Valid() {
		return invalid("formType must be one of contact, join, invest; got %q", s.FormType)
	}

	texts := []struct {
		field, value string
		limit        int
	}{
		{"name", s.Name, MaxNameLength},
		{"message", s.Message, MaxMessageLength},
		{"role", s.Role, MaxFieldLength},
		{"availability", s.Availability, MaxFieldLength},
		{"linkedin", s.LinkedIn, MaxFieldLength},
		{"github", s.GitHub, MaxFieldLength},
		{"investment_range", s.InvestmentRange, MaxFieldLength},
	}
	for _, f := range texts {
		if err := errors.ValidateText(f.field, f.value, f.limit); err != nil {
			return invalid("%s", errors.UserMessage(err))
		}
	}

	for _, u := range []struct{ field, value string }{{"linkedin", s.LinkedIn}, {"github", s.GitHub}} {
		if u.value == "" {
			continue
		}
		if err := errors.ValidateURL(u.value); err != nil {
			return invalid("%s: %s", u.field, errors.UserMessage(err))
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidLead, format, args...)
}

// Lead is a stored submission.
type Lead struct {
	ID uuid.UUID `json:"id"`
	Submission
	CreatedAt time.Time `json:"created_at"`
}

// ListOptions filters and pages a listing. Results are newest first.
type ListOptions struct {
	FormType FormType // empty means all forms
	Limit    int      // zero or less means DefaultListLimit
}

// DefaultListLimit bounds listings that do not set a limit.
const DefaultListLimit = 100

func (o ListOptions) limit() int {
	if o.Limit <= 0 {
		return DefaultListLimit
	}
	return o.Limit
}
