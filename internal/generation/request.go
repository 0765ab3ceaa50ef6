package generation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Defaults fill request fields the user left empty.
type Defaults struct {
	OutputType string
	Audience   string
	Tone       string
}

// WithDefaults returns req with blank fields taken from d.
func (req Request) WithDefaults(d Defaults) Request {
	req.Topic = strings.TrimSpace(req.Topic)
	if strings.TrimSpace(req.OutputType) == "" {
		req.OutputType = d.OutputType
	}
	if strings.TrimSpace(req.Audience) == "" {
		req.Audience = d.Audience
	}
	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = d.Tone
	}
	return req
}

// Validate requires every field and checks the enumerated ones.
func (req Request) Validate() error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", fe.Field()))
		default:
			fields = append(fields, fmt.Sprintf("%s has unsupported value %q", fe.Field(), fe.Value()))
		}
	}
	return fmt.Errorf("invalid generation request: %s", strings.Join(fields, "; "))
}

// WantsBriefs reports whether the output type asks for content briefs.
func (req Request) WantsBriefs() bool {
	return strings.HasPrefix(req.OutputType, "outline-brief")
}

func (req Request) WantsIntro() bool {
	return req.OutputType == "outline-brief-intro"
}
