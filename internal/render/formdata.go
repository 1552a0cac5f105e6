package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FormData is the structured résumé a caller asks to render.
type FormData struct {
	FullName       string       `json:"fullName" validate:"required,max=120"`
	Title          string       `json:"title" validate:"max=160"`
	Email          string       `json:"email" validate:"omitempty,email"`
	Phone          string       `json:"phone" validate:"max=60"`
	Location       string       `json:"location" validate:"max=160"`
	LinkedIn       string       `json:"linkedin"`
	Website        string       `json:"website"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience" validate:"dive"`
	Education      []Education  `json:"education" validate:"dive"`
	Skills         StringList   `json:"skills"`
	Languages      StringList   `json:"languages"`
	Certifications StringList   `json:"certifications"`
}

// Experience is one work history entry.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Period formats the start and end dates as "start - end".
func (e Experience) Period() string { return period(e.StartDate, e.EndDate) }

// Highlights splits the description into one entry per non-empty line.
func (e Experience) Highlights() []string { return lines(e.Description) }

// Period formats the start and end dates as "start - end".
func (e Education) Period() string { return period(e.StartDate, e.EndDate) }

// Highlights splits the description into one entry per non-empty line.
func (e Education) Highlights() []string { return lines(e.Description) }

// StringList accepts either a JSON string or an array of strings.
// A plain string becomes a single entry; blank entries are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = compact([]string{s})
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*l = compact(items)
	return nil
}

// Join returns the entries separated by sep.
func (l StringList) Join(sep string) string {
	return strings.Join(l, sep)
}

// ValidationError lists the fields that failed validation, keyed by JSON path.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid form data"
}

// Normalize trims surrounding whitespace from every text field.
func (f FormData) Normalize() FormData {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Title = strings.TrimSpace(f.Title)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Location = strings.TrimSpace(f.Location)
	f.LinkedIn = strings.TrimSpace(f.LinkedIn)
	f.Website = strings.TrimSpace(f.Website)
	f.Summary = strings.TrimSpace(f.Summary)

	experience := make([]Experience, 0, len(f.Experience))
	for _, e := range f.Experience {
		e = Experience{
			Company:     strings.TrimSpace(e.Company),
			Position:    strings.TrimSpace(e.Position),
			Location:    strings.TrimSpace(e.Location),
			StartDate:   strings.TrimSpace(e.StartDate),
			EndDate:     strings.TrimSpace(e.EndDate),
			Description: strings.TrimSpace(e.Description),
		}
		if e == (Experience{}) {
			continue
		}
		experience = append(experience, e)
	}
	f.Experience = experience

	education := make([]Education, 0, len(f.Education))
	for _, e := range f.Education {
		e = Education{
			Institution: strings.TrimSpace(e.Institution),
			Degree:      strings.TrimSpace(e.Degree),
			Location:    strings.TrimSpace(e.Location),
			StartDate:   strings.TrimSpace(e.StartDate),
			EndDate:     strings.TrimSpace(e.EndDate),
			Description: strings.TrimSpace(e.Description),
		}
		if e == (Education{}) {
			continue
		}
		education = append(education, e)
	}
	f.Education = education
	return f
}

// Validate checks the required fields. It returns a *ValidationError on failure.
func (f FormData) Validate() error {
	err := formValidator().Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields[fieldPath(fe.Namespace())] = fe.Tag()
	}
	return out
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimLeft(line, "•-*"))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func period(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return start
	default:
		return end
	}
}
