// Package forms carries the per-field validators for every user-submitted
// form. A validator returns the list of field-level problems; an empty list
// means the form is good to save. Nothing is persisted while the list is
// non-empty.
package forms

import (
	"net/http"
	"regexp"
	"strings"
	"time"
)

type FieldError struct {
	Field  string
	Reason string
}

type Errors []FieldError

func (e Errors) Ok() bool { return len(e) == 0 }

// For returns the problems of one field, for template rendering.
func (e Errors) For(field string) []string {
	reasons := []string{}
	for _, fe := range e {
		if fe.Field == field {
			reasons = append(reasons, fe.Reason)
		}
	}
	return reasons
}

const (
	maxTitleLen    = 256
	maxUsernameLen = 150
	minPasswordLen = 8
)

// The datetime-local input format plus a couple of reasonable fallbacks.
var pubDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// PostForm carries everything an author can set on a post. Author and
// publication flag are never form-controlled.
type PostForm struct {
	Title      string
	Text       string
	PubDateRaw string
	CategoryId string
	LocationId string

	// PubDate is filled by Validate from PubDateRaw.
	PubDate time.Time
}

func PostFormFromRequest(r *http.Request) *PostForm {
	return &PostForm{
		Title:      strings.TrimSpace(r.PostFormValue("title")),
		Text:       strings.TrimSpace(r.PostFormValue("text")),
		PubDateRaw: strings.TrimSpace(r.PostFormValue("pub_date")),
		CategoryId: r.PostFormValue("category"),
		LocationId: r.PostFormValue("location"),
	}
}

func (f *PostForm) Validate() Errors {
	errs := Errors{}
	if f.Title == "" {
		errs = append(errs, FieldError{"title", "title is required"})
	}
	if len(f.Title) > maxTitleLen {
		errs = append(errs, FieldError{"title", "title is too long"})
	}
	if f.Text == "" {
		errs = append(errs, FieldError{"text", "text is required"})
	}
	if f.PubDateRaw == "" {
		errs = append(errs, FieldError{"pub_date", "publication date is required"})
	} else {
		parsed := false
		for _, layout := range pubDateLayouts {
			if t, err := time.ParseInLocation(layout, f.PubDateRaw, time.Local); err == nil {
				f.PubDate = t
				parsed = true
				break
			}
		}
		if !parsed {
			errs = append(errs, FieldError{"pub_date", "publication date is not a valid date"})
		}
	}
	return errs
}

type CommentForm struct {
	Text string
}

func CommentFormFromRequest(r *http.Request) *CommentForm {
	return &CommentForm{Text: strings.TrimSpace(r.PostFormValue("text"))}
}

func (f *CommentForm) Validate() Errors {
	errs := Errors{}
	if f.Text == "" {
		errs = append(errs, FieldError{"text", "comment text is required"})
	}
	return errs
}

type RegistrationForm struct {
	Username        string
	FirstName       string
	LastName        string
	Email           string
	Password        string
	PasswordConfirm string
}

func RegistrationFormFromRequest(r *http.Request) *RegistrationForm {
	return &RegistrationForm{
		Username:        strings.TrimSpace(r.PostFormValue("username")),
		FirstName:       strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:        strings.TrimSpace(r.PostFormValue("last_name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password1"),
		PasswordConfirm: r.PostFormValue("password2"),
	}
}

func (f *RegistrationForm) Validate() Errors {
	errs := validateIdentity(f.Username, f.Email)
	if len(f.Password) < minPasswordLen {
		errs = append(errs, FieldError{"password1", "password must be at least 8 characters"})
	}
	if f.Password != f.PasswordConfirm {
		errs = append(errs, FieldError{"password2", "passwords don't match"})
	}
	return errs
}

type ProfileForm struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
}

func ProfileFormFromRequest(r *http.Request) *ProfileForm {
	return &ProfileForm{
		Username:  strings.TrimSpace(r.PostFormValue("username")),
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Email:     strings.TrimSpace(r.PostFormValue("email")),
	}
}

func (f *ProfileForm) Validate() Errors {
	return validateIdentity(f.Username, f.Email)
}

func validateIdentity(username, email string) Errors {
	errs := Errors{}
	if username == "" {
		errs = append(errs, FieldError{"username", "username is required"})
	} else {
		if len(username) > maxUsernameLen {
			errs = append(errs, FieldError{"username", "username is too long"})
		}
		if !usernameRe.MatchString(username) {
			errs = append(errs, FieldError{"username", "only letters, digits and _ . - are allowed"})
		}
	}
	if email != "" && !emailRe.MatchString(email) {
		errs = append(errs, FieldError{"email", "email doesn't look valid"})
	}
	return errs
}

type LoginForm struct {
	Username string
	Password string
}

func LoginFormFromRequest(r *http.Request) *LoginForm {
	return &LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	if f.Username == "" {
		errs = append(errs, FieldError{"username", "username is required"})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{"password", "password is required"})
	}
	return errs
}
