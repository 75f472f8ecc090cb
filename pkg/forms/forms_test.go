package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(values url.Values) *PostForm {
	r := httptest.NewRequest("POST", "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return PostFormFromRequest(r)
}

func TestPostFormValidate(t *testing.T) {
	t.Run("valid form parses the publication date", func(t *testing.T) {
		f := &PostForm{Title: "Go at 15", Text: "still boring, still great", PubDateRaw: "2022-06-15T12:30"}
		errs := f.Validate()
		require.True(t, errs.Ok(), "unexpected errors: %v", errs)
		assert.Equal(t, time.Date(2022, 6, 15, 12, 30, 0, 0, time.Local), f.PubDate)
	})

	t.Run("missing fields are each reported", func(t *testing.T) {
		f := &PostForm{}
		errs := f.Validate()
		assert.NotEmpty(t, errs.For("title"))
		assert.NotEmpty(t, errs.For("text"))
		assert.NotEmpty(t, errs.For("pub_date"))
	})

	t.Run("overlong title is rejected", func(t *testing.T) {
		f := &PostForm{Title: strings.Repeat("x", 257), Text: "t", PubDateRaw: "2022-06-15T12:30"}
		assert.NotEmpty(t, f.Validate().For("title"))
	})

	t.Run("256-char title is accepted", func(t *testing.T) {
		f := &PostForm{Title: strings.Repeat("x", 256), Text: "t", PubDateRaw: "2022-06-15T12:30"}
		assert.True(t, f.Validate().Ok())
	})

	t.Run("unparsable date is rejected", func(t *testing.T) {
		f := &PostForm{Title: "t", Text: "t", PubDateRaw: "tomorrow-ish"}
		assert.NotEmpty(t, f.Validate().For("pub_date"))
	})

	t.Run("space-separated layout is accepted", func(t *testing.T) {
		f := &PostForm{Title: "t", Text: "t", PubDateRaw: "2022-06-15 12:30"}
		assert.True(t, f.Validate().Ok())
	})
}

func TestPostFormFromRequestTrimsInput(t *testing.T) {
	f := formRequest(url.Values{
		"title":    {"  padded title  "},
		"text":     {"body\n"},
		"pub_date": {" 2022-06-15T12:30 "},
		"category": {"62acf3"},
		"location": {""},
	})
	assert.Equal(t, "padded title", f.Title)
	assert.Equal(t, "body", f.Text)
	assert.Equal(t, "2022-06-15T12:30", f.PubDateRaw)
	assert.Equal(t, "62acf3", f.CategoryId)
	assert.Equal(t, "", f.LocationId)
}

func TestCommentFormValidate(t *testing.T) {
	assert.True(t, (&CommentForm{Text: "nice one"}).Validate().Ok())
	assert.NotEmpty(t, (&CommentForm{Text: ""}).Validate().For("text"))
	assert.NotEmpty(t, (&CommentForm{Text: ""}).Validate())
}

func TestRegistrationFormValidate(t *testing.T) {
	good := RegistrationForm{
		Username:        "rob.pike",
		Email:           "rob@example.com",
		Password:        "longenough",
		PasswordConfirm: "longenough",
	}

	t.Run("accepts a good form", func(t *testing.T) {
		f := good
		assert.True(t, f.Validate().Ok())
	})

	t.Run("email is optional", func(t *testing.T) {
		f := good
		f.Email = ""
		assert.True(t, f.Validate().Ok())
	})

	t.Run("rejects a short password", func(t *testing.T) {
		f := good
		f.Password, f.PasswordConfirm = "short", "short"
		assert.NotEmpty(t, f.Validate().For("password1"))
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		f := good
		f.PasswordConfirm = "different1"
		assert.NotEmpty(t, f.Validate().For("password2"))
	})

	t.Run("rejects a username with spaces", func(t *testing.T) {
		f := good
		f.Username = "rob pike"
		assert.NotEmpty(t, f.Validate().For("username"))
	})

	t.Run("rejects an empty username", func(t *testing.T) {
		f := good
		f.Username = ""
		assert.NotEmpty(t, f.Validate().For("username"))
	})

	t.Run("rejects an overlong username", func(t *testing.T) {
		f := good
		f.Username = strings.Repeat("a", 151)
		assert.NotEmpty(t, f.Validate().For("username"))
	})

	t.Run("rejects a bad email", func(t *testing.T) {
		f := good
		f.Email = "not-an-email"
		assert.NotEmpty(t, f.Validate().For("email"))
	})
}

func TestProfileFormValidate(t *testing.T) {
	assert.True(t, (&ProfileForm{Username: "gopher", Email: "g@example.org"}).Validate().Ok())
	assert.NotEmpty(t, (&ProfileForm{Username: ""}).Validate().For("username"))
	assert.NotEmpty(t, (&ProfileForm{Username: "gopher", Email: "@@"}).Validate().For("email"))
}

func TestLoginFormValidate(t *testing.T) {
	assert.True(t, (&LoginForm{Username: "gopher", Password: "pw"}).Validate().Ok())

	errs := (&LoginForm{}).Validate()
	assert.NotEmpty(t, errs.For("username"))
	assert.NotEmpty(t, errs.For("password"))
}

func TestErrorsFor(t *testing.T) {
	errs := Errors{
		{Field: "title", Reason: "first"},
		{Field: "text", Reason: "other"},
		{Field: "title", Reason: "second"},
	}
	assert.Equal(t, []string{"first", "second"}, errs.For("title"))
	assert.Empty(t, errs.For("pub_date"))
	assert.False(t, errs.Ok())
	assert.True(t, Errors{}.Ok())
}
