package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/pkg/render"
	"blog/pkg/sessions"
	"blog/pkg/user"
)

type userHandlerMocks struct {
	repo  *MockUserRepo
	sm    *MockSessionManager
	posts *MockPostSync
}

func newTestUserHandler(t *testing.T, ctrl *gomock.Controller) (*UserHandler, userHandlerMocks) {
	t.Helper()

	tmpl, err := render.New()
	require.NoError(t, err)

	m := userHandlerMocks{
		repo:  NewMockUserRepo(ctrl),
		sm:    NewMockSessionManager(ctrl),
		posts: NewMockPostSync(ctrl),
	}
	return NewUserHandler(m.repo, m.sm, m.posts, tmpl), m
}

func formRequest(target string, form url.Values, viewer *user.User) *http.Request {
	r := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if viewer != nil {
		r = r.WithContext(context.WithValue(r.Context(), sessions.SessionKey, viewer))
	}
	return r
}

func registrationForm() url.Values {
	return url.Values{
		"username":  {"gopher"},
		"email":     {"gopher@example.com"},
		"password1": {"longenough"},
		"password2": {"longenough"},
	}
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uh, m := newTestUserHandler(t, ctrl)

	t.Run("GET renders the form", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.Register(w, httptest.NewRequest("GET", "/auth/registration/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "username")
	})

	t.Run("valid registration logs the new user in", func(t *testing.T) {
		m.repo.EXPECT().UserExists("gopher").Return(false)
		m.repo.EXPECT().
			Add(gomock.AssignableToTypeOf(&user.User{})).
			DoAndReturn(func(u *user.User) (string, error) {
				assert.Equal(t, "gopher", u.Username)
				assert.NotEmpty(t, u.Password)
				return "1", nil
			})
		m.sm.EXPECT().
			CreateToken(gomock.AssignableToTypeOf(&user.User{})).
			Return("signed.token", nil)

		w := httptest.NewRecorder()
		uh.Register(w, formRequest("/auth/registration/", registrationForm(), nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessions.CookieName, cookies[0].Name)
		assert.Equal(t, "signed.token", cookies[0].Value)
	})

	t.Run("taken username re-renders the form", func(t *testing.T) {
		m.repo.EXPECT().UserExists("gopher").Return(true)

		w := httptest.NewRecorder()
		uh.Register(w, formRequest("/auth/registration/", registrationForm(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already taken")
	})

	t.Run("short password never reaches the repo", func(t *testing.T) {
		form := registrationForm()
		form.Set("password1", "short")
		form.Set("password2", "short")

		w := httptest.NewRecorder()
		uh.Register(w, formRequest("/auth/registration/", form, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "at least 8 characters")
	})
}

func TestLogIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uh, m := newTestUserHandler(t, ctrl)

	creds := url.Values{"username": {"pike"}, "password": {"secretpw"}}

	t.Run("GET renders the form", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.LogIn(w, httptest.NewRequest("GET", "/auth/login/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		u := &user.User{Id: "1", Username: "pike"}
		m.repo.EXPECT().GetByUsernameAndPass("pike", "secretpw").Return(u, nil)
		m.sm.EXPECT().CleanupUserSessions("1").Return(nil)
		m.sm.EXPECT().CreateToken(u).Return("signed.token", nil)

		w := httptest.NewRecorder()
		uh.LogIn(w, formRequest("/auth/login/", creds, nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessions.CookieName, cookies[0].Name)
	})

	t.Run("bad credentials re-render the form without a cookie", func(t *testing.T) {
		m.repo.EXPECT().
			GetByUsernameAndPass("pike", "secretpw").
			Return(nil, errors.New("password is invalid"))

		w := httptest.NewRecorder()
		uh.LogIn(w, formRequest("/auth/login/", creds, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "wrong username or password")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("empty form is rejected before the repo", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.LogIn(w, formRequest("/auth/login/", url.Values{}, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uh, _ := newTestUserHandler(t, ctrl)

	w := httptest.NewRecorder()
	uh.LogOut(w, httptest.NewRequest("POST", "/auth/logout/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessions.CookieName, cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0, "logout cookie should expire the session")
}

func TestEditProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uh, m := newTestUserHandler(t, ctrl)

	sessionUser := func() *user.User {
		return &user.User{Id: "1", Username: "pike", FirstName: "Rob", Email: "rob@example.com"}
	}

	t.Run("anonymous is sent to the login page", func(t *testing.T) {
		w := httptest.NewRecorder()
		uh.EditProfile(w, httptest.NewRequest("GET", "/edit-profile/", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/login/", w.Header().Get("Location"))
	})

	t.Run("GET prefills the form", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/edit-profile/", nil)
		r = r.WithContext(context.WithValue(r.Context(), sessions.SessionKey, sessionUser()))

		w := httptest.NewRecorder()
		uh.EditProfile(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "pike")
	})

	t.Run("update without a rename leaves posts alone", func(t *testing.T) {
		u := sessionUser()
		m.repo.EXPECT().
			UpdateProfile(gomock.Any(), u).
			Return(nil)

		form := url.Values{"username": {"pike"}, "first_name": {"Robert"}}
		w := httptest.NewRecorder()
		uh.EditProfile(w, formRequest("/edit-profile/", form, u))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/profile/pike/", w.Header().Get("Location"))
		assert.Equal(t, "Robert", u.FirstName)
	})

	t.Run("rename propagates to the author snapshots", func(t *testing.T) {
		u := sessionUser()
		m.repo.EXPECT().UserExists("commander").Return(false)
		m.repo.EXPECT().UpdateProfile(gomock.Any(), u).Return(nil)
		m.posts.EXPECT().UpdateAuthorUsername(gomock.Any(), "1", "commander").Return(nil)

		form := url.Values{"username": {"commander"}}
		w := httptest.NewRecorder()
		uh.EditProfile(w, formRequest("/edit-profile/", form, u))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/profile/commander/", w.Header().Get("Location"))
	})

	t.Run("rename to a taken username is rejected", func(t *testing.T) {
		u := sessionUser()
		m.repo.EXPECT().UserExists("taken").Return(true)

		form := url.Values{"username": {"taken"}}
		w := httptest.NewRecorder()
		uh.EditProfile(w, formRequest("/edit-profile/", form, u))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "already taken")
		assert.Equal(t, "pike", u.Username)
	})
}
