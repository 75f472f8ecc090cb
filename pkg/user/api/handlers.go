package api

import (
	"context"
	"net/http"

	"blog/pkg/common"
	"blog/pkg/forms"
	"blog/pkg/logger"
	"blog/pkg/render"
	"blog/pkg/sessions"
	"blog/pkg/user"
)

const loginURL = "/auth/login/"

type (
	UserRepo interface {
		UserExists(string) bool
		GetByUsernameAndPass(string, string) (*user.User, error)
		Add(*user.User) (string, error)
		UpdateProfile(context.Context, *user.User) error
	}

	SessionManager interface {
		CreateToken(*user.User) (string, error)
		CleanupUserSessions(userId string) error
	}

	// PostSync keeps the author snapshot on posts and comments in step
	// with profile renames.
	PostSync interface {
		UpdateAuthorUsername(ctx context.Context, userId, username string) error
	}

	UserHandler struct {
		Repo           UserRepo
		SessionManager SessionManager
		Posts          PostSync
		Tmpl           *render.Renderer
	}
)

func NewUserHandler(r UserRepo, sm SessionManager, posts PostSync, tmpl *render.Renderer) *UserHandler {
	return &UserHandler{
		Repo:           r,
		SessionManager: sm,
		Posts:          posts,
		Tmpl:           tmpl,
	}
}

// Register creates an account and logs the new user straight in.
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		uh.renderRegistration(w, r, &forms.RegistrationForm{}, forms.Errors{})
		return
	}

	form := forms.RegistrationFormFromRequest(r)
	errs := form.Validate()
	if errs.Ok() && uh.Repo.UserExists(form.Username) {
		errs = append(errs, forms.FieldError{Field: "username", Reason: "this username is already taken"})
	}
	if !errs.Ok() {
		uh.renderRegistration(w, r, form, errs)
		return
	}

	salt := common.RandStringRunes(8)
	u := &user.User{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  common.HashPass(form.Password, salt),
	}
	id, err := uh.Repo.Add(u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't add user: %v", err)
		http.Error(w, "can't add user", http.StatusInternalServerError)
		return
	}
	u.Id = id

	uh.startSession(w, r, u, "/")
}

// LogIn renders the login form and exchanges valid credentials for a
// session cookie.
func (uh *UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		uh.renderLogin(w, r, &forms.LoginForm{}, forms.Errors{}, "")
		return
	}

	form := forms.LoginFormFromRequest(r)
	if errs := form.Validate(); !errs.Ok() {
		uh.renderLogin(w, r, form, errs, "")
		return
	}

	u, err := uh.Repo.GetByUsernameAndPass(form.Username, form.Password)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't get the user by username `%s` and password: %v", form.Username, err)
		uh.renderLogin(w, r, form, forms.Errors{}, "wrong username or password")
		return
	}

	// Remove expired user sessions if there are any
	if err := uh.SessionManager.CleanupUserSessions(u.Id); err != nil {
		logger.Log(r.Context()).Errorf("can't cleanup sessions for user `%s`: %v", form.Username, err)
		http.Error(w, "failed managing user sessions", http.StatusInternalServerError)
		return
	}

	uh.startSession(w, r, u, "/")
}

func (uh *UserHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, sessions.ExpiredCookie())
	http.Redirect(w, r, "/", http.StatusFound)
}

// EditProfile lets the session user change their own fields. A username
// change is propagated to the author snapshots on posts and comments.
func (uh *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	u, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		http.Redirect(w, r, loginURL, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		form := &forms.ProfileForm{
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
		}
		uh.renderProfileForm(w, r, form, forms.Errors{})
		return
	}

	form := forms.ProfileFormFromRequest(r)
	errs := form.Validate()
	if errs.Ok() && form.Username != u.Username && uh.Repo.UserExists(form.Username) {
		errs = append(errs, forms.FieldError{Field: "username", Reason: "this username is already taken"})
	}
	if !errs.Ok() {
		uh.renderProfileForm(w, r, form, errs)
		return
	}

	renamed := form.Username != u.Username
	u.Username = form.Username
	u.FirstName = form.FirstName
	u.LastName = form.LastName
	u.Email = form.Email
	if err := uh.Repo.UpdateProfile(r.Context(), u); err != nil {
		logger.Log(r.Context()).Errorf("can't update profile of user %s: %v", u.Id, err)
		http.Error(w, "failed updating profile", http.StatusInternalServerError)
		return
	}
	if renamed {
		if err := uh.Posts.UpdateAuthorUsername(r.Context(), u.Id, u.Username); err != nil {
			logger.Log(r.Context()).Errorf("can't rename post author for user %s: %v", u.Id, err)
			http.Error(w, "failed updating profile", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/profile/"+u.Username+"/", http.StatusFound)
}

// startSession logs the user in: signed token into Redis and the cookie,
// then a redirect.
func (uh *UserHandler) startSession(w http.ResponseWriter, r *http.Request, u *user.User, target string) {
	token, err := uh.SessionManager.CreateToken(u)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't create JWT token for user: %v", err)
		http.Error(w, "user authentication failed", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, sessions.AuthCookie(token))
	http.Redirect(w, r, target, http.StatusFound)
}

func (uh *UserHandler) renderRegistration(w http.ResponseWriter, r *http.Request, form *forms.RegistrationForm, errs forms.Errors) {
	uh.Tmpl.HTML(w, r, http.StatusOK, "registration.html", render.Data{
		"Viewer": sessions.Viewer(r.Context()),
		"Form":   form,
		"Errors": errs,
	})
}

func (uh *UserHandler) renderLogin(w http.ResponseWriter, r *http.Request, form *forms.LoginForm, errs forms.Errors, loginError string) {
	uh.Tmpl.HTML(w, r, http.StatusOK, "login.html", render.Data{
		"Viewer":     sessions.Viewer(r.Context()),
		"Form":       form,
		"Errors":     errs,
		"LoginError": loginError,
	})
}

func (uh *UserHandler) renderProfileForm(w http.ResponseWriter, r *http.Request, form *forms.ProfileForm, errs forms.Errors) {
	uh.Tmpl.HTML(w, r, http.StatusOK, "profile_form.html", render.Data{
		"Viewer": sessions.Viewer(r.Context()),
		"Form":   form,
		"Errors": errs,
	})
}
