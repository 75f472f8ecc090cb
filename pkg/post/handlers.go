package post

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"

	"blog/pkg/access"
	"blog/pkg/category"
	"blog/pkg/comment"
	"blog/pkg/common"
	"blog/pkg/forms"
	"blog/pkg/location"
	"blog/pkg/logger"
	"blog/pkg/render"
	"blog/pkg/sessions"
	"blog/pkg/user"
)

const (
	loginURL = "/auth/login/"

	maxUploadBytes = 10 << 20
)

type (
	IPostRepo interface {
		GetById(context.Context, PostId) (*Post, error)
		ListVisible(context.Context, time.Time, string) ([]*Post, common.Page, error)
		ListByCategory(context.Context, *category.Category, time.Time, string) ([]*Post, common.Page, error)
		ListByAuthor(context.Context, string, string) ([]*Post, common.Page, error)

		Add(context.Context, *Post) (PostId, error)
		Update(context.Context, *Post) error
		Delete(context.Context, PostId) error

		AddComment(context.Context, PostId, *user.User, string) (*comment.Comment, error)
		GetComment(context.Context, comment.CommentId) (*comment.Comment, error)
		UpdateComment(context.Context, *comment.Comment) error
		DeleteComment(context.Context, comment.CommentId) error
		CommentsForPost(context.Context, PostId) ([]*comment.Comment, error)
	}

	ICategoryRepo interface {
		GetPublishedBySlug(context.Context, string) (*category.Category, error)
		GetAllPublished(context.Context) ([]*category.Category, error)
	}

	ILocationRepo interface {
		GetAllPublished(context.Context) ([]*location.Location, error)
	}

	IUserRepo interface {
		GetByUsername(context.Context, string) (*user.User, error)
	}
)

type PostHandler struct {
	PostRepo     IPostRepo
	CategoryRepo ICategoryRepo
	LocationRepo ILocationRepo
	UserRepo     IUserRepo
	Tmpl         *render.Renderer
	MediaDir     string

	// Now is the clock every visibility decision uses.
	Now func() time.Time
}

func NewPostHandler(postRepo IPostRepo, categoryRepo ICategoryRepo, locationRepo ILocationRepo, userRepo IUserRepo, tmpl *render.Renderer, mediaDir string) *PostHandler {
	return &PostHandler{
		PostRepo:     postRepo,
		CategoryRepo: categoryRepo,
		LocationRepo: locationRepo,
		UserRepo:     userRepo,
		Tmpl:         tmpl,
		MediaDir:     mediaDir,
		Now:          time.Now,
	}
}

// Index shows the page of publicly visible posts.
func (ph *PostHandler) Index(w http.ResponseWriter, r *http.Request) {
	posts, page, err := ph.PostRepo.ListVisible(r.Context(), ph.Now(), r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load posts from the repo: %v", err)
		http.Error(w, "failed loading posts", http.StatusInternalServerError)
		return
	}

	ph.Tmpl.HTML(w, r, http.StatusOK, "index.html", render.Data{
		"Viewer": sessions.Viewer(r.Context()),
		"Posts":  posts,
		"Page":   page,
	})
}

// Detail shows one post with its comments. Authors see their own posts in
// any state; everyone else only what passes the visibility gates.
func (ph *PostHandler) Detail(w http.ResponseWriter, r *http.Request) {
	postId := PostId(mux.Vars(r)["post_id"])
	viewer := sessions.Viewer(r.Context())

	p, err := ph.PostRepo.GetById(r.Context(), postId)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, ErrNotFound)
		return
	}
	if !access.IsPostVisible(p, viewer, ph.Now()) {
		ph.Tmpl.NotFound(w, r)
		return
	}

	comments, err := ph.PostRepo.CommentsForPost(r.Context(), postId)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load comments for post %s: %v", postId, err)
		http.Error(w, "failed loading comments", http.StatusInternalServerError)
		return
	}

	ph.renderDetail(w, r, p, comments, forms.Errors{})
}

func (ph *PostHandler) renderDetail(w http.ResponseWriter, r *http.Request, p *Post, comments []*comment.Comment, errs forms.Errors) {
	viewer := sessions.Viewer(r.Context())
	ph.Tmpl.HTML(w, r, http.StatusOK, "detail.html", render.Data{
		"Viewer":   viewer,
		"Post":     p,
		"Comments": comments,
		"IsOwner":  access.CanMutate(p.AuthorID(), viewer),
		"Errors":   errs,
	})
}

// Category lists the visible posts of one published category. A missing or
// unpublished category is a 404 either way.
func (ph *PostHandler) Category(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["category_slug"]

	cat, err := ph.CategoryRepo.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, category.ErrNotFound)
		return
	}

	posts, page, err := ph.PostRepo.ListByCategory(r.Context(), cat, ph.Now(), r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load category %s posts: %v", slug, err)
		http.Error(w, "failed loading posts for the category", http.StatusInternalServerError)
		return
	}

	ph.Tmpl.HTML(w, r, http.StatusOK, "category.html", render.Data{
		"Viewer":   sessions.Viewer(r.Context()),
		"Category": cat,
		"Posts":    posts,
		"Page":     page,
	})
}

// Profile shows every post of a user, in any publication state, to any
// viewer. No visibility filter applies here.
func (ph *PostHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	viewer := sessions.Viewer(r.Context())

	profile, err := ph.UserRepo.GetByUsername(r.Context(), username)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, user.ErrNotFound)
		return
	}

	posts, page, err := ph.PostRepo.ListByAuthor(r.Context(), username, r.URL.Query().Get("page"))
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load user `%s` posts from the repo: %v", username, err)
		http.Error(w, "failed loading user posts", http.StatusInternalServerError)
		return
	}

	ph.Tmpl.HTML(w, r, http.StatusOK, "profile.html", render.Data{
		"Viewer":  viewer,
		"Profile": profile,
		"Posts":   posts,
		"Page":    page,
		"IsOwner": viewer != nil && viewer.Id == profile.Id,
	})
}

// Create makes a new post owned by the session user. Anonymous access goes
// to the login page.
func (ph *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	author, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		http.Redirect(w, r, loginURL, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		ph.renderPostForm(w, r, &forms.PostForm{}, forms.Errors{}, nil)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Log(r.Context()).Errorf("can't parse post form: %v", err)
		http.Error(w, "can't parse form", http.StatusBadRequest)
		return
	}
	form := forms.PostFormFromRequest(r)
	if errs := form.Validate(); !errs.Ok() {
		ph.renderPostForm(w, r, form, errs, nil)
		return
	}

	image, err := ph.saveImage(r)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't save post image: %v", err)
		http.Error(w, "failed saving image", http.StatusInternalServerError)
		return
	}

	p := &Post{
		Id:         PostId(common.RandStringRunes(12)),
		Title:      form.Title,
		Text:       form.Text,
		PubDate:    form.PubDate,
		Author:     author,
		CategoryId: form.CategoryId,
		LocationId: form.LocationId,
		Image:      image,
		Published:  true,
		Created:    time.Now(),
	}
	if _, err := ph.PostRepo.Add(r.Context(), p); err != nil {
		logger.Log(r.Context()).Errorf("can't add post to the repo: %v", err)
		http.Error(w, "failed adding post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+author.Username+"/", http.StatusFound)
}

// Edit updates a post. A viewer who isn't the author lands on the detail
// page instead.
func (ph *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	postId := PostId(mux.Vars(r)["post_id"])
	viewer := sessions.Viewer(r.Context())

	p, err := ph.PostRepo.GetById(r.Context(), postId)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, ErrNotFound)
		return
	}
	if !access.CanMutate(p.AuthorID(), viewer) {
		http.Redirect(w, r, "/posts/"+string(postId)+"/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		form := &forms.PostForm{
			Title:      p.Title,
			Text:       p.Text,
			PubDateRaw: p.PubDate.Format("2006-01-02T15:04"),
			CategoryId: p.CategoryId,
			LocationId: p.LocationId,
		}
		ph.renderPostForm(w, r, form, forms.Errors{}, p)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Log(r.Context()).Errorf("can't parse post form: %v", err)
		http.Error(w, "can't parse form", http.StatusBadRequest)
		return
	}
	form := forms.PostFormFromRequest(r)
	if errs := form.Validate(); !errs.Ok() {
		ph.renderPostForm(w, r, form, errs, p)
		return
	}

	image, err := ph.saveImage(r)
	if err != nil {
		logger.Log(r.Context()).Errorf("can't save post image: %v", err)
		http.Error(w, "failed saving image", http.StatusInternalServerError)
		return
	}
	if image != "" {
		p.Image = image
	}

	p.Title = form.Title
	p.Text = form.Text
	p.PubDate = form.PubDate
	p.CategoryId = form.CategoryId
	p.LocationId = form.LocationId
	if err := ph.PostRepo.Update(r.Context(), p); err != nil {
		logger.Log(r.Context()).Errorf("can't update post %s: %v", postId, err)
		http.Error(w, "failed updating post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+viewer.Username+"/", http.StatusFound)
}

// Delete removes a post after a confirmation. A viewer who isn't the author
// is sent to their own profile, not to the post.
func (ph *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postId := PostId(mux.Vars(r)["post_id"])

	viewer, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		http.Redirect(w, r, loginURL, http.StatusFound)
		return
	}

	p, err := ph.PostRepo.GetById(r.Context(), postId)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, ErrNotFound)
		return
	}
	if !access.CanMutate(p.AuthorID(), viewer) {
		http.Redirect(w, r, "/profile/"+viewer.Username+"/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		ph.Tmpl.HTML(w, r, http.StatusOK, "confirm_delete_post.html", render.Data{
			"Viewer": viewer,
			"Post":   p,
		})
		return
	}

	if err := ph.PostRepo.Delete(r.Context(), postId); err != nil {
		logger.Log(r.Context()).Errorf("can't remove post %s: %v", postId, err)
		http.Error(w, "removing post failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+viewer.Username+"/", http.StatusFound)
}

// AddComment creates a comment and bumps the post's counter in the same
// store transaction.
func (ph *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	postId := PostId(mux.Vars(r)["post_id"])

	commenter, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		http.Redirect(w, r, loginURL, http.StatusFound)
		return
	}

	p, err := ph.PostRepo.GetById(r.Context(), postId)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, ErrNotFound)
		return
	}

	form := forms.CommentFormFromRequest(r)
	if errs := form.Validate(); !errs.Ok() {
		comments, err := ph.PostRepo.CommentsForPost(r.Context(), postId)
		if err != nil {
			logger.Log(r.Context()).Errorf("can't load comments for post %s: %v", postId, err)
			http.Error(w, "failed loading comments", http.StatusInternalServerError)
			return
		}
		ph.renderDetail(w, r, p, comments, errs)
		return
	}

	if _, err := ph.PostRepo.AddComment(r.Context(), postId, commenter, form.Text); err != nil {
		logger.Log(r.Context()).Errorf("can't add comment to post %s: %v", postId, err)
		http.Error(w, "failed adding comment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/posts/"+string(postId)+"/", http.StatusFound)
}

// EditComment updates a comment's text. A viewer who isn't the author lands
// on the post's detail page.
func (ph *PostHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postId := vars["post_id"]
	commentId := comment.CommentId(vars["comment_id"])
	viewer := sessions.Viewer(r.Context())

	cmt, err := ph.PostRepo.GetComment(r.Context(), commentId)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, ErrCommentNotFound)
		return
	}
	if !access.CanMutate(cmt.Author.Id, viewer) {
		http.Redirect(w, r, "/posts/"+postId+"/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		ph.Tmpl.HTML(w, r, http.StatusOK, "comment_form.html", render.Data{
			"Viewer": viewer,
			"Form":   &forms.CommentForm{Text: cmt.Text},
			"Errors": forms.Errors{},
			"PostId": postId,
		})
		return
	}

	form := forms.CommentFormFromRequest(r)
	if errs := form.Validate(); !errs.Ok() {
		ph.Tmpl.HTML(w, r, http.StatusOK, "comment_form.html", render.Data{
			"Viewer": viewer,
			"Form":   form,
			"Errors": errs,
			"PostId": postId,
		})
		return
	}

	cmt.Text = form.Text
	if err := ph.PostRepo.UpdateComment(r.Context(), cmt); err != nil {
		logger.Log(r.Context()).Errorf("can't update comment %s: %v", commentId, err)
		http.Error(w, "failed updating comment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/posts/"+postId+"/", http.StatusFound)
}

// DeleteComment removes a comment after a confirmation. A viewer who isn't
// the author is sent to their own profile; success goes to the index.
func (ph *PostHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postId := vars["post_id"]
	commentId := comment.CommentId(vars["comment_id"])

	viewer, err := sessions.GetAuthUser(r.Context())
	if err != nil {
		http.Redirect(w, r, loginURL, http.StatusFound)
		return
	}

	cmt, err := ph.PostRepo.GetComment(r.Context(), commentId)
	if err != nil {
		ph.renderNotFoundOr(w, r, err, ErrCommentNotFound)
		return
	}
	if !access.CanMutate(cmt.Author.Id, viewer) {
		http.Redirect(w, r, "/profile/"+viewer.Username+"/", http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		ph.Tmpl.HTML(w, r, http.StatusOK, "confirm_delete_comment.html", render.Data{
			"Viewer":  viewer,
			"Comment": cmt,
			"PostId":  postId,
		})
		return
	}

	if err := ph.PostRepo.DeleteComment(r.Context(), commentId); err != nil {
		logger.Log(r.Context()).Errorf("can't remove comment %s from post %s: %v", commentId, postId, err)
		http.Error(w, "removing comment failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (ph *PostHandler) renderPostForm(w http.ResponseWriter, r *http.Request, form *forms.PostForm, errs forms.Errors, p *Post) {
	categories, err := ph.CategoryRepo.GetAllPublished(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load categories: %v", err)
		http.Error(w, "failed loading categories", http.StatusInternalServerError)
		return
	}
	locations, err := ph.LocationRepo.GetAllPublished(r.Context())
	if err != nil {
		logger.Log(r.Context()).Errorf("can't load locations: %v", err)
		http.Error(w, "failed loading locations", http.StatusInternalServerError)
		return
	}

	ph.Tmpl.HTML(w, r, http.StatusOK, "post_form.html", render.Data{
		"Viewer":     sessions.Viewer(r.Context()),
		"Form":       form,
		"Errors":     errs,
		"Post":       p,
		"Categories": categories,
		"Locations":  locations,
	})
}

// renderNotFoundOr maps the repo's sentinel to the 404 page and anything
// else to a plain 500.
func (ph *PostHandler) renderNotFoundOr(w http.ResponseWriter, r *http.Request, err, sentinel error) {
	if errors.Is(err, sentinel) {
		ph.Tmpl.NotFound(w, r)
		return
	}
	logger.Log(r.Context()).Errorf("repo failure: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// saveImage stores an uploaded post image under the media dir and returns
// its relative path. No upload is fine and returns an empty path.
func (ph *PostHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	dir := filepath.Join(ph.MediaDir, "posts_images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("post/handlers: can't create media dir: %w", err)
	}

	name := common.RandStringRunes(12) + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("post/handlers: can't create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("post/handlers: can't write image file: %w", err)
	}

	return filepath.Join("posts_images", name), nil
}
