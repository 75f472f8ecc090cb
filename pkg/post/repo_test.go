package post

import (
	"context"
	"fmt"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blog/pkg/category"
	"blog/pkg/comment"
	"blog/pkg/location"
	"blog/pkg/mongodb"
	"blog/pkg/user"
)

type fakeCategories struct {
	byId map[string]*category.Category
	err  error
}

func (f fakeCategories) GetByIds(context.Context, []string) (map[string]*category.Category, error) {
	return f.byId, f.err
}

type fakeLocations struct {
	byId map[string]*location.Location
	err  error
}

func (f fakeLocations) GetByIds(context.Context, []string) (map[string]*location.Location, error) {
	return f.byId, f.err
}

func TestPostAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockInsertOneResult := mongodb.NewMockIMongoInsertOneResult(ctrl)

	repo := &Repo{posts: mockPosts}

	testPost := &Post{Id: PostId("1")}

	t.Run("success", func(t *testing.T) {
		mockPosts.EXPECT().
			InsertOne(ctx, gomock.Any()).
			Return(mockInsertOneResult, nil)

		insertedPostId, err := repo.Add(ctx, testPost)
		require.NoError(t, err)
		assert.Equal(t, testPost.Id, insertedPostId)
	})

	t.Run("insert error", func(t *testing.T) {
		expectedErr := fmt.Errorf("insert_failed")
		mockPosts.EXPECT().
			InsertOne(ctx, gomock.Any()).
			Return(nil, expectedErr)

		insertedPostId, err := repo.Add(ctx, &Post{})
		assert.Equal(t, insertedPostId, PostId(``))
		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestPostUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockUpdateResult := mongodb.NewMockIMongoUpdateResult(ctrl)
	repo := &Repo{posts: mockPosts}

	p := &Post{Id: PostId("1"), Title: "updated"}

	t.Run("success", func(t *testing.T) {
		mockPosts.EXPECT().
			UpdateOne(ctx, bson.M{"id": p.Id}, bson.M{"$set": p}).
			Return(mockUpdateResult, nil)
		assert.NoError(t, repo.Update(ctx, p))
	})

	t.Run("update error", func(t *testing.T) {
		expectedErr := fmt.Errorf("update_failed")
		mockPosts.EXPECT().
			UpdateOne(ctx, gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)
		assert.ErrorIs(t, repo.Update(ctx, p), expectedErr)
	})
}

func TestPostDeleteCascadesComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockDeleteResult := mongodb.NewMockIMongoDeleteResult(ctrl)
	repo := &Repo{posts: mockPosts, comments: mockComments}

	id := PostId("1")

	t.Run("deletes comments before the post", func(t *testing.T) {
		gomock.InOrder(
			mockComments.EXPECT().
				DeleteMany(ctx, bson.M{"post_id": "1"}).
				Return(mockDeleteResult, nil),
			mockPosts.EXPECT().
				DeleteOne(ctx, bson.M{"id": id}).
				Return(mockDeleteResult, nil),
		)
		assert.NoError(t, repo.Delete(ctx, id))
	})

	t.Run("comment delete error stops the cascade", func(t *testing.T) {
		expectedErr := fmt.Errorf("delete_failed")
		mockComments.EXPECT().
			DeleteMany(ctx, gomock.Any()).
			Return(nil, expectedErr)
		assert.ErrorIs(t, repo.Delete(ctx, id), expectedErr)
	})
}

func TestGetById(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockSingleResult := mongodb.NewMockIMongoSingleResult(ctrl)

	cat := &category.Category{Id: "c1", Title: "Places", Published: true}
	repo := &Repo{
		posts:      mockPosts,
		categories: fakeCategories{byId: map[string]*category.Category{"c1": cat}},
		locations:  fakeLocations{},
	}

	t.Run("resolves the category reference", func(t *testing.T) {
		stored := Post{Id: PostId("1"), Title: "hello", CategoryId: "c1"}

		mockPosts.EXPECT().
			FindOne(ctx, bson.M{"id": PostId("1")}).
			Return(mockSingleResult)
		mockSingleResult.EXPECT().
			Decode(gomock.AssignableToTypeOf(&Post{})).
			SetArg(0, stored).
			Return(nil)

		got, err := repo.GetById(ctx, PostId("1"))
		require.NoError(t, err)
		assert.Equal(t, PostId("1"), got.Id)
		assert.Equal(t, cat, got.Category)
	})

	t.Run("missing post maps to ErrNotFound", func(t *testing.T) {
		mockPosts.EXPECT().
			FindOne(ctx, gomock.Any()).
			Return(mockSingleResult)
		mockSingleResult.EXPECT().
			Decode(gomock.Any()).
			Return(mongo.ErrNoDocuments)

		_, err := repo.GetById(ctx, PostId("nope"))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListVisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2022, 6, 15, 12, 0, 0, 0, time.UTC)

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockCursor := mongodb.NewMockIMongoCursor(ctrl)

	published := &category.Category{Id: "pub", Published: true}
	hidden := &category.Category{Id: "hid", Published: false}

	repo := &Repo{
		posts:    mockPosts,
		comments: mockComments,
		categories: fakeCategories{byId: map[string]*category.Category{
			"pub": published,
			"hid": hidden,
		}},
		locations: fakeLocations{},
	}

	// The store filter already took care of is_published and pub_date;
	// the category gate is applied here against live category rows.
	candidates := []*Post{
		{Id: PostId("1"), Published: true},
		{Id: PostId("2"), Published: true, CategoryId: "pub"},
		{Id: PostId("3"), Published: true, CategoryId: "hid"},
	}

	mockPosts.EXPECT().
		Find(ctx, bson.M{"is_published": true, "pub_date": bson.M{"$lte": now}}, gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&candidates)).
		SetArg(1, candidates).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	mockComments.EXPECT().
		CountDocuments(ctx, bson.M{"post_id": "1"}).
		Return(int64(2), nil)
	mockComments.EXPECT().
		CountDocuments(ctx, bson.M{"post_id": "2"}).
		Return(int64(0), nil)

	posts, page, err := repo.ListVisible(ctx, now, "")
	require.NoError(t, err)

	ids := []PostId{}
	for _, p := range posts {
		ids = append(ids, p.Id)
	}
	assert.Equal(t, []PostId{PostId("1"), PostId("2")}, ids)
	assert.Equal(t, 2, posts[0].CommentCount)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.Total)
}

func TestListByAuthorAppliesNoVisibilityFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockCursor := mongodb.NewMockIMongoCursor(ctrl)

	repo := &Repo{
		posts:      mockPosts,
		comments:   mockComments,
		categories: fakeCategories{},
		locations:  fakeLocations{},
	}

	author := &user.User{Id: "42", Username: "pike"}
	stored := []*Post{
		{Id: PostId("1"), Author: author, Published: true},
		{Id: PostId("2"), Author: author, Published: false},
		{Id: PostId("3"), Author: author, Published: true, PubDate: time.Now().Add(time.Hour)},
	}

	// The only filter is the author; drafts and future posts come back too.
	mockPosts.EXPECT().
		Find(ctx, bson.M{"author.username": "pike"}, gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&stored)).
		SetArg(1, stored).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	mockComments.EXPECT().
		CountDocuments(ctx, gomock.Any()).
		Return(int64(0), nil).
		Times(3)

	posts, _, err := repo.ListByAuthor(ctx, "pike", "")
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestGetComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockSingleResult := mongodb.NewMockIMongoSingleResult(ctrl)
	repo := &Repo{comments: mockComments}

	t.Run("success", func(t *testing.T) {
		stored := comment.Comment{Id: comment.CommentId("c1"), PostId: "1", Text: "hi"}

		mockComments.EXPECT().
			FindOne(ctx, bson.M{"id": comment.CommentId("c1")}).
			Return(mockSingleResult)
		mockSingleResult.EXPECT().
			Decode(gomock.AssignableToTypeOf(&comment.Comment{})).
			SetArg(0, stored).
			Return(nil)

		got, err := repo.GetComment(ctx, comment.CommentId("c1"))
		require.NoError(t, err)
		assert.Equal(t, &stored, got)
	})

	t.Run("missing comment maps to ErrCommentNotFound", func(t *testing.T) {
		mockComments.EXPECT().
			FindOne(ctx, gomock.Any()).
			Return(mockSingleResult)
		mockSingleResult.EXPECT().
			Decode(gomock.Any()).
			Return(mongo.ErrNoDocuments)

		_, err := repo.GetComment(ctx, comment.CommentId("nope"))
		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}

func TestUpdateComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockUpdateResult := mongodb.NewMockIMongoUpdateResult(ctrl)
	repo := &Repo{comments: mockComments}

	cmt := &comment.Comment{Id: comment.CommentId("c1"), Text: "edited"}

	mockComments.EXPECT().
		UpdateOne(ctx, bson.M{"id": cmt.Id}, bson.M{"$set": bson.M{"text": "edited"}}).
		Return(mockUpdateResult, nil)
	assert.NoError(t, repo.UpdateComment(ctx, cmt))
}

func TestDeleteCommentKeepsCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	// No expectations are set on the posts collection: deleting a comment
	// must touch the comments collection only and leave comment_count as is.
	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockDeleteResult := mongodb.NewMockIMongoDeleteResult(ctrl)
	repo := &Repo{posts: mockPosts, comments: mockComments}

	mockComments.EXPECT().
		DeleteOne(ctx, bson.M{"id": comment.CommentId("c1")}).
		Return(mockDeleteResult, nil)

	assert.NoError(t, repo.DeleteComment(ctx, comment.CommentId("c1")))
}

func TestCommentsForPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockCursor := mongodb.NewMockIMongoCursor(ctrl)
	repo := &Repo{comments: mockComments}

	expected := []*comment.Comment{
		{Id: comment.CommentId("c1"), PostId: "1", Text: "first"},
		{Id: comment.CommentId("c2"), PostId: "1", Text: "second"},
	}

	mockComments.EXPECT().
		Find(ctx, bson.M{"post_id": "1"}, gomock.Any()).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&expected)).
		SetArg(1, expected).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	got, err := repo.CommentsForPost(ctx, PostId("1"))
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestUpdateAuthorUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockUpdateResult := mongodb.NewMockIMongoUpdateResult(ctrl)
	repo := &Repo{posts: mockPosts, comments: mockComments}

	set := bson.M{"$set": bson.M{"author.username": "newname"}}

	mockPosts.EXPECT().
		UpdateMany(ctx, bson.M{"author.id": "42"}, set).
		Return(mockUpdateResult, nil)
	mockComments.EXPECT().
		UpdateMany(ctx, bson.M{"author.id": "42"}, set).
		Return(mockUpdateResult, nil)

	assert.NoError(t, repo.UpdateAuthorUsername(ctx, "42", "newname"))
}

func TestDeleteByAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockPosts := mongodb.NewMockIMongoCollection(ctrl)
	mockComments := mongodb.NewMockIMongoCollection(ctrl)
	mockCursor := mongodb.NewMockIMongoCursor(ctrl)
	mockDeleteResult := mongodb.NewMockIMongoDeleteResult(ctrl)
	repo := &Repo{posts: mockPosts, comments: mockComments}

	stored := []*Post{
		{Id: PostId("1")},
		{Id: PostId("2")},
	}

	mockPosts.EXPECT().
		Find(ctx, bson.M{"author.id": "42"}).
		Return(mockCursor, nil)
	mockCursor.EXPECT().
		All(ctx, gomock.AssignableToTypeOf(&stored)).
		SetArg(1, stored).
		Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	mockComments.EXPECT().
		DeleteMany(ctx, bson.M{"post_id": bson.M{"$in": []string{"1", "2"}}}).
		Return(mockDeleteResult, nil)
	mockPosts.EXPECT().
		DeleteMany(ctx, bson.M{"author.id": "42"}).
		Return(mockDeleteResult, nil)

	assert.NoError(t, repo.DeleteByAuthor(ctx, "42"))
}
