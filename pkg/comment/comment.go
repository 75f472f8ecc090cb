package comment

import (
	"time"

	"blog/pkg/user"
)

type CommentId string

// Comment always belongs to a post and is removed together with it.
// Comments on a post are shown in creation order, oldest first.
type Comment struct {
	Id      CommentId  `bson:"id" json:"id"`
	PostId  string     `bson:"post_id" json:"postId"`
	Author  *user.User `bson:"author" json:"author"`
	Text    string     `bson:"text" json:"text"`
	Created time.Time  `bson:"created_at" json:"created"`
}
