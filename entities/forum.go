package entities

import "time"

type ForumPost struct {
	PostID    uint      `gorm:"primaryKey" json:"post_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"` // total comment count, kept for the dashboard
	Comments  []Comment `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time `json:"time"`
}

type Comment struct {
	CommentID string    `gorm:"primaryKey" json:"comment_id"`
	PostID    uint      `gorm:"index" json:"post_id"`
	Author    string    `json:"author"`
	Text      string    `json:"comment"`
	Replies   []Reply   `gorm:"foreignKey:CommentID" json:"replies"`
	CreatedAt time.Time `json:"time"`
}

type Reply struct {
	ReplyID   string    `gorm:"primaryKey" json:"reply_id"`
	CommentID string    `gorm:"index" json:"comment_id"`
	Author    string    `json:"author"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"time"`
}
