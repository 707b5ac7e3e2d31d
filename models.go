package derpi

// User is a Derpibooru user profile. Timestamps are kept as the text the
// server sends.
type User struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Role         string      `json:"role"`
	Description  string      `json:"description"`
	AvatarURL    string      `json:"avatar_url"`
	CreatedAt    string      `json:"created_at"`
	CommentCount int         `json:"comment_count"`
	UploadsCount int         `json:"uploads_count"`
	PostCount    int         `json:"post_count"`
	TopicCount   int         `json:"topic_count"`
	Links        []UserLink  `json:"links"`
	Awards       []UserAward `json:"awards"`
}

// UserLink links a user to a tag.
type UserLink struct {
	UserID    int    `json:"user_id"`
	CreatedAt string `json:"created_at"`
	State     string `json:"state"`
	TagID     int    `json:"tag_id"`
}

// UserAward is a badge awarded to a user.
type UserAward struct {
	ImageURL  string `json:"image_url"`
	Title     string `json:"title"`
	ID        int    `json:"id"`
	Label     string `json:"label"`
	AwardedOn string `json:"awarded_on"`
}
