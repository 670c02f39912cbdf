package models

type Post struct {
	BaseModel

	Text  string `json:"text" validate:"required"`
	Image string `json:"image"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	// Optional community the post belongs to. Deleting the group keeps the
	// post and clears this reference.
	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group,omitempty"`

	Comments []Comment `json:"comments,omitempty"`
}

type Comment struct {
	BaseModel

	Text string `json:"text" validate:"required"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
	PostID   uint    `json:"post_id"`
	Post     Post    `json:"-"`
}
