package models

// Follow is the directed edge meaning the follower sees the author's posts
// in their feed. The composite unique index makes duplicate edges impossible
// even under concurrent requests.
type Follow struct {
	BaseModel

	FollowerID uint `json:"follower_id" gorm:"uniqueIndex:idx_follow_pair"`
	AuthorID   uint `json:"author_id" gorm:"uniqueIndex:idx_follow_pair"`

	Follower Account `json:"follower" gorm:"foreignKey:FollowerID"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID"`
}
