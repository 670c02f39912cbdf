package models

type Group struct {
	BaseModel

	Slug        string `json:"slug" gorm:"uniqueIndex" validate:"required,lowercase,alphanum,max=50"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`

	Posts []Post `json:"posts,omitempty"`
}
