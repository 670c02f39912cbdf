package models

type Account struct {
	BaseModel

	Name         string `json:"name" gorm:"uniqueIndex" validate:"required,alphanum,min=3,max=32"`
	Nick         string `json:"nick"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
}
