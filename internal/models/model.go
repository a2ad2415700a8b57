package models

// User is a record owned by the backend user service. Only the fields the
// login check needs are decoded; anything else in the payload is ignored.
// Email and Password are nil when the payload has them null or absent.
type User struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type Post struct {
	ID      int
	Content string
}
