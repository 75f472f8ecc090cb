package user

type User struct {
	Id        string `json:"id" bson:"id"`
	Username  string `json:"username" bson:"username"`
	FirstName string `json:"firstName" bson:"-"`
	LastName  string `json:"lastName" bson:"-"`
	Email     string `json:"email" bson:"-"`
	Password  []byte `json:"-" bson:"-"`
}

// FullName is what templates show next to a post when the profile has
// real names filled in, falling back to the username.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
