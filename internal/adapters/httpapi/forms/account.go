package forms

import (
	"regexp"
	"strings"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

type CommentForm struct {
	Text string `form:"text" binding:"required"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Next     string `form:"next"`
	Errors   Errors `form:"-"`
}

type SignupForm struct {
	Name            string `form:"first_name" binding:"max=150"`
	Family          string `form:"last_name" binding:"max=150"`
	Username        string `form:"username" binding:"required,max=150"`
	Email           string `form:"email" binding:"omitempty,email,max=254"`
	Password        string `form:"password1" binding:"required,min=8"`
	PasswordConfirm string `form:"password2" binding:"required,eqfield=Password"`
	Errors          Errors `form:"-"`
}

// Validate adds the checks the binding tags cannot express.
func (f *SignupForm) Validate() {
	if f.Errors == nil {
		f.Errors = Errors{}
	}
	f.Username = strings.TrimSpace(f.Username)
	if f.Username != "" && !usernamePattern.MatchString(f.Username) {
		f.Errors.Add("username", "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters.")
	}
}
