package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"yatube/internal/adapters/httpapi/forms"
	"yatube/internal/adapters/httpapi/middleware"
	userEntity "yatube/internal/core/user"
	userPort "yatube/internal/ports/user"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	uc            UserUseCase
	secureCookies bool
}

func NewUserController(uc UserUseCase, secureCookies bool) *UserController {
	return &UserController{uc: uc, secureCookies: secureCookies}
}

func (ctl *UserController) LoginUser(c *gin.Context) {
	form := &forms.LoginForm{Next: c.Query("next"), Errors: forms.Errors{}}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBind(form); err != nil {
			form.Errors = forms.FromBinding(err)
		}
		if form.Errors.Valid() {
			res, err := ctl.uc.LoginUser(c.Request.Context(), form.Username, form.Password)
			switch {
			case err == nil:
				ctl.setSession(c, res)
				c.Redirect(http.StatusFound, safeNext(form.Next))
				return
			case errors.Is(err, userEntity.ErrInvalidLogin):
				form.Errors.Add(forms.NonFieldErrors, "Please enter a correct username and password. Note that both fields may be case-sensitive.")
			default:
				handleError(c, err)
				return
			}
		}
	}
	render(c, http.StatusOK, "users/login.html", gin.H{"Title": "Войти", "Form": form})
}

func (ctl *UserController) RegisterUser(c *gin.Context) {
	form := &forms.SignupForm{Errors: forms.Errors{}}
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBind(form); err != nil {
			form.Errors = forms.FromBinding(err)
		}
		form.Validate()
		if form.Errors.Valid() {
			ctx := c.Request.Context()
			u, err := ctl.uc.RegisterUser(ctx, form.Name, form.Family, form.Username, form.Email, form.Password)
			if err == nil {
				res, err := ctl.uc.IssueToken(u)
				if err != nil {
					handleError(c, err)
					return
				}
				ctl.setSession(c, res)
				c.Redirect(http.StatusFound, "/")
				return
			}
			if !errors.Is(err, userEntity.ErrUsernameTaken) {
				handleError(c, err)
				return
			}
			form.Errors.Add("username", "A user with that username or email already exists.")
		}
	}
	render(c, http.StatusOK, "users/signup.html", gin.H{"Title": "Зарегистрироваться", "Form": form})
}

func (ctl *UserController) LogoutUser(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", ctl.secureCookies, true)
	// The page below is rendered for a visitor who is no longer logged in.
	c.Set(middleware.UserIDKey, "")
	c.Set(middleware.UsernameKey, "")
	render(c, http.StatusOK, "users/logged_out.html", gin.H{"Title": "Вы вышли из системы"})
}

func (ctl *UserController) setSession(c *gin.Context, res *userPort.LoginResponse) {
	maxAge := int(time.Until(time.Unix(res.ExpiresAt, 0)).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, res.Token, maxAge, "/", "", ctl.secureCookies, true)
}

// safeNext only follows local paths.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
