package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/application/services"
	"fileshare-api/internal/interface/api/rest/dto/user"
	"fileshare-api/internal/interface/api/rest/middleware"
)

type AuthController struct {
	logger         *zap.Logger
	userService    ports.UserService
	sessionService ports.SessionService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	sessionService ports.SessionService,
) *AuthController {
	ac := &AuthController{
		logger:         logger,
		userService:    userService,
		sessionService: sessionService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteLogout, middleware.SessionAuth(sessionService, logger), ac.LogoutHandler)
	r.GET(RouteCheckLogin, ac.CheckLoginHandler)

	return ac
}

// LoginHandler accepts the legacy form fields, issues a session and sends the
// browser to the user's page. Bad credentials get one generic answer.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	usernameOrEmail := c.PostForm("username")
	password := c.PostForm("password")

	u, err := ac.userService.Authenticate(c.Request.Context(), usernameOrEmail, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to log in"},
		)
		ac.logger.Error("Authenticate() error", zap.Error(err))
		return
	}

	token, err := ac.sessionService.Create(c.Request.Context(), u)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to log in"},
		)
		ac.logger.Error("Create() session error", zap.Error(err))
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	c.SetCookie(middleware.UserIDCookie, fmt.Sprintf("%d", u.ID), 0, "/", "", false, false)

	c.Redirect(http.StatusFound, fmt.Sprintf("/users/%d", u.ID))
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxSessionToken)

	if err := ac.sessionService.Destroy(c.Request.Context(), token); err != nil {
		ac.logger.Error("Destroy() session error", zap.Error(err))
	}

	// client-side state is cleared even when the row was already gone
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.SetCookie(middleware.UserIDCookie, "", -1, "/", "", false, false)

	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) CheckLoginHandler(c *gin.Context) {
	token := middleware.TokenFromRequest(c)

	u, err := ac.sessionService.Resolve(c.Request.Context(), token)
	if err != nil {
		ac.logger.Error("Resolve() session error", zap.Error(err))
	}
	if u == nil {
		c.JSON(http.StatusOK, user.CheckLogin{LoggedIn: false, User: ""})
		return
	}

	c.JSON(http.StatusOK, user.CheckLogin{
		LoggedIn: true,
		User:     user.ToResponseUser(*u),
	})
}
