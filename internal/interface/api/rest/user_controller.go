package rest

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/user"
	userDB "fileshare-api/internal/infrastructure/db/postgres/user"
	"fileshare-api/internal/interface/api/rest/dto/user"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	fileService ports.FileService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	fileService ports.FileService,
	sessionService ports.SessionService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		fileService: fileService,
		logger:      logger,
	}

	gate := middleware.SessionAuth(sessionService, logger)

	r.POST(RouteUsers, uc.RegisterHandler)
	r.PUT(RouteUsers, gate, uc.UpdateHandler)
	r.GET(RouteUserPage, gate, uc.UserPageHandler)
	r.GET(RouteUserPicture, gate, uc.GetPictureHandler)
	r.PUT(RouteUserPicture, gate, uc.PutPictureHandler)
	r.GET(RouteImage, gate, uc.ImageHandler)

	return uc
}

func (uc *UserController) RegisterHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userDB.ErrUsernameTaken) || errors.Is(err, userDB.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a user"},
		)
		uc.logger.Error("Register() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateHandler(c *gin.Context) {
	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateUpdate(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.UpdateProfile(c.Request.Context(), domain.ID(req.ID), req.Username, req.Email)
	if err != nil {
		if errors.Is(err, userDB.ErrUsernameTaken) || errors.Is(err, userDB.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a user"},
		)
		uc.logger.Error("UpdateProfile() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// UserPageHandler is identity-scoped: a valid session for a different user is
// forbidden, not just unauthorized.
func (uc *UserController) UserPageHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id " + err.Error()})
		return
	}

	callerID, ok := middleware.CurrentUserID(c)
	if !ok || uint64(callerID) != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetPictureHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_id " + err.Error()})
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get a user"})
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if u.ProfilePictureID == nil {
		c.Status(http.StatusNotFound)
		return
	}

	p, err := uc.fileService.Picture(c.Request.Context(), *u.ProfilePictureID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		uc.logger.Error("Picture() error", zap.Error(err))
		return
	}
	if p == nil {
		c.Status(http.StatusNotFound)
		return
	}

	// the legacy endpoint always framed profile pictures as PNG
	c.Data(http.StatusOK, "image/png", p.Data)
}

func (uc *UserController) PutPictureHandler(c *gin.Context) {
	id, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_id " + err.Error()})
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), domain.ID(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to get a user"})
		uc.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	fh, err := c.FormFile("profile_pic")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file part"})
		return
	}
	if fh.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No selected file"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to read file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to read file"})
		return
	}

	if _, err = uc.fileService.SetProfilePicture(c.Request.Context(), u.ID, data, fh.Header.Get("Content-Type")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update profile picture"})
		uc.logger.Error("SetProfilePicture() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated successfully"})
}

// ImageHandler serves /image/{id}.png, only to the picture's owner.
func (uc *UserController) ImageHandler(c *gin.Context) {
	picID := strings.TrimSuffix(c.Param("image"), ".png")

	callerID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Status(http.StatusForbidden)
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), callerID)
	if err != nil || u == nil {
		c.Status(http.StatusForbidden)
		if err != nil {
			uc.logger.Error("FindUserByID() error", zap.Error(err))
		}
		return
	}
	if u.ProfilePictureID == nil || *u.ProfilePictureID != picID {
		c.Status(http.StatusForbidden)
		return
	}

	p, err := uc.fileService.Picture(c.Request.Context(), picID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		uc.logger.Error("Picture() error", zap.Error(err))
		return
	}
	if p == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.Data(http.StatusOK, "image/png", p.Data)
}
