package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	fileDomain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	voteDB "fileshare-api/internal/infrastructure/db/postgres/vote"
	"fileshare-api/internal/interface/api/rest/validator"
)

type VoteController struct {
	voteService ports.VoteService
	logger      *zap.Logger
}

func NewVoteController(
	r *gin.Engine,
	voteService ports.VoteService,
	logger *zap.Logger,
) *VoteController {
	vc := &VoteController{
		voteService: voteService,
		logger:      logger,
	}

	r.PUT(RouteLike, vc.LikeHandler)
	r.PUT(RouteUnlike, vc.UnlikeHandler)

	return vc
}

func (vc *VoteController) LikeHandler(c *gin.Context) {
	userID, fileID, ok := vc.parseIDs(c)
	if !ok {
		return
	}

	err := vc.voteService.Add(c.Request.Context(), userID, fileID)
	if err != nil {
		vc.respondVoteError(c, err, "An error occurred while adding the vote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote added successfully"})
}

func (vc *VoteController) UnlikeHandler(c *gin.Context) {
	userID, fileID, ok := vc.parseIDs(c)
	if !ok {
		return
	}

	err := vc.voteService.Remove(c.Request.Context(), userID, fileID)
	if err != nil {
		vc.respondVoteError(c, err, "An error occurred while removing the vote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote removed successfully"})
}

func (vc *VoteController) parseIDs(c *gin.Context) (user.ID, fileDomain.ID, bool) {
	uid, err := validator.ParseID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "user_id " + err.Error()})
		return 0, 0, false
	}
	fid, err := validator.ParseID(c.Param("file_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "file_id " + err.Error()})
		return 0, 0, false
	}

	return user.ID(uid), fileDomain.ID(fid), true
}

func (vc *VoteController) respondVoteError(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, voteDB.ErrUserOrFileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User or File not found"})
	case errors.Is(err, voteDB.ErrAlreadyVoted), errors.Is(err, voteDB.ErrNotVoted):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": generic})
		vc.logger.Error("vote error", zap.Error(err))
	}
}
