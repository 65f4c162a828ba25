package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablescope/tablescope-backend/dto"
	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/usecases"
)

func handleSaveQuery(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var group models.RuleGroup
		if err := c.ShouldBindJSON(&group); err != nil {
			presentBindError(c, err)
			return
		}
		if presentError(ctx, c, group.ValidateShape()) {
			return
		}

		usecase := uc.NewQueryUseCase()
		digest, err := usecase.SaveQuery(ctx, group)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.SuccessResponse(dto.SaveQueryResponse{Digest: digest}))
	}
}

func handleGetQuery(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri struct {
			Digest string `uri:"digest" binding:"required,hexadecimal,len=12"`
		}
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindError(c, err)
			return
		}

		usecase := uc.NewQueryUseCase()
		group, err := usecase.GetQuery(ctx, uri.Digest)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.SuccessResponse(group))
	}
}
