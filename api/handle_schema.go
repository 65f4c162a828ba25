package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablescope/tablescope-backend/dto"
	"github.com/tablescope/tablescope-backend/pure_utils"
	"github.com/tablescope/tablescope-backend/usecases"
)

func handleListTableFields(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var uri struct {
			Table string `uri:"table" binding:"required"`
		}
		if err := c.ShouldBindUri(&uri); err != nil {
			presentBindError(c, err)
			return
		}

		usecase := uc.NewSchemaUseCase()
		fields, err := usecase.ResolveFields(ctx, uri.Table)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.SuccessResponse(pure_utils.Map(fields, dto.AdaptFieldDto)))
	}
}
