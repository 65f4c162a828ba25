package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablescope/tablescope-backend/dto"
	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/usecases"
)

type listingParamsInput struct {
	Table    string `form:"table"`
	Digest   string `form:"q" binding:"omitempty,hexadecimal,len=12"`
	Query    string `form:"query"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	Filter   string `form:"filter" binding:"omitempty,oneof=newest oldest"`
}

func handleListing(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var input listingParamsInput
		if err := c.ShouldBindQuery(&input); err != nil {
			presentBindError(c, err)
			return
		}

		table := models.TableName(input.Table)
		if input.Table == "" {
			table = models.DefaultTable
		}
		params := models.ListingParams{
			Page:     input.Page,
			PageSize: input.PageSize,
			Sort:     input.Filter,
			Query:    input.Query,
		}

		usecase := uc.NewListingUseCase()
		switch table {
		case models.TableUsers:
			page, err := usecase.ListUsers(ctx, input.Digest, params)
			if presentError(ctx, c, err) {
				return
			}
			c.JSON(http.StatusOK, dto.SuccessResponse(
				dto.AdaptPaginatedResponse(page, dto.AdaptUserDto)))
		case models.TableCompanies:
			page, err := usecase.ListCompanies(ctx, input.Digest, params)
			if presentError(ctx, c, err) {
				return
			}
			c.JSON(http.StatusOK, dto.SuccessResponse(
				dto.AdaptPaginatedResponse(page, dto.AdaptCompanyDto)))
		case models.TableProducts:
			page, err := usecase.ListProducts(ctx, input.Digest, params)
			if presentError(ctx, c, err) {
				return
			}
			c.JSON(http.StatusOK, dto.SuccessResponse(
				dto.AdaptPaginatedResponse(page, dto.AdaptProductDto)))
		default:
			_, err := models.TableFromName(input.Table)
			presentError(ctx, c, err)
		}
	}
}
