package dto

import (
	"time"

	"github.com/tablescope/tablescope-backend/models"
	"github.com/tablescope/tablescope-backend/pure_utils"
)

func AdaptPaginatedResponse[Row, Dto any](page models.ListingPage[Row], adapt func(Row) Dto) PaginatedResponse[Dto] {
	return PaginatedResponse[Dto]{
		Items:      pure_utils.Map(page.Items, adapt),
		IsNext:     page.IsNext,
		TotalCount: page.Total,
	}
}

type UserDto struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func AdaptUserDto(user models.User) UserDto {
	return UserDto{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		Gender:    user.Gender,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type CompanyDto struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry"`
	Country       string    `json:"country"`
	Website       *string   `json:"website,omitempty"`
	EmployeeCount int       `json:"employeeCount"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func AdaptCompanyDto(company models.Company) CompanyDto {
	return CompanyDto{
		Id:            company.Id,
		Name:          company.Name,
		Industry:      company.Industry,
		Country:       company.Country,
		Website:       company.Website.Ptr(),
		EmployeeCount: company.EmployeeCount,
		IsActive:      company.IsActive,
		CreatedAt:     company.CreatedAt,
		UpdatedAt:     company.UpdatedAt,
	}
}

type ProductDto struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func AdaptProductDto(product models.Product) ProductDto {
	return ProductDto{
		Id:          product.Id,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description.Ptr(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
