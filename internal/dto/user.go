package dto

import (
	"github.com/akhilvb87/community-kitchen-app/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Phones []string    `json:"phones"`
	Role   models.Role `json:"role"`
}

// ToUserDTO maps a user record to its API shape
func ToUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:     u.ID,
		Name:   u.Name,
		Phones: u.Phones,
		Role:   u.Role,
	}
}

// ToUserDTOs maps a list of user records
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToUserDTO(u))
	}
	return dtos
}
