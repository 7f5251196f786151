package dto

import "github.com/Jeremi16/synify-be/entity"

type LoginRequestDTO struct {
	Credential string `json:"credential" binding:"required"`
}

type LoginResponseDTO struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}
