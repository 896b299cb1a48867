package services

import (
	"errors"

	"github.com/nabilsaragih/grains/config"
	"github.com/nabilsaragih/grains/models"
	"github.com/nabilsaragih/grains/utils"
)

type SignUpInput struct {
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	FullName       string `json:"full_name"`
	BirthDate      string `json:"birth_date"`
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
	Height         string `json:"height"`
	Weight         string `json:"weight"`
}

func RegisterUser(input SignUpInput) error {
	if !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email address")
	}
	if !utils.IsStrongPassword(input.Password) {
		return errors.New("password must be at least 8 characters and contain a letter, a number and a symbol")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:          input.Email,
		Password:       hashedPassword,
		FullName:       input.FullName,
		BirthDate:      input.BirthDate,
		Gender:         input.Gender,
		MedicalHistory: input.MedicalHistory,
		Height:         input.Height,
		Weight:         input.Weight,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	return user, result.Error
}
