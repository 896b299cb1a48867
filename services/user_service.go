package services

import (
	"errors"

	"github.com/nabilsaragih/grains/config"
	"github.com/nabilsaragih/grains/models"
	"github.com/nabilsaragih/grains/utils"
)

type ProfileInput struct {
	FullName       string `json:"full_name"`
	BirthDate      string `json:"birth_date"` // YYYY-MM-DD
	Gender         string `json:"gender"`
	MedicalHistory string `json:"medical_history"`
	Height         string `json:"height"`
	Weight         string `json:"weight"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"birth_date":      user.BirthDate,
		"gender":          user.Gender,
		"medical_history": user.MedicalHistory,
		"height":          user.Height,
		"weight":          user.Weight,
		"avatar_url":      user.AvatarURL,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return errors.New("user not found")
	}

	user.FullName = input.FullName
	user.BirthDate = input.BirthDate
	user.Gender = input.Gender
	user.MedicalHistory = input.MedicalHistory
	user.Height = input.Height
	user.Weight = input.Weight

	return config.DB.Save(&user).Error
}

// UpdateAvatar uploads the base64 image to S3 and stores the public URL.
func UpdateAvatar(userID uint, imageBase64 string) (string, error) {
	var user models.User
	result := config.DB.First(&user, userID)
	if result.Error != nil {
		return "", errors.New("user not found")
	}

	url, err := utils.UploadBase64ImageToS3(imageBase64, "avatars")
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}
	return url, nil
}
