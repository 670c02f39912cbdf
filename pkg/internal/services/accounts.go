package services

import (
	"errors"
	"fmt"

	"github.com/inklets/inklet/pkg/internal/database"
	"github.com/inklets/inklet/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetAccount(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func NewAccount(name, nick, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err == nil {
		return account, fmt.Errorf("account name is already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, fmt.Errorf("unable to check account name: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to hash password: %v", err)
	}

	account = models.Account{
		Name:         name,
		Nick:         nick,
		PasswordHash: string(hash),
	}

	err = database.C.Create(&account).Error
	return account, err
}

func AuthenticateAccount(name, password string) (models.Account, error) {
	account, err := GetAccount(name)
	if err != nil {
		return account, fmt.Errorf("account was not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return account, fmt.Errorf("invalid credentials")
	}
	return account, nil
}

// DeleteAccount removes the account together with everything it owns: its
// posts (and their comments), the comments it left elsewhere, and the follow
// edges in both directions.
func DeleteAccount(account models.Account) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).
			Where("author_id = ?", account.ID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("author_id = ?", account.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR author_id = ?", account.ID, account.ID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&account).Error
	})
}
