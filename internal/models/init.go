package models

import (
	"strings"

	"github.com/warungkita/internal/constants"
	"github.com/warungkita/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAdmin creates the default back-office account when no admin
// exists yet.
func InitDefaultAdmin(username, password string) error {
	var count int64
	DB.Model(&Admin{}).Count(&count)
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := Admin{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "admin123" {
		logger.Warnw("default_admin_created_with_default_password", "username", admin.Username)
		logger.Warnw("default_admin_password_change_required", "username", admin.Username)
	} else {
		logger.Warnw("default_admin_created", "username", admin.Username, "password_hidden", true)
	}
	return nil
}

// InitDefaultChannels seeds the fixed sales channel enumeration. Order
// creation treats a missing channel row as a deployment fault, so this runs
// on every startup and fills gaps idempotently.
func InitDefaultChannels() error {
	defaults := []Channel{
		{Key: constants.ChannelWeb, Name: "Web Store"},
		{Key: constants.ChannelTokopedia, Name: "Tokopedia"},
		{Key: constants.ChannelShopee, Name: "Shopee"},
		{Key: constants.ChannelTikTok, Name: "TikTok Shop"},
		{Key: constants.ChannelOffline, Name: "Offline / POS"},
	}
	for _, channel := range defaults {
		var count int64
		if err := DB.Model(&Channel{}).Where("key = ?", channel.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&channel).Error; err != nil {
			return err
		}
		logger.Infow("default_channel_created", "key", channel.Key)
	}
	return nil
}
