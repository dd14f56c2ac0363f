package utils

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLocalize(t *testing.T) {
	assert.Equal(t, "fallback", Localize("zh-TW", "error_1010", "fallback"))

	viper.Set("i18n.dir", "../i18n")
	InitI18NBundle()
	defer func() { bundle = nil }()

	assert.Equal(t, "invalid parameters", Localize("en", "error_1010", "fallback"))
	assert.Equal(t, "參數錯誤", Localize("zh-TW,zh;q=0.9", "error_1010", "fallback"))
	assert.Equal(t, "fallback", Localize("en", "error_not_exist", "fallback"))
}
