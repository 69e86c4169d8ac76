package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	t.Run("Data URI", func(t *testing.T) {
		data, ext, err := DecodeBase64Image("data:image/png;base64," + encoded)
		assert.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, "png", ext)
	})

	t.Run("Bare Base64 Defaults To JPG", func(t *testing.T) {
		data, ext, err := DecodeBase64Image(encoded)
		assert.NoError(t, err)
		assert.Equal(t, raw, data)
		assert.Equal(t, "jpg", ext)
	})

	t.Run("Malformed Data URI", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64")
		assert.Error(t, err)
	})

	t.Run("Invalid Base64", func(t *testing.T) {
		_, _, err := DecodeBase64Image("data:image/png;base64,!!!")
		assert.Error(t, err)
	})
}

func TestValidateImageFormat(t *testing.T) {
	assert.NoError(t, ValidateImageFormat("png", "jpg,jpeg,png"))
	assert.NoError(t, ValidateImageFormat("jpg", "jpg,jpeg,png"))
	assert.Error(t, ValidateImageFormat("gif", "jpg,jpeg,png"))
	assert.Error(t, ValidateImageFormat("", "jpg,jpeg,png"))
}

func TestValidateImageSize(t *testing.T) {
	assert.NoError(t, ValidateImageSize(make([]byte, 1024), 1))
	assert.NoError(t, ValidateImageSize(make([]byte, 1024*1024), 1))
	assert.Error(t, ValidateImageSize(make([]byte, 1024*1024+1), 1))
}
