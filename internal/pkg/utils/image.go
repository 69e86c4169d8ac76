package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeBase64Image accepts a data URI ("data:image/png;base64,....") or a bare
// base64 string and returns the raw bytes plus the extension.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	ext := "jpg"
	payload := encoded

	if strings.HasPrefix(encoded, "data:image/") {
		parts := strings.SplitN(encoded, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:image/")
		ext = strings.TrimSuffix(meta, ";base64")
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, strings.ToLower(ext), nil
}

func ValidateImageFormat(ext, allowedCSV string) error {
	for _, allowed := range strings.Split(allowedCSV, ",") {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("image format %s not allowed, expected one of %s", ext, allowedCSV)
}

func ValidateImageSize(data []byte, maxSizeInMB int64) error {
	if int64(len(data)) > maxSizeInMB*1024*1024 {
		return fmt.Errorf("image exceeds maximum size of %dMB", maxSizeInMB)
	}
	return nil
}
