package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// UploadDir returns the root directory for stored images. Everything under
// it is served statically, so an uploaded file is reachable at
// /<subdir>/<filename> right away.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./public"
}

// SaveProfileImage stores an uploaded profile picture as <email>.<ext> so a
// re-upload replaces the previous one.
func SaveProfileImage(c *gin.Context, file *multipart.FileHeader, email string) (string, error) {
	name := fmt.Sprintf("%s%s", email, strings.ToLower(filepath.Ext(file.Filename)))
	dir := filepath.Join(UploadDir(), "profileImages")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// SaveEventImage stores an uploaded event picture under a name unique per
// organizer and upload time.
func SaveEventImage(c *gin.Context, file *multipart.FileHeader, organizer string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	base := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s-%s-%d%s", organizer, base, time.Now().UnixMilli(), ext)
	dir := filepath.Join(UploadDir(), "eventImages")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
