package utils

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// RandomFileName generates an unguessable file name for an uploaded photo.
func RandomFileName(ext string) string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x%s", b, ext)
}
