package openid

import (
	"strings"

	"github.com/google/uuid"
)

func generateID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
