package middleware

import (
	"errors"
	"strings"
)

var errMissingBearer = errors.New("missing bearer token")

func bearerToken(header string) (string, error) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", errMissingBearer
	}
	return strings.TrimSpace(token), nil
}
