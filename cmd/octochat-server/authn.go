package main

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/infinigence/octochat/pkg/composer"
)

// BearerKeyMW authenticates requests using bearer keys.
// With no keys configured every request passes as an anonymous user.
// Otherwise a missing or unknown key is rejected with 401.
type BearerKeyMW struct {
	mu      sync.RWMutex
	apiKeys map[string]string // api key -> user
}

func (m *BearerKeyMW) UpdateFromConfig(conf *composer.ConfigFile) error {
	newAPIKeys := make(map[string]string)
	for user, apiKey := range conf.Server.APIKeys {
		if _, ok := newAPIKeys[apiKey]; ok {
			return fmt.Errorf("duplicate api key for user %s", user)
		}
		newAPIKeys[apiKey] = user
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiKeys = newAPIKeys
	return nil
}

func (m *BearerKeyMW) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", "")

		m.mu.RLock()
		defer m.mu.RUnlock()
		if len(m.apiKeys) == 0 {
			return
		}

		user, ok := m.apiKeys[bearerToken(c.GetHeader("Authorization"))]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user", user)
	}
}

func bearerToken(authHeader string) string {
	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) || !strings.HasPrefix(strings.ToLower(authHeader), strings.ToLower(bearerPrefix)) {
		return ""
	}
	return authHeader[len(bearerPrefix):]
}
