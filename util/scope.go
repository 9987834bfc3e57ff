package util

import "github.com/gin-gonic/gin"

const (
	SCOPE_REQ_ID = "requestId"
)

// SetScope sets scope to the context with a key/value.
func SetScope(c *gin.Context, key string, value interface{}) {
	scopeValue, exists := c.Get("scopes")
	if !exists {
		c.Set("scopes", map[string]interface{}{key: value})
		return
	}

	scopeValue.(map[string]interface{})[key] = value
}

// GetScopeByKey gets specific scope by key from scopes.
func GetScopeByKey(c *gin.Context, key string) interface{} {
	scopeValue, exists := c.Get("scopes")
	if exists {
		return scopeValue.(map[string]interface{})[key]
	}
	return nil
}

// GetScopeByKeyAsString returns "" when the scope is missing or not a string.
func GetScopeByKeyAsString(c *gin.Context, key string) string {
	value, _ := GetScopeByKey(c, key).(string)
	return value
}
