package redis

import "fmt"

// entryKey returns the Redis key for a cached response
func entryKey(prefix, key string) string {
	return fmt.Sprintf("%s:cache:%s", prefix, key)
}

// entryPattern matches every cached response under prefix
func entryPattern(prefix string) string {
	return fmt.Sprintf("%s:cache:*", prefix)
}
