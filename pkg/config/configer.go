// Package config carries runtime configuration for the marketd daemons and
// tools. Values come from a dotenv file in production and from an in-memory
// map in tests; both sides implement Configer.
package config

type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKey(key string) int
	MustGetIntKey(key string) int
	GetIntKeyWithDefault(key string, defaultValue int) int
}
