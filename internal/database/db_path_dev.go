//go:build !prod

package database

// GetDefaultDBPath returns the database path for development mode.
// In dev mode, the database lives in the project root for easy inspection.
func GetDefaultDBPath() string {
	return "lumina.db"
}

func IsDevelopment() bool {
	return true
}
