package store

// Config holds configuration for the Store.
type Config struct {
	// TableName is the name of the user records table.
	// Default: "delaywire_users"
	TableName string
}

// DefaultConfig returns the default table configuration.
func DefaultConfig() Config {
	return Config{
		TableName: "delaywire_users",
	}
}

// validate ensures config values are usable.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = "delaywire_users"
	}
}
