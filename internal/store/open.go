package store

import (
	"fmt"
	"io"
)

// Open selects a backend by driver name. Both backends satisfy Store and
// io.Closer.
func Open(driver, connectionString string) (Store, io.Closer, error) {
	switch driver {
	case "sqlite", "":
		s, err := NewSqliteStore(connectionString)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "redis":
		s, err := NewRedisStore(connectionString)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver: %s", driver)
	}
}
