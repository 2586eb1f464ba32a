//go:build !cgo_sqlite

package sqlitedb

// Default build: pure-Go SQLite driver, no CGO toolchain required.
import _ "modernc.org/sqlite"

const (
	driverName    = "sqlite"
	driverType    = "purego"
	driverPackage = "modernc.org/sqlite"
)

// dsn builds a modernc.org/sqlite data source name enabling foreign
// key enforcement via its _pragma query parameter convention.
func dsn(path string) string {
	return path + "?_pragma=foreign_keys(1)"
}
