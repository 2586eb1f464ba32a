//go:build cgo_sqlite

package sqlitedb

// Opt-in build: CGO-backed SQLite driver (-tags cgo_sqlite), for
// environments where the pure-Go driver's feature set or performance
// isn't sufficient.
import _ "github.com/mattn/go-sqlite3"

const (
	driverName    = "sqlite3"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)

// dsn builds a mattn/go-sqlite3 data source name enabling foreign key
// enforcement via its _foreign_keys query parameter convention.
func dsn(path string) string {
	return path + "?_foreign_keys=1"
}
