// Package storage persists perft results in a BadgerDB database so deep
// counts survive between runs.
package storage

import (
	"log"
	"os"
	"path/filepath"
)

// DataDirEnv overrides the default data directory when set.
const DataDirEnv = "CHESSCORE_DATA_DIR"

// DataDir returns $CHESSCORE_DATA_DIR, else chesscore under the user cache
// directory, creating it if needed.
func DataDir() (string, error) {
	dir := os.Getenv(DataDirEnv)
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "chesscore")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DatabaseDir returns the directory Open uses when given none.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "perft")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	log.Printf("storage: database directory %s", dbDir)
	return dbDir, nil
}
