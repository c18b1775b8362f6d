package charart

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ArtDB is a sqlite-backed cache of rendered art keyed by the CRC of
// the source file contents.
type ArtDB struct {
	db *sql.DB
}

// NewArtDB opens or creates the cache database at file.
func NewArtDB(file string) (*ArtDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS art (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, ansi TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &ArtDB{
		db: db,
	}, nil
}

func (db *ArtDB) Close() error {
	return db.db.Close()
}

// SetArt stores rendered art for the given CRC, replacing any previous
// entry.
func (db *ArtDB) SetArt(crc, art string) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO art (crc, ansi) VALUES (?, ?)", crc, art); err != nil {
		return err
	}
	return nil
}

// FindArtByCRC returns the cached art for the given CRC, or the empty
// string if there is no entry.
func (db *ArtDB) FindArtByCRC(crc string) (string, error) {
	var art string
	switch err := db.db.QueryRow("SELECT ansi FROM art WHERE crc = ?", crc).Scan(&art); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return art, nil
	default:
		return "", err
	}
}
