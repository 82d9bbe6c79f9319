package utils

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
)

func GetDBConnection() (*sql.DB, error) {
	db, err := sql.Open("mysql", Config("DB_DSN"))
	if err != nil {
		return nil, err
	}
	return db, nil
}
