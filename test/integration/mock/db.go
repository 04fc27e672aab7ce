package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/grove/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection holding the user_records
// table. Scenarios call Reset between runs instead of reopening.
type Db struct {
	DbConn *gorm.DB
}

func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(&model.UserRecordModel{}); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{DbConn: dbConn}
}

// Reset wipes all stored records.
func (d *Db) Reset() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.UserRecordModel{}).Error
}

// CountRecords returns the number of rows in user_records.
func (d *Db) CountRecords() (int64, error) {
	var count int64
	err := d.DbConn.Model(&model.UserRecordModel{}).Count(&count).Error
	return count, err
}
