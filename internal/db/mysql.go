package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bucky/internal/model"
)

// NewMySQL connects to MySQL and brings the schema up to date. With
// dropFirst set the users, bucket-lists and tasks tables are rebuilt
// from scratch, which the testing profile relies on.
func NewMySQL(dsn string, dropFirst bool) (*gorm.DB, error) {
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := migrate(gormDB, dropFirst); err != nil {
		return nil, err
	}
	return gormDB, nil
}

func migrate(gormDB *gorm.DB, dropFirst bool) error {
	if dropFirst {
		// Children first, foreign keys forbid the other order.
		drop := []interface{}{&model.Task{}, &model.BucketList{}, &model.User{}}
		if err := gormDB.Migrator().DropTable(drop...); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.BucketList{}, &model.Task{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
