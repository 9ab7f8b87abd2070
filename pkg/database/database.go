package database

import (
	"fmt"
	"log"

	"skillmatrix/internal/config"
	"skillmatrix/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// In release mode, schema changes only happen when asked for explicitly.
	if cfg.Server.Mode == "release" && !cfg.ForceMigrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Project{},
		&model.Component{},
		&model.Question{},
		&model.Assessment{},
		&model.AssessmentInvite{},
		&model.AssessmentAttempt{},
		&model.AttemptAnswer{},
		&model.DeveloperLevel{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if cfg.Seed.Enabled {
		if err := Seed(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}
