package database

import (
	"student-union-system/config"
	"student-union-system/internal/model"
	"student-union-system/tools"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// autoMigrateModels 定义需要自动迁移的模型列表
var autoMigrateModels = []any{
	&model.Notice{},
	&model.Activity{},
	&model.Member{},
	&model.Feedback{},
	&model.Admin{},
}

// Open 打开指定路径的 SQLite 数据库并完成建表
func Open(path string) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return nil, err
	}

	return db, nil
}

func Init() {
	db, err := Open(config.Get().Sqlite.Path)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(Seed(DB))
}
