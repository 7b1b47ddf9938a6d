package initializers

import (
	"ppid-backend/config"
	"ppid-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	err = db.InitBootstrap(config.Conf.Bootstrap.AdminEmail, config.Conf.Bootstrap.AdminPassword)
	if err != nil {
		panic(err.Error())
	}
}
