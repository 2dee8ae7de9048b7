package config

import (
	"github.com/JaimeStill/menu-lab/pkg/database"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
)

var databaseEnv = &docstore.Env{
	Driver: "DATABASE_DRIVER",
	Postgres: &database.Env{
		Host:            "DATABASE_HOST",
		Port:            "DATABASE_PORT",
		Name:            "DATABASE_NAME",
		User:            "DATABASE_USER",
		Password:        "DATABASE_PASSWORD",
		MaxOpenConns:    "DATABASE_MAX_OPEN_CONNS",
		MaxIdleConns:    "DATABASE_MAX_IDLE_CONNS",
		ConnMaxLifetime: "DATABASE_CONN_MAX_LIFETIME",
		ConnTimeout:     "DATABASE_CONN_TIMEOUT",
		SSLMode:         "DATABASE_SSL_MODE",
	},
	Mongo: &docstore.MongoEnv{
		URI:         "DATABASE_MONGO_URI",
		Database:    "DATABASE_MONGO_DATABASE",
		Collection:  "DATABASE_MONGO_COLLECTION",
		ConnTimeout: "DATABASE_MONGO_CONN_TIMEOUT",
	},
	Badger: &docstore.BadgerEnv{
		Path:     "DATABASE_BADGER_PATH",
		InMemory: "DATABASE_BADGER_IN_MEMORY",
	},
}
