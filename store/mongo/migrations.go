// Copyright 2026 Northern.tech AS
//
//    All Rights Reserved

package mongo

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	// DbVersion is the current schema version
	DbVersion = "1.0.0"

	// DbName is the database name
	DbName = "devicereport"
)

// Migrate applies migrations to the database
func Migrate(ctx context.Context,
	db string,
	version string,
	client *mongo.Client,
	automigrate bool,
) error {
	l := log.FromContext(ctx)

	ver, err := migrate.NewVersion(version)
	if err != nil {
		return errors.Wrap(err, "failed to parse service version")
	}

	m := migrate.SimpleMigrator{
		Client:      client,
		Db:          db,
		Automigrate: automigrate,
	}

	migrations := []migrate.Migration{
		&migration1_0_0{
			client: client,
			db:     db,
		},
	}

	err = m.Apply(ctx, *ver, migrations)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}
	l.Infof("database %s migrated to version %s", db, version)

	return nil
}
