// Copyright 2026 Northern.tech AS
//
//    All Rights Reserved

package mongo

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetkeeper/devicereport/model"
)

type migration1_0_0 struct {
	client *mongo.Client
	db     string
}

// Up creates the module record and event indexes
func (m *migration1_0_0) Up(from migrate.Version) error {
	ctx := context.Background()
	database := m.client.Database(m.db)

	collRecords := database.Collection(RecordsCollectionName)
	idxRecords := collRecords.Indexes()

	// one record per device and module
	indexOptions := mopts.Index()
	indexOptions.SetName("device_id_module_id")
	indexOptions.SetUnique(true)
	recordIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: model.FieldDeviceID, Value: 1},
			{Key: model.FieldModuleID, Value: 1},
		},
		Options: indexOptions,
	}
	if _, err := idxRecords.CreateOne(ctx, recordIndex); err != nil {
		return err
	}

	collEvents := database.Collection(EventsCollectionName)
	idxEvents := collEvents.Indexes()

	indexOptions = mopts.Index()
	indexOptions.SetName("device_id_created_ts")
	eventIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "device_id", Value: 1},
			{Key: "created_ts", Value: -1},
		},
		Options: indexOptions,
	}
	if _, err := idxEvents.CreateOne(ctx, eventIndex); err != nil {
		return err
	}

	return nil
}

func (m *migration1_0_0) Version() migrate.Version {
	return migrate.MakeVersion(1, 0, 0)
}
