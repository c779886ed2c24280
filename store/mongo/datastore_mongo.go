// Copyright 2026 Northern.tech AS
//
//    All Rights Reserved

package mongo

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/config"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	dconfig "github.com/fleetkeeper/devicereport/config"
	"github.com/fleetkeeper/devicereport/model"
)

const (
	// DevicesCollectionName refers to the name of the collection of stored devices
	DevicesCollectionName = "devices"

	// RecordsCollectionName refers to the name of the collection of module records
	RecordsCollectionName = "module_records"

	// EventsCollectionName refers to the name of the collection of device events
	EventsCollectionName = "events"
)

// SetupDataStore returns the mongo data store and optionally runs migrations
func SetupDataStore(automigrate bool) (*DataStoreMongo, error) {
	ctx := context.Background()
	dbClient, err := NewClient(ctx, config.Config)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("failed to connect to db: %v", err))
	}
	err = Migrate(ctx, DbName, DbVersion, dbClient, automigrate)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("failed to run migrations: %v", err))
	}
	dataStore := NewDataStoreWithClient(dbClient, config.Config)
	return dataStore, nil
}

func disconnectClient(parentCtx context.Context, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(parentCtx, 1*time.Second)
	defer cancel()
	client.Disconnect(ctx)
}

// NewClient returns a mongo client
func NewClient(ctx context.Context, c config.Reader) (*mongo.Client, error) {

	clientOptions := mopts.Client()
	mongoURL := c.GetString(dconfig.SettingMongo)
	if !strings.Contains(mongoURL, "://") {
		return nil, errors.Errorf("Invalid mongoURL %q: missing schema.",
			mongoURL)
	}
	clientOptions.ApplyURI(mongoURL)

	username := c.GetString(dconfig.SettingDbUsername)
	if username != "" {
		credentials := mopts.Credential{
			Username: c.GetString(dconfig.SettingDbUsername),
		}
		password := c.GetString(dconfig.SettingDbPassword)
		if password != "" {
			credentials.Password = password
			credentials.PasswordSet = true
		}
		clientOptions.SetAuth(credentials)
	}

	if c.GetBool(dconfig.SettingDbSSL) {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = c.GetBool(dconfig.SettingDbSSLSkipVerify)
		clientOptions.SetTLSConfig(tlsConfig)
	}

	// Acknowledge writes after they reached the journal.
	wc := writeconcern.New(writeconcern.W(1), writeconcern.J(true))
	clientOptions.SetWriteConcern(wc)

	// Set 10s timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to connect to mongo server")
	}

	// Validate connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "Error reaching mongo server")
	}

	return client, nil
}

// DataStoreMongo is the data storage service
type DataStoreMongo struct {
	// client holds the reference to the client used to communicate with the
	// mongodb server.
	client *mongo.Client
	// dbName contains the name of the devicereport database.
	dbName string
}

// NewDataStoreWithClient initializes a DataStore object
func NewDataStoreWithClient(client *mongo.Client, c config.Reader) *DataStoreMongo {
	dbName := c.GetString(dconfig.SettingDbName)

	return &DataStoreMongo{
		client: client,
		dbName: dbName,
	}
}

// Ping verifies the connection to the database
func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(db.dbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

// ProvisionDevice provisions a new device
func (db *DataStoreMongo) ProvisionDevice(ctx context.Context, deviceID string) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	now := time.Now().UTC()
	updateOpts := &mopts.UpdateOptions{}
	updateOpts.SetUpsert(true)
	_, err := coll.UpdateOne(ctx,
		bson.M{"_id": deviceID},
		bson.M{
			"$setOnInsert": bson.M{"created_ts": now},
			"$set":         bson.M{"updated_ts": now},
		},
		updateOpts,
	)

	return err
}

// GetDevice returns a device
func (db *DataStoreMongo) GetDevice(ctx context.Context, deviceID string) (*model.Device, error) {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	cur := coll.FindOne(ctx, bson.M{"_id": deviceID})

	device := &model.Device{}
	if err := cur.Decode(&device); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return device, nil
}

// DeleteDevice deletes a device together with its module records and events
func (db *DataStoreMongo) DeleteDevice(ctx context.Context, deviceID string) error {
	database := db.client.Database(db.dbName)

	if _, err := database.Collection(RecordsCollectionName).
		DeleteMany(ctx, bson.M{model.FieldDeviceID: deviceID}); err != nil {
		return err
	}
	if _, err := database.Collection(EventsCollectionName).
		DeleteMany(ctx, bson.M{"device_id": deviceID}); err != nil {
		return err
	}
	_, err := database.Collection(DevicesCollectionName).
		DeleteOne(ctx, bson.M{"_id": deviceID})
	return err
}

// SetDeviceLastSeen updates the device's last-seen timestamp, creating the
// device on first contact
func (db *DataStoreMongo) SetDeviceLastSeen(
	ctx context.Context,
	deviceID string,
	seen time.Time,
) error {
	coll := db.client.Database(db.dbName).Collection(DevicesCollectionName)

	updateOpts := &mopts.UpdateOptions{}
	updateOpts.SetUpsert(true)
	_, err := coll.UpdateOne(ctx,
		bson.M{"_id": deviceID},
		bson.M{
			"$setOnInsert": bson.M{"created_ts": seen},
			"$set": bson.M{
				"last_seen":  seen,
				"updated_ts": seen,
			},
		},
		updateOpts,
	)

	return err
}

// UpsertModuleRecord stores a module record, replacing the previous record
// for the same device and module
func (db *DataStoreMongo) UpsertModuleRecord(
	ctx context.Context,
	record *model.ModuleRecord,
) error {
	coll := db.client.Database(db.dbName).Collection(RecordsCollectionName)

	replaceOpts := &mopts.ReplaceOptions{}
	replaceOpts.SetUpsert(true)
	_, err := coll.ReplaceOne(ctx,
		bson.M{
			model.FieldDeviceID: record.DeviceID,
			model.FieldModuleID: record.ModuleID,
		},
		record,
		replaceOpts,
	)

	return err
}

// GetModuleRecord returns the stored record for one device and module
func (db *DataStoreMongo) GetModuleRecord(
	ctx context.Context,
	deviceID, moduleID string,
) (*model.ModuleRecord, error) {
	coll := db.client.Database(db.dbName).Collection(RecordsCollectionName)

	cur := coll.FindOne(ctx, bson.M{
		model.FieldDeviceID: deviceID,
		model.FieldModuleID: moduleID,
	})

	record := &model.ModuleRecord{}
	if err := cur.Decode(record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

// InsertEvent stores a new device event
func (db *DataStoreMongo) InsertEvent(ctx context.Context, event *model.EventRecord) error {
	coll := db.client.Database(db.dbName).Collection(EventsCollectionName)

	_, err := coll.InsertOne(ctx, event)
	return err
}

// GetRecentEvents returns the device's events since the given timestamp,
// newest first
func (db *DataStoreMongo) GetRecentEvents(
	ctx context.Context,
	deviceID string,
	since time.Time,
) ([]model.EventRecord, error) {
	coll := db.client.Database(db.dbName).Collection(EventsCollectionName)

	findOpts := &mopts.FindOptions{}
	findOpts.SetSort(bson.D{{Key: "created_ts", Value: -1}})
	cur, err := coll.Find(ctx, bson.M{
		"device_id":  deviceID,
		"created_ts": bson.M{"$gte": since},
	}, findOpts)
	if err != nil {
		return nil, err
	}

	events := []model.EventRecord{}
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// Close disconnects the client
func (db *DataStoreMongo) Close() error {
	ctx := context.Background()
	disconnectClient(ctx, db.client)
	return nil
}

func (db *DataStoreMongo) dropDatabase() error {
	ctx := context.Background()
	err := db.client.Database(db.dbName).Drop(ctx)
	return err
}
