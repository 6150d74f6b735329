package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/nebula/internal/datastore"
	"github.com/spf13/viper"
)

// WriteToDatastore exports records to the configured datastore. A disabled
// datastore is a no-op, not an error. When datasette.remote is set the rows
// go to a remote Datasette instance, otherwise to the local SQLite file.
func WriteToDatastore[T any](records []T, schema, table, description string, toMap func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		slog.Debug("Datasette output disabled, skipping export", "table", table)
		return nil
	}

	var store datastore.Store
	if remote := viper.GetString("datasette.remote"); remote != "" {
		store = datastore.NewDatasetteClient(remote, viper.GetString("datasette.token"))
	} else {
		store = datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, toMap(record))
	}

	if err := store.BatchInsert("nebula", table, rows); err != nil {
		return fmt.Errorf("failed to insert %s: %w", description, err)
	}

	slog.Info("Exported to datastore", "description", description, "table", table, "rows", len(rows))
	return nil
}
