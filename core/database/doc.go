// Package database handles the connection to the schedule database.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration. The database is the system of
// record for the service schedule; the sync engine only ever reads from it
// through the operator-configured query (Config.Query).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
