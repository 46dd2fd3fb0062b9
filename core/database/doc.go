// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. Database tables can be compared
// like any other dataset through the `db://` source scheme in core/dataset.
//
// # Schema Inspection
//
// GetTableColumns returns a table's columns in declaration order. The table
// source uses it as the dataset header, so a missing table is detected before
// any row is read.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	columns, err := database.GetTableColumns(db, "customers")
package database
