package repository

import "github.com/jackc/pgx/v5"

// ErrNoRows is the storage-level not-found, re-exported so services do not
// import the driver.
var ErrNoRows = pgx.ErrNoRows
