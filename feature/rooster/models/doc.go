// Package models defines the database-facing types of the rooster feature:
// the ServiceRow shape and the RowSource that reads rows through the
// operator-configured query.
package models
