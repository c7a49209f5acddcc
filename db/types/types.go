package types

// Migration is a single schema change. SQL holds both directions separated by the
// "-- +migrate Up" marker understood by sql-migrate, the down statements first.
type Migration struct {
	ID  string
	SQL string
}
