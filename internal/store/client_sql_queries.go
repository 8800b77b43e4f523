package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	preferencesTable = "preferences"
	credentialsTable = "credentials"

	// credentialsRowID pins the credentials table to a single row.
	credentialsRowID = 1

	lastPartitionPreference = "last_partition"
)

func selectPreferenceQuery(name string) (string, []any, error) {
	return sq.Select("value").
		From(preferencesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func upsertPreferenceQuery(name, value string, now time.Time) (string, []any, error) {
	return sq.Insert(preferencesTable).
		Columns("name", "value", "updated_at").
		Values(name, value, now).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func selectCredentialsQuery() (string, []any, error) {
	return sq.Select("username", "sealed_password", "token", "updated_at").
		From(credentialsTable).
		Where(sq.Eq{"id": credentialsRowID}).
		ToSql()
}

func upsertCredentialsQuery(username, sealedPassword, token string, now time.Time) (string, []any, error) {
	return sq.Insert(credentialsTable).
		Columns("id", "username", "sealed_password", "token", "updated_at").
		Values(credentialsRowID, username, sealedPassword, token, now).
		Suffix("ON CONFLICT(id) DO UPDATE SET " +
			"username = excluded.username, " +
			"sealed_password = excluded.sealed_password, " +
			"token = excluded.token, " +
			"updated_at = excluded.updated_at").
		ToSql()
}

func updateTokenQuery(token string, now time.Time) (string, []any, error) {
	return sq.Update(credentialsTable).
		Set("token", token).
		Set("updated_at", now).
		Where(sq.Eq{"id": credentialsRowID}).
		ToSql()
}

func deleteCredentialsQuery() (string, []any, error) {
	return sq.Delete(credentialsTable).
		Where(sq.Eq{"id": credentialsRowID}).
		ToSql()
}
