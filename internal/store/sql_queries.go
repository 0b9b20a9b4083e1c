package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/dia-companion/models"
)

const (
	usersTable       = "users"
	labResultsTable  = "lab_results"
	analysesTable    = "archived_analyses"
	chatsTable       = "archived_chats"
	recordEditsTable = "record_edits"
)

// perUserTables lists every collection partitioned by user_email. A user
// cascade delete clears all of them.
var perUserTables = []string{labResultsTable, analysesTable, chatsTable, recordEditsTable}

var (
	userColumns       = []string{"email", "password", "role"}
	labResultColumns  = []string{"id", "user_email", "datetime", "type", "file_name", "file_type", "file_content"}
	analysisColumns   = []string{"id", "user_email", "datetime", "analysis_text", "sources"}
	chatColumns       = []string{"id", "user_email", "datetime", "messages"}
	recordEditColumns = []string{"id", "user_email", "datetime", "record_id", "original_record", "updated_record"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Email, user.Password, string(user.Role)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("email").
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildInsertQuery(b sq.StatementBuilderType, table string, columns []string, values []any) (string, []any, error) {
	return b.Insert(table).
		Columns(columns...).
		Values(values...).
		ToSql()
}

func buildSelectByUserQuery(b sq.StatementBuilderType, table string, columns []string, email string) (string, []any, error) {
	return b.Select(columns...).
		From(table).
		Where(sq.Eq{"user_email": email}).
		ToSql()
}

func buildDeleteByIDQuery(b sq.StatementBuilderType, table, email, id string) (string, []any, error) {
	return b.Delete(table).
		Where("user_email = ? AND id = ?", email, id).
		ToSql()
}

func buildDeleteByUserQuery(b sq.StatementBuilderType, table, email string) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{"user_email": email}).
		ToSql()
}
