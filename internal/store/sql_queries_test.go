// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/dia-companion/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Email: "a@b.c", Password: "hash", Role: models.RoleAdmin}

	query, args, err := buildInsertUserQuery(dollar, user)
	require.NoError(t, err)

	require.Equal(t, "INSERT INTO users (email,password,role) VALUES ($1,$2,$3)", query)
	require.Equal(t, []any{"a@b.c", "hash", "admin"}, args)
}

func Test_buildSelectUserQuery_PlaceholderFormats(t *testing.T) {
	query, args, err := buildSelectUserQuery(question, "a@b.c")
	require.NoError(t, err)
	require.Equal(t, "SELECT email, password, role FROM users WHERE email = ?", query)
	require.Equal(t, []any{"a@b.c"}, args)

	query, _, err = buildSelectUserQuery(dollar, "a@b.c")
	require.NoError(t, err)
	require.Contains(t, query, "email = $1")
}

func Test_buildSelectAllUsersQuery_OrdersByEmail(t *testing.T) {
	query, args, err := buildSelectAllUsersQuery(dollar)
	require.NoError(t, err)
	require.Empty(t, args)
	require.True(t, strings.HasSuffix(query, "ORDER BY email"), query)
}

func Test_buildSelectByUserQuery(t *testing.T) {
	query, args, err := buildSelectByUserQuery(dollar, labResultsTable, labResultColumns, "a@b.c")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from lab_results")
	require.Contains(t, q, "where user_email = $1")
	for _, col := range labResultColumns {
		require.Contains(t, q, col)
	}
	require.Equal(t, []any{"a@b.c"}, args)
}

func Test_buildDeleteByIDQuery_ScopedByUser(t *testing.T) {
	query, args, err := buildDeleteByIDQuery(dollar, chatsTable, "a@b.c", "id-1")
	require.NoError(t, err)

	require.Equal(t, "DELETE FROM archived_chats WHERE user_email = $1 AND id = $2", query)
	require.Equal(t, []any{"a@b.c", "id-1"}, args)
}

func Test_buildDeleteByUserQuery_AllPerUserTables(t *testing.T) {
	for _, table := range perUserTables {
		query, args, err := buildDeleteByUserQuery(question, table, "a@b.c")
		require.NoError(t, err)
		require.Equal(t, "DELETE FROM "+table+" WHERE user_email = ?", query)
		require.Equal(t, []any{"a@b.c"}, args)
	}
}

func Test_buildInsertQuery(t *testing.T) {
	query, args, err := buildInsertQuery(question, chatsTable, chatColumns, []any{"1", "a@b.c", "2024", "[]"})
	require.NoError(t, err)

	require.Equal(t, "INSERT INTO archived_chats (id,user_email,datetime,messages) VALUES (?,?,?,?)", query)
	require.Len(t, args, 4)
}
