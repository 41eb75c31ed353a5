package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestTranslateErrNoRows(t *testing.T) {
	require.ErrorIs(t, translateErr(sql.ErrNoRows), ErrNotFound)
	require.NoError(t, translateErr(nil))
}

func TestTranslateErrUniqueViolation(t *testing.T) {
	err := translateErr(&pq.Error{Code: "23505", Constraint: "tenders_reference_number_key"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "reference number already in use", conflict.Message)

	err = translateErr(&pq.Error{Code: "23505", Constraint: "some_other_key"})
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "duplicate value", conflict.Message)
}

func TestTranslateErrForeignKeyInsertSide(t *testing.T) {
	// вставка тендера с несуществующим client_id
	err := translateErr(&pq.Error{
		Code:    "23503",
		Message: `insert or update on table "tenders" violates foreign key constraint "tenders_client_id_fkey"`,
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "referenced record does not exist", conflict.Message)
}

func TestTranslateErrForeignKeyDeleteSide(t *testing.T) {
	err := translateErr(&pq.Error{
		Code:    "23503",
		Message: `update or delete on table "clients" violates foreign key constraint "tenders_client_id_fkey" on table "tenders"`,
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "record is referenced by another record", conflict.Message)
}

func TestTranslateErrPassthrough(t *testing.T) {
	orig := errors.New("connection reset")
	require.Equal(t, orig, translateErr(orig))
}
