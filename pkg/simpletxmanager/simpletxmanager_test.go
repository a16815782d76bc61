package simpletxmanager

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fake driver with working transaction control and nothing else; lets the
// retry loop run without a database

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return &fakeConn{}, nil }

type fakeConn struct{}

func (*fakeConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (*fakeConn) Close() error                        { return nil }
func (*fakeConn) Begin() (driver.Tx, error)           { return fakeTx{}, nil }

func (*fakeConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return fakeTx{}, nil
}

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

// failingCommitConn aborts the first N commits with a serialization failure
type failingCommitConn struct {
	fakeConn
	failures int
}

func (c *failingCommitConn) BeginTx(context.Context, driver.TxOptions) (driver.Tx, error) {
	return &failingCommitTx{conn: c}, nil
}

type failingCommitTx struct {
	conn *failingCommitConn
}

func (tx *failingCommitTx) Commit() error {
	if tx.conn.failures > 0 {
		tx.conn.failures--
		return &pq.Error{Code: "40001"}
	}
	return nil
}

func (tx *failingCommitTx) Rollback() error { return nil }

type fakeConnector struct {
	conn driver.Conn
}

func (c fakeConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c fakeConnector) Driver() driver.Driver                        { return fakeDriver{} }

func newFakeDB(conn driver.Conn) *sql.DB {
	return sql.OpenDB(fakeConnector{conn: conn})
}

// serializationErr mimics what the booking repository returns when its
// FOR UPDATE read aborts with SQLSTATE 40001 inside a transaction
func serializationErr() error {
	execErr := errors.New("repository: failed to execute query")
	return fmt.Errorf("%w: ListByDate - execute query: %w", execErr, &pq.Error{Code: "40001"})
}

func TestIsSerializationFailure(t *testing.T) {
	raw := &pq.Error{Code: "40001"}
	assert.True(t, isSerializationFailure(raw))

	// repository wrap keeps the driver error reachable
	assert.True(t, isSerializationFailure(serializationErr()))

	// a second usecase-level wrap on top of the repository's
	doubleWrapped := fmt.Errorf("%w: list bookings: %w", errors.New("usecase: internal error"), serializationErr())
	assert.True(t, isSerializationFailure(doubleWrapped))

	commitWrapped := fmt.Errorf("%w: commit: %w", ErrTransaction, raw)
	assert.True(t, isSerializationFailure(commitWrapped))

	assert.False(t, isSerializationFailure(nil))
	assert.False(t, isSerializationFailure(errors.New("plain failure")))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
}

func TestDoSerializable_RetriesAbortedRead(t *testing.T) {
	m := NewTransactionManager(newFakeDB(&fakeConn{}))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return serializationErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDoSerializable_RetriesAbortedCommit(t *testing.T) {
	m := NewTransactionManager(newFakeDB(&failingCommitConn{failures: 1}))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	m := NewTransactionManager(newFakeDB(&fakeConn{}))

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return serializationErr()
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, attempts)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestDoSerializable_NoRetryOnOtherErrors(t *testing.T) {
	m := NewTransactionManager(newFakeDB(&fakeConn{}))

	attempts := 0
	failure := errors.New("constraint violation")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return failure
	})

	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 1, attempts)
}
