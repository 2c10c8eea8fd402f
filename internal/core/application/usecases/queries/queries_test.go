package queries_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPrintQueueQuery_Valid(t *testing.T) {
	query := queries.NewGetPrintQueueQuery()
	require.NoError(t, query.Validate())
}

func TestGetPrintQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPrintQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPrintQueueQueryIsNotConstructed)
}

func TestNewGetNextBatchQuery_Valid(t *testing.T) {
	query := queries.NewGetNextBatchQuery(true)
	require.NoError(t, query.Validate())
	assert.True(t, query.AllowPartial())

	query = queries.NewGetNextBatchQuery(false)
	require.NoError(t, query.Validate())
	assert.False(t, query.AllowPartial())
}

func TestGetNextBatchQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetNextBatchQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetNextBatchQueryIsNotConstructed)
}

func TestNewGetQueueStatusQuery_Valid(t *testing.T) {
	query := queries.NewGetQueueStatusQuery()
	require.NoError(t, query.Validate())
}

func TestGetQueueStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetQueueStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetQueueStatusQueryIsNotConstructed)
}

func TestNewGetOrderItemsQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderItemsQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderItemsQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderItemsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderItemsQueryIsNotConstructed)
}

func TestNewGetStaleWorkLogsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStaleWorkLogsQuery(8 * time.Hour)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 8*time.Hour, query.OlderThan())
}

func TestNewGetStaleWorkLogsQuery_NonPositiveThreshold(t *testing.T) {
	_, err := queries.NewGetStaleWorkLogsQuery(0)
	require.Error(t, err)

	_, err = queries.NewGetStaleWorkLogsQuery(-time.Minute)
	require.Error(t, err)
}

func TestGetStaleWorkLogsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStaleWorkLogsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStaleWorkLogsQueryIsNotConstructed)
}
