package service

import (
	"testing"

	"go-inventory-pro/internal/repository"
	"go-inventory-pro/prometheus"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryOperationsRecordDBDurations(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)
	_, _, err = env.products.ListProducts(repository.ProductFilter{})
	require.NoError(t, err)
	require.NoError(t, env.products.DeleteProduct(product.ID))

	// Create issues insert and query statements, listing queries, deleting
	// deletes; each operation type must show up as a histogram series.
	series := testutil.CollectAndCount(prometheus.DbOperationDuration, "inventory_db_operation_duration_seconds")
	assert.GreaterOrEqual(t, series, 3)
}
