package service

import (
	"testing"

	"go-inventory-pro/internal/apperr"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductMissingFields(t *testing.T) {
	env := newTestEnv(t)

	input := productInput("Widget", "SKU-1", "Acme")
	input.Name = "   " // whitespace only, empty after trim

	_, err := env.products.CreateProduct(input)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateProductNegativeNumbers(t *testing.T) {
	env := newTestEnv(t)

	input := productInput("Widget", "SKU-1", "Acme")
	input.Price = floatPtr(-1)

	_, err := env.products.CreateProduct(input)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateProductMissingQuantity(t *testing.T) {
	env := newTestEnv(t)

	input := productInput("Widget", "SKU-1", "Acme")
	input.Quantity = nil

	_, err := env.products.CreateProduct(input)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateProductZeroQuantityAllowed(t *testing.T) {
	env := newTestEnv(t)

	input := productInput("Widget", "SKU-1", "Acme")
	input.Quantity = intPtr(0)

	product, err := env.products.CreateProduct(input)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)
}

func TestCreateProductDefaultsToActive(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, product.Status)
	assert.NotEqual(t, uuid.Nil, product.ID)
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)

	_, err = env.products.CreateProduct(productInput("Gadget", "SKU-1", "Acme"))
	var duplicateErr *apperr.DuplicateKeyError
	require.ErrorAs(t, err, &duplicateErr)
}

func TestCreateProductUnknownSupplierAllowed(t *testing.T) {
	env := newTestEnv(t)

	// A supplier name with no matching record is not an error; only a
	// known-inactive supplier blocks creation.
	product, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "NoSuchSupplier"))
	require.NoError(t, err)
	assert.Equal(t, "NoSuchSupplier", product.Supplier)
}

func TestCreateProductInactiveSupplierBlocked(t *testing.T) {
	env := newTestEnv(t)
	env.seedSupplier(t, "Acme", model.StatusInactive)

	_, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	var policyErr *apperr.PolicyViolationError
	require.ErrorAs(t, err, &policyErr)

	_, _, listErr := env.products.ListProducts(repository.ProductFilter{})
	require.NoError(t, listErr)
}

func TestCreateProductChecksInFixedOrder(t *testing.T) {
	env := newTestEnv(t)
	env.seedSupplier(t, "Globex", model.StatusInactive)
	_, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)

	// Field validation runs before the SKU uniqueness check: an input that
	// fails both reports the validation error.
	input := productInput("", "SKU-1", "Globex")
	_, err = env.products.CreateProduct(input)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// SKU uniqueness runs before the supplier gate.
	_, err = env.products.CreateProduct(productInput("Gadget", "SKU-1", "Globex"))
	var duplicateErr *apperr.DuplicateKeyError
	require.ErrorAs(t, err, &duplicateErr)

	// With shape and SKU fine, the gate is the last check to fire.
	_, err = env.products.CreateProduct(productInput("Gadget", "SKU-2", "Globex"))
	var policyErr *apperr.PolicyViolationError
	require.ErrorAs(t, err, &policyErr)
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.UpdateProduct(uuid.New(), productInput("Widget", "SKU-1", "Acme"))
	var notFoundErr *apperr.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateProductKeepOwnSKU(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)

	input := productInput("Widget v2", "SKU-1", "Acme")
	updated, err := env.products.UpdateProduct(product.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)
	assert.Equal(t, "SKU-1", updated.SKU)
}

func TestUpdateProductDuplicateSKUOfOther(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)
	other, err := env.products.CreateProduct(productInput("Gadget", "SKU-2", "Acme"))
	require.NoError(t, err)

	_, err = env.products.UpdateProduct(other.ID, productInput("Gadget", "SKU-1", "Acme"))
	var duplicateErr *apperr.DuplicateKeyError
	require.ErrorAs(t, err, &duplicateErr)
}

func TestUpdateProductDoesNotRecheckSupplier(t *testing.T) {
	env := newTestEnv(t)
	supplier := env.seedSupplier(t, "Acme", model.StatusActive)

	product, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)

	supplier.Status = model.StatusInactive
	require.NoError(t, env.supplierRepo.Update(supplier))

	// Updating a product does not re-run the supplier-active gate; that
	// check belongs to create and activate only.
	updated, err := env.products.UpdateProduct(product.ID, productInput("Widget v2", "SKU-1", "Acme"))
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", updated.Name)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	product, err := env.products.CreateProduct(productInput("Widget", "SKU-1", "Acme"))
	require.NoError(t, err)

	require.NoError(t, env.products.DeleteProduct(product.ID))

	_, err = env.products.GetProduct(product.ID)
	var notFoundErr *apperr.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	err = env.products.DeleteProduct(product.ID)
	require.ErrorAs(t, err, &notFoundErr)
}

func TestListProductsDefaultsToActive(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Active", SKU: "A-1", Supplier: "Acme"})
	env.seedProduct(t, &model.Product{Name: "Retired", SKU: "R-1", Supplier: "Acme", Status: model.StatusInactive})

	products, total, err := env.products.ListProducts(repository.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, products, 1)
	assert.Equal(t, "Active", products[0].Name)
}

func TestListProductsSearchAndPagination(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, &model.Product{Name: "Blue Widget", SKU: "BW-1", Supplier: "Acme"})
	env.seedProduct(t, &model.Product{Name: "Red Widget", SKU: "RW-1", Supplier: "Acme"})
	env.seedProduct(t, &model.Product{Name: "Gadget", SKU: "G-1", Supplier: "Acme"})

	products, total, err := env.products.ListProducts(repository.ProductFilter{Search: "widget"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 2)

	products, total, err = env.products.ListProducts(repository.ProductFilter{Search: "widget", Page: 2, Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 1)
}
