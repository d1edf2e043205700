package supplier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mobilebanquet/banquet-service/internal/docstore"
	"github.com/mobilebanquet/banquet-service/internal/supplier"
)

func TestSupplierService_CRUD(t *testing.T) {
	svc := supplier.NewService(docstore.NewMemory())
	ctx := context.Background()

	// Id is generated when the caller leaves it empty, kept otherwise.
	created, err := svc.Create(ctx, &supplier.Supplier{Name: "王记肉铺", Category: "肉类", Phone: "13700000000"})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	withID, err := svc.Create(ctx, &supplier.Supplier{ID: "sup-fixed", Name: "陈记蔬菜", Category: "菜类", Phone: "13600000000"})
	assert.NoError(t, err)
	assert.Equal(t, "sup-fixed", withID.ID)

	suppliers, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, suppliers, 2)

	// The path id wins over whatever the body carries.
	replaced, err := svc.Replace(ctx, "sup-fixed", &supplier.Supplier{ID: "other", Name: "陈记蔬菜", Phone: "13600000001"})
	assert.NoError(t, err)
	assert.Equal(t, "sup-fixed", replaced.ID)

	_, err = svc.Replace(ctx, "missing", &supplier.Supplier{Name: "x"})
	assert.ErrorIs(t, err, supplier.ErrNotFound)

	assert.NoError(t, svc.Delete(ctx, "sup-fixed"))
	assert.ErrorIs(t, svc.Delete(ctx, "sup-fixed"), supplier.ErrNotFound)

	suppliers, err = svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, suppliers, 1)
}
