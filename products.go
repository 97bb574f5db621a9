package goShop

import (
	"context"
	"net/http"
	"net/url"
)

// ListProducts returns the catalog via GET /products. Both upstream response
// shapes — a bare array and the paginated {"content": [...]} envelope —
// yield the same ordered slice.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	if c == nil || c.http == nil {
		return nil, ErrClientNotReady
	}

	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}

	c.metrics.Inc(MetricProductList)
	return products, nil
}

// GetProduct returns a single product via GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	if c == nil || c.http == nil {
		return Product{}, ErrClientNotReady
	}

	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return Product{}, err
	}

	c.metrics.Inc(MetricProductGet)
	return product, nil
}

// CreateProduct creates a product via POST /products. Price and stock in the
// input are normalized to JSON numbers on the wire regardless of how they
// were populated.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	if c == nil || c.http == nil {
		return Product{}, ErrClientNotReady
	}

	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &product); err != nil {
		return Product{}, err
	}

	c.metrics.Inc(MetricProductCreate)
	c.audit.emit(ctx, auditEventProductCreated, true, "", nil, func() map[string]string {
		return map[string]string{"id": product.ID, "sku": product.SKU}
	})
	return product, nil
}

// UpdateProduct replaces a product via PUT /products/{id}.
func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (Product, error) {
	if c == nil || c.http == nil {
		return Product{}, ErrClientNotReady
	}

	var product Product
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), input, &product); err != nil {
		return Product{}, err
	}

	c.metrics.Inc(MetricProductUpdate)
	c.audit.emit(ctx, auditEventProductUpdated, true, "", nil, func() map[string]string {
		return map[string]string{"id": id}
	})
	return product, nil
}

// DeleteProduct removes a product via DELETE /products/{id}.
//
// A NotFound classification is returned as-is: by convention the caller
// treats it as successful-enough (the resource it wanted gone is already
// gone) and reconciles its local view with [WithoutProduct]. The gateway
// itself never absorbs the failure.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if c == nil || c.http == nil {
		return ErrClientNotReady
	}

	if err := c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}

	c.metrics.Inc(MetricProductDelete)
	c.audit.emit(ctx, auditEventProductDeleted, true, "", nil, func() map[string]string {
		return map[string]string{"id": id}
	})
	return nil
}

// WithoutProduct returns list with every product matching id removed,
// preserving order. It is the reconciliation helper consumers apply after a
// delete, including a delete the server reported NotFound for.
func WithoutProduct(list []Product, id string) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if p.ID == id {
			continue
		}
		out = append(out, p)
	}
	return out
}
