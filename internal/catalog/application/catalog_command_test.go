package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/ecommerce/internal/catalog/domain"
)

type fakeProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*domain.Product{}, nextID: 1}
}

func (f *fakeProductRepo) WithTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeProductRepo) Save(_ context.Context, p *domain.Product) error {
	if p.ID == 0 {
		p.ID = f.nextID
		f.nextID++
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, status domain.ProductStatus, offset, limit int) ([]*domain.Product, int64, error) {
	all, err := f.ListActive(context.Background())
	return all, int64(len(all)), err
}

func (f *fakeProductRepo) ListActive(context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.Active() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProductCache struct {
	entries     map[uint]*domain.Product
	invalidated []uint
	readErr     error
}

func newFakeProductCache() *fakeProductCache {
	return &fakeProductCache{entries: map[uint]*domain.Product{}}
}

func (f *fakeProductCache) Get(_ context.Context, id uint) (*domain.Product, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.entries[id], nil
}

func (f *fakeProductCache) Set(_ context.Context, p *domain.Product) error {
	f.entries[p.ID] = p
	return nil
}

func (f *fakeProductCache) Invalidate(_ context.Context, id uint) error {
	delete(f.entries, id)
	f.invalidated = append(f.invalidated, id)
	return nil
}

type recordingPublisher struct {
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic, _ string, _ any) error {
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) PublishInTx(_ context.Context, _ any, topic, _ string, _ any) error {
	p.topics = append(p.topics, topic)
	return nil
}

func TestCreateProductPublishesEvent(t *testing.T) {
	repo := newFakeProductRepo()
	pub := &recordingPublisher{}
	svc := NewCatalogCommandService(repo, newFakeProductCache(), pub)

	id, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		Name:     "Notebook Pro",
		Category: "notebooks",
		Price:    decimal.NewFromInt(4500),
		Stock:    10,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	saved, _ := repo.GetByID(context.Background(), id)
	require.NotNil(t, saved)
	assert.Equal(t, domain.ProductStatusActive, saved.Status)
	assert.Equal(t, []string{domain.ProductCreatedEventType}, pub.topics)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	svc := NewCatalogCommandService(newFakeProductRepo(), newFakeProductCache(), &recordingPublisher{})

	_, err := svc.CreateProduct(context.Background(), CreateProductCommand{Name: "Free", Price: decimal.Zero})
	assert.Error(t, err)
}

func TestUpdateProductInvalidatesCache(t *testing.T) {
	repo := newFakeProductRepo()
	cache := newFakeProductCache()
	svc := NewCatalogCommandService(repo, cache, &recordingPublisher{})

	id, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		Name: "Mouse", Price: decimal.NewFromInt(90), Stock: 5,
	})
	require.NoError(t, err)

	err = svc.UpdateProduct(context.Background(), UpdateProductCommand{
		ID: id, Name: "Wireless Mouse", Price: decimal.NewFromInt(80), Stock: 5,
	})
	require.NoError(t, err)
	assert.Contains(t, cache.invalidated, id)

	saved, _ := repo.GetByID(context.Background(), id)
	assert.Equal(t, "Wireless Mouse", saved.Name)
}

func TestUpdateUnknownProduct(t *testing.T) {
	svc := NewCatalogCommandService(newFakeProductRepo(), newFakeProductCache(), &recordingPublisher{})

	err := svc.UpdateProduct(context.Background(), UpdateProductCommand{ID: 42, Name: "Ghost", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAdjustStockPublishesChange(t *testing.T) {
	repo := newFakeProductRepo()
	pub := &recordingPublisher{}
	svc := NewCatalogCommandService(repo, newFakeProductCache(), pub)

	id, err := svc.CreateProduct(context.Background(), CreateProductCommand{
		Name: "Keyboard", Price: decimal.NewFromInt(250), Stock: 3,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AdjustStock(context.Background(), id, -2))
	saved, _ := repo.GetByID(context.Background(), id)
	assert.Equal(t, 1, saved.Stock)
	assert.Contains(t, pub.topics, domain.ProductStockChangedEventType)
}

func TestGetProductFallsBackWhenCacheFails(t *testing.T) {
	repo := newFakeProductRepo()
	cache := newFakeProductCache()
	cmd := NewCatalogCommandService(repo, cache, &recordingPublisher{})
	query := NewCatalogQueryService(repo, cache)

	id, err := cmd.CreateProduct(context.Background(), CreateProductCommand{
		Name: "Monitor", Price: decimal.NewFromInt(1200), Stock: 7,
	})
	require.NoError(t, err)

	cache.readErr = errors.New("redis down")
	dto, err := query.GetProduct(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Monitor", dto.Name)
}
