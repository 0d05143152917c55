package usecase_test

import (
	"context"
	"errors"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// memStore はトランザクション境界で直列化するインメモリの偽ストア。
// WithinTxがmutexを握るので、本物のDBと同じく
// read-modify-writeが混ざらないことをテストで再現できる。
type memStore struct {
	mu         sync.Mutex
	nextItemID int64
	nextProdID int64
	items      map[int64]model.CartItem
	products   map[int64]model.Product
}

func newMemStore() *memStore {
	return &memStore{
		items:    map[int64]model.CartItem{},
		products: map[int64]model.Product{},
	}
}

func (s *memStore) addProduct(name string, price int64) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProdID++
	p := model.Product{ID: s.nextProdID, Name: name, Price: price}
	s.products[p.ID] = p
	return p
}

// TransactionManager
func (s *memStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// TxRepos
func (s *memStore) Users() repo.UserRepository         { return nil }
func (s *memStore) Products() repo.ProductRepository   { return (*memProducts)(s) }
func (s *memStore) CartItems() repo.CartItemRepository { return (*memCartItems)(s) }

// トランザクション外から使う版。呼び出しごとにロックを取る
func (s *memStore) itemsRepo() repo.CartItemRepository { return &lockedCartItems{s: s} }
func (s *memStore) productsRepo() repo.ProductRepository { return &lockedProducts{s: s} }

type lockedCartItems struct{ s *memStore }

func (l *lockedCartItems) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).ListByUserID(ctx, userID)
}

func (l *lockedCartItems) UpsertByUserAndProduct(ctx context.Context, userID, productID, addQty int64) (model.CartItem, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).UpsertByUserAndProduct(ctx, userID, productID, addQty)
}

func (l *lockedCartItems) FindOwnedByID(ctx context.Context, userID, cartItemID int64) (model.CartItem, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).FindOwnedByID(ctx, userID, cartItemID)
}

func (l *lockedCartItems) UpdateQuantity(ctx context.Context, userID, cartItemID, qty int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).UpdateQuantity(ctx, userID, cartItemID, qty)
}

func (l *lockedCartItems) DeleteOwnedByID(ctx context.Context, userID, cartItemID int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).DeleteOwnedByID(ctx, userID, cartItemID)
}

func (l *lockedCartItems) DeleteByUserID(ctx context.Context, userID int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).DeleteByUserID(ctx, userID)
}

func (l *lockedCartItems) DeleteByProductID(ctx context.Context, productID int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memCartItems)(l.s).DeleteByProductID(ctx, productID)
}

type lockedProducts struct{ s *memStore }

func (l *lockedProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memProducts)(l.s).Create(ctx, p)
}

func (l *lockedProducts) List(ctx context.Context) ([]model.Product, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memProducts)(l.s).List(ctx)
}

func (l *lockedProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memProducts)(l.s).FindByID(ctx, id)
}

func (l *lockedProducts) Delete(ctx context.Context, id int64) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return (*memProducts)(l.s).Delete(ctx, id)
}

type memProducts memStore

func (s *memProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	s.nextProdID++
	p.ID = s.nextProdID
	s.products[p.ID] = p
	return p, nil
}

func (s *memProducts) List(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(s.products))
	for id := int64(1); id <= s.nextProdID; id++ {
		if p, ok := s.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (s *memProducts) Delete(ctx context.Context, id int64) error {
	if _, ok := s.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type memCartItems memStore

var errNoProduct = errors.New("no such product in fake store")

func (s *memCartItems) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	out := []model.CartItem{}
	for id := int64(1); id <= s.nextItemID; id++ {
		it, ok := s.items[id]
		if !ok || it.UserID != userID {
			continue
		}
		it.Product = s.products[it.ProductID]
		out = append(out, it)
	}
	return out, nil
}

func (s *memCartItems) UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, error) {
	for id, it := range s.items {
		if it.UserID == userID && it.ProductID == productID {
			it.Quantity += addQty
			s.items[id] = it
			it.Product = s.products[it.ProductID]
			return it, nil
		}
	}

	p, ok := s.products[productID]
	if !ok {
		return model.CartItem{}, errNoProduct
	}

	s.nextItemID++
	it := model.CartItem{ID: s.nextItemID, UserID: userID, ProductID: productID, Quantity: addQty}
	s.items[it.ID] = it
	it.Product = p
	return it, nil
}

func (s *memCartItems) FindOwnedByID(ctx context.Context, userID int64, cartItemID int64) (model.CartItem, error) {
	it, ok := s.items[cartItemID]
	if !ok || it.UserID != userID {
		return model.CartItem{}, repo.ErrNotFound
	}
	it.Product = s.products[it.ProductID]
	return it, nil
}

func (s *memCartItems) UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	it, ok := s.items[cartItemID]
	if !ok || it.UserID != userID {
		return repo.ErrNotFound
	}
	it.Quantity = qty
	s.items[cartItemID] = it
	return nil
}

func (s *memCartItems) DeleteOwnedByID(ctx context.Context, userID int64, cartItemID int64) error {
	it, ok := s.items[cartItemID]
	if !ok || it.UserID != userID {
		return repo.ErrNotFound
	}
	delete(s.items, cartItemID)
	return nil
}

func (s *memCartItems) DeleteByUserID(ctx context.Context, userID int64) error {
	for id, it := range s.items {
		if it.UserID == userID {
			delete(s.items, id)
		}
	}
	return nil
}

func (s *memCartItems) DeleteByProductID(ctx context.Context, productID int64) error {
	for id, it := range s.items {
		if it.ProductID == productID {
			delete(s.items, id)
		}
	}
	return nil
}
