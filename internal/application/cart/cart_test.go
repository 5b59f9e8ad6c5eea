package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuwen/bookmall/internal/domain/book"
	"github.com/liuwen/bookmall/internal/domain/cart"
)

// =========================================
// 内存假仓储
// =========================================

type fakeCartRepo struct {
	carts  map[uint]*cart.Cart // key: userID(==cartID)
	nextID uint
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uint]*cart.Cart), nextID: 1}
}

func (r *fakeCartRepo) FindByUserID(_ context.Context, userID uint) (*cart.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	// 返回副本,模拟仓储每次查询都是独立快照
	cp := *c
	cp.Items = append([]cart.CartItem(nil), c.Items...)
	return &cp, nil
}

func (r *fakeCartRepo) CreateForUser(_ context.Context, userID uint) error {
	if _, ok := r.carts[userID]; !ok {
		r.carts[userID] = &cart.Cart{ID: userID, UserID: userID}
	}
	return nil
}

func (r *fakeCartRepo) SaveItem(_ context.Context, item *cart.CartItem) error {
	c, ok := r.carts[item.CartID]
	if !ok && item.ID != 0 {
		// 更新路径:按条目ID跨购物车查找
		for _, cc := range r.carts {
			for i := range cc.Items {
				if cc.Items[i].ID == item.ID {
					cc.Items[i].Quantity = item.Quantity
					return nil
				}
			}
		}
		return cart.ErrCartItemNotFound
	}

	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
		c.Items = append(c.Items, *item)
		return nil
	}

	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity = item.Quantity
			return nil
		}
	}
	return cart.ErrCartItemNotFound
}

func (r *fakeCartRepo) FindItemForUser(_ context.Context, itemID, userID uint) (*cart.CartItem, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, cart.ErrCartItemNotFound
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			cp := c.Items[i]
			return &cp, nil
		}
	}
	return nil, cart.ErrCartItemNotFound
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, itemID uint) error {
	for _, c := range r.carts {
		for i := range c.Items {
			if c.Items[i].ID == itemID {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
				return nil
			}
		}
	}
	return cart.ErrCartItemNotFound
}

func (r *fakeCartRepo) ClearItems(_ context.Context, cartID uint) error {
	if c, ok := r.carts[cartID]; ok {
		c.Items = nil
	}
	return nil
}

type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*book.Book)}
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error { return nil }
func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(_ context.Context, _ book.ListParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) Search(_ context.Context, _ book.SearchParams) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) ListByCategory(_ context.Context, _ uint, _, _ int) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

// =========================================
// 测试辅助
// =========================================

func setupCartTest(t *testing.T) (*fakeCartRepo, *fakeBookRepo) {
	t.Helper()

	cartRepo := newFakeCartRepo()
	require.NoError(t, cartRepo.CreateForUser(context.Background(), 1))
	require.NoError(t, cartRepo.CreateForUser(context.Background(), 2))

	bookRepo := newFakeBookRepo()
	bookRepo.books[10] = &book.Book{ID: 10, ISBN: "9787115428028", Title: "Go语言实战", Price: decimal.RequireFromString("59.90")}
	bookRepo.books[11] = &book.Book{ID: 11, ISBN: "9787111558422", Title: "深入理解计算机系统", Price: decimal.RequireFromString("139.00")}

	return cartRepo, bookRepo
}

// =========================================
// 加购
// =========================================

func TestAddItem_EmptyCart(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	uc := NewAddItemUseCase(cartRepo, bookRepo)

	snapshot, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 2})

	require.NoError(t, err)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, uint(10), snapshot.Items[0].BookID)
	assert.Equal(t, 2, snapshot.Items[0].Quantity)
	assert.Equal(t, uint(1), snapshot.UserID)
}

func TestAddItem_SameBookMergesQuantity(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	uc := NewAddItemUseCase(cartRepo, bookRepo)

	_, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 3})
	require.NoError(t, err)

	snapshot, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 4})
	require.NoError(t, err)

	// 条目数不变,数量累加
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 7, snapshot.Items[0].Quantity)
}

func TestAddItem_DifferentBooksSeparateLines(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	uc := NewAddItemUseCase(cartRepo, bookRepo)

	_, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 1})
	require.NoError(t, err)

	snapshot, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 11, Quantity: 1})
	require.NoError(t, err)

	assert.Len(t, snapshot.Items, 2)
}

func TestAddItem_BookNotFound(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	uc := NewAddItemUseCase(cartRepo, bookRepo)

	_, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 999, Quantity: 1})

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	uc := NewAddItemUseCase(cartRepo, bookRepo)

	_, err := uc.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 0})

	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
}

// =========================================
// 修改数量
// =========================================

func TestUpdateItem_ReplacesQuantity(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	addUC := NewAddItemUseCase(cartRepo, bookRepo)
	updateUC := NewUpdateItemUseCase(cartRepo)

	added, err := addUC.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 3})
	require.NoError(t, err)
	itemID := added.Items[0].ID

	// 覆盖语义:5不是累加到8,而是直接替换
	snapshot, err := updateUC.Execute(context.Background(), UpdateItemRequest{UserID: 1, ItemID: itemID, Quantity: 5})
	require.NoError(t, err)

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 5, snapshot.Items[0].Quantity)
}

func TestUpdateItem_CrossUserReturnsNotFound(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	addUC := NewAddItemUseCase(cartRepo, bookRepo)
	updateUC := NewUpdateItemUseCase(cartRepo)

	added, err := addUC.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 1})
	require.NoError(t, err)

	// 用户2尝试修改用户1的条目
	_, err = updateUC.Execute(context.Background(), UpdateItemRequest{UserID: 2, ItemID: added.Items[0].ID, Quantity: 9})

	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
}

// =========================================
// 删除条目
// =========================================

func TestRemoveItem(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	addUC := NewAddItemUseCase(cartRepo, bookRepo)
	removeUC := NewRemoveItemUseCase(cartRepo)

	added, err := addUC.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 1})
	require.NoError(t, err)

	snapshot, err := removeUC.Execute(context.Background(), RemoveItemRequest{UserID: 1, ItemID: added.Items[0].ID})
	require.NoError(t, err)

	assert.Empty(t, snapshot.Items)
}

func TestRemoveItem_NotFound(t *testing.T) {
	cartRepo, _ := setupCartTest(t)
	removeUC := NewRemoveItemUseCase(cartRepo)

	_, err := removeUC.Execute(context.Background(), RemoveItemRequest{UserID: 1, ItemID: 999})

	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)
}

func TestRemoveItem_CrossUserReturnsNotFound(t *testing.T) {
	cartRepo, bookRepo := setupCartTest(t)
	addUC := NewAddItemUseCase(cartRepo, bookRepo)
	removeUC := NewRemoveItemUseCase(cartRepo)

	added, err := addUC.Execute(context.Background(), AddItemRequest{UserID: 1, BookID: 10, Quantity: 1})
	require.NoError(t, err)

	_, err = removeUC.Execute(context.Background(), RemoveItemRequest{UserID: 2, ItemID: added.Items[0].ID})
	assert.ErrorIs(t, err, cart.ErrCartItemNotFound)

	// 用户1的条目仍然存在
	snapshot, err := NewGetCartUseCase(cartRepo).Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, snapshot.Items, 1)
}

// =========================================
// 查询
// =========================================

func TestGetCart_NotFound(t *testing.T) {
	cartRepo := newFakeCartRepo()
	uc := NewGetCartUseCase(cartRepo)

	_, err := uc.Execute(context.Background(), 42)

	assert.ErrorIs(t, err, cart.ErrCartNotFound)
}
