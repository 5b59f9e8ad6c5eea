package book

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookRepo 内存实现,仅覆盖Service测试所需的方法
type fakeBookRepo struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uint]*Book), nextID: 1}
}

func (f *fakeBookRepo) Create(ctx context.Context, b *Book) error {
	for _, existing := range f.books {
		if existing.ISBN == b.ISBN {
			return ErrISBNDuplicate
		}
	}
	b.ID = f.nextID
	f.nextID++
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, ErrBookNotFound
}

func (f *fakeBookRepo) Update(ctx context.Context, b *Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return ErrBookNotFound
	}
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	var result []*Book
	for _, b := range f.books {
		result = append(result, b)
	}
	return result, int64(len(result)), nil
}

func (f *fakeBookRepo) Search(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	var result []*Book
	for _, b := range f.books {
		if matchIn(b.Title, params.Titles) && matchIn(b.Author, params.Authors) {
			result = append(result, b)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeBookRepo) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error) {
	var result []*Book
	for _, b := range f.books {
		for _, cid := range b.CategoryIDs {
			if cid == categoryID {
				result = append(result, b)
				break
			}
		}
	}
	return result, int64(len(result)), nil
}

func matchIn(value string, values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func TestService_CreateBook(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.CreateBook(ctx, "9787115428028", "Go语言实战", "威廉·肯尼迪",
		decimal.NewFromFloat(59.00), "实战书籍", "", []uint{1})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.Equal(t, "59", b.Price.String())
}

func TestService_CreateBook_InvalidISBN(t *testing.T) {
	svc := NewService(newFakeBookRepo())

	_, err := svc.CreateBook(context.Background(), "12345", "书", "作者",
		decimal.NewFromInt(10), "", "", nil)
	assert.ErrorIs(t, err, ErrInvalidISBN)
}

func TestService_CreateBook_InvalidPrice(t *testing.T) {
	svc := NewService(newFakeBookRepo())

	_, err := svc.CreateBook(context.Background(), "9787115428028", "书", "作者",
		decimal.Zero, "", "", nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestService_CreateBook_DuplicateISBN(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateBook(ctx, "9787115428028", "书A", "作者A",
		decimal.NewFromInt(10), "", "", nil)
	require.NoError(t, err)

	_, err = svc.CreateBook(ctx, "9787115428028", "书B", "作者B",
		decimal.NewFromInt(20), "", "", nil)
	assert.ErrorIs(t, err, ErrISBNDuplicate)
}

func TestService_UpdateBook_Price(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.CreateBook(ctx, "9787115428028", "书", "作者",
		decimal.NewFromInt(10), "", "", nil)
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(12.50)
	updated, err := svc.UpdateBook(ctx, b.ID, "", "", "", "", &newPrice, nil)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))

	// 非法价格被拒绝
	badPrice := decimal.NewFromInt(-1)
	_, err = svc.UpdateBook(ctx, b.ID, "", "", "", "", &badPrice, nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestService_SearchBooks_EmptyParamsFallsBackToList(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateBook(ctx, "9787115428028", "书A", "作者A",
		decimal.NewFromInt(10), "", "", nil)
	require.NoError(t, err)
	_, err = svc.CreateBook(ctx, "9787115428029", "书B", "作者B",
		decimal.NewFromInt(20), "", "", nil)
	require.NoError(t, err)

	books, total, err := svc.SearchBooks(ctx, SearchParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, books, 2)
}

func TestService_SearchBooks_TitleAndAuthorCombined(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateBook(ctx, "9787115428028", "书A", "作者A",
		decimal.NewFromInt(10), "", "", nil)
	require.NoError(t, err)
	_, err = svc.CreateBook(ctx, "9787115428029", "书A", "作者B",
		decimal.NewFromInt(20), "", "", nil)
	require.NoError(t, err)

	// 书名与作者条件AND组合
	books, total, err := svc.SearchBooks(ctx, SearchParams{
		Titles:  []string{"书A"},
		Authors: []string{"作者B"},
		Page:    1, PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, books, 1)
	assert.Equal(t, "作者B", books[0].Author)
}

func TestIsValidISBN(t *testing.T) {
	assert.True(t, isValidISBN("9787115428028"))
	assert.True(t, isValidISBN("978-7-115-42802-8"))
	assert.True(t, isValidISBN("7115428026"))
	assert.False(t, isValidISBN("12345"))
	assert.False(t, isValidISBN(""))
}
