package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/liuwen/bookmall/internal/domain/book"
	apperrors "github.com/liuwen/bookmall/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 软删除由gorm.DeletedAt自动处理,所有查询默认排除已删除行
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书(含分类关联)
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)

	categories, err := r.findCategories(db, b.CategoryIDs)
	if err != nil {
		return err
	}

	model := &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		Categories:  categories,
	}

	if err := db.Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return book.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Categories").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByISBN 根据ISBN查找图书
func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Categories").Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息(含分类关联替换)
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	db := getDB(ctx, r.db)

	result := db.Model(&BookModel{}).Where("id = ?", b.ID).Updates(map[string]interface{}{
		"title":       b.Title,
		"author":      b.Author,
		"price":       b.Price,
		"description": b.Description,
		"cover_image": b.CoverImage,
		"updated_at":  b.UpdatedAt,
	})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	// 替换分类关联
	categories, err := r.findCategories(db, b.CategoryIDs)
	if err != nil {
		return err
	}
	model := BookModel{ID: b.ID}
	if err := db.Model(&model).Association("Categories").Replace(categories); err != nil {
		return apperrors.Wrap(err, "更新图书分类失败")
	}

	return nil
}

// Delete 删除图书(软删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 分页查询图书列表
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{})
	return r.queryPage(query, params.Page, params.PageSize)
}

// Search 按条件搜索图书
// 条件组合规则:
// - Titles非空 → AND title IN (...)
// - Authors非空 → AND author IN (...)
// 与JPA Specification的动态组合等价,这里用gorm scope实现
func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{}).
		Scopes(valueIn("title", params.Titles), valueIn("author", params.Authors))
	return r.queryPage(query, params.Page, params.PageSize)
}

// ListByCategory 查询某分类下的图书
func (r *bookRepository) ListByCategory(ctx context.Context, categoryID uint, page, pageSize int) ([]*book.Book, int64, error) {
	query := getDB(ctx, r.db).Model(&BookModel{}).
		Joins("JOIN book_categories bc ON bc.book_model_id = books.id").
		Where("bc.category_model_id = ?", categoryID)
	return r.queryPage(query, page, pageSize)
}

// valueIn 构建"字段 IN (取值集合)"的查询scope
// values为空时不追加条件(该维度不限制)
func valueIn(column string, values []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(values) == 0 {
			return db
		}
		return db.Where(column+" IN ?", values)
	}
}

// queryPage 统一的计数+分页查询
func (r *bookRepository) queryPage(query *gorm.DB, page, pageSize int) ([]*book.Book, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	var models []BookModel
	offset := (page - 1) * pageSize
	err := query.Preload("Categories").
		Order("id ASC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// findCategories 按ID集合查询分类行
func (r *bookRepository) findCategories(db *gorm.DB, ids []uint) ([]CategoryModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []CategoryModel
	if err := db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}
	return categories, nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	categoryIDs := make([]uint, len(model.Categories))
	for i, c := range model.Categories {
		categoryIDs[i] = c.ID
	}

	return &book.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		Author:      model.Author,
		Price:       model.Price,
		Description: model.Description,
		CoverImage:  model.CoverImage,
		CategoryIDs: categoryIDs,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
