package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/liuwen/bookmall/internal/domain/cart"
	apperrors "github.com/liuwen/bookmall/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 设计说明:
// 1. 购物车ID与用户ID相同,注册时创建(幂等)
// 2. 条目查询后批量回查图书标题(一次IN查询,避免N+1)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindByUserID 查询用户的购物车(含条目)
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	db := getDB(ctx, r.db)

	var model CartModel
	err := db.Preload("Items").Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	entity := toCartEntity(&model)

	// 批量补齐条目的图书标题
	if err := r.fillBookTitles(db, entity.Items); err != nil {
		return nil, err
	}

	return entity, nil
}

// CreateForUser 为用户创建空购物车(幂等)
func (r *cartRepository) CreateForUser(ctx context.Context, userID uint) error {
	model := CartModel{ID: userID, UserID: userID}

	// 已存在时跳过,保证重复调用不报错
	err := getDB(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&model).Error
	if err != nil {
		return apperrors.Wrap(err, "创建购物车失败")
	}
	return nil
}

// SaveItem 保存购物车条目(ID为0时新增,否则更新数量)
func (r *cartRepository) SaveItem(ctx context.Context, item *cart.CartItem) error {
	db := getDB(ctx, r.db)

	if item.ID == 0 {
		model := CartItemModel{
			CartID:   item.CartID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
		if err := db.Create(&model).Error; err != nil {
			return apperrors.Wrap(err, "保存购物车条目失败")
		}
		item.ID = model.ID
		return nil
	}

	result := db.Model(&CartItemModel{}).Where("id = ?", item.ID).Update("quantity", item.Quantity)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

// FindItemForUser 按条目ID查询并校验归属
// 通过cart_id == user_id的不变式直接过滤,跨用户访问返回NotFound
func (r *cartRepository) FindItemForUser(ctx context.Context, itemID, userID uint) (*cart.CartItem, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).Where("id = ? AND cart_id = ?", itemID, userID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartItemNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return &cart.CartItem{
		ID:       model.ID,
		CartID:   model.CartID,
		BookID:   model.BookID,
		Quantity: model.Quantity,
	}, nil
}

// DeleteItem 删除购物车条目(物理删除)
func (r *cartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	result := getDB(ctx, r.db).Delete(&CartItemModel{}, itemID)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrCartItemNotFound
	}
	return nil
}

// ClearItems 清空购物车的所有条目
func (r *cartRepository) ClearItems(ctx context.Context, cartID uint) error {
	err := getDB(ctx, r.db).Where("cart_id = ?", cartID).Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}

// fillBookTitles 一次IN查询补齐条目的图书标题
// Unscoped:已软删除的图书仍要展示标题(历史加购记录)
func (r *cartRepository) fillBookTitles(db *gorm.DB, items []cart.CartItem) error {
	if len(items) == 0 {
		return nil
	}

	bookIDs := make([]uint, len(items))
	for i, item := range items {
		bookIDs[i] = item.BookID
	}

	var books []BookModel
	if err := db.Unscoped().Select("id", "title").Where("id IN ?", bookIDs).Find(&books).Error; err != nil {
		return apperrors.Wrap(err, "查询图书标题失败")
	}

	titles := make(map[uint]string, len(books))
	for _, b := range books {
		titles[b.ID] = b.Title
	}
	for i := range items {
		items[i].BookTitle = titles[items[i].BookID]
	}

	return nil
}

// toCartEntity GORM模型 → 领域实体
func toCartEntity(model *CartModel) *cart.Cart {
	items := make([]cart.CartItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = cart.CartItem{
			ID:       item.ID,
			CartID:   item.CartID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}

	return &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
