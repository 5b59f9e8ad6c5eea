package book

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. 价格使用decimal.Decimal精确表示(订单金额计算不允许浮点误差)
// 3. ISBN作为业务唯一标识(数据库层保证唯一性)
// 4. CategoryIDs只保存分类ID,不直接引用Category聚合
type Book struct {
	ID          uint
	ISBN        string          // ISBN号(国际标准书号)
	Title       string          // 书名
	Author      string          // 作者
	Price       decimal.Decimal // 价格(元)
	Description string          // 图书描述
	CoverImage  string          // 封面图片URL
	CategoryIDs []uint          // 所属分类ID列表
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// price必须为正数,由Service层校验后传入
func NewBook(isbn, title, author string, price decimal.Decimal, description, coverImage string, categoryIDs []uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		Author:      author,
		Price:       price,
		Description: description,
		CoverImage:  coverImage,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格(领域行为)
// 业务规则:价格必须>0
func (b *Book) UpdatePrice(newPrice decimal.Decimal) error {
	if !newPrice.IsPositive() {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息
// 空字符串表示不修改对应字段
func (b *Book) UpdateInfo(title, author, description, coverImage string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if description != "" {
		b.Description = description
	}
	if coverImage != "" {
		b.CoverImage = coverImage
	}
	b.UpdatedAt = time.Now()
}

// ReplaceCategories 替换所属分类
func (b *Book) ReplaceCategories(categoryIDs []uint) {
	b.CategoryIDs = categoryIDs
	b.UpdatedAt = time.Now()
}
