package dto

// CreateBookRequest 创建图书请求(管理员)
// Price用字符串承载(如"59.90"),由Handler解析为精确小数
type CreateBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,min=10,max=20"`
	Title       string `json:"title" binding:"required,max=255"`
	Author      string `json:"author" binding:"required,max=255"`
	Price       string `json:"price" binding:"required"`
	Description string `json:"description" binding:"max=2000"`
	CoverImage  string `json:"cover_image" binding:"omitempty,url,max=512"`
	CategoryIDs []uint `json:"category_ids"`
}

// UpdateBookRequest 更新图书请求(管理员)
// 所有字段可选:空字符串/null表示不修改
type UpdateBookRequest struct {
	Title       string  `json:"title" binding:"max=255"`
	Author      string  `json:"author" binding:"max=255"`
	Price       *string `json:"price"`
	Description string  `json:"description" binding:"max=2000"`
	CoverImage  string  `json:"cover_image" binding:"omitempty,url,max=512"`
	CategoryIDs []uint  `json:"category_ids"`
}

// SearchBooksRequest 图书搜索请求(query参数)
// title/author可重复出现,各维度内任一匹配,维度间同时满足
type SearchBooksRequest struct {
	Titles   []string `form:"title"`
	Authors  []string `form:"author"`
	Page     int      `form:"page" binding:"omitempty,min=1"`
	PageSize int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PageRequest 通用分页请求(query参数)
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
