package memstore

import (
	"context"
	"time"

	"github.com/ThanhAnUp/ArtisanHaven/internal/model"
	"github.com/shopspring/decimal"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed fills an empty store with the sample catalog, used when the
// server runs with STORAGE=memory.
func (s *Store) Seed(ctx context.Context) error {
	products := []model.Product{
		{
			Name:        "Dây Chuyền Vàng Thủ Công",
			Description: "Dây chuyền vàng được thiết kế tinh tế, được chế tác thủ công với sự tỉ mỉ và chăm sóc.",
			Price:       decimal.RequireFromString("2100000"),
			ImageURL:    "https://images.pexels.com/photos/10983783/pexels-photo-10983783.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    model.CategoryJewelry,
			InStock:     true,
			Featured:    true,
			Rating:      decimal.RequireFromString("4.5"),
			ReviewCount: 24,
		},
		{
			Name:        "Trang Trí Macrame Treo Tường",
			Description: "Trang trí macrame treo tường được dệt thủ công, làm từ 100% dây cotton với hạt gỗ tự nhiên.",
			Price:       decimal.RequireFromString("1550000"),
			ImageURL:    "https://images.pexels.com/photos/4992459/pexels-photo-4992459.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    model.CategoryHomeDecor,
			InStock:     true,
			Featured:    true,
			Rating:      decimal.RequireFromString("5.0"),
			ReviewCount: 18,
		},
		{
			Name:        "Bộ Bát Gốm Thủ Công",
			Description: "Bộ bốn bát gốm được chế tác độc đáo, mỗi bát có lớp men phản ứng riêng.",
			Price:       decimal.RequireFromString("2850000"),
			ImageURL:    "https://images.pexels.com/photos/2148215/pexels-photo-2148215.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    model.CategoryCeramics,
			InStock:     true,
			Featured:    true,
			Rating:      decimal.RequireFromString("4.0"),
			ReviewCount: 12,
		},
		{
			Name:        "Bông Tai Bạc Thủ Công",
			Description: "Bông tai bạc được thiết kế tinh tế và chế tác thủ công với độ chính xác cao.",
			Price:       decimal.RequireFromString("1050000"),
			ImageURL:    "https://images.pexels.com/photos/10890970/pexels-photo-10890970.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    model.CategoryJewelry,
			InStock:     true,
			Featured:    true,
			Rating:      decimal.RequireFromString("3.5"),
			ReviewCount: 9,
		},
		{
			Name:        "Thảm Dệt Treo Tường",
			Description: "Thảm treo tường được dệt phức tạp từ sợi tự nhiên.",
			Price:       decimal.RequireFromString("3350000"),
			ImageURL:    "https://images.pexels.com/photos/8037031/pexels-photo-8037031.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    model.CategoryTextiles,
			InStock:     true,
			Featured:    false,
			Rating:      decimal.RequireFromString("4.5"),
			ReviewCount: 7,
		},
		{
			Name:        "Cốc Gốm Vẽ Tay",
			Description: "Cốc gốm thiết kế độc đáo, được vẽ tay riêng từng chiếc bởi các nghệ nhân.",
			Price:       decimal.RequireFromString("650000"),
			ImageURL:    "https://images.pexels.com/photos/4346302/pexels-photo-4346302.jpeg?auto=compress&cs=tinysrgb&w=500",
			Category:    model.CategoryCeramics,
			InStock:     true,
			Featured:    false,
			Rating:      decimal.RequireFromString("4.0"),
			ReviewCount: 29,
		},
	}
	for i := range products {
		if _, err := s.CreateProduct(ctx, &products[i]); err != nil {
			return err
		}
	}

	workshops := []model.Workshop{
		{
			Title:          "Hội Thảo Làm Bát Gốm",
			Description:    "Học nghệ thuật làm bát gốm thủ công, hướng dẫn bởi nghệ nhân gốm Ngọc Anh.",
			ImageURL:       "https://images.pexels.com/photos/3094351/pexels-photo-3094351.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:       model.CategoryCeramics,
			Date:           mustDate("2025-06-15T10:00:00Z"),
			Price:          decimal.RequireFromString("2200000"),
			SpotsAvailable: 10,
		},
		{
			Title:          "Hội Thảo Làm Trang Sức Bạc",
			Description:    "Tự tạo nhẫn bạc của riêng bạn, giảng dạy bởi nhà thiết kế trang sức Minh Tuấn.",
			ImageURL:       "https://images.pexels.com/photos/8113923/pexels-photo-8113923.jpeg?auto=compress&cs=tinysrgb&w=800",
			Category:       model.CategoryJewelry,
			Date:           mustDate("2025-07-08T14:00:00Z"),
			Price:          decimal.RequireFromString("2800000"),
			SpotsAvailable: 8,
		},
	}
	for i := range workshops {
		if _, err := s.CreateWorkshop(ctx, &workshops[i]); err != nil {
			return err
		}
	}

	hanoi := "Hà Nội"
	reviews := []model.Review{
		{
			ProductID: 1,
			Name:      "Thanh Hà",
			Location:  &hanoi,
			Rating:    5,
			Comment:   "Dây chuyền vàng mà tôi mua thực sự tuyệt đẹp. Chắc chắn sẽ mua sắm ở đây một lần nữa!",
		},
		{
			ProductID: 2,
			Name:      "Minh Tú",
			Rating:    5,
			Comment:   "Chất lượng thật tuyệt vời, và nó trông còn đẹp hơn cả trong ảnh. Giao hàng cũng nhanh chóng!",
		},
		{
			ProductID: 4,
			Name:      "Ngọc Mai",
			Rating:    4,
			Comment:   "Thiết kế độc đáo và chất lượng xuất sắc. Khuyên mọi người nên mua!",
		},
	}
	for i := range reviews {
		if _, err := s.CreateReview(ctx, &reviews[i]); err != nil {
			return err
		}
	}
	return nil
}
