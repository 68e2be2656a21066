package usecase

import "shirtshop_backend/internal/feature/catalog/domain/entity"

// defaultProducts returns the stock Shirts4Mike catalog.
func defaultProducts() []entity.Product {
	sizes := []entity.Size{{Name: "Small"}, {Name: "Medium"}, {Name: "Large"}}

	return []entity.Product{
		{Name: "Logo Shirt, Red", Price: 18, Paypal: "LNRBY7XSXS5PA", CoverImage: "shirt-101.jpg", Sizes: sizes},
		{Name: "Mike the Frog Shirt, Black", Price: 20, Paypal: "XP8KRXHEXMQ4J", CoverImage: "shirt-102.jpg", Sizes: sizes},
		{Name: "Mike the Frog Shirt, Blue", Price: 20, Paypal: "95C659J3VZGNJ", CoverImage: "shirt-103.jpg", Sizes: sizes},
		{Name: "Logo Shirt, Green", Price: 18, Paypal: "Z5EY4SJN64SLU", CoverImage: "shirt-104.jpg", Sizes: sizes},
		{Name: "Mike the Frog Shirt, Yellow", Price: 25, Paypal: "RYAGP5EWG4V4G", CoverImage: "shirt-105.jpg", Sizes: sizes},
		{Name: "Logo Shirt, Gray", Price: 20, Paypal: "QYHDD4N4SMUKN", CoverImage: "shirt-106.jpg", Sizes: sizes},
		{Name: "Logo Shirt, Teal", Price: 20, Paypal: "RSDD7RPZFPQTQ", CoverImage: "shirt-107.jpg", Sizes: sizes},
		{Name: "Mike the Frog Shirt, Orange", Price: 25, Paypal: "LFRHBPYZKHV4Y", CoverImage: "shirt-108.jpg", Sizes: sizes},
	}
}
