package recommend

import "shopReco/domain"

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ProductID:   "prod_1",
			ProductName: "Acme Wireless Headphones",
			Description: "Over-ear wireless headphones with active noise cancelling",
			Brand:       "Acme",
			Category:    "audio",
			Price:       199.99,
		},
		{
			ProductID:   "prod_2",
			ProductName: "Acme Bluetooth Headphones",
			Description: "On-ear bluetooth headphones with long battery life",
			Brand:       "Acme",
			Category:    "audio",
			Price:       129.99,
		},
		{
			ProductID:   "prod_3",
			ProductName: "Zen Yoga Mat",
			Description: "Non slip yoga mat for home workouts",
			Brand:       "Zen",
			Category:    "fitness",
			Price:       39.99,
		},
		{
			ProductID:   "prod_4",
			ProductName: "Zen Yoga Block",
			Description: "High density foam yoga block",
			Brand:       "Zen",
			Category:    "fitness",
			Price:       14.99,
		},
		{
			ProductID:   "prod_5",
			ProductName: "Acme USB Cable",
			Description: "Durable usb charging cable two meters",
			Brand:       "Acme",
			Category:    "accessories",
			Price:       9.99,
		},
		{
			// no text, no attributes: the all-zero vector edge case
			ProductID:   "prod_6",
			ProductName: "",
			Description: "",
			Brand:       "",
			Category:    "",
			Price:       1.0,
		},
	}
}

func testInteractions() []domain.Interaction {
	return []domain.Interaction{
		{UserID: "u1", ProductID: "prod_1", EventType: domain.EventPurchase},
		{UserID: "u2", ProductID: "prod_1", EventType: domain.EventPurchase},
		{UserID: "u3", ProductID: "prod_1", EventType: domain.EventPurchase},
		{UserID: "u1", ProductID: "prod_2", EventType: domain.EventPurchase},
		{UserID: "u2", ProductID: "prod_2", EventType: domain.EventView},
		{UserID: "u3", ProductID: "prod_3", EventType: domain.EventView},
		{UserID: "u4", ProductID: "prod_3", EventType: domain.EventView},
	}
}

func testService() *Service {
	return NewServiceFromCatalog(testCatalog(), testInteractions(), 10)
}
