package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id   TEXT UNIQUE NOT NULL,
//     product_name TEXT,
//     description  TEXT,
//     brand        TEXT,
//     category     TEXT,
//     price        NUMERIC,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductID   string    `gorm:"column:product_id;uniqueIndex" json:"product_id"`
	ProductName string    `gorm:"column:product_name;type:text" json:"product_name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Brand       string    `gorm:"column:brand;type:text" json:"brand"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
