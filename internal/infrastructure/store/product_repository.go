package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allergenlens/backend/internal/domain"
	"gorm.io/gorm"
)

// productRow is the custom_products table. NULL identifiers never collide in the
// composite index, so each identifier also has its own partial unique index;
// Create checks both up front and the indexes hold under concurrent writers.
type productRow struct {
	ID           uint    `gorm:"primaryKey"`
	Barcode      *string `gorm:"size:100;uniqueIndex:uq_barcode_imrptno,priority:1;uniqueIndex:uq_custom_products_barcode,where:barcode IS NOT NULL"`
	ImrptNo      *string `gorm:"column:imrpt_no;size:100;uniqueIndex:uq_barcode_imrptno,priority:2;uniqueIndex:uq_custom_products_imrpt_no,where:imrpt_no IS NOT NULL"`
	ProductName  string  `gorm:"size:500;not null"`
	RawMaterials string  `gorm:"type:text;not null"`
	CreatedAt    time.Time
}

func (productRow) TableName() string {
	return "custom_products"
}

// ProductRepository implements domain.ProductRepository on gorm
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a repository over an opened database
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByKey returns the oldest product whose barcode or report number equals key
func (r *ProductRepository) FindByKey(ctx context.Context, key string) (*domain.StoredProduct, error) {
	var row productRow
	err := r.db.WithContext(ctx).
		Where("barcode = ? OR imrpt_no = ?", key, key).
		Order("id").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	product := fromRow(row)
	return &product, nil
}

// Create inserts product inside a transaction after checking for duplicates.
// A row conflicts when (barcode given and equal) or (report number given and equal).
func (r *ProductRepository) Create(ctx context.Context, product *domain.StoredProduct) error {
	var conds []string
	var args []any
	if product.Barcode != "" {
		conds = append(conds, "barcode = ?")
		args = append(args, product.Barcode)
	}
	if product.ReportNumber != "" {
		conds = append(conds, "imrpt_no = ?")
		args = append(args, product.ReportNumber)
	}
	if len(conds) == 0 {
		return domain.ErrMissingIdentifier
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&productRow{}).Where(strings.Join(conds, " OR "), args...).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateProduct
		}

		row := toRow(*product)
		if err := tx.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateProduct
			}
			return err
		}

		product.ID = row.ID
		product.CreatedAt = row.CreatedAt
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrDuplicateProduct):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
}

// List returns every stored product in insertion order
func (r *ProductRepository) List(ctx context.Context) ([]domain.StoredProduct, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	products := make([]domain.StoredProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, fromRow(row))
	}
	return products, nil
}

func toRow(p domain.StoredProduct) productRow {
	return productRow{
		Barcode:      nullable(p.Barcode),
		ImrptNo:      nullable(p.ReportNumber),
		ProductName:  p.ProductName,
		RawMaterials: p.RawMaterials,
	}
}

func fromRow(row productRow) domain.StoredProduct {
	return domain.StoredProduct{
		ID:           row.ID,
		Barcode:      deref(row.Barcode),
		ReportNumber: deref(row.ImrptNo),
		ProductName:  row.ProductName,
		RawMaterials: row.RawMaterials,
		CreatedAt:    row.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
