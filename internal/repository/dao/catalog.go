package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrPackageNotFound  = errors.New("package not found")
	ErrMissingReference = errors.New("referenced package or product does not exist")
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null;index" json:"name"`
	Category    string  `gorm:"not null;index" json:"category"`
	DayRate     float64 `gorm:"not null;default:0" json:"day_rate"`
	Description string  `json:"description"`
	Specs       string  `json:"specs"`
	ImageURL    string  `json:"image_url"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`

	PackageItems []PackageItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

type Package struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Target      string  `json:"target"`
	BasePrice   float64 `gorm:"not null;default:0" json:"base_price"`
	Description string  `json:"description"`

	Items []PackageItem `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type PackageItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PackageID uint `gorm:"not null;index" json:"package_id"`
	ProductID uint `gorm:"not null;index" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PackageItem) TableName() string {
	return "package_items"
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) ListProducts(ctx context.Context, category string) ([]Product, error) {
	var products []Product

	query := d.db.WithContext(ctx).Order("id")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if result := query.Find(&products); result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *CatalogDAO) FindProductByID(ctx context.Context, id uint) (Product, error) {
	var product Product

	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *CatalogDAO) InsertProduct(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *CatalogDAO) UpdateProduct(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).
		Model(&Product{}).
		Where("id = ?", product.ID).
		Select("*").Omit("id").
		Updates(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindProductByID(ctx, product.ID)
}

// DeleteProduct removes the product and every package item referencing it
// in a single transaction.
func (d *CatalogDAO) DeleteProduct(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&PackageItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Product{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}

		return nil
	})
}

func (d *CatalogDAO) ListPackages(ctx context.Context) ([]Package, error) {
	var packages []Package

	result := d.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Order("id").
		Find(&packages)
	if result.Error != nil {
		return nil, result.Error
	}

	return packages, nil
}

func (d *CatalogDAO) FindPackageByID(ctx context.Context, id uint) (Package, error) {
	var pkg Package

	result := d.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&pkg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Package{}, ErrPackageNotFound
		}

		return Package{}, result.Error
	}

	return pkg, nil
}

func (d *CatalogDAO) InsertPackage(ctx context.Context, pkg Package) (Package, error) {
	result := d.db.WithContext(ctx).Create(&pkg)
	if result.Error != nil {
		return Package{}, asMissingReference(result.Error)
	}

	return pkg, nil
}

func (d *CatalogDAO) UpdatePackage(ctx context.Context, pkg Package) (Package, error) {
	result := d.db.WithContext(ctx).
		Model(&Package{}).
		Where("id = ?", pkg.ID).
		Select("title", "target", "base_price", "description").
		Updates(&pkg)
	if result.Error != nil {
		return Package{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Package{}, ErrPackageNotFound
	}

	return d.FindPackageByID(ctx, pkg.ID)
}

// DeletePackage removes the package and its items in a single transaction.
func (d *CatalogDAO) DeletePackage(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("package_id = ?", id).Delete(&PackageItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Package{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPackageNotFound
		}

		return nil
	})
}

func (d *CatalogDAO) InsertPackageItem(ctx context.Context, item PackageItem) (PackageItem, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return PackageItem{}, asMissingReference(result.Error)
	}

	return item, nil
}

func asMissingReference(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrMissingReference
	}

	return err
}
