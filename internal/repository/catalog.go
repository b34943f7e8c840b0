package repository

import (
	"context"
	"fmt"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/repository/dao"
)

var (
	ErrProductNotFound  = dao.ErrProductNotFound
	ErrPackageNotFound  = dao.ErrPackageNotFound
	ErrMissingReference = dao.ErrMissingReference
)

type CatalogDAO interface {
	ListProducts(ctx context.Context, category string) ([]dao.Product, error)
	FindProductByID(ctx context.Context, id uint) (dao.Product, error)
	InsertProduct(ctx context.Context, product dao.Product) (dao.Product, error)
	UpdateProduct(ctx context.Context, product dao.Product) (dao.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ListPackages(ctx context.Context) ([]dao.Package, error)
	FindPackageByID(ctx context.Context, id uint) (dao.Package, error)
	InsertPackage(ctx context.Context, pkg dao.Package) (dao.Package, error)
	UpdatePackage(ctx context.Context, pkg dao.Package) (dao.Package, error)
	DeletePackage(ctx context.Context, id uint) error
	InsertPackageItem(ctx context.Context, item dao.PackageItem) (dao.PackageItem, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	found, err := r.dao.ListProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListProducts -> %w", err)
	}

	products := make([]domain.Product, 0, len(found))
	for _, p := range found {
		products = append(products, r.productDaoToDomain(p))
	}

	return products, nil
}

func (r *CatalogRepository) FindProductByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.dao.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindProductByID -> %w", err)
	}

	return r.productDaoToDomain(found), nil
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.InsertProduct(ctx, r.productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.InsertProduct -> %w", err)
	}

	return r.productDaoToDomain(created), nil
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.UpdateProduct(ctx, r.productDomainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.UpdateProduct -> %w", err)
	}

	return r.productDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	if err := r.dao.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteProduct -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	found, err := r.dao.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListPackages -> %w", err)
	}

	packages := make([]domain.Package, 0, len(found))
	for _, p := range found {
		packages = append(packages, r.packageDaoToDomain(p))
	}

	return packages, nil
}

func (r *CatalogRepository) FindPackageByID(ctx context.Context, id uint) (domain.Package, error) {
	found, err := r.dao.FindPackageByID(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("r.dao.FindPackageByID -> %w", err)
	}

	return r.packageDaoToDomain(found), nil
}

func (r *CatalogRepository) CreatePackage(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	daoPkg := dao.Package{
		Title:       pkg.Title,
		Target:      pkg.Target,
		BasePrice:   pkg.BasePrice,
		Description: pkg.Description,
	}
	for _, item := range pkg.Items {
		daoPkg.Items = append(daoPkg.Items, dao.PackageItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	created, err := r.dao.InsertPackage(ctx, daoPkg)
	if err != nil {
		return domain.Package{}, fmt.Errorf("r.dao.InsertPackage -> %w", err)
	}

	return r.packageDaoToDomain(created), nil
}

func (r *CatalogRepository) UpdatePackage(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	updated, err := r.dao.UpdatePackage(ctx, dao.Package{
		ID:          pkg.ID,
		Title:       pkg.Title,
		Target:      pkg.Target,
		BasePrice:   pkg.BasePrice,
		Description: pkg.Description,
	})
	if err != nil {
		return domain.Package{}, fmt.Errorf("r.dao.UpdatePackage -> %w", err)
	}

	return r.packageDaoToDomain(updated), nil
}

func (r *CatalogRepository) DeletePackage(ctx context.Context, id uint) error {
	if err := r.dao.DeletePackage(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeletePackage -> %w", err)
	}

	return nil
}

func (r *CatalogRepository) CreatePackageItem(ctx context.Context, item domain.PackageItem) (domain.PackageItem, error) {
	created, err := r.dao.InsertPackageItem(ctx, dao.PackageItem{
		PackageID: item.PackageID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})
	if err != nil {
		return domain.PackageItem{}, fmt.Errorf("r.dao.InsertPackageItem -> %w", err)
	}

	return r.itemDaoToDomain(created), nil
}

func (r *CatalogRepository) productDaoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		DayRate:     p.DayRate,
		Description: p.Description,
		Specs:       p.Specs,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
	}
}

func (r *CatalogRepository) productDomainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		DayRate:     p.DayRate,
		Description: p.Description,
		Specs:       p.Specs,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
	}
}

func (r *CatalogRepository) itemDaoToDomain(item dao.PackageItem) domain.PackageItem {
	converted := domain.PackageItem{
		ID:        item.ID,
		PackageID: item.PackageID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product.ID != 0 {
		product := r.productDaoToDomain(item.Product)
		converted.Product = &product
	}

	return converted
}

func (r *CatalogRepository) packageDaoToDomain(p dao.Package) domain.Package {
	converted := domain.Package{
		ID:          p.ID,
		Title:       p.Title,
		Target:      p.Target,
		BasePrice:   p.BasePrice,
		Description: p.Description,
	}
	for _, item := range p.Items {
		converted.Items = append(converted.Items, r.itemDaoToDomain(item))
	}

	return converted
}
