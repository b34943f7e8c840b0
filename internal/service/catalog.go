package service

import (
	"context"
	"fmt"

	"github.com/nlsproduction/nls-api/internal/domain"
	"github.com/nlsproduction/nls-api/internal/repository"
)

var (
	ErrProductNotFound  = repository.ErrProductNotFound
	ErrPackageNotFound  = repository.ErrPackageNotFound
	ErrMissingReference = repository.ErrMissingReference
)

type CatalogRepository interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	FindProductByID(ctx context.Context, id uint) (domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ListPackages(ctx context.Context) ([]domain.Package, error)
	FindPackageByID(ctx context.Context, id uint) (domain.Package, error)
	CreatePackage(ctx context.Context, pkg domain.Package) (domain.Package, error)
	UpdatePackage(ctx context.Context, pkg domain.Package) (domain.Package, error)
	DeletePackage(ctx context.Context, id uint) error
	CreatePackageItem(ctx context.Context, item domain.PackageItem) (domain.PackageItem, error)
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListProducts -> %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindProductByID -> %w", err)
	}

	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.CreateProduct -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.UpdateProduct -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteProduct -> %w", err)
	}

	return nil
}

func (s *CatalogService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.repo.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListPackages -> %w", err)
	}

	return packages, nil
}

func (s *CatalogService) GetPackage(ctx context.Context, id uint) (domain.Package, error) {
	pkg, err := s.repo.FindPackageByID(ctx, id)
	if err != nil {
		return domain.Package{}, fmt.Errorf("s.repo.FindPackageByID -> %w", err)
	}

	return pkg, nil
}

func (s *CatalogService) CreatePackage(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	created, err := s.repo.CreatePackage(ctx, pkg)
	if err != nil {
		return domain.Package{}, fmt.Errorf("s.repo.CreatePackage -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdatePackage(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	updated, err := s.repo.UpdatePackage(ctx, pkg)
	if err != nil {
		return domain.Package{}, fmt.Errorf("s.repo.UpdatePackage -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeletePackage(ctx context.Context, id uint) error {
	if err := s.repo.DeletePackage(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeletePackage -> %w", err)
	}

	return nil
}

func (s *CatalogService) CreatePackageItem(ctx context.Context, item domain.PackageItem) (domain.PackageItem, error) {
	created, err := s.repo.CreatePackageItem(ctx, item)
	if err != nil {
		return domain.PackageItem{}, fmt.Errorf("s.repo.CreatePackageItem -> %w", err)
	}

	return created, nil
}
