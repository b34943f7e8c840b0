package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrUnknownEntity  = errors.New("unknown entity")
	ErrEntityNotFound = errors.New("entity not found")
	ErrEntityConflict = errors.New("entity violates a unique constraint")
)

// EntityDescriptor describes one admin-managed table: how to allocate a
// record and a list of records, and which columns must never change on
// update. One descriptor per entity replaces per-entity CRUD code.
type EntityDescriptor struct {
	Name      string
	NewRecord func() any
	NewList   func() any
	Immutable []string
}

func Descriptors() []EntityDescriptor {
	return []EntityDescriptor{
		{
			Name:      "products",
			NewRecord: func() any { return &Product{} },
			NewList:   func() any { return &[]Product{} },
			Immutable: []string{"id"},
		},
		{
			Name:      "packages",
			NewRecord: func() any { return &Package{} },
			NewList:   func() any { return &[]Package{} },
			Immutable: []string{"id"},
		},
		{
			Name:      "package-items",
			NewRecord: func() any { return &PackageItem{} },
			NewList:   func() any { return &[]PackageItem{} },
			Immutable: []string{"id"},
		},
		{
			Name:      "inquiries",
			NewRecord: func() any { return &Inquiry{} },
			NewList:   func() any { return &[]Inquiry{} },
			Immutable: []string{"id", "created_at"},
		},
		{
			Name:      "cases",
			NewRecord: func() any { return &Case{} },
			NewList:   func() any { return &[]Case{} },
			Immutable: []string{"id"},
		},
		{
			Name:      "posts",
			NewRecord: func() any { return &Post{} },
			NewList:   func() any { return &[]Post{} },
			Immutable: []string{"id"},
		},
	}
}

type AdminDAO struct {
	db       *gorm.DB
	entities map[string]EntityDescriptor
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	entities := make(map[string]EntityDescriptor)
	for _, desc := range Descriptors() {
		entities[desc.Name] = desc
	}

	return &AdminDAO{
		db:       db,
		entities: entities,
	}
}

func (d *AdminDAO) Describe(entity string) (EntityDescriptor, error) {
	desc, ok := d.entities[entity]
	if !ok {
		return EntityDescriptor{}, ErrUnknownEntity
	}

	return desc, nil
}

func (d *AdminDAO) List(ctx context.Context, entity string) (any, error) {
	desc, err := d.Describe(entity)
	if err != nil {
		return nil, err
	}

	list := desc.NewList()
	if result := d.db.WithContext(ctx).Order("id").Find(list); result.Error != nil {
		return nil, result.Error
	}

	return list, nil
}

func (d *AdminDAO) FindByID(ctx context.Context, entity string, id uint) (any, error) {
	desc, err := d.Describe(entity)
	if err != nil {
		return nil, err
	}

	record := desc.NewRecord()
	result := d.db.WithContext(ctx).First(record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEntityNotFound
		}

		return nil, result.Error
	}

	return record, nil
}

func (d *AdminDAO) Insert(ctx context.Context, entity string, record any) (any, error) {
	if _, err := d.Describe(entity); err != nil {
		return nil, err
	}

	if result := d.db.WithContext(ctx).Create(record); result.Error != nil {
		return nil, asStoreError(result.Error)
	}

	return record, nil
}

func (d *AdminDAO) Update(ctx context.Context, entity string, id uint, record any) (any, error) {
	desc, err := d.Describe(entity)
	if err != nil {
		return nil, err
	}

	result := d.db.WithContext(ctx).
		Model(desc.NewRecord()).
		Where("id = ?", id).
		Select("*").Omit(desc.Immutable...).
		Updates(record)
	if result.Error != nil {
		return nil, asStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntityNotFound
	}

	return d.FindByID(ctx, entity, id)
}

// Delete removes one record. Package item cleanup on package/product
// deletion happens through the ON DELETE CASCADE constraints created by
// InitTables.
func (d *AdminDAO) Delete(ctx context.Context, entity string, id uint) error {
	desc, err := d.Describe(entity)
	if err != nil {
		return err
	}

	result := d.db.WithContext(ctx).Delete(desc.NewRecord(), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntityNotFound
	}

	return nil
}

func asStoreError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrEntityConflict
		case pgerrcode.ForeignKeyViolation:
			return ErrMissingReference
		}
	}

	return err
}
