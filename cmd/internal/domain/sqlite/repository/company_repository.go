package repository

import (
	"errors"

	"conesites/cmd/internal/domain/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *DefaultCompanyRepository {
	return &DefaultCompanyRepository{db: db}
}

// FindByCNPJ returns nil, nil on a cache miss.
func (r *DefaultCompanyRepository) FindByCNPJ(cnpj string) (*entity.Company, error) {
	var company entity.Company
	err := r.db.
		Preload("Partners").
		Where("cnpj = ?", cnpj).
		First(&company).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *DefaultCompanyRepository) Save(company *entity.Company) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(company).Error; err != nil {
			return err
		}

		err := tx.Where("company_cnpj = ?", company.CNPJ).Delete(&entity.CompanyPartner{}).Error
		if err != nil {
			return err
		}

		if len(company.Partners) == 0 {
			return nil
		}
		for _, p := range company.Partners {
			p.ID = 0
			p.CompanyCNPJ = company.CNPJ
		}
		return tx.Create(&company.Partners).Error
	})
}

// DeleteExpired drops every cache row (partners included) cached before the
// given epoch millis and returns how many companies were removed.
func (r *DefaultCompanyRepository) DeleteExpired(before int64) (int64, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var expired []string
		err := tx.Model(&entity.Company{}).
			Where("cached_at < ?", before).
			Pluck("cnpj", &expired).Error
		if err != nil || len(expired) == 0 {
			return err
		}

		err = tx.Where("company_cnpj IN ?", expired).Delete(&entity.CompanyPartner{}).Error
		if err != nil {
			return err
		}

		res := tx.Where("cnpj IN ?", expired).Delete(&entity.Company{})
		removed = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
