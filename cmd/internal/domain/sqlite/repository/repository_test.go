package repository

import (
	"testing"

	"conesites/cmd/internal/domain/entity"
	"conesites/cmd/internal/domain/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestCompanyRepository_MissReturnsNil(t *testing.T) {
	repo := NewCompanyRepository(openDB(t))

	company, err := repo.FindByCNPJ("11222333000181")
	require.NoError(t, err)
	assert.Nil(t, company)
}

func TestCompanyRepository_SaveAndFindWithPartners(t *testing.T) {
	repo := NewCompanyRepository(openDB(t))

	err := repo.Save(&entity.Company{
		CNPJ:      "11222333000181",
		LegalName: "TORRES DO BRASIL LTDA",
		RegStatus: entity.RegStatusActive,
		Found:     true,
		CachedAt:  1000,
		Partners: []*entity.CompanyPartner{
			{Name: "MARIA SILVA", Role: "Sócio-Administrador"},
			{Name: "JOAO SOUZA", Role: "Sócio"},
		},
	})
	require.NoError(t, err)

	company, err := repo.FindByCNPJ("11222333000181")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "TORRES DO BRASIL LTDA", company.LegalName)
	assert.True(t, company.Found)
	require.Len(t, company.Partners, 2)
	assert.Equal(t, "11222333000181", company.Partners[0].CompanyCNPJ)
}

func TestCompanyRepository_SaveReplacesPartners(t *testing.T) {
	repo := NewCompanyRepository(openDB(t))

	company := &entity.Company{
		CNPJ:     "11222333000181",
		Found:    true,
		CachedAt: 1000,
		Partners: []*entity.CompanyPartner{{Name: "MARIA SILVA"}},
	}
	require.NoError(t, repo.Save(company))

	company.CachedAt = 2000
	company.Partners = []*entity.CompanyPartner{{Name: "JOAO SOUZA"}}
	require.NoError(t, repo.Save(company))

	found, err := repo.FindByCNPJ("11222333000181")
	require.NoError(t, err)
	require.Len(t, found.Partners, 1)
	assert.Equal(t, "JOAO SOUZA", found.Partners[0].Name)
	assert.Equal(t, int64(2000), found.CachedAt)
}

func TestCompanyRepository_NegativeEntry(t *testing.T) {
	repo := NewCompanyRepository(openDB(t))

	require.NoError(t, repo.Save(&entity.Company{CNPJ: "11444777000161", Found: false, CachedAt: 1000}))

	company, err := repo.FindByCNPJ("11444777000161")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.False(t, company.Found)
}

func TestCompanyRepository_DeleteExpired(t *testing.T) {
	repo := NewCompanyRepository(openDB(t))

	require.NoError(t, repo.Save(&entity.Company{
		CNPJ:     "11222333000181",
		Found:    true,
		CachedAt: 1000,
		Partners: []*entity.CompanyPartner{{Name: "MARIA SILVA"}},
	}))
	require.NoError(t, repo.Save(&entity.Company{CNPJ: "11444777000161", Found: true, CachedAt: 5000}))

	removed, err := repo.DeleteExpired(2000)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	old, err := repo.FindByCNPJ("11222333000181")
	require.NoError(t, err)
	assert.Nil(t, old)

	fresh, err := repo.FindByCNPJ("11444777000161")
	require.NoError(t, err)
	assert.NotNil(t, fresh)

	var partners int64
	require.NoError(t, repo.db.Model(&entity.CompanyPartner{}).Count(&partners).Error)
	assert.Zero(t, partners)
}

func TestConnectionRepository_Lifecycle(t *testing.T) {
	repo := NewConnectionRepository(openDB(t))

	require.NoError(t, repo.Save(&entity.Connection{ConnectionID: "a", LastHeartbeatAt: 100, CreatedAt: 100}))
	require.NoError(t, repo.Save(&entity.Connection{ConnectionID: "b", LastHeartbeatAt: 200, CreatedAt: 200}))

	ids, err := repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	ok, err := repo.UpdateHeartbeat("a", 500)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateHeartbeat("missing", 500)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Delete("b"))
	ids, err = repo.FindAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestConnectionRepository_FindStale(t *testing.T) {
	repo := NewConnectionRepository(openDB(t))

	require.NoError(t, repo.Save(&entity.Connection{ConnectionID: "old", LastHeartbeatAt: 1000, CreatedAt: 1000}))
	require.NoError(t, repo.Save(&entity.Connection{ConnectionID: "fresh", LastHeartbeatAt: 9000, CreatedAt: 1000}))

	stale, err := repo.FindStale(10_000, 5000)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "old", stale[0].ConnectionID)
}
