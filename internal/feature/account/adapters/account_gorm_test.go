package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/feature/account/domain/entity"
	"dividend_backend/internal/feature/account/usecase"
	dividendentity "dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/platform/db/dbtest"
)

func TestAccountRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(dbtest.New(t))

	require.NoError(t, repo.Create(ctx, &entity.Account{UserID: 1, Name: "Zeta"}))
	require.NoError(t, repo.Create(ctx, &entity.Account{UserID: 1, Name: "Alpha"}))
	require.NoError(t, repo.Create(ctx, &entity.Account{UserID: 2, Name: "Alpha"}))

	err := repo.Create(ctx, &entity.Account{UserID: 1, Name: "Alpha"})
	assert.ErrorIs(t, err, usecase.ErrAccountAlreadyExists)

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "Zeta", list[1].Name)
}

func TestAccountRepository_FindAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(dbtest.New(t))

	a := &entity.Account{UserID: 1, Name: "Broker"}
	require.NoError(t, repo.Create(ctx, a))

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Broker", found.Name)

	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, usecase.ErrAccountNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), usecase.ErrAccountNotFound)
}

func TestAccountRepository_HasDividends(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.New(t)
	repo := NewAccountRepository(gdb)

	a := &entity.Account{UserID: 1, Name: "Broker"}
	require.NoError(t, repo.Create(ctx, a))

	inUse, err := repo.HasDividends(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, inUse)

	require.NoError(t, gdb.Create(&dividendentity.Dividend{
		UserID: 1, CompanyID: 1, AccountID: a.ID, CurrencyID: 1,
		ReceivedOn: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Payoff:     decimal.NewFromInt(10),
	}).Error)

	inUse, err = repo.HasDividends(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, inUse)
}
