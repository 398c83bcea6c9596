package raffle

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GuildRaffle_Go/internal/allocator"
	"github.com/osse101/GuildRaffle_Go/internal/domain"
)

// MockSource
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Requests(ctx context.Context) (domain.RequestSet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RequestSet), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) Load(ctx context.Context) ([]domain.WinningRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WinningRow), args.Error(1)
}

func (m *MockLedgerRepo) Replace(ctx context.Context, rows []domain.WinningRow) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

// MockAllocationRepo
type MockAllocationRepo struct {
	mock.Mock
}

func (m *MockAllocationRepo) Save(ctx context.Context, records []domain.AllocationRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// MockAllocator
type MockAllocator struct {
	mock.Mock
}

func (m *MockAllocator) Distribute(ctx context.Context, categories []domain.Category, requests domain.RequestSet, ledger allocator.Ledger) ([]domain.AllocationRecord, error) {
	args := m.Called(ctx, categories, requests, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AllocationRecord), args.Error(1)
}
