// Code generated manually for testing. Update as needed.

package mocks

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/heliost/cli/pkg/pumpfun"
	"github.com/stretchr/testify/mock"
)

// MetadataPublisher is a mock implementation of deploy.MetadataPublisher
type MetadataPublisher struct {
	mock.Mock
}

func (m *MetadataPublisher) Publish(ctx context.Context, req pumpfun.MetadataRequest) (*pumpfun.TokenMetadata, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pumpfun.TokenMetadata), args.Error(1)
}

// TransactionRelay is a mock implementation of deploy.TransactionRelay
type TransactionRelay struct {
	mock.Mock
}

func (m *TransactionRelay) BuildCreate(ctx context.Context, req pumpfun.CreateRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Broadcaster is a mock implementation of deploy.Broadcaster
type Broadcaster struct {
	mock.Mock
}

func (m *Broadcaster) Send(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(solana.Signature), args.Error(1)
}
