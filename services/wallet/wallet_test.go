// File: services/wallet/wallet_test.go
package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	userRepo "edspire/database/repository/user"
	"edspire/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeUserRepo is an in-memory UserRepository for wallet tests.
type fakeUserRepo struct {
	users          map[string]*models.User
	balanceWrites  map[string]float64
	creditedTokens map[string]float64
}

var _ userRepo.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:          make(map[string]*models.User),
		balanceWrites:  make(map[string]float64),
		creditedTokens: make(map[string]float64),
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) UpdateWalletBalance(id string, balance float64, _ time.Time) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	f.balanceWrites[id] = balance
	return nil
}

func (f *fakeUserRepo) IncrementTokenBalance(id string, delta float64) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	f.creditedTokens[id] += delta
	return nil
}

func (f *fakeUserRepo) SetTokenHash(id, tokenHash string) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.TokenHash = tokenHash
	return nil
}

// fakeChain returns a fixed balance and records the queried address.
type fakeChain struct {
	balance float64
	err     error
	queried string
}

func (f *fakeChain) GetBalance(_ context.Context, address string) (float64, error) {
	f.queried = address
	return f.balance, f.err
}

func TestSyncBalanceMatchingAddress(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u1", WalletAddress: "0xAbC123"})
	chain := &fakeChain{balance: 42.5}
	svc := &DefaultWalletService{Repo: repo, Chain: chain}

	result, err := svc.SyncBalance(context.Background(), "u1", "0xAbC123")
	require.NoError(t, err)
	assert.Equal(t, "0xAbC123", result.Address)
	assert.Equal(t, 42.5, result.Balance)
	assert.Equal(t, 42.5, repo.balanceWrites["u1"])
}

func TestSyncBalanceCaseInsensitiveMatch(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u1", WalletAddress: "0xABC123"})
	chain := &fakeChain{balance: 1}
	svc := &DefaultWalletService{Repo: repo, Chain: chain}

	_, err := svc.SyncBalance(context.Background(), "u1", "0xabc123")
	require.NoError(t, err)
	// The on-file spelling, not the claimed one, goes to the chain.
	assert.Equal(t, "0xABC123", chain.queried)
}

func TestSyncBalanceMismatchIsRejected(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u1", WalletAddress: "0xABC123"})
	chain := &fakeChain{balance: 99}
	svc := &DefaultWalletService{Repo: repo, Chain: chain}

	_, err := svc.SyncBalance(context.Background(), "u1", "0xDEF456")
	require.ErrorIs(t, err, ErrWalletMismatch)
	assert.Empty(t, chain.queried, "mismatch must not reach the chain")
	assert.Empty(t, repo.balanceWrites, "mismatch must not write a balance")
}

func TestSyncBalanceEmptyAddress(t *testing.T) {
	svc := &DefaultWalletService{Repo: newFakeUserRepo(), Chain: &fakeChain{}}

	_, err := svc.SyncBalance(context.Background(), "u1", "   ")
	require.ErrorIs(t, err, ErrMissingAddress)
}

func TestSyncBalanceNoWalletOnFile(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u1"})
	svc := &DefaultWalletService{Repo: repo, Chain: &fakeChain{}}

	_, err := svc.SyncBalance(context.Background(), "u1", "0xABC123")
	require.ErrorIs(t, err, ErrNoWalletOnFile)
}

func TestSyncBalanceChainFailure(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u1", WalletAddress: "0xABC123"})
	chain := &fakeChain{err: errors.New("rpc unreachable")}
	svc := &DefaultWalletService{Repo: repo, Chain: chain}

	_, err := svc.SyncBalance(context.Background(), "u1", "0xABC123")
	require.Error(t, err)
	assert.Empty(t, repo.balanceWrites, "fetch failure must not write a balance")
}

func TestCreditTokens(t *testing.T) {
	repo := newFakeUserRepo(&models.User{ID: "u1"})
	svc := &DefaultWalletService{Repo: repo}

	require.NoError(t, svc.CreditTokens(context.Background(), "u1", 10))
	require.NoError(t, svc.CreditTokens(context.Background(), "u1", 2.5))
	assert.Equal(t, 12.5, repo.creditedTokens["u1"])

	require.Error(t, svc.CreditTokens(context.Background(), "u1", 0))
	require.Error(t, svc.CreditTokens(context.Background(), "u1", -3))
}

func TestWeiHexToTokens(t *testing.T) {
	cases := []struct {
		hex  string
		want float64
	}{
		{"0x0", 0},
		{"0xde0b6b3a7640000", 1},   // 1e18 wei
		{"0x1bc16d674ec80000", 2},  // 2e18 wei
		{"0x6f05b59d3b20000", 0.5}, // 5e17 wei
	}
	for _, tc := range cases {
		got, err := weiHexToTokens(tc.hex)
		require.NoError(t, err, tc.hex)
		assert.InDelta(t, tc.want, got, 1e-9, tc.hex)
	}

	_, err := weiHexToTokens("not-hex")
	require.Error(t, err)
}
