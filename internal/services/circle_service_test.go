package services

import (
	"context"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
	"github.com/0xgeorgemathew/splithub-sub001/internal/mocks"
)

func TestSplitShares(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		members   int
		wantShare int64
	}{
		{name: "even split", total: 90_000_000, members: 2, wantShare: 30_000_000},
		{name: "hundred across three members", total: 100, members: 3, wantShare: 25},
		{name: "ten across three members", total: 10, members: 3, wantShare: 2},
		{name: "remainder stays with payer", total: 100, members: 2, wantShare: 33},
		{name: "share rounds to zero", total: 2, members: 4, wantShare: 0},
		{name: "single member", total: 7, members: 1, wantShare: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := splitShares(big.NewInt(tt.total), tt.members)
			assert.Equal(t, tt.wantShare, share.Int64())

			// Every participant, the payer included, owes the same share.
			// Whatever the even shares leave over is smaller than the party
			// count and is never redistributed.
			distributed := new(big.Int).Mul(share, big.NewInt(int64(tt.members+1)))
			remainder := new(big.Int).Sub(big.NewInt(tt.total), distributed)
			assert.True(t, remainder.Sign() >= 0)
			assert.True(t, remainder.Cmp(big.NewInt(int64(tt.members+1))) < 0)
		})
	}
}

func TestRecordExpensePayerRowCarriesEqualShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)

	expenseID := uuid.New()
	members := []string{"0xmember1", "0xmember2", "0xmember3"}
	params := SplitParams{Amount: "10", Memo: "Dinner"}
	share := splitShares(big.NewInt(10), len(members))

	queries.EXPECT().
		CreateExpense(gomock.Any(), gomock.Any()).
		Return(db.Expense{ID: expenseID, TotalAmount: "10"}, nil)
	// The payer's row records the same equal share as everyone else; the
	// division remainder is never written anywhere.
	queries.EXPECT().
		CreateExpenseParticipant(gomock.Any(), db.CreateExpenseParticipantParams{
			ExpenseID:     expenseID,
			WalletAddress: "0xpayer",
			ShareAmount:   "2",
			IsCreator:     true,
		}).
		Return(db.ExpenseParticipant{}, nil)
	for _, member := range members {
		queries.EXPECT().
			CreateExpenseParticipant(gomock.Any(), db.CreateExpenseParticipantParams{
				ExpenseID:     expenseID,
				WalletAddress: member,
				ShareAmount:   "2",
				IsCreator:     false,
			}).
			Return(db.ExpenseParticipant{}, nil)
	}

	expense, err := recordExpense(context.Background(), queries, "0xpayer", members, params, share)
	require.NoError(t, err)
	assert.Equal(t, expenseID, expense.ID)
}

func TestDedupeWallets(t *testing.T) {
	got := dedupeWallets([]string{
		"0xAAAA000000000000000000000000000000000001",
		"0xaaaa000000000000000000000000000000000001",
		" 0xBBBB000000000000000000000000000000000002 ",
		"0xCCCC000000000000000000000000000000000003",
		"",
	}, "0xcccc000000000000000000000000000000000003")

	assert.Equal(t, []string{
		"0xaaaa000000000000000000000000000000000001",
		"0xbbbb000000000000000000000000000000000002",
	}, got)
}

func TestApplySplitNoActiveCircle(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	svc := NewCircleService(nil, queries, nil, zap.NewNop())

	queries.EXPECT().
		GetActiveCircleByCreator(gomock.Any(), "0xpayer").
		Return(db.Circle{}, pgx.ErrNoRows)

	result, err := svc.ApplySplit(context.Background(), SplitParams{
		PayerWallet: "0xPAYER",
		Amount:      "90000000",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestApplySplitOnlyPayerInCircle(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	svc := NewCircleService(nil, queries, nil, zap.NewNop())

	circleID := uuid.New()
	queries.EXPECT().
		GetActiveCircleByCreator(gomock.Any(), "0xpayer").
		Return(db.Circle{ID: circleID, CreatorWallet: "0xpayer"}, nil)
	queries.EXPECT().
		ListCircleMembers(gomock.Any(), circleID).
		Return([]db.CircleMember{{CircleID: circleID, MemberWallet: "0xpayer"}}, nil)

	result, err := svc.ApplySplit(context.Background(), SplitParams{
		PayerWallet: "0xPayer",
		Amount:      "90000000",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestApplySplitShareRoundsToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	svc := NewCircleService(nil, queries, nil, zap.NewNop())

	circleID := uuid.New()
	queries.EXPECT().
		GetActiveCircleByCreator(gomock.Any(), "0xpayer").
		Return(db.Circle{ID: circleID, CreatorWallet: "0xpayer"}, nil)
	queries.EXPECT().
		ListCircleMembers(gomock.Any(), circleID).
		Return([]db.CircleMember{
			{CircleID: circleID, MemberWallet: "0xmember1"},
			{CircleID: circleID, MemberWallet: "0xmember2"},
		}, nil)

	result, err := svc.ApplySplit(context.Background(), SplitParams{
		PayerWallet: "0xpayer",
		Amount:      "2",
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestApplySplitRejectsBadAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	svc := NewCircleService(nil, queries, nil, zap.NewNop())

	circleID := uuid.New()
	queries.EXPECT().
		GetActiveCircleByCreator(gomock.Any(), "0xpayer").
		Return(db.Circle{ID: circleID, CreatorWallet: "0xpayer"}, nil)
	queries.EXPECT().
		ListCircleMembers(gomock.Any(), circleID).
		Return([]db.CircleMember{{CircleID: circleID, MemberWallet: "0xmember1"}}, nil)

	_, err := svc.ApplySplit(context.Background(), SplitParams{
		PayerWallet: "0xpayer",
		Amount:      "not-a-number",
	})
	assert.Error(t, err)
}

func TestAddMemberRejectsCreator(t *testing.T) {
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	svc := NewCircleService(nil, queries, nil, zap.NewNop())

	circleID := uuid.New()
	queries.EXPECT().
		GetCircle(gomock.Any(), circleID).
		Return(db.Circle{ID: circleID, CreatorWallet: "0xcreator"}, nil)

	_, err := svc.AddMember(context.Background(), circleID, "0xCREATOR")
	assert.Error(t, err)
}
