package services

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
	"github.com/0xgeorgemathew/splithub-sub001/internal/helpers"
)

// CircleService manages split circles and applies the auto-split after a
// payer's on-chain payment confirms. A wallet has at most one active circle;
// creating a new one retires the old.
type CircleService struct {
	pool     *pgxpool.Pool
	queries  db.Querier
	requests *PaymentRequestService
	logger   *zap.Logger
}

func NewCircleService(pool *pgxpool.Pool, queries db.Querier, requests *PaymentRequestService, logger *zap.Logger) *CircleService {
	return &CircleService{
		pool:     pool,
		queries:  queries,
		requests: requests,
		logger:   logger,
	}
}

// CircleWithMembers bundles a circle row with its member wallets.
type CircleWithMembers struct {
	Circle  db.Circle
	Members []string
}

// CreateCircle activates a new circle for the creator, retiring any previous
// active circle in the same transaction. The creator is implicitly part of
// every circle and is never stored as a member row.
func (s *CircleService) CreateCircle(ctx context.Context, name, creatorWallet string, memberWallets []string) (*CircleWithMembers, error) {
	creator := strings.ToLower(creatorWallet)
	members := dedupeWallets(memberWallets, creator)
	if len(members) == 0 {
		return nil, fmt.Errorf("a circle needs at least one member besides its creator")
	}

	var result CircleWithMembers
	err := helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		qtx := db.New(tx)
		if err := qtx.DeactivateCirclesForCreator(ctx, creator); err != nil {
			return fmt.Errorf("failed to retire previous circle: %w", err)
		}
		circle, err := qtx.CreateCircle(ctx, db.CreateCircleParams{
			Name:          name,
			CreatorWallet: creator,
		})
		if err != nil {
			return fmt.Errorf("failed to create circle: %w", err)
		}
		for _, member := range members {
			if _, err := qtx.AddCircleMember(ctx, db.AddCircleMemberParams{
				CircleID:     circle.ID,
				MemberWallet: member,
			}); err != nil {
				return fmt.Errorf("failed to add circle member %s: %w", member, err)
			}
		}
		result = CircleWithMembers{Circle: circle, Members: members}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Circle created",
		zap.String("circle_id", result.Circle.ID.String()),
		zap.String("creator_wallet", creator),
		zap.Int("members", len(members)),
	)
	return &result, nil
}

// GetActiveCircle returns the creator's active circle with members, or
// pgx.ErrNoRows if none is active.
func (s *CircleService) GetActiveCircle(ctx context.Context, creatorWallet string) (*CircleWithMembers, error) {
	circle, err := s.queries.GetActiveCircleByCreator(ctx, strings.ToLower(creatorWallet))
	if err != nil {
		return nil, err
	}
	members, err := s.queries.ListCircleMembers(ctx, circle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circle members: %w", err)
	}
	wallets := make([]string, 0, len(members))
	for _, m := range members {
		wallets = append(wallets, m.MemberWallet)
	}
	return &CircleWithMembers{Circle: circle, Members: wallets}, nil
}

// GetCircle returns a circle with its members, or pgx.ErrNoRows when the id
// is unknown.
func (s *CircleService) GetCircle(ctx context.Context, circleID uuid.UUID) (*CircleWithMembers, error) {
	circle, err := s.queries.GetCircle(ctx, circleID)
	if err != nil {
		return nil, err
	}
	members, err := s.queries.ListCircleMembers(ctx, circle.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list circle members: %w", err)
	}
	wallets := make([]string, 0, len(members))
	for _, m := range members {
		wallets = append(wallets, m.MemberWallet)
	}
	return &CircleWithMembers{Circle: circle, Members: wallets}, nil
}

// ExpenseWithParticipants is an expense row together with its share
// breakdown.
type ExpenseWithParticipants struct {
	Expense      db.Expense
	Participants []db.ExpenseParticipant
}

// GetExpense returns a split expense with every participant's share, or
// pgx.ErrNoRows when the id is unknown.
func (s *CircleService) GetExpense(ctx context.Context, expenseID uuid.UUID) (*ExpenseWithParticipants, error) {
	expense, err := s.queries.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	participants, err := s.queries.ListExpenseParticipants(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense participants: %w", err)
	}
	return &ExpenseWithParticipants{Expense: expense, Participants: participants}, nil
}

// Deactivate retires a circle so future payments stop splitting.
func (s *CircleService) Deactivate(ctx context.Context, circleID uuid.UUID) (db.Circle, error) {
	circle, err := s.queries.DeactivateCircle(ctx, circleID)
	if err != nil {
		return db.Circle{}, fmt.Errorf("failed to deactivate circle: %w", err)
	}
	s.logger.Info("Circle deactivated", zap.String("circle_id", circleID.String()))
	return circle, nil
}

// AddMember adds a wallet to an existing circle. Adding the creator or an
// existing member is a no-op upsert.
func (s *CircleService) AddMember(ctx context.Context, circleID uuid.UUID, memberWallet string) (db.CircleMember, error) {
	circle, err := s.queries.GetCircle(ctx, circleID)
	if err != nil {
		return db.CircleMember{}, err
	}
	wallet := strings.ToLower(memberWallet)
	if wallet == circle.CreatorWallet {
		return db.CircleMember{}, fmt.Errorf("circle creator is already part of the circle")
	}
	member, err := s.queries.AddCircleMember(ctx, db.AddCircleMemberParams{
		CircleID:     circleID,
		MemberWallet: wallet,
	})
	if err != nil {
		return db.CircleMember{}, fmt.Errorf("failed to add circle member: %w", err)
	}
	return member, nil
}

// RemoveMember drops a wallet from a circle.
func (s *CircleService) RemoveMember(ctx context.Context, circleID uuid.UUID, memberWallet string) error {
	if err := s.queries.RemoveCircleMember(ctx, db.RemoveCircleMemberParams{
		CircleID:     circleID,
		MemberWallet: strings.ToLower(memberWallet),
	}); err != nil {
		return fmt.Errorf("failed to remove circle member: %w", err)
	}
	return nil
}

// SplitParams describes a confirmed payment to split across the payer's
// circle. Amount is a base-unit token amount string. CreateRequests is true
// for person-to-person payments and false for credit purchases, which record
// the expense but never bill circle members.
type SplitParams struct {
	PayerWallet    string
	TokenAddress   string
	Amount         string
	Memo           string
	CreateRequests bool
}

// SplitResult reports what the split produced.
type SplitResult struct {
	ExpenseID       uuid.UUID
	ShareAmount     string
	Members         []string
	MembersNotified int
}

// ApplySplit divides a confirmed payment equally across the payer's active
// circle. Each of the N members plus the payer owes floor(total/(N+1)); the
// division remainder stays with the payer. Returns nil with no error when the
// payer has no active circle or the share rounds to zero.
func (s *CircleService) ApplySplit(ctx context.Context, params SplitParams) (*SplitResult, error) {
	payer := strings.ToLower(params.PayerWallet)

	circle, err := s.GetActiveCircle(ctx, payer)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load active circle: %w", err)
	}

	members := dedupeWallets(circle.Members, payer)
	if len(members) == 0 {
		return nil, nil
	}

	total, ok := new(big.Int).SetString(params.Amount, 10)
	if !ok || total.Sign() <= 0 {
		return nil, fmt.Errorf("invalid split amount %q", params.Amount)
	}

	share := splitShares(total, len(members))
	if share.Sign() == 0 {
		s.logger.Info("Skipping split: share rounds to zero",
			zap.String("payer_wallet", payer),
			zap.String("amount", params.Amount),
			zap.Int("members", len(members)),
		)
		return nil, nil
	}

	var expense db.Expense
	err = helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		expense, err = recordExpense(ctx, db.New(tx), payer, members, params, share)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &SplitResult{
		ExpenseID:   expense.ID,
		ShareAmount: share.String(),
		Members:     members,
	}

	if params.CreateRequests {
		for _, member := range members {
			_, err := s.requests.Create(ctx, CreatePaymentRequestParams{
				PayerWallet:     member,
				RecipientWallet: payer,
				TokenAddress:    params.TokenAddress,
				Amount:          share.String(),
				Memo:            params.Memo,
				ExpenseID:       uuid.NullUUID{UUID: expense.ID, Valid: true},
			})
			if err != nil {
				s.logger.Warn("Failed to create split payment request",
					zap.String("expense_id", expense.ID.String()),
					zap.String("member_wallet", member),
					zap.Error(err),
				)
				continue
			}
			result.MembersNotified++
		}
	}

	s.logger.Info("Payment split across circle",
		zap.String("expense_id", expense.ID.String()),
		zap.String("payer_wallet", payer),
		zap.String("share_amount", share.String()),
		zap.Int("members", len(members)),
		zap.Int("members_notified", result.MembersNotified),
	)
	return result, nil
}

// recordExpense writes the expense row and one participant row per member
// plus the payer, every row at the same equal share.
func recordExpense(ctx context.Context, q db.Querier, payer string, members []string, params SplitParams, share *big.Int) (db.Expense, error) {
	expense, err := q.CreateExpense(ctx, db.CreateExpenseParams{
		CreatorWallet: payer,
		Description:   params.Memo,
		TotalAmount:   params.Amount,
		TokenAddress:  params.TokenAddress,
		Status:        db.ExpenseStatusActive,
	})
	if err != nil {
		return db.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	if _, err := q.CreateExpenseParticipant(ctx, db.CreateExpenseParticipantParams{
		ExpenseID:     expense.ID,
		WalletAddress: payer,
		ShareAmount:   share.String(),
		IsCreator:     true,
	}); err != nil {
		return db.Expense{}, fmt.Errorf("failed to record payer share: %w", err)
	}
	for _, member := range members {
		if _, err := q.CreateExpenseParticipant(ctx, db.CreateExpenseParticipantParams{
			ExpenseID:     expense.ID,
			WalletAddress: member,
			ShareAmount:   share.String(),
			IsCreator:     false,
		}); err != nil {
			return db.Expense{}, fmt.Errorf("failed to record member share: %w", err)
		}
	}
	return expense, nil
}

// splitShares computes the equal share for a total divided across memberCount
// members plus the payer. Floor division; every participant row, the payer's
// included, records this same share, and the remainder stays with the payer
// without being persisted anywhere.
func splitShares(total *big.Int, memberCount int) *big.Int {
	return new(big.Int).Quo(total, big.NewInt(int64(memberCount+1)))
}

// dedupeWallets lowercases, dedupes, and drops the excluded wallet.
func dedupeWallets(wallets []string, exclude string) []string {
	seen := make(map[string]struct{}, len(wallets))
	out := make([]string, 0, len(wallets))
	for _, w := range wallets {
		wallet := strings.ToLower(strings.TrimSpace(w))
		if wallet == "" || wallet == exclude {
			continue
		}
		if _, dup := seen[wallet]; dup {
			continue
		}
		seen[wallet] = struct{}{}
		out = append(out, wallet)
	}
	return out
}
