package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Nebur23/bizsense-ai/internal/domain"
)

// BusinessUseCase handles tenant onboarding.
type BusinessUseCase struct {
	txManager    TransactionManager
	businessRepo BusinessRepository
	userRepo     UserRepository
	idGen        IDGenerator
}

// NewBusinessUseCase creates a new BusinessUseCase.
func NewBusinessUseCase(
	txManager TransactionManager,
	businessRepo BusinessRepository,
	userRepo UserRepository,
	idGen IDGenerator,
) *BusinessUseCase {
	return &BusinessUseCase{
		txManager:    txManager,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		idGen:        idGen,
	}
}

// CreateBusinessInput represents onboarding input.
type CreateBusinessInput struct {
	Name string
	Type string
}

// CreateBusiness creates a business and links it to the calling user. Each
// user owns at most one business; the create and the user link commit
// together.
func (uc *BusinessUseCase) CreateBusiness(ctx context.Context, caller Identity, input CreateBusinessInput) (*domain.Business, error) {
	if caller.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	name := strings.TrimSpace(input.Name)
	businessType := strings.TrimSpace(input.Type)
	if name == "" || businessType == "" {
		return nil, domain.ErrInvalidBusiness
	}

	user, err := uc.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	if user.HasBusiness() {
		return nil, domain.ErrBusinessExists
	}

	now := time.Now().UTC()

	business := &domain.Business{
		ID:        uc.idGen.Generate(),
		Name:      name,
		Type:      businessType,
		CreatedAt: now,
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.businessRepo.Create(ctx, tx, business); err != nil {
		return nil, err
	}

	if err := uc.userRepo.SetBusiness(ctx, tx, user.ID, business.ID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return business, nil
}
