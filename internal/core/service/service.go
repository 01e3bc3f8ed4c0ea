package service

import (
	"context"
	"errors"
	"time"

	"github.com/govalues/decimal"
	"github.com/valdes557/digitalmarket/internal/core/domain"
	"github.com/valdes557/digitalmarket/internal/core/port"
	"github.com/valdes557/digitalmarket/internal/core/utils"
	"go.uber.org/zap"
)

// Config is the marketplace configuration injected into the settlement
// engine and the entitlement ledger. It is passed explicitly, never read
// from ambient process state.
type Config struct {
	CommissionRate      decimal.Decimal
	MaxDownloadsDefault int32
	LinkTTL             time.Duration
	RedirectTTL         time.Duration
	MinWithdrawal       decimal.Decimal
	Currency            string
	PublicURL           string
}

type Service struct {
	repo        port.Repository
	tokens      port.TokenService
	dlTokens    port.DownloadTokenService
	gateway     port.PaymentGateway
	files       port.FileStore
	notifier    port.Notifier
	conf        Config
	ratePercent decimal.Decimal
	logger      *zap.Logger
}

func NewService(repo port.Repository, tokens port.TokenService, dlTokens port.DownloadTokenService,
	gateway port.PaymentGateway, files port.FileStore, notifier port.Notifier,
	conf Config, logger *zap.Logger) (*Service, error) {
	if conf.CommissionRate.Sign() < 0 || conf.CommissionRate.Cmp(decimal.One) >= 0 {
		return nil, domain.ErrLedgerInvariant
	}

	hundred, err := decimal.New(100, 0)
	if err != nil {
		return nil, err
	}
	ratePercent, err := conf.CommissionRate.Mul(hundred)
	if err != nil {
		return nil, err
	}

	return &Service{
		repo:        repo,
		tokens:      tokens,
		dlTokens:    dlTokens,
		gateway:     gateway,
		files:       files,
		notifier:    notifier,
		conf:        conf,
		ratePercent: ratePercent,
		logger:      logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if user.Role == "" {
		user.Role = domain.UserRoleCustomer
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}
