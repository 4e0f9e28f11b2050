package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/samuel46u5/playstation-billing/internal/config"
	"github.com/samuel46u5/playstation-billing/internal/domain"
	customError "github.com/samuel46u5/playstation-billing/pkg/errors"
	"github.com/samuel46u5/playstation-billing/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// CodeSender delivers a verification code to a phone number over an
// external channel (SMS gateway, WhatsApp).
type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
}

// LogCodeSender writes codes to the process log. Development only.
type LogCodeSender struct{}

func (LogCodeSender) Send(_ context.Context, phone, code string) error {
	log.Printf("verification code for %s: %s", phone, code)
	return nil
}

// VerificationService drives the phone verification flow. The code lives in
// Redis under a TTL; that TTL is both the code's lifetime and the resend
// countdown, so a resend is only possible once the previous code expired.
type VerificationService struct {
	redis  *redis.Client
	sender CodeSender
	config *config.Config
}

func NewVerificationService(redis *redis.Client, sender CodeSender, config *config.Config) *VerificationService {
	return &VerificationService{
		redis:  redis,
		sender: sender,
		config: config,
	}
}

func codeKey(phone string) string {
	return fmt.Sprintf("verification:code:%s", phone)
}

func verifiedKey(phone string) string {
	return fmt.Sprintf("verification:verified:%s", phone)
}

// SendCode generates a fresh code for the phone and hands it to the sender.
// While a previous code is still live the request is rejected with the
// remaining countdown.
func (s *VerificationService) SendCode(ctx context.Context, phone string) (*domain.SendCodeResponse, error) {
	ttl, err := s.redis.TTL(ctx, codeKey(phone)).Result()
	if err != nil {
		return nil, customError.WrapCacheError(err)
	}
	if ttl > 0 {
		return nil, customError.WrapVerificationResendEarly(phone, int(ttl.Seconds()))
	}

	code, err := utils.GenerateVerificationCode(s.config.Business.VerificationCodeLength)
	if err != nil {
		return nil, err
	}

	codeTTL := s.config.GetVerificationCodeTTL()
	if err = s.redis.Set(ctx, codeKey(phone), code, codeTTL).Err(); err != nil {
		return nil, customError.WrapCacheError(err)
	}

	if err = s.sender.Send(ctx, phone, code); err != nil {
		// Do not leave an undeliverable code blocking the resend window.
		s.redis.Del(ctx, codeKey(phone))
		return nil, err
	}

	return &domain.SendCodeResponse{
		Phone:            phone,
		ExpiresInSeconds: int(codeTTL.Seconds()),
	}, nil
}

// VerifyCode checks the submitted code. On a match the code is consumed and
// the phone is flagged verified; on a mismatch the code stays live so the
// customer can retype it.
func (s *VerificationService) VerifyCode(ctx context.Context, phone, code string) (*domain.VerifyCodeResponse, error) {
	stored, err := s.redis.Get(ctx, codeKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, customError.WrapVerificationExpired(phone)
		}
		return nil, customError.WrapCacheError(err)
	}

	if stored != code {
		return nil, customError.WrapVerificationMismatch(phone)
	}

	s.redis.Del(ctx, codeKey(phone))
	if err = s.redis.Set(ctx, verifiedKey(phone), "1", 0).Err(); err != nil {
		return nil, customError.WrapCacheError(err)
	}

	return &domain.VerifyCodeResponse{
		Phone:    phone,
		Verified: true,
	}, nil
}

// Reset drops any pending code and verified flag for the phone. Called when
// the customer edits the number, which sends the flow back to input.
func (s *VerificationService) Reset(ctx context.Context, phone string) error {
	if err := s.redis.Del(ctx, codeKey(phone), verifiedKey(phone)).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}

// IsVerified reports whether the phone completed the flow.
func (s *VerificationService) IsVerified(ctx context.Context, phone string) (bool, error) {
	n, err := s.redis.Exists(ctx, verifiedKey(phone)).Result()
	if err != nil {
		return false, customError.WrapCacheError(err)
	}
	return n > 0, nil
}
