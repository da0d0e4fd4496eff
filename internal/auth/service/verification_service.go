package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lingnite/user-service/internal/auth/domain"
	"github.com/lingnite/user-service/internal/auth/dto"
	apperrors "github.com/lingnite/user-service/internal/errors"
	"github.com/lingnite/user-service/pkg/constant"
)

const (
	verificationCodePrefix = "email_verification:"
	sendLimitPrefix        = "email_send_limit:"

	codeExpiry      = 5 * time.Minute
	sendLimitExpiry = 60 * time.Second
)

// VerificationService issues and checks one-time email codes. Codes live in
// Redis under (email, purpose) with a fixed TTL; a sibling send-limit entry
// enforces a hard cooldown between sends. All store access is single
// round-trip set/get/delete, so no client-side locking is needed.
type VerificationService struct {
	rdb    redis.UniversalClient
	mailer domain.Mailer
}

func NewVerificationService(rdb redis.UniversalClient, mailer domain.Mailer) *VerificationService {
	return &VerificationService{rdb: rdb, mailer: mailer}
}

// Send generates a code for (email, purpose), dispatches it and stores it.
// The mail transmission itself runs on a separate goroutine; Send returns as
// soon as the code is stored.
func (s *VerificationService) Send(ctx context.Context, email, purpose string) (*dto.VerificationEmailResponse, error) {
	limitKey := sendLimitKey(email, purpose)

	// Presence of the limit entry is the signal, not its value.
	if _, err := s.rdb.Get(ctx, limitKey).Result(); err == nil {
		return nil, apperrors.ErrRateLimitExceeded
	} else if err != redis.Nil {
		return nil, apperrors.ErrVerificationSend
	}

	code, err := randomNumericCode(constant.VerificationCodeLength)
	if err != nil {
		return nil, apperrors.ErrVerificationSend
	}

	go func() {
		if err := s.mailer.SendVerificationCode(context.Background(), email, code, purpose); err != nil {
			log.Printf("warn: verification mail dispatch failed for %s (%s): %v", email, purpose, err)
		}
	}()

	if err := s.rdb.Set(ctx, verificationKey(email, purpose), code, codeExpiry).Err(); err != nil {
		return nil, apperrors.ErrVerificationSend
	}

	if err := s.rdb.Set(ctx, limitKey, time.Now().UnixMilli(), sendLimitExpiry).Err(); err != nil {
		return nil, apperrors.ErrVerificationSend
	}

	log.Printf("verification code sent: email=%s purpose=%s", email, purpose)

	return &dto.VerificationEmailResponse{
		Email:      email,
		ExpireTime: time.Now().Add(codeExpiry).UnixMilli(),
	}, nil
}

// Verify checks the supplied code. A match consumes the stored code; a
// mismatch leaves it intact so the caller may retry within the TTL.
func (s *VerificationService) Verify(ctx context.Context, email, code, purpose string) (bool, error) {
	key := verificationKey(email, purpose)

	stored, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		// Covers both "never sent" and "expired".
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if len(stored) != len(code) || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		log.Printf("warn: verification code mismatch: email=%s purpose=%s", email, purpose)
		return false, nil
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return false, err
	}

	return true, nil
}

func verificationKey(email, purpose string) string {
	return verificationCodePrefix + email + ":" + purpose
}

func sendLimitKey(email, purpose string) string {
	return sendLimitPrefix + email + ":" + purpose
}

func randomNumericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
