package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lingnite/user-service/internal/errors"
	"github.com/lingnite/user-service/pkg/constant"
)

// stubMailer records dispatches without touching a real SMTP server. The
// service sends on a goroutine, so delivery is signalled over a channel.
type stubMailer struct {
	sent chan string
	err  error
}

func newStubMailer() *stubMailer {
	return &stubMailer{sent: make(chan string, 8)}
}

func (m *stubMailer) SendVerificationCode(_ context.Context, to, code, purpose string) error {
	m.sent <- to + ":" + code + ":" + purpose
	return m.err
}

func setupVerification(t *testing.T) (*VerificationService, *miniredis.Miniredis, *stubMailer) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mailer := newStubMailer()

	return NewVerificationService(client, mailer), mr, mailer
}

func TestVerificationService_Send(t *testing.T) {
	svc, mr, mailer := setupVerification(t)
	ctx := context.Background()

	before := time.Now()
	resp, err := svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.GreaterOrEqual(t, resp.ExpireTime, before.Add(5*time.Minute).UnixMilli())

	// The code is stored under (email, purpose) with the fixed TTL.
	code, err := mr.Get("email_verification:alice@example.com:login")
	require.NoError(t, err)
	assert.Len(t, code, constant.VerificationCodeLength)

	// The cooldown entry exists alongside it.
	assert.True(t, mr.Exists("email_send_limit:alice@example.com:login"))

	select {
	case delivered := <-mailer.sent:
		assert.Equal(t, "alice@example.com:"+code+":login", delivered)
	case <-time.After(time.Second):
		t.Fatal("mail was never dispatched")
	}
}

func TestVerificationService_Send_Cooldown(t *testing.T) {
	svc, mr, _ := setupVerification(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)

	// Second send within the cooldown window must be rejected.
	_, err = svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	assert.Equal(t, apperrors.ErrRateLimitExceeded, err)

	// A different purpose has its own window.
	_, err = svc.Send(ctx, "alice@example.com", constant.PurposeResetPassword)
	require.NoError(t, err)

	// After the cooldown elapses the send goes through again.
	mr.FastForward(61 * time.Second)
	_, err = svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)
}

func TestVerificationService_Verify_SingleUse(t *testing.T) {
	svc, mr, _ := setupVerification(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)

	code, err := mr.Get("email_verification:alice@example.com:login")
	require.NoError(t, err)

	ok, err := svc.Verify(ctx, "alice@example.com", code, constant.PurposeLogin)
	require.NoError(t, err)
	assert.True(t, ok)

	// A correct code verifies exactly once.
	ok, err = svc.Verify(ctx, "alice@example.com", code, constant.PurposeLogin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerificationService_Verify_MismatchKeepsCode(t *testing.T) {
	svc, mr, _ := setupVerification(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)

	code, err := mr.Get("email_verification:alice@example.com:login")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	ok, err := svc.Verify(ctx, "alice@example.com", wrong, constant.PurposeLogin)
	require.NoError(t, err)
	assert.False(t, ok)

	// The stored code survives a mismatch so the caller may retry.
	ok, err = svc.Verify(ctx, "alice@example.com", code, constant.PurposeLogin)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerificationService_Verify_Expired(t *testing.T) {
	svc, mr, _ := setupVerification(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)

	code, err := mr.Get("email_verification:alice@example.com:login")
	require.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)

	ok, err := svc.Verify(ctx, "alice@example.com", code, constant.PurposeLogin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerificationService_Verify_NeverSent(t *testing.T) {
	svc, _, _ := setupVerification(t)

	ok, err := svc.Verify(context.Background(), "nobody@example.com", "123456", constant.PurposeLogin)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerificationService_Verify_PurposeScoped(t *testing.T) {
	svc, mr, _ := setupVerification(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)

	code, err := mr.Get("email_verification:alice@example.com:login")
	require.NoError(t, err)

	// A login code must not verify for another purpose.
	ok, err := svc.Verify(ctx, "alice@example.com", code, constant.PurposeResetPassword)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerificationService_Send_DispatchFailureIsAsync(t *testing.T) {
	svc, _, mailer := setupVerification(t)
	mailer.err = errors.New("smtp down")

	// Dispatch happens on a separate worker; a failure there is logged
	// and never reaches the original caller.
	_, err := svc.Send(context.Background(), "alice@example.com", constant.PurposeLogin)
	require.NoError(t, err)

	select {
	case <-mailer.sent:
	case <-time.After(time.Second):
		t.Fatal("mail dispatch never attempted")
	}
}

func TestVerificationService_Send_StoreFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewVerificationService(client, newStubMailer())

	mr.Close()

	_, err := svc.Send(context.Background(), "alice@example.com", constant.PurposeLogin)
	assert.Equal(t, apperrors.ErrVerificationSend, err)
}

func TestRandomNumericCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := randomNumericCode(constant.VerificationCodeLength)
		require.NoError(t, err)
		require.Len(t, code, constant.VerificationCodeLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
		seen[code] = true
	}
	// 20 draws from a million combinations should not all collide.
	assert.Greater(t, len(seen), 1)
}
