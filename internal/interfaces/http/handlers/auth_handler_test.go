package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/pkg/jwt"
)

type authServiceStub struct {
	challengeFn func(ctx context.Context, walletAddr string) (string, error)
	verifyFn    func(ctx context.Context, walletAddr, signature string) (*jwt.TokenPair, error)
	refreshFn   func(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

func (s authServiceStub) Challenge(ctx context.Context, walletAddr string) (string, error) {
	return s.challengeFn(ctx, walletAddr)
}

func (s authServiceStub) Verify(ctx context.Context, walletAddr, signature string) (*jwt.TokenPair, error) {
	return s.verifyFn(ctx, walletAddr, signature)
}

func (s authServiceStub) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func TestAuthHandler_Challenge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing wallet", func(t *testing.T) {
		r := gin.New()
		h := NewAuthHandler(authServiceStub{})
		r.POST("/auth/challenge", h.Challenge)

		req := httptest.NewRequest(http.MethodPost, "/auth/challenge", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		h := NewAuthHandler(authServiceStub{
			challengeFn: func(_ context.Context, walletAddr string) (string, error) {
				if walletAddr != testWalletAlice {
					t.Fatalf("unexpected wallet: %s", walletAddr)
				}
				return "eventlink sign-in\nnonce: abc", nil
			},
		})
		r.POST("/auth/challenge", h.Challenge)

		body := `{"wallet":"` + testWalletAlice + `"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/challenge", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("nonce: abc")) {
			t.Fatalf("expected challenge message in body=%s", w.Body.String())
		}
	})
}

func TestAuthHandler_Verify(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad signature", func(t *testing.T) {
		r := gin.New()
		h := NewAuthHandler(authServiceStub{
			verifyFn: func(context.Context, string, string) (*jwt.TokenPair, error) {
				return nil, domainerrors.Unauthorized("signature verification failed")
			},
		})
		r.POST("/auth/verify", h.Verify)

		body := `{"wallet":"` + testWalletAlice + `","signature":"0xdead"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		h := NewAuthHandler(authServiceStub{
			verifyFn: func(_ context.Context, walletAddr, signature string) (*jwt.TokenPair, error) {
				return &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
			},
		})
		r.POST("/auth/verify", h.Verify)

		body := `{"wallet":"` + testWalletAlice + `","signature":"0xsig"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"accessToken":"access"`)) {
			t.Fatalf("expected token pair in body=%s", w.Body.String())
		}
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		r := gin.New()
		h := NewAuthHandler(authServiceStub{})
		r.POST("/auth/refresh", h.Refresh)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r := gin.New()
		h := NewAuthHandler(authServiceStub{
			refreshFn: func(_ context.Context, refreshToken string) (*jwt.TokenPair, error) {
				if refreshToken != "refresh-1" {
					t.Fatalf("unexpected token: %s", refreshToken)
				}
				return &jwt.TokenPair{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil
			},
		})
		r.POST("/auth/refresh", h.Refresh)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewBufferString(`{"refreshToken":"refresh-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte("access-2")) {
			t.Fatalf("expected new pair in body=%s", w.Body.String())
		}
	})
}
