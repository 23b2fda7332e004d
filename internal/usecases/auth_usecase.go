package usecases

import (
	"context"
	"fmt"

	domainerrors "eventlink.backend/internal/domain/errors"
	"eventlink.backend/pkg/crypto"
	"eventlink.backend/pkg/jwt"
	"eventlink.backend/pkg/redis"
	"eventlink.backend/pkg/wallet"
)

// nonceBytes is the entropy of a sign-in nonce
const nonceBytes = 16

// AuthUsecase handles wallet sign-in: nonce challenge, signature
// verification, and JWT session minting
type AuthUsecase struct {
	nonceStore *redis.NonceStore
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(nonceStore *redis.NonceStore, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{nonceStore: nonceStore, jwtService: jwtService}
}

// SignInMessage is the exact text a wallet must sign for a given nonce
func SignInMessage(nonce string) string {
	return fmt.Sprintf("eventlink sign-in\nnonce: %s", nonce)
}

// Challenge issues a single-use nonce for a wallet
func (u *AuthUsecase) Challenge(ctx context.Context, walletAddr string) (message string, err error) {
	addr, ok := wallet.NormalizeValid(walletAddr)
	if !ok {
		return "", domainerrors.BadRequest("invalid wallet address")
	}

	nonce, err := crypto.GenerateRandomToken(nonceBytes)
	if err != nil {
		return "", err
	}

	if err := u.nonceStore.Save(ctx, addr, nonce); err != nil {
		return "", err
	}

	return SignInMessage(nonce), nil
}

// Verify checks the signature over the challenge message and mints a token
// pair. The nonce is consumed either way, so a failed attempt cannot be
// replayed.
func (u *AuthUsecase) Verify(ctx context.Context, walletAddr, signature string) (*jwt.TokenPair, error) {
	addr, ok := wallet.NormalizeValid(walletAddr)
	if !ok {
		return nil, domainerrors.BadRequest("invalid wallet address")
	}

	nonce, err := u.nonceStore.Consume(ctx, addr)
	if err != nil {
		if err == redis.ErrNonceNotFound {
			return nil, domainerrors.Unauthorized("challenge expired, request a new one")
		}
		return nil, err
	}

	if err := wallet.VerifyPersonalSign(SignInMessage(nonce), signature, addr); err != nil {
		return nil, domainerrors.Unauthorized("signature verification failed")
	}

	return u.jwtService.GenerateTokenPair(addr)
}

// Refresh validates a refresh token and mints a fresh token pair
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if err == jwt.ErrExpiredToken {
			return nil, domainerrors.Unauthorized("refresh token expired")
		}
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	return u.jwtService.GenerateTokenPair(claims.Wallet)
}
